// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co

// CMD is the notification code carried in the high word of a WM_COMMAND
// wParam. Menu and accelerator commands use the two fixed values below;
// controls send their own codes, which share the same space.
type CMD uint16

const (
	CMD_MENU        CMD = 0
	CMD_ACCELERATOR CMD = 1
)

// Button notification codes.
const (
	BN_CLICKED       CMD = 0
	BN_PAINT         CMD = 1
	BN_HILITE        CMD = 2
	BN_UNHILITE      CMD = 3
	BN_DISABLE       CMD = 4
	BN_DOUBLECLICKED CMD = 5
	BN_SETFOCUS      CMD = 6
	BN_KILLFOCUS     CMD = 7
)

// Edit notification codes.
const (
	EN_SETFOCUS  CMD = 0x0100
	EN_KILLFOCUS CMD = 0x0200
	EN_CHANGE    CMD = 0x0300
	EN_UPDATE    CMD = 0x0400
	EN_ERRSPACE  CMD = 0x0500
	EN_MAXTEXT   CMD = 0x0501
	EN_HSCROLL   CMD = 0x0601
	EN_VSCROLL   CMD = 0x0602
)

// Combo box notification codes.
const (
	CBN_SELCHANGE  CMD = 1
	CBN_DBLCLK     CMD = 2
	CBN_SETFOCUS   CMD = 3
	CBN_KILLFOCUS  CMD = 4
	CBN_EDITCHANGE CMD = 5
	CBN_DROPDOWN   CMD = 7
	CBN_CLOSEUP    CMD = 8
)
