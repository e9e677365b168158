// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co

// SIZE_R is the resize request type of WM_SIZE.
type SIZE_R uint32

const (
	SIZE_RESTORED  SIZE_R = 0
	SIZE_MINIMIZED SIZE_R = 1
	SIZE_MAXIMIZED SIZE_R = 2
	SIZE_MAXSHOW   SIZE_R = 3
	SIZE_MAXHIDE   SIZE_R = 4
)

// WA is the activation state of WM_ACTIVATE.
type WA uint16

const (
	WA_INACTIVE    WA = 0
	WA_ACTIVE      WA = 1
	WA_CLICKACTIVE WA = 2
)

// MK holds the virtual key flags of mouse messages.
type MK uint16

const (
	MK_LBUTTON  MK = 0x0001
	MK_RBUTTON  MK = 0x0002
	MK_SHIFT    MK = 0x0004
	MK_CONTROL  MK = 0x0008
	MK_MBUTTON  MK = 0x0010
	MK_XBUTTON1 MK = 0x0020
	MK_XBUTTON2 MK = 0x0040
)

// VK is a virtual key code.
type VK uint16

const (
	VK_BACK    VK = 0x08
	VK_TAB     VK = 0x09
	VK_RETURN  VK = 0x0d
	VK_SHIFT   VK = 0x10
	VK_CONTROL VK = 0x11
	VK_MENU    VK = 0x12
	VK_ESCAPE  VK = 0x1b
	VK_SPACE   VK = 0x20
	VK_LEFT    VK = 0x25
	VK_UP      VK = 0x26
	VK_RIGHT   VK = 0x27
	VK_DOWN    VK = 0x28
	VK_DELETE  VK = 0x2e
	VK_F1      VK = 0x70
)

// DLGC is the reply of WM_GETDLGCODE.
type DLGC uint32

const (
	DLGC_WANTARROWS      DLGC = 0x0001
	DLGC_WANTTAB         DLGC = 0x0002
	DLGC_WANTALLKEYS     DLGC = 0x0004
	DLGC_HASSETSEL       DLGC = 0x0008
	DLGC_DEFPUSHBUTTON   DLGC = 0x0010
	DLGC_UNDEFPUSHBUTTON DLGC = 0x0020
	DLGC_RADIOBUTTON     DLGC = 0x0040
	DLGC_WANTCHARS       DLGC = 0x0080
	DLGC_STATIC          DLGC = 0x0100
	DLGC_BUTTON          DLGC = 0x2000
)

// HT is a hit test code, the reply of WM_NCHITTEST.
type HT int32

const (
	HTERROR       HT = -2
	HTTRANSPARENT HT = -1
	HTNOWHERE     HT = 0
	HTCLIENT      HT = 1
	HTCAPTION     HT = 2
	HTSYSMENU     HT = 3
	HTLEFT        HT = 10
	HTRIGHT       HT = 11
	HTTOP         HT = 12
	HTBOTTOM      HT = 15
	HTCLOSE       HT = 20
)

// SC is a system command of WM_SYSCOMMAND.
type SC uint32

const (
	SC_SIZE     SC = 0xf000
	SC_MOVE     SC = 0xf010
	SC_MINIMIZE SC = 0xf020
	SC_MAXIMIZE SC = 0xf030
	SC_CLOSE    SC = 0xf060
	SC_KEYMENU  SC = 0xf100
	SC_RESTORE  SC = 0xf120
)

// ICON_SZ selects the icon of WM_SETICON.
type ICON_SZ uint8

const (
	ICON_SMALL ICON_SZ = 0
	ICON_BIG   ICON_SZ = 1
)

// SB_REQ is the scroll request of WM_HSCROLL and WM_VSCROLL.
type SB_REQ uint16

const (
	SB_LINEUP        SB_REQ = 0
	SB_LINEDOWN      SB_REQ = 1
	SB_PAGEUP        SB_REQ = 2
	SB_PAGEDOWN      SB_REQ = 3
	SB_THUMBPOSITION SB_REQ = 4
	SB_THUMBTRACK    SB_REQ = 5
	SB_TOP           SB_REQ = 6
	SB_BOTTOM        SB_REQ = 7
	SB_ENDSCROLL     SB_REQ = 8
)

// WMSZ is the window edge being dragged in WM_SIZING.
type WMSZ uint8

const (
	WMSZ_LEFT        WMSZ = 1
	WMSZ_RIGHT       WMSZ = 2
	WMSZ_TOP         WMSZ = 3
	WMSZ_TOPLEFT     WMSZ = 4
	WMSZ_TOPRIGHT    WMSZ = 5
	WMSZ_BOTTOM      WMSZ = 6
	WMSZ_BOTTOMLEFT  WMSZ = 7
	WMSZ_BOTTOMRIGHT WMSZ = 8
)

// SW_S is the status of WM_SHOWWINDOW.
type SW_S uint8

const (
	SW_PARENTCLOSING SW_S = 1
	SW_OTHERZOOM     SW_S = 2
	SW_PARENTOPENING SW_S = 3
	SW_OTHERUNZOOM   SW_S = 4
)

// ENDSESSION holds the flags of WM_ENDSESSION.
type ENDSESSION uint32

const (
	ENDSESSION_CLOSEAPP ENDSESSION = 0x00000001
	ENDSESSION_CRITICAL ENDSESSION = 0x40000000
	ENDSESSION_LOGOFF   ENDSESSION = 0x80000000
)

// APPCOMMAND is the command of WM_APPCOMMAND.
type APPCOMMAND uint16

const (
	APPCOMMAND_BROWSER_BACKWARD APPCOMMAND = 1
	APPCOMMAND_BROWSER_FORWARD  APPCOMMAND = 2
	APPCOMMAND_VOLUME_MUTE      APPCOMMAND = 8
	APPCOMMAND_MEDIA_PLAY_PAUSE APPCOMMAND = 14
)

// FAPPCOMMAND is the input device of WM_APPCOMMAND.
type FAPPCOMMAND uint16

const (
	FAPPCOMMAND_KEY   FAPPCOMMAND = 0
	FAPPCOMMAND_OEM   FAPPCOMMAND = 0x1000
	FAPPCOMMAND_MOUSE FAPPCOMMAND = 0x8000
	FAPPCOMMAND_MASK  FAPPCOMMAND = 0xf000
)

// XBUTTON identifies the extra mouse button of WM_XBUTTON* messages.
type XBUTTON uint16

const (
	XBUTTON1 XBUTTON = 0x0001
	XBUTTON2 XBUTTON = 0x0002
)
