// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/wmdispatch/wmdispatch/co"
)

// CmdKey identifies WM_COMMAND handlers.
type CmdKey struct {
	Code   co.CMD
	CtrlID uint16
}

func (k CmdKey) String() string {
	switch k.Code {
	case co.CMD_MENU:
		return fmt.Sprintf("menu id=%d", k.CtrlID)
	case co.CMD_ACCELERATOR:
		return fmt.Sprintf("accel id=%d", k.CtrlID)
	}
	return fmt.Sprintf("code=%#x id=%d", uint16(k.Code), k.CtrlID)
}

// NfyKey identifies WM_NOTIFY handlers.
type NfyKey struct {
	IDFrom uint16
	Code   co.NM
}

func (k NfyKey) String() string { return fmt.Sprintf("id=%d %v", k.IDFrom, k.Code) }

// TimerKey identifies WM_TIMER handlers.
type TimerKey uintptr

func (k TimerKey) String() string { return fmt.Sprintf("timer=%d", uintptr(k)) }

// Category names the registry a message is dispatched to.
type Category uint8

const (
	CategoryMsg Category = iota
	CategoryCreation
	CategoryCommand
	CategoryNotify
	CategoryTimer
)

var categoryNames = [...]string{"msg", "creation", "command", "notify", "timer"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Mode is the dispatch mode.
type Mode uint8

const (
	// LastWins runs handlers most recent first and stops at the first one
	// that handles the message.
	LastWins Mode = iota
	// RunAll runs every handler in registration order.
	RunAll
)

func (m Mode) String() string {
	if m == RunAll {
		return "all"
	}
	return "last"
}
