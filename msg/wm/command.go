// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"unsafe"

	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

// Command is sent when a menu item is chosen, an accelerator is
// translated, or a control sends a notification to its parent.
//
// For menus Code is co.CMD_MENU and for accelerators co.CMD_ACCELERATOR;
// in both cases Ctrl is 0.
type Command struct {
	Code   co.CMD
	CtrlID uint16
	Ctrl   win.HWND
}

func (Command) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Command) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_COMMAND,
		WParam: win.MAKELONG(m.CtrlID, uint16(m.Code)),
		LParam: uintptr(m.Ctrl),
	}
}

func (m *Command) FromGenericWm(p msg.WndMsg) {
	*m = Command{
		Code:   co.CMD(win.HIWORD(p.WParam)),
		CtrlID: win.LOWORD(p.WParam),
		Ctrl:   win.HWND(p.LParam),
	}
}

// Notify is sent by a common control to its parent. Hdr points to the
// control's notification structure, which starts with an NMHDR.
type Notify struct {
	Hdr *win.NMHDR
}

// ConvertRet returns the reply unchanged; its meaning depends on the
// notification code.
func (Notify) ConvertRet(v uintptr) uintptr { return v }

func (m Notify) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_NOTIFY,
		WParam: m.Hdr.IdFrom,
		LParam: uintptr(unsafe.Pointer(m.Hdr)),
	}
}

func (m *Notify) FromGenericWm(p msg.WndMsg) {
	m.Hdr = (*win.NMHDR)(unsafe.Pointer(p.LParam))
}

// Code returns the notification code.
func (m Notify) Code() co.NM { return co.NM(int32(m.Hdr.Code)) }

// CastNmhdr reinterprets the notification structure as T, which must be the
// structure the control documents for this notification code.
func CastNmhdr[T any](m Notify) *T {
	return (*T)(unsafe.Pointer(m.Hdr))
}

// Timer is posted when a timer set with SetTimer elapses.
type Timer struct {
	ID   uintptr
	Proc uintptr
}

func (Timer) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Timer) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_TIMER, WParam: m.ID, LParam: m.Proc}
}

func (m *Timer) FromGenericWm(p msg.WndMsg) {
	*m = Timer{ID: p.WParam, Proc: p.LParam}
}
