// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

// Key holds the parameters shared by the character and key messages.
type Key struct {
	// Code is a character code for the *CHAR messages and a virtual key
	// code for the *KEY* messages.
	Code        uint32
	RepeatCount uint16
	ScanCode    uint8
	Extended    bool
	AltDown     bool
	WasDown     bool
	Releasing   bool
}

// Rune returns Code as a character.
func (k Key) Rune() rune { return rune(k.Code) }

// VK returns Code as a virtual key.
func (k Key) VK() co.VK { return co.VK(k.Code) }

func (Key) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (k *Key) FromGenericWm(p msg.WndMsg) {
	flags := win.HIBYTE(win.HIWORD(p.LParam))
	*k = Key{
		Code:        uint32(p.WParam),
		RepeatCount: win.LOWORD(p.LParam),
		ScanCode:    win.LOBYTE(win.HIWORD(p.LParam)),
		Extended:    flags&0x01 != 0,
		AltDown:     flags&0x20 != 0,
		WasDown:     flags&0x40 != 0,
		Releasing:   flags&0x80 != 0,
	}
}

func (k Key) encode(id co.WM) msg.WndMsg {
	var flags uint16
	if k.Extended {
		flags |= 0x01
	}
	if k.AltDown {
		flags |= 0x20
	}
	if k.WasDown {
		flags |= 0x40
	}
	if k.Releasing {
		flags |= 0x80
	}
	return msg.WndMsg{
		MsgID:  id,
		WParam: uintptr(k.Code),
		LParam: win.MAKELONG(k.RepeatCount, uint16(k.ScanCode)|flags<<8),
	}
}

type Char struct{ Key }
type DeadChar struct{ Key }
type SysChar struct{ Key }
type SysDeadChar struct{ Key }
type KeyDown struct{ Key }
type KeyUp struct{ Key }
type SysKeyDown struct{ Key }
type SysKeyUp struct{ Key }

func (m Char) AsGenericWm() msg.WndMsg        { return m.encode(co.WM_CHAR) }
func (m DeadChar) AsGenericWm() msg.WndMsg    { return m.encode(co.WM_DEADCHAR) }
func (m SysChar) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_SYSCHAR) }
func (m SysDeadChar) AsGenericWm() msg.WndMsg { return m.encode(co.WM_SYSDEADCHAR) }
func (m KeyDown) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_KEYDOWN) }
func (m KeyUp) AsGenericWm() msg.WndMsg       { return m.encode(co.WM_KEYUP) }
func (m SysKeyDown) AsGenericWm() msg.WndMsg  { return m.encode(co.WM_SYSKEYDOWN) }
func (m SysKeyUp) AsGenericWm() msg.WndMsg    { return m.encode(co.WM_SYSKEYUP) }

// Mouse holds the parameters shared by the client area mouse messages.
type Mouse struct {
	Keys co.MK
	Pos  win.POINT
}

func (Mouse) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m *Mouse) FromGenericWm(p msg.WndMsg) {
	*m = Mouse{Keys: co.MK(win.LOWORD(p.WParam)), Pos: win.PointFrom(p.LParam)}
}

func (m Mouse) encode(id co.WM) msg.WndMsg {
	return msg.WndMsg{MsgID: id, WParam: uintptr(m.Keys), LParam: win.MakePoint(m.Pos)}
}

type LButtonDblClk struct{ Mouse }
type LButtonDown struct{ Mouse }
type LButtonUp struct{ Mouse }
type MButtonDblClk struct{ Mouse }
type MButtonDown struct{ Mouse }
type MButtonUp struct{ Mouse }
type RButtonDblClk struct{ Mouse }
type RButtonDown struct{ Mouse }
type RButtonUp struct{ Mouse }
type MouseHover struct{ Mouse }
type MouseMove struct{ Mouse }

func (m LButtonDblClk) AsGenericWm() msg.WndMsg { return m.encode(co.WM_LBUTTONDBLCLK) }
func (m LButtonDown) AsGenericWm() msg.WndMsg   { return m.encode(co.WM_LBUTTONDOWN) }
func (m LButtonUp) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_LBUTTONUP) }
func (m MButtonDblClk) AsGenericWm() msg.WndMsg { return m.encode(co.WM_MBUTTONDBLCLK) }
func (m MButtonDown) AsGenericWm() msg.WndMsg   { return m.encode(co.WM_MBUTTONDOWN) }
func (m MButtonUp) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_MBUTTONUP) }
func (m RButtonDblClk) AsGenericWm() msg.WndMsg { return m.encode(co.WM_RBUTTONDBLCLK) }
func (m RButtonDown) AsGenericWm() msg.WndMsg   { return m.encode(co.WM_RBUTTONDOWN) }
func (m RButtonUp) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_RBUTTONUP) }
func (m MouseHover) AsGenericWm() msg.WndMsg    { return m.encode(co.WM_MOUSEHOVER) }
func (m MouseMove) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_MOUSEMOVE) }

// XMouse holds the parameters of the extra button messages, which also
// name the button in the high word of WParam.
type XMouse struct {
	Mouse
	Button co.XBUTTON
}

func (m *XMouse) FromGenericWm(p msg.WndMsg) {
	m.Mouse.FromGenericWm(p)
	m.Button = co.XBUTTON(win.HIWORD(p.WParam))
}

func (m XMouse) encode(id co.WM) msg.WndMsg {
	p := m.Mouse.encode(id)
	p.WParam = win.MAKELONG(uint16(m.Keys), uint16(m.Button))
	return p
}

type XButtonDblClk struct{ XMouse }
type XButtonDown struct{ XMouse }
type XButtonUp struct{ XMouse }

func (m XButtonDblClk) AsGenericWm() msg.WndMsg { return m.encode(co.WM_XBUTTONDBLCLK) }
func (m XButtonDown) AsGenericWm() msg.WndMsg   { return m.encode(co.WM_XBUTTONDOWN) }
func (m XButtonUp) AsGenericWm() msg.WndMsg     { return m.encode(co.WM_XBUTTONUP) }

// MouseWheel is sent to the focus window when the wheel rotates. Pos is in
// screen coordinates.
type MouseWheel struct {
	Delta int16
	Keys  co.MK
	Pos   win.POINT
}

func (MouseWheel) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m MouseWheel) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_MOUSEWHEEL,
		WParam: win.MAKELONG(uint16(m.Keys), uint16(m.Delta)),
		LParam: win.MakePoint(m.Pos),
	}
}

func (m *MouseWheel) FromGenericWm(p msg.WndMsg) {
	*m = MouseWheel{
		Delta: int16(win.HIWORD(p.WParam)),
		Keys:  co.MK(win.LOWORD(p.WParam)),
		Pos:   win.PointFrom(p.LParam),
	}
}

// AppCommand notifies a window of an application command such as a media
// key.
type AppCommand struct {
	Owner   win.HWND
	Command co.APPCOMMAND
	Device  co.FAPPCOMMAND
	Keys    co.MK
}

// ConvertRet reports whether the command was processed.
func (AppCommand) ConvertRet(v uintptr) bool { return v != 0 }

func (m AppCommand) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_APPCOMMAND,
		WParam: uintptr(m.Owner),
		LParam: win.MAKELONG(uint16(m.Keys), uint16(m.Command)|uint16(m.Device)),
	}
}

func (m *AppCommand) FromGenericWm(p msg.WndMsg) {
	hi := win.HIWORD(p.LParam)
	*m = AppCommand{
		Owner:   win.HWND(p.WParam),
		Command: co.APPCOMMAND(hi &^ uint16(co.FAPPCOMMAND_MASK)),
		Device:  co.FAPPCOMMAND(hi & uint16(co.FAPPCOMMAND_MASK)),
		Keys:    co.MK(win.LOWORD(p.LParam)),
	}
}
