// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

type InitMenuPopup struct {
	Menu         win.HMENU
	Pos          uint16
	IsWindowMenu bool
}

func (InitMenuPopup) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m InitMenuPopup) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_INITMENUPOPUP,
		WParam: uintptr(m.Menu),
		LParam: win.MAKELONG(m.Pos, uint16(win.BoolToUintptr(m.IsWindowMenu))),
	}
}

func (m *InitMenuPopup) FromGenericWm(p msg.WndMsg) {
	*m = InitMenuPopup{
		Menu:         win.HMENU(p.WParam),
		Pos:          win.LOWORD(p.LParam),
		IsWindowMenu: win.HIWORD(p.LParam) != 0,
	}
}

type UninitMenuPopup struct{ Menu win.HMENU }

func (UninitMenuPopup) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m UninitMenuPopup) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_UNINITMENUPOPUP, WParam: uintptr(m.Menu)}
}

func (m *UninitMenuPopup) FromGenericWm(p msg.WndMsg) { m.Menu = win.HMENU(p.WParam) }

// MenuCommand is sent instead of Command by menus with MNS_NOTIFYBYPOS.
type MenuCommand struct {
	Index uint32
	Menu  win.HMENU
}

func (MenuCommand) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m MenuCommand) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_MENUCOMMAND, WParam: uintptr(m.Index), LParam: uintptr(m.Menu)}
}

func (m *MenuCommand) FromGenericWm(p msg.WndMsg) {
	*m = MenuCommand{Index: uint32(p.WParam), Menu: win.HMENU(p.LParam)}
}

type EnterMenuLoop struct{ TrackPopup bool }

func (EnterMenuLoop) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m EnterMenuLoop) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_ENTERMENULOOP, WParam: win.BoolToUintptr(m.TrackPopup)}
}

func (m *EnterMenuLoop) FromGenericWm(p msg.WndMsg) { m.TrackPopup = p.WParam != 0 }

type ExitMenuLoop struct{ ShortcutMenu bool }

func (ExitMenuLoop) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m ExitMenuLoop) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_EXITMENULOOP, WParam: win.BoolToUintptr(m.ShortcutMenu)}
}

func (m *ExitMenuLoop) FromGenericWm(p msg.WndMsg) { m.ShortcutMenu = p.WParam != 0 }

// Scroll holds the parameters of WM_HSCROLL and WM_VSCROLL. Ctrl is the
// scroll bar control, or 0 for the window's standard scroll bar.
type Scroll struct {
	Request co.SB_REQ
	Pos     uint16
	Ctrl    win.HWND
}

func (Scroll) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m *Scroll) FromGenericWm(p msg.WndMsg) {
	*m = Scroll{
		Request: co.SB_REQ(win.LOWORD(p.WParam)),
		Pos:     win.HIWORD(p.WParam),
		Ctrl:    win.HWND(p.LParam),
	}
}

func (m Scroll) encode(id co.WM) msg.WndMsg {
	return msg.WndMsg{MsgID: id, WParam: win.MAKELONG(uint16(m.Request), m.Pos), LParam: uintptr(m.Ctrl)}
}

type HScroll struct{ Scroll }
type VScroll struct{ Scroll }

func (m HScroll) AsGenericWm() msg.WndMsg { return m.encode(co.WM_HSCROLL) }
func (m VScroll) AsGenericWm() msg.WndMsg { return m.encode(co.WM_VSCROLL) }
