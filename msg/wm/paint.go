// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

// CtlColor holds the parameters of the WM_CTLCOLOR* messages. The reply is
// the brush used to paint the control background.
type CtlColor struct {
	HDC  win.HDC
	Ctrl win.HWND
}

func (CtlColor) ConvertRet(v uintptr) win.HBRUSH { return win.HBRUSH(v) }

func (m *CtlColor) FromGenericWm(p msg.WndMsg) {
	*m = CtlColor{HDC: win.HDC(p.WParam), Ctrl: win.HWND(p.LParam)}
}

func (m CtlColor) encode(id co.WM) msg.WndMsg {
	return msg.WndMsg{MsgID: id, WParam: uintptr(m.HDC), LParam: uintptr(m.Ctrl)}
}

type CtlColorBtn struct{ CtlColor }
type CtlColorDlg struct{ CtlColor }
type CtlColorEdit struct{ CtlColor }
type CtlColorListBox struct{ CtlColor }
type CtlColorScrollBar struct{ CtlColor }
type CtlColorStatic struct{ CtlColor }

func (m CtlColorBtn) AsGenericWm() msg.WndMsg       { return m.encode(co.WM_CTLCOLORBTN) }
func (m CtlColorDlg) AsGenericWm() msg.WndMsg       { return m.encode(co.WM_CTLCOLORDLG) }
func (m CtlColorEdit) AsGenericWm() msg.WndMsg      { return m.encode(co.WM_CTLCOLOREDIT) }
func (m CtlColorListBox) AsGenericWm() msg.WndMsg   { return m.encode(co.WM_CTLCOLORLISTBOX) }
func (m CtlColorScrollBar) AsGenericWm() msg.WndMsg { return m.encode(co.WM_CTLCOLORSCROLLBAR) }
func (m CtlColorStatic) AsGenericWm() msg.WndMsg    { return m.encode(co.WM_CTLCOLORSTATIC) }

// EraseBkgnd replies true if the handler erased the background.
type EraseBkgnd struct{ HDC win.HDC }

func (EraseBkgnd) ConvertRet(v uintptr) bool { return v != 0 }

func (m EraseBkgnd) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_ERASEBKGND, WParam: uintptr(m.HDC)}
}

func (m *EraseBkgnd) FromGenericWm(p msg.WndMsg) { m.HDC = win.HDC(p.WParam) }

// NcPaint carries the update region of the window frame; 1 means the
// whole frame.
type NcPaint struct{ Rgn win.HRGN }

func (NcPaint) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m NcPaint) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_NCPAINT, WParam: uintptr(m.Rgn)}
}

func (m *NcPaint) FromGenericWm(p msg.WndMsg) { m.Rgn = win.HRGN(p.WParam) }
