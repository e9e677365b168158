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

type Activate struct {
	State     co.WA
	Minimized bool
	// Other is the window being activated or deactivated, possibly 0.
	Other win.HWND
}

func (Activate) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Activate) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_ACTIVATE,
		WParam: win.MAKELONG(uint16(m.State), uint16(win.BoolToUintptr(m.Minimized))),
		LParam: uintptr(m.Other),
	}
}

func (m *Activate) FromGenericWm(p msg.WndMsg) {
	*m = Activate{
		State:     co.WA(win.LOWORD(p.WParam)),
		Minimized: win.HIWORD(p.WParam) != 0,
		Other:     win.HWND(p.LParam),
	}
}

type ActivateApp struct {
	Activating bool
	ThreadID   uint32
}

func (ActivateApp) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m ActivateApp) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_ACTIVATEAPP,
		WParam: win.BoolToUintptr(m.Activating),
		LParam: uintptr(m.ThreadID),
	}
}

func (m *ActivateApp) FromGenericWm(p msg.WndMsg) {
	*m = ActivateApp{Activating: p.WParam != 0, ThreadID: uint32(p.LParam)}
}

// hwndParam messages carry a single window handle.
type hwndParam struct{ Hwnd win.HWND }

func (hwndParam) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

// CaptureChanged carries the window gaining the mouse capture in LParam.
type CaptureChanged struct{ hwndParam }

func (m CaptureChanged) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_CAPTURECHANGED, LParam: uintptr(m.Hwnd)}
}

func (m *CaptureChanged) FromGenericWm(p msg.WndMsg) { m.Hwnd = win.HWND(p.LParam) }

// KillFocus carries the window receiving the focus, possibly 0.
type KillFocus struct{ hwndParam }

func (m KillFocus) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_KILLFOCUS, WParam: uintptr(m.Hwnd)}
}

func (m *KillFocus) FromGenericWm(p msg.WndMsg) { m.Hwnd = win.HWND(p.WParam) }

// SetFocus carries the window losing the focus, possibly 0.
type SetFocus struct{ hwndParam }

func (m SetFocus) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SETFOCUS, WParam: uintptr(m.Hwnd)}
}

func (m *SetFocus) FromGenericWm(p msg.WndMsg) { m.Hwnd = win.HWND(p.WParam) }

type ContextMenu struct {
	// Hwnd is the window the user right-clicked.
	Hwnd win.HWND
	// Pos is in screen coordinates; (-1, -1) when triggered from the
	// keyboard.
	Pos win.POINT
}

func (ContextMenu) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m ContextMenu) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_CONTEXTMENU, WParam: uintptr(m.Hwnd), LParam: win.MakePoint(m.Pos)}
}

func (m *ContextMenu) FromGenericWm(p msg.WndMsg) {
	*m = ContextMenu{Hwnd: win.HWND(p.WParam), Pos: win.PointFrom(p.LParam)}
}

// Create is sent to an ordinary window after it is created. A reply of -1
// destroys the window.
type Create struct {
	CreateStruct *win.CREATESTRUCT
}

func (Create) ConvertRet(v uintptr) int32 { return int32(v) }

func (m Create) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_CREATE, LParam: uintptr(unsafe.Pointer(m.CreateStruct))}
}

func (m *Create) FromGenericWm(p msg.WndMsg) {
	m.CreateStruct = (*win.CREATESTRUCT)(unsafe.Pointer(p.LParam))
}

// NcCreate precedes Create. A false reply aborts window creation.
type NcCreate struct {
	CreateStruct *win.CREATESTRUCT
}

func (NcCreate) ConvertRet(v uintptr) bool { return v != 0 }

func (m NcCreate) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_NCCREATE, LParam: uintptr(unsafe.Pointer(m.CreateStruct))}
}

func (m *NcCreate) FromGenericWm(p msg.WndMsg) {
	m.CreateStruct = (*win.CREATESTRUCT)(unsafe.Pointer(p.LParam))
}

// InitDialog is sent to a dialog before it is shown. A true reply lets the
// system set the focus to Focus.
type InitDialog struct {
	Focus win.HWND
	Data  uintptr
}

func (InitDialog) ConvertRet(v uintptr) bool { return v != 0 }

func (m InitDialog) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_INITDIALOG, WParam: uintptr(m.Focus), LParam: m.Data}
}

func (m *InitDialog) FromGenericWm(p msg.WndMsg) {
	*m = InitDialog{Focus: win.HWND(p.WParam), Data: p.LParam}
}

type Enable struct{ Enabled bool }

func (Enable) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Enable) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_ENABLE, WParam: win.BoolToUintptr(m.Enabled)}
}

func (m *Enable) FromGenericWm(p msg.WndMsg) { m.Enabled = p.WParam != 0 }

type EndSession struct {
	Ending bool
	Flags  co.ENDSESSION
}

func (EndSession) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m EndSession) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_ENDSESSION, WParam: win.BoolToUintptr(m.Ending), LParam: uintptr(m.Flags)}
}

func (m *EndSession) FromGenericWm(p msg.WndMsg) {
	*m = EndSession{Ending: p.WParam != 0, Flags: co.ENDSESSION(p.LParam)}
}

// QueryEndSession asks whether the session may end. A true reply agrees.
type QueryEndSession struct{ Flags co.ENDSESSION }

func (QueryEndSession) ConvertRet(v uintptr) bool { return v != 0 }

func (m QueryEndSession) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_QUERYENDSESSION, LParam: uintptr(m.Flags)}
}

func (m *QueryEndSession) FromGenericWm(p msg.WndMsg) { m.Flags = co.ENDSESSION(p.LParam) }

// Move carries the new client area origin.
type Move struct{ Pos win.POINT }

func (Move) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Move) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_MOVE, LParam: win.MakePoint(m.Pos)}
}

func (m *Move) FromGenericWm(p msg.WndMsg) { m.Pos = win.PointFrom(p.LParam) }

// Moving carries the window rectangle, which the handler may change.
type Moving struct{ Rect *win.RECT }

// ConvertRet reports whether the message was processed.
func (Moving) ConvertRet(v uintptr) bool { return v != 0 }

func (m Moving) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_MOVING, LParam: uintptr(unsafe.Pointer(m.Rect))}
}

func (m *Moving) FromGenericWm(p msg.WndMsg) { m.Rect = (*win.RECT)(unsafe.Pointer(p.LParam)) }

type Size struct {
	Request    co.SIZE_R
	ClientArea win.SIZE
}

func (Size) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m Size) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_SIZE,
		WParam: uintptr(m.Request),
		LParam: win.MAKELONG(uint16(m.ClientArea.Cx), uint16(m.ClientArea.Cy)),
	}
}

func (m *Size) FromGenericWm(p msg.WndMsg) {
	*m = Size{
		Request:    co.SIZE_R(p.WParam),
		ClientArea: win.SIZE{Cx: int32(win.LOWORD(p.LParam)), Cy: int32(win.HIWORD(p.LParam))},
	}
}

// Sizing carries the dragged edge and the window rectangle, which the
// handler may change.
type Sizing struct {
	Edge co.WMSZ
	Rect *win.RECT
}

func (Sizing) ConvertRet(v uintptr) bool { return v != 0 }

func (m Sizing) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SIZING, WParam: uintptr(m.Edge), LParam: uintptr(unsafe.Pointer(m.Rect))}
}

func (m *Sizing) FromGenericWm(p msg.WndMsg) {
	*m = Sizing{Edge: co.WMSZ(p.WParam), Rect: (*win.RECT)(unsafe.Pointer(p.LParam))}
}

type ShowWindow struct {
	Shown  bool
	Status co.SW_S
}

func (ShowWindow) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m ShowWindow) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SHOWWINDOW, WParam: win.BoolToUintptr(m.Shown), LParam: uintptr(m.Status)}
}

func (m *ShowWindow) FromGenericWm(p msg.WndMsg) {
	*m = ShowWindow{Shown: p.WParam != 0, Status: co.SW_S(p.LParam)}
}

// GetMinMaxInfo lets the handler change the tracking limits in Info.
type GetMinMaxInfo struct{ Info *win.MINMAXINFO }

func (GetMinMaxInfo) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m GetMinMaxInfo) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_GETMINMAXINFO, LParam: uintptr(unsafe.Pointer(m.Info))}
}

func (m *GetMinMaxInfo) FromGenericWm(p msg.WndMsg) {
	m.Info = (*win.MINMAXINFO)(unsafe.Pointer(p.LParam))
}

type windowPos struct{ Pos *win.WINDOWPOS }

func (windowPos) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m *windowPos) FromGenericWm(p msg.WndMsg) {
	m.Pos = (*win.WINDOWPOS)(unsafe.Pointer(p.LParam))
}

func (m windowPos) encode(id co.WM) msg.WndMsg {
	return msg.WndMsg{MsgID: id, LParam: uintptr(unsafe.Pointer(m.Pos))}
}

type WindowPosChanged struct{ windowPos }
type WindowPosChanging struct{ windowPos }

func (m WindowPosChanged) AsGenericWm() msg.WndMsg  { return m.encode(co.WM_WINDOWPOSCHANGED) }
func (m WindowPosChanging) AsGenericWm() msg.WndMsg { return m.encode(co.WM_WINDOWPOSCHANGING) }

type DisplayChange struct {
	BitsPerPixel uint32
	Resolution   win.SIZE
}

func (DisplayChange) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m DisplayChange) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_DISPLAYCHANGE,
		WParam: uintptr(m.BitsPerPixel),
		LParam: win.MAKELONG(uint16(m.Resolution.Cx), uint16(m.Resolution.Cy)),
	}
}

func (m *DisplayChange) FromGenericWm(p msg.WndMsg) {
	*m = DisplayChange{
		BitsPerPixel: uint32(p.WParam),
		Resolution:   win.SIZE{Cx: int32(win.LOWORD(p.LParam)), Cy: int32(win.HIWORD(p.LParam))},
	}
}

// SysCommand carries a window menu command. The four low bits of the raw
// value are used by the system and are masked off.
type SysCommand struct {
	Request co.SC
	Pos     win.POINT
}

func (SysCommand) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m SysCommand) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SYSCOMMAND, WParam: uintptr(m.Request), LParam: win.MakePoint(m.Pos)}
}

func (m *SysCommand) FromGenericWm(p msg.WndMsg) {
	*m = SysCommand{Request: co.SC(p.WParam &^ 0xf), Pos: win.PointFrom(p.LParam)}
}

// NcHitTest asks which part of the window is under Pos, in screen
// coordinates.
type NcHitTest struct{ Pos win.POINT }

func (NcHitTest) ConvertRet(v uintptr) co.HT { return co.HT(int32(v)) }

func (m NcHitTest) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_NCHITTEST, LParam: win.MakePoint(m.Pos)}
}

func (m *NcHitTest) FromGenericWm(p msg.WndMsg) { m.Pos = win.PointFrom(p.LParam) }

// SetCursor asks the window to set the cursor. A true reply stops further
// processing.
type SetCursor struct {
	Hwnd    win.HWND
	HitTest co.HT
	MouseID co.WM
}

func (SetCursor) ConvertRet(v uintptr) bool { return v != 0 }

func (m SetCursor) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{
		MsgID:  co.WM_SETCURSOR,
		WParam: uintptr(m.Hwnd),
		LParam: win.MAKELONG(uint16(int16(m.HitTest)), uint16(m.MouseID)),
	}
}

func (m *SetCursor) FromGenericWm(p msg.WndMsg) {
	*m = SetCursor{
		Hwnd:    win.HWND(p.WParam),
		HitTest: co.HT(int16(win.LOWORD(p.LParam))),
		MouseID: co.WM(win.HIWORD(p.LParam)),
	}
}

// GetDlgCode asks a control which input it wants. Key is the virtual key
// prompting the query, or 0.
type GetDlgCode struct {
	Key co.VK
	// Msg points to the message prompting the query; it may be nil.
	Msg uintptr
}

func (GetDlgCode) ConvertRet(v uintptr) co.DLGC { return co.DLGC(v) }

func (m GetDlgCode) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_GETDLGCODE, WParam: uintptr(m.Key), LParam: m.Msg}
}

func (m *GetDlgCode) FromGenericWm(p msg.WndMsg) {
	*m = GetDlgCode{Key: co.VK(p.WParam), Msg: p.LParam}
}

type DropFiles struct{ Drop win.HDROP }

func (DropFiles) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m DropFiles) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_DROPFILES, WParam: uintptr(m.Drop)}
}

func (m *DropFiles) FromGenericWm(p msg.WndMsg) { m.Drop = win.HDROP(p.WParam) }

type SetFont struct {
	Font   win.HFONT
	Redraw bool
}

func (SetFont) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m SetFont) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SETFONT, WParam: uintptr(m.Font), LParam: win.BoolToUintptr(m.Redraw)}
}

func (m *SetFont) FromGenericWm(p msg.WndMsg) {
	*m = SetFont{Font: win.HFONT(p.WParam), Redraw: p.LParam != 0}
}

// GetFont asks for the font a control draws its text with.
type GetFont struct{}

func (GetFont) ConvertRet(v uintptr) win.HFONT { return win.HFONT(v) }
func (GetFont) AsGenericWm() msg.WndMsg        { return emptyWm(co.WM_GETFONT) }
func (*GetFont) FromGenericWm(p msg.WndMsg)    {}

// SetIcon replies with the previous icon of the given size.
type SetIcon struct {
	Size co.ICON_SZ
	Icon win.HICON
}

func (SetIcon) ConvertRet(v uintptr) win.HICON { return win.HICON(v) }

func (m SetIcon) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SETICON, WParam: uintptr(m.Size), LParam: uintptr(m.Icon)}
}

func (m *SetIcon) FromGenericWm(p msg.WndMsg) {
	*m = SetIcon{Size: co.ICON_SZ(p.WParam), Icon: win.HICON(p.LParam)}
}

type SetRedraw struct{ Redraw bool }

func (SetRedraw) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }

func (m SetRedraw) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SETREDRAW, WParam: win.BoolToUintptr(m.Redraw)}
}

func (m *SetRedraw) FromGenericWm(p msg.WndMsg) { m.Redraw = p.WParam != 0 }

// SetText carries a NUL-terminated UTF-16 string owned by the sender.
type SetText struct{ Text *uint16 }

// String returns the text as a Go string.
func (m SetText) String() string { return win.UTF16PtrToString(m.Text) }

func (SetText) ConvertRet(v uintptr) bool { return v != 0 }

func (m SetText) AsGenericWm() msg.WndMsg {
	return msg.WndMsg{MsgID: co.WM_SETTEXT, LParam: uintptr(unsafe.Pointer(m.Text))}
}

func (m *SetText) FromGenericWm(p msg.WndMsg) { m.Text = (*uint16)(unsafe.Pointer(p.LParam)) }
