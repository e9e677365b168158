// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

// Typed registration helpers, one per message. Handlers that return only an
// error reply HandledOk; handlers that return a value reply with it.

func (e *WindowEvents) WmActivate(fn func(p wm.Activate) error) {
	e.Wm(co.WM_ACTIVATE, withParmNoRet(fn))
}

func (e *WindowEvents) WmActivateApp(fn func(p wm.ActivateApp) error) {
	e.Wm(co.WM_ACTIVATEAPP, withParmNoRet(fn))
}

// WmAppCommand handlers reply true if they processed the command.
func (e *WindowEvents) WmAppCommand(fn func(p wm.AppCommand) (bool, error)) {
	e.Wm(co.WM_APPCOMMAND, withParmBoolRet(fn))
}

func (e *WindowEvents) WmCancelMode(fn func() error) { e.Wm(co.WM_CANCELMODE, noParmNoRet(fn)) }

func (e *WindowEvents) WmCaptureChanged(fn func(p wm.CaptureChanged) error) {
	e.Wm(co.WM_CAPTURECHANGED, withParmNoRet(fn))
}

func (e *WindowEvents) WmChar(fn func(p wm.Char) error) { e.Wm(co.WM_CHAR, withParmNoRet(fn)) }

func (e *WindowEvents) WmChildActivate(fn func() error) {
	e.Wm(co.WM_CHILDACTIVATE, noParmNoRet(fn))
}

// WmClose is sent when the user closes the window. Handling it replaces the
// default processing, which destroys the window.
func (e *WindowEvents) WmClose(fn func() error) { e.Wm(co.WM_CLOSE, noParmNoRet(fn)) }

func (e *WindowEvents) WmContextMenu(fn func(p wm.ContextMenu) error) {
	e.Wm(co.WM_CONTEXTMENU, withParmNoRet(fn))
}

// WmCreate is sent only to ordinary windows; dialogs receive WM_INITDIALOG
// instead. The handler replies 0 to continue creation or -1 to destroy
// the window.
func (e *WindowEvents) WmCreate(fn func(p wm.Create) (int32, error)) {
	e.Wm(co.WM_CREATE, withParmRet(fn))
}

// The WmCtlColor* handlers reply with the brush used to paint the control
// background.

func (e *WindowEvents) WmCtlColorBtn(fn func(p wm.CtlColorBtn) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLORBTN, withParmRet(fn))
}

func (e *WindowEvents) WmCtlColorDlg(fn func(p wm.CtlColorDlg) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLORDLG, withParmRet(fn))
}

func (e *WindowEvents) WmCtlColorEdit(fn func(p wm.CtlColorEdit) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLOREDIT, withParmRet(fn))
}

func (e *WindowEvents) WmCtlColorListBox(fn func(p wm.CtlColorListBox) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLORLISTBOX, withParmRet(fn))
}

func (e *WindowEvents) WmCtlColorScrollBar(fn func(p wm.CtlColorScrollBar) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLORSCROLLBAR, withParmRet(fn))
}

func (e *WindowEvents) WmCtlColorStatic(fn func(p wm.CtlColorStatic) (win.HBRUSH, error)) {
	e.Wm(co.WM_CTLCOLORSTATIC, withParmRet(fn))
}

func (e *WindowEvents) WmDeadChar(fn func(p wm.DeadChar) error) {
	e.Wm(co.WM_DEADCHAR, withParmNoRet(fn))
}

func (e *WindowEvents) WmDestroy(fn func() error) { e.Wm(co.WM_DESTROY, noParmNoRet(fn)) }

func (e *WindowEvents) WmDisplayChange(fn func(p wm.DisplayChange) error) {
	e.Wm(co.WM_DISPLAYCHANGE, withParmNoRet(fn))
}

func (e *WindowEvents) WmDropFiles(fn func(p wm.DropFiles) error) {
	e.Wm(co.WM_DROPFILES, withParmNoRet(fn))
}

func (e *WindowEvents) WmEnable(fn func(p wm.Enable) error) { e.Wm(co.WM_ENABLE, withParmNoRet(fn)) }

func (e *WindowEvents) WmEndSession(fn func(p wm.EndSession) error) {
	e.Wm(co.WM_ENDSESSION, withParmNoRet(fn))
}

func (e *WindowEvents) WmEnterMenuLoop(fn func(p wm.EnterMenuLoop) error) {
	e.Wm(co.WM_ENTERMENULOOP, withParmNoRet(fn))
}

func (e *WindowEvents) WmEnterSizeMove(fn func() error) {
	e.Wm(co.WM_ENTERSIZEMOVE, noParmNoRet(fn))
}

// WmEraseBkgnd handlers reply true if they erased the background.
func (e *WindowEvents) WmEraseBkgnd(fn func(p wm.EraseBkgnd) (bool, error)) {
	e.Wm(co.WM_ERASEBKGND, withParmBoolRet(fn))
}

func (e *WindowEvents) WmExitMenuLoop(fn func(p wm.ExitMenuLoop) error) {
	e.Wm(co.WM_EXITMENULOOP, withParmNoRet(fn))
}

func (e *WindowEvents) WmExitSizeMove(fn func() error) { e.Wm(co.WM_EXITSIZEMOVE, noParmNoRet(fn)) }

func (e *WindowEvents) WmGetDlgCode(fn func(p wm.GetDlgCode) (co.DLGC, error)) {
	e.Wm(co.WM_GETDLGCODE, withParmRet(fn))
}

func (e *WindowEvents) WmGetFont(fn func(p wm.GetFont) (win.HFONT, error)) {
	e.Wm(co.WM_GETFONT, withParmRet(fn))
}

func (e *WindowEvents) WmGetMinMaxInfo(fn func(p wm.GetMinMaxInfo) error) {
	e.Wm(co.WM_GETMINMAXINFO, withParmNoRet(fn))
}

func (e *WindowEvents) WmHScroll(fn func(p wm.HScroll) error) { e.Wm(co.WM_HSCROLL, withParmNoRet(fn)) }

// WmInitDialog is sent only to dialogs. The handler replies true to let
// the system set the keyboard focus.
func (e *WindowEvents) WmInitDialog(fn func(p wm.InitDialog) (bool, error)) {
	e.Wm(co.WM_INITDIALOG, withParmBoolRet(fn))
}

func (e *WindowEvents) WmInitMenuPopup(fn func(p wm.InitMenuPopup) error) {
	e.Wm(co.WM_INITMENUPOPUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmKeyDown(fn func(p wm.KeyDown) error) { e.Wm(co.WM_KEYDOWN, withParmNoRet(fn)) }
func (e *WindowEvents) WmKeyUp(fn func(p wm.KeyUp) error)     { e.Wm(co.WM_KEYUP, withParmNoRet(fn)) }

func (e *WindowEvents) WmKillFocus(fn func(p wm.KillFocus) error) {
	e.Wm(co.WM_KILLFOCUS, withParmNoRet(fn))
}

func (e *WindowEvents) WmLButtonDblClk(fn func(p wm.LButtonDblClk) error) {
	e.Wm(co.WM_LBUTTONDBLCLK, withParmNoRet(fn))
}

func (e *WindowEvents) WmLButtonDown(fn func(p wm.LButtonDown) error) {
	e.Wm(co.WM_LBUTTONDOWN, withParmNoRet(fn))
}

func (e *WindowEvents) WmLButtonUp(fn func(p wm.LButtonUp) error) {
	e.Wm(co.WM_LBUTTONUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmMButtonDblClk(fn func(p wm.MButtonDblClk) error) {
	e.Wm(co.WM_MBUTTONDBLCLK, withParmNoRet(fn))
}

func (e *WindowEvents) WmMButtonDown(fn func(p wm.MButtonDown) error) {
	e.Wm(co.WM_MBUTTONDOWN, withParmNoRet(fn))
}

func (e *WindowEvents) WmMButtonUp(fn func(p wm.MButtonUp) error) {
	e.Wm(co.WM_MBUTTONUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmMenuCommand(fn func(p wm.MenuCommand) error) {
	e.Wm(co.WM_MENUCOMMAND, withParmNoRet(fn))
}

func (e *WindowEvents) WmMouseHover(fn func(p wm.MouseHover) error) {
	e.Wm(co.WM_MOUSEHOVER, withParmNoRet(fn))
}

func (e *WindowEvents) WmMouseLeave(fn func() error) { e.Wm(co.WM_MOUSELEAVE, noParmNoRet(fn)) }

func (e *WindowEvents) WmMouseMove(fn func(p wm.MouseMove) error) {
	e.Wm(co.WM_MOUSEMOVE, withParmNoRet(fn))
}

func (e *WindowEvents) WmMouseWheel(fn func(p wm.MouseWheel) error) {
	e.Wm(co.WM_MOUSEWHEEL, withParmNoRet(fn))
}

func (e *WindowEvents) WmMove(fn func(p wm.Move) error) { e.Wm(co.WM_MOVE, withParmNoRet(fn)) }

// WmMoving handlers may change the rectangle and reply true.
func (e *WindowEvents) WmMoving(fn func(p wm.Moving) (bool, error)) {
	e.Wm(co.WM_MOVING, withParmBoolRet(fn))
}

// WmNcCreate handlers reply false to abort window creation.
func (e *WindowEvents) WmNcCreate(fn func(p wm.NcCreate) (bool, error)) {
	e.Wm(co.WM_NCCREATE, withParmBoolRet(fn))
}

func (e *WindowEvents) WmNcDestroy(fn func() error) { e.Wm(co.WM_NCDESTROY, noParmNoRet(fn)) }

func (e *WindowEvents) WmNcHitTest(fn func(p wm.NcHitTest) (co.HT, error)) {
	e.Wm(co.WM_NCHITTEST, withParmRet(fn))
}

func (e *WindowEvents) WmNcPaint(fn func(p wm.NcPaint) error) { e.Wm(co.WM_NCPAINT, withParmNoRet(fn)) }

func (e *WindowEvents) WmNull(fn func() error) { e.Wm(co.WM_NULL, noParmNoRet(fn)) }

// WmPaint handlers must validate the update region, usually with
// BeginPaint and EndPaint.
func (e *WindowEvents) WmPaint(fn func() error) { e.Wm(co.WM_PAINT, noParmNoRet(fn)) }

func (e *WindowEvents) WmQueryEndSession(fn func(p wm.QueryEndSession) (bool, error)) {
	e.Wm(co.WM_QUERYENDSESSION, withParmBoolRet(fn))
}

func (e *WindowEvents) WmQueryOpen(fn func() (bool, error)) {
	e.Wm(co.WM_QUERYOPEN, noParmBoolRet(fn))
}

func (e *WindowEvents) WmRButtonDblClk(fn func(p wm.RButtonDblClk) error) {
	e.Wm(co.WM_RBUTTONDBLCLK, withParmNoRet(fn))
}

func (e *WindowEvents) WmRButtonDown(fn func(p wm.RButtonDown) error) {
	e.Wm(co.WM_RBUTTONDOWN, withParmNoRet(fn))
}

func (e *WindowEvents) WmRButtonUp(fn func(p wm.RButtonUp) error) {
	e.Wm(co.WM_RBUTTONUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmSetCursor(fn func(p wm.SetCursor) (bool, error)) {
	e.Wm(co.WM_SETCURSOR, withParmBoolRet(fn))
}

func (e *WindowEvents) WmSetFocus(fn func(p wm.SetFocus) error) {
	e.Wm(co.WM_SETFOCUS, withParmNoRet(fn))
}

func (e *WindowEvents) WmSetFont(fn func(p wm.SetFont) error) { e.Wm(co.WM_SETFONT, withParmNoRet(fn)) }

func (e *WindowEvents) WmSetIcon(fn func(p wm.SetIcon) (win.HICON, error)) {
	e.Wm(co.WM_SETICON, withParmRet(fn))
}

func (e *WindowEvents) WmSetRedraw(fn func(p wm.SetRedraw) error) {
	e.Wm(co.WM_SETREDRAW, withParmNoRet(fn))
}

func (e *WindowEvents) WmSetText(fn func(p wm.SetText) (bool, error)) {
	e.Wm(co.WM_SETTEXT, withParmBoolRet(fn))
}

func (e *WindowEvents) WmShowWindow(fn func(p wm.ShowWindow) error) {
	e.Wm(co.WM_SHOWWINDOW, withParmNoRet(fn))
}

func (e *WindowEvents) WmSize(fn func(p wm.Size) error) { e.Wm(co.WM_SIZE, withParmNoRet(fn)) }

// WmSizing handlers may change the rectangle and reply true.
func (e *WindowEvents) WmSizing(fn func(p wm.Sizing) (bool, error)) {
	e.Wm(co.WM_SIZING, withParmBoolRet(fn))
}

func (e *WindowEvents) WmSyncPaint(fn func() error) { e.Wm(co.WM_SYNCPAINT, noParmNoRet(fn)) }
func (e *WindowEvents) WmSysChar(fn func(p wm.SysChar) error) {
	e.Wm(co.WM_SYSCHAR, withParmNoRet(fn))
}

func (e *WindowEvents) WmSysCommand(fn func(p wm.SysCommand) error) {
	e.Wm(co.WM_SYSCOMMAND, withParmNoRet(fn))
}

func (e *WindowEvents) WmSysDeadChar(fn func(p wm.SysDeadChar) error) {
	e.Wm(co.WM_SYSDEADCHAR, withParmNoRet(fn))
}

func (e *WindowEvents) WmSysKeyDown(fn func(p wm.SysKeyDown) error) {
	e.Wm(co.WM_SYSKEYDOWN, withParmNoRet(fn))
}

func (e *WindowEvents) WmSysKeyUp(fn func(p wm.SysKeyUp) error) {
	e.Wm(co.WM_SYSKEYUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmThemeChanged(fn func() error) { e.Wm(co.WM_THEMECHANGED, noParmNoRet(fn)) }

func (e *WindowEvents) WmUndo(fn func() (bool, error)) { e.Wm(co.WM_UNDO, noParmBoolRet(fn)) }

func (e *WindowEvents) WmUninitMenuPopup(fn func(p wm.UninitMenuPopup) error) {
	e.Wm(co.WM_UNINITMENUPOPUP, withParmNoRet(fn))
}

func (e *WindowEvents) WmVScroll(fn func(p wm.VScroll) error) { e.Wm(co.WM_VSCROLL, withParmNoRet(fn)) }

func (e *WindowEvents) WmWindowPosChanged(fn func(p wm.WindowPosChanged) error) {
	e.Wm(co.WM_WINDOWPOSCHANGED, withParmNoRet(fn))
}

func (e *WindowEvents) WmWindowPosChanging(fn func(p wm.WindowPosChanging) error) {
	e.Wm(co.WM_WINDOWPOSCHANGING, withParmNoRet(fn))
}

func (e *WindowEvents) WmXButtonDblClk(fn func(p wm.XButtonDblClk) error) {
	e.Wm(co.WM_XBUTTONDBLCLK, withParmNoRet(fn))
}

func (e *WindowEvents) WmXButtonDown(fn func(p wm.XButtonDown) error) {
	e.Wm(co.WM_XBUTTONDOWN, withParmNoRet(fn))
}

func (e *WindowEvents) WmXButtonUp(fn func(p wm.XButtonUp) error) {
	e.Wm(co.WM_XBUTTONUP, withParmNoRet(fn))
}
