// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
)

// Empty messages carry nothing in WParam or LParam.

type empty struct{}

func (empty) ConvertRet(uintptr) msg.NoRet { return msg.NoRet{} }
func (*empty) FromGenericWm(p msg.WndMsg)  {}
func emptyWm(id co.WM) msg.WndMsg          { return msg.WndMsg{MsgID: id} }

type CancelMode struct{ empty }
type ChildActivate struct{ empty }
type Close struct{ empty }
type Destroy struct{ empty }
type EnterSizeMove struct{ empty }
type ExitSizeMove struct{ empty }
type MouseLeave struct{ empty }
type NcDestroy struct{ empty }
type Null struct{ empty }
type Paint struct{ empty }
type SyncPaint struct{ empty }
type ThemeChanged struct{ empty }

func (CancelMode) AsGenericWm() msg.WndMsg    { return emptyWm(co.WM_CANCELMODE) }
func (ChildActivate) AsGenericWm() msg.WndMsg { return emptyWm(co.WM_CHILDACTIVATE) }
func (Close) AsGenericWm() msg.WndMsg         { return emptyWm(co.WM_CLOSE) }
func (Destroy) AsGenericWm() msg.WndMsg       { return emptyWm(co.WM_DESTROY) }
func (EnterSizeMove) AsGenericWm() msg.WndMsg { return emptyWm(co.WM_ENTERSIZEMOVE) }
func (ExitSizeMove) AsGenericWm() msg.WndMsg  { return emptyWm(co.WM_EXITSIZEMOVE) }
func (MouseLeave) AsGenericWm() msg.WndMsg    { return emptyWm(co.WM_MOUSELEAVE) }
func (NcDestroy) AsGenericWm() msg.WndMsg     { return emptyWm(co.WM_NCDESTROY) }
func (Null) AsGenericWm() msg.WndMsg          { return emptyWm(co.WM_NULL) }
func (Paint) AsGenericWm() msg.WndMsg         { return emptyWm(co.WM_PAINT) }
func (SyncPaint) AsGenericWm() msg.WndMsg     { return emptyWm(co.WM_SYNCPAINT) }
func (ThemeChanged) AsGenericWm() msg.WndMsg  { return emptyWm(co.WM_THEMECHANGED) }

// Empty messages whose reply is a boolean.

type emptyBool struct{}

func (emptyBool) ConvertRet(v uintptr) bool   { return v != 0 }
func (*emptyBool) FromGenericWm(p msg.WndMsg) {}

// QueryOpen asks a minimized window whether it may be restored.
type QueryOpen struct{ emptyBool }

// Undo asks an edit control to undo its last operation.
type Undo struct{ emptyBool }

func (QueryOpen) AsGenericWm() msg.WndMsg { return emptyWm(co.WM_QUERYOPEN) }
func (Undo) AsGenericWm() msg.WndMsg      { return emptyWm(co.WM_UNDO) }
