// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
)

// Wm registers fn for the message id. Registering the creation message id
// stores fn in the creation registry.
//
// WM_COMMAND, WM_NOTIFY and WM_TIMER are dispatched by their own keys and
// cannot be registered here; Wm panics if id is one of them. Use WmCommand,
// WmNotify and WmTimer instead.
func (e *WindowEvents) Wm(id co.WM, fn Handler) {
	switch e.Classify(id) {
	case CategoryCreation:
		e.creation.Push(id, fn)
	case CategoryMsg:
		e.msgs.Push(id, fn)
	default:
		panic(fmt.Sprintf("events: %v must be registered by its dispatch key", id))
	}
}

// WmCreateOrInitDialog registers fn for the creation message, WM_CREATE for
// ordinary windows and WM_INITDIALOG for dialogs.
func (e *WindowEvents) WmCreateOrInitDialog(fn func() error) {
	e.creation.Push(e.creationID, noParmNoRet(fn))
}

// WmCommand registers fn for the WM_COMMAND notification code sent by the
// control, menu item or accelerator with the given id.
func (e *WindowEvents) WmCommand(code co.CMD, ctrlID uint16, fn func() error) {
	e.cmds.Push(CmdKey{Code: code, CtrlID: ctrlID}, noParmNoRet(fn))
}

// WmCommandRaw is like WmCommand but fn chooses the result.
func (e *WindowEvents) WmCommandRaw(code co.CMD, ctrlID uint16, fn Handler) {
	e.cmds.Push(CmdKey{Code: code, CtrlID: ctrlID}, fn)
}

// WmCommandAccelMenu registers fn for both the menu item and the
// accelerator with the given id. Both registrations share one handler.
func (e *WindowEvents) WmCommandAccelMenu(ctrlID uint16, fn func() error) {
	h := noParmNoRet(fn)
	e.cmds.Push(CmdKey{Code: co.CMD_MENU, CtrlID: ctrlID}, h)
	e.cmds.Push(CmdKey{Code: co.CMD_ACCELERATOR, CtrlID: ctrlID}, h)
}

// WmNotify registers fn for the WM_NOTIFY code sent by the control with
// the given id.
func (e *WindowEvents) WmNotify(idFrom uint16, code co.NM, fn func(p wm.Notify) (WmRet, error)) {
	e.nfys.Push(NfyKey{IDFrom: idFrom, Code: code}, func(p msg.WndMsg) (WmRet, error) {
		return fn(msg.Decode[wm.Notify](p))
	})
}

// WmTimer registers fn for the timer with the given id.
func (e *WindowEvents) WmTimer(id uintptr, fn func() error) {
	e.tmrs.Push(TimerKey(id), noParmNoRet(fn))
}
