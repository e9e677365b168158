// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

type retKind uint8

const (
	notHandled retKind = iota
	handledOk
	handledWithRet
)

// WmRet is the outcome of a handler or of a dispatch.
type WmRet struct {
	kind retKind
	val  uintptr
}

var (
	// NotHandled means the default procedure should process the message.
	NotHandled = WmRet{}
	// HandledOk means the message was handled and the reply is the
	// conventional zero (windows) or TRUE (dialogs).
	HandledOk = WmRet{kind: handledOk}
)

// HandledWithRet means the message was handled and v is the reply.
func HandledWithRet(v uintptr) WmRet { return WmRet{kind: handledWithRet, val: v} }

// Handled reports whether r is not NotHandled.
func (r WmRet) Handled() bool { return r.kind != notHandled }

// Value returns the reply carried by r, if any.
func (r WmRet) Value() (uintptr, bool) { return r.val, r.kind == handledWithRet }

// Reply converts r into the value a window procedure returns.
//
// For an ordinary window, NotHandled returns def(), which is expected to
// call the default window procedure, and HandledOk returns 0. For a dialog
// procedure, NotHandled returns FALSE and HandledOk returns TRUE. A value
// from HandledWithRet is returned verbatim.
func (r WmRet) Reply(dialog bool, def func() uintptr) uintptr {
	switch r.kind {
	case handledWithRet:
		return r.val
	case handledOk:
		if dialog {
			return 1
		}
		return 0
	default:
		if dialog || def == nil {
			return 0
		}
		return def()
	}
}

func (r WmRet) String() string {
	switch r.kind {
	case handledOk:
		return "handled"
	case handledWithRet:
		return fmt.Sprintf("handled(%d)", int64(r.val))
	default:
		return "not handled"
	}
}
