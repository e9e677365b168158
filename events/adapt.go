// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

// The adapters below turn the typed handler signatures of the Wm* methods
// into a Handler. Payloads are decoded on every call.

func noParmNoRet(fn func() error) Handler {
	return func(msg.WndMsg) (WmRet, error) {
		if err := fn(); err != nil {
			return NotHandled, err
		}
		return HandledOk, nil
	}
}

func noParmBoolRet(fn func() (bool, error)) Handler {
	return func(msg.WndMsg) (WmRet, error) {
		b, err := fn()
		if err != nil {
			return NotHandled, err
		}
		return HandledWithRet(win.BoolToUintptr(b)), nil
	}
}

func withParmNoRet[T any, PT msg.MsgSendRecv[T]](fn func(T) error) Handler {
	return func(p msg.WndMsg) (WmRet, error) {
		if err := fn(msg.Decode[T, PT](p)); err != nil {
			return NotHandled, err
		}
		return HandledOk, nil
	}
}

func withParmBoolRet[T any, PT msg.MsgSendRecv[T]](fn func(T) (bool, error)) Handler {
	return func(p msg.WndMsg) (WmRet, error) {
		b, err := fn(msg.Decode[T, PT](p))
		if err != nil {
			return NotHandled, err
		}
		return HandledWithRet(win.BoolToUintptr(b)), nil
	}
}

// reply is the set of types a handler may return as a reply word.
// Signed values are sign extended.
type reply interface {
	~int32 | ~uint32 | ~uintptr
}

func withParmRet[T any, PT msg.MsgSendRecv[T], R reply](fn func(T) (R, error)) Handler {
	return func(p msg.WndMsg) (WmRet, error) {
		v, err := fn(msg.Decode[T, PT](p))
		if err != nil {
			return NotHandled, err
		}
		return HandledWithRet(uintptr(v)), nil
	}
}
