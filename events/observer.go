// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
)

// Dispatch describes one call to ProcessLastMessage or ProcessAllMessages.
type Dispatch struct {
	Hwnd     win.HWND
	Msg      msg.WndMsg
	Category Category
	Mode     Mode
	// Key is the decoded dispatch key: a co.WM, CmdKey, NfyKey or TimerKey.
	Key fmt.Stringer
	// Invoked is the number of handlers called.
	Invoked int
	// Result is the dispatch result. In RunAll mode it is HandledOk if any
	// handler handled the message.
	Result  WmRet
	Err     error
	Start   time.Time
	Elapsed time.Duration
}

// An Observer is told about every dispatch after it completes. Observers
// run on the dispatching thread and should return quickly.
type Observer interface {
	Dispatched(d Dispatch)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(d Dispatch)

func (f ObserverFunc) Dispatched(d Dispatch) { f(d) }

// MultiObserver forwards each dispatch to every observer in order.
type MultiObserver []Observer

func (m MultiObserver) Dispatched(d Dispatch) {
	for _, o := range m {
		o.Dispatched(d)
	}
}

// Message returns a short description of the outcome of d.
func (d Dispatch) Message() string {
	if d.Err != nil {
		return "dispatch failed"
	}
	return "dispatched"
}

// Timed reports whether Start and Elapsed were measured.
func (d Dispatch) Timed() bool { return !d.Start.IsZero() }

// KeyValues returns the fields of d as alternating keys and values, in a
// fixed order. Err is not included. elapsed is included only if d is timed.
func (d Dispatch) KeyValues() []any {
	kv := []any{
		"hwnd", fmt.Sprintf("%#x", uintptr(d.Hwnd)),
		"wm", d.Msg.MsgID.String(),
		"wparam", fmt.Sprintf("%#x", d.Msg.WParam),
		"lparam", fmt.Sprintf("%#x", d.Msg.LParam),
		"category", d.Category.String(),
		"mode", d.Mode.String(),
	}
	if d.Key != nil {
		kv = append(kv, "key", d.Key.String())
	}
	kv = append(kv, "invoked", d.Invoked, "result", d.Result.String())
	if d.Timed() {
		kv = append(kv, "elapsed", d.Elapsed)
	}
	return kv
}
