// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventstest supports testing code that registers window message
// handlers.
package eventstest

import (
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

// InitialTime is the first time returned by Clock.
var InitialTime = time.Date(2020, 3, 5, 14, 27, 48, 0, time.UTC)

// Clock returns a clock that starts at InitialTime and advances by step on
// every call.
func Clock(step time.Duration) func() time.Time {
	next := InitialTime
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

// Recorder is an Observer that keeps every Dispatch.
type Recorder struct {
	Dispatches []events.Dispatch
}

func (r *Recorder) Dispatched(d events.Dispatch) { r.Dispatches = append(r.Dispatches, d) }

// CmpOptions compares Dispatch records, ignoring their timing and
// comparing errors by message.
func CmpOptions() []cmp.Option {
	return []cmp.Option{
		cmpopts.IgnoreFields(events.Dispatch{}, "Start", "Elapsed"),
		cmp.Comparer(func(x, y events.WmRet) bool { return x == y }),
		cmp.Comparer(func(x, y error) bool {
			if x == nil || y == nil {
				return x == nil && y == nil
			}
			return x.Error() == y.Error()
		}),
	}
}

// Command returns the triple of a WM_COMMAND notification.
func Command(code co.CMD, ctrlID uint16) msg.WndMsg {
	return wm.Command{Code: code, CtrlID: ctrlID}.AsGenericWm()
}

// Timer returns the triple of a WM_TIMER message.
func Timer(id uintptr) msg.WndMsg {
	return wm.Timer{ID: id}.AsGenericWm()
}

// Notify returns the triple of a WM_NOTIFY message whose header is hdr.
// The header is pinned in memory until the test ends.
func Notify(tb testing.TB, hdr *win.NMHDR) msg.WndMsg {
	var pin runtime.Pinner
	pin.Pin(hdr)
	tb.Cleanup(pin.Unpin)
	return wm.Notify{Hdr: hdr}.AsGenericWm()
}

// NotifyCode returns the triple of a WM_NOTIFY message with a bare NMHDR.
func NotifyCode(tb testing.TB, idFrom uint16, code co.NM) msg.WndMsg {
	return Notify(tb, &win.NMHDR{IdFrom: uintptr(idFrom), Code: code.Raw()})
}

// Sent is one message captured by a FakeSender.
type Sent struct {
	Hwnd win.HWND
	Msg  msg.WndMsg
	Post bool
}

// FakeSender is a msg.Sender that records messages instead of delivering
// them. SendMessage replies with Reply, or the error Err.
type FakeSender struct {
	Sent  []Sent
	Reply uintptr
	Err   error
}

func (f *FakeSender) SendMessage(hwnd win.HWND, p msg.WndMsg) (uintptr, error) {
	f.Sent = append(f.Sent, Sent{Hwnd: hwnd, Msg: p})
	return f.Reply, f.Err
}

func (f *FakeSender) PostMessage(hwnd win.HWND, p msg.WndMsg) error {
	f.Sent = append(f.Sent, Sent{Hwnd: hwnd, Msg: p, Post: true})
	return f.Err
}
