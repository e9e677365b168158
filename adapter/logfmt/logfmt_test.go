// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logfmt_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wmdispatch/wmdispatch/adapter/logfmt"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/events/eventstest"
	"github.com/wmdispatch/wmdispatch/msg"
)

func TestPrint(t *testing.T) {
	for _, test := range []struct {
		name   string
		timing bool
		d      events.Dispatch
		expect string
	}{{
		name: "message",
		d: events.Dispatch{
			Hwnd:     0x1234,
			Msg:      msg.WndMsg{MsgID: co.WM_SIZE, LParam: 0x00c80064},
			Category: events.CategoryMsg,
			Mode:     events.LastWins,
			Key:      co.WM_SIZE,
			Invoked:  1,
			Result:   events.HandledOk,
		},
		expect: `hwnd=0x1234 wm=WM_SIZE wparam=0x0 lparam=0xc80064 category=msg mode=last key=WM_SIZE invoked=1 result=handled msg=dispatched`,
	}, {
		name: "command error",
		d: events.Dispatch{
			Hwnd:     0x1234,
			Msg:      eventstest.Command(co.CMD_MENU, 42),
			Category: events.CategoryCommand,
			Mode:     events.RunAll,
			Key:      events.CmdKey{Code: co.CMD_MENU, CtrlID: 42},
			Invoked:  2,
			Result:   events.NotHandled,
			Err:      errors.New("save failed"),
		},
		expect: `hwnd=0x1234 wm=WM_COMMAND wparam=0x2a lparam=0x0 category=command mode=all key="menu id=42" invoked=2 result="not handled" msg="dispatch failed" err="save failed"`,
	}, {
		name:   "timed",
		timing: true,
		d: events.Dispatch{
			Msg:      eventstest.Timer(7),
			Category: events.CategoryTimer,
			Mode:     events.LastWins,
			Key:      events.TimerKey(7),
			Result:   events.NotHandled,
			Start:    eventstest.InitialTime,
			Elapsed:  3 * time.Millisecond,
		},
		expect: `time="2020/03/05 14:27:48" hwnd=0x0 wm=WM_TIMER wparam=0x7 lparam=0x0 category=timer mode=last key="timer=7" invoked=0 result="not handled" elapsed=3ms msg=dispatched`,
	}, {
		name: "timing off",
		d: events.Dispatch{
			Msg:      msg.WndMsg{MsgID: co.WM_PAINT},
			Category: events.CategoryMsg,
			Mode:     events.RunAll,
			Key:      co.WM_PAINT,
			Invoked:  2,
			Result:   events.HandledOk,
			Start:    eventstest.InitialTime,
			Elapsed:  3 * time.Millisecond,
		},
		expect: `hwnd=0x0 wm=WM_PAINT wparam=0x0 lparam=0x0 category=msg mode=all key=WM_PAINT invoked=2 result=handled msg=dispatched`,
	}} {
		t.Run(test.name, func(t *testing.T) {
			buf := &strings.Builder{}
			o := logfmt.New(buf)
			o.Timing = test.timing
			o.Dispatched(test.d)
			if err := o.Err(); err != nil {
				t.Fatal(err)
			}
			got := strings.TrimSuffix(buf.String(), "\n")
			if got != test.expect {
				t.Errorf("got:\n%s\nexpect:\n%s", got, test.expect)
			}
		})
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	w := &failWriter{}
	o := logfmt.New(w)
	d := events.Dispatch{Msg: msg.WndMsg{MsgID: co.WM_CLOSE}, Key: co.WM_CLOSE}
	o.Dispatched(d)
	o.Dispatched(d)
	if o.Err() == nil {
		t.Fatal("got nil error")
	}
	if w.n != 1 {
		t.Errorf("%d writes after an error, want 1 in total", w.n)
	}
}
