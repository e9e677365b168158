// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wnd_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/events/eventstest"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
	"github.com/wmdispatch/wmdispatch/wnd"
)

const (
	hwnd     win.HWND = 0x1234
	defReply uintptr  = 0x99
)

var (
	ncCreate   = msg.WndMsg{MsgID: co.WM_NCCREATE}
	initDialog = msg.WndMsg{MsgID: co.WM_INITDIALOG}
	size       = wm.Size{Request: co.SIZE_RESTORED}.AsGenericWm()
)

// fake records the calls a Base makes to the system.
type fake struct {
	defProc   []co.WM
	msgResult []uintptr
	quit      []int32
	tid       uint32
}

func (f *fake) options(dialog bool) *wnd.Options {
	return &wnd.Options{
		Dialog: dialog,
		DefProc: func(_ win.HWND, p msg.WndMsg) uintptr {
			f.defProc = append(f.defProc, p.MsgID)
			return defReply
		},
		SetMsgResult: func(_ win.HWND, v uintptr) error {
			f.msgResult = append(f.msgResult, v)
			return nil
		},
		PostQuit: func(code int32) { f.quit = append(f.quit, code) },
		ThreadID: func() uint32 { return f.tid },
	}
}

func process(t *testing.T, b *wnd.Base, p msg.WndMsg) uintptr {
	t.Helper()
	got, err := b.Process(hwnd, p)
	if err != nil {
		t.Fatalf("Process(%v): %v", p, err)
	}
	return got
}

func record(calls *[]string, name string, ret events.WmRet) events.Handler {
	return func(msg.WndMsg) (events.WmRet, error) {
		*calls = append(*calls, name)
		return ret, nil
	}
}

func TestLayerOrder(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	var calls []string
	b.AfterUserOn().Wm(co.WM_SIZE, record(&calls, "after", events.HandledOk))
	b.On().Wm(co.WM_SIZE, record(&calls, "user1", events.HandledWithRet(1)))
	b.On().Wm(co.WM_SIZE, record(&calls, "user2", events.HandledWithRet(2)))
	b.BeforeUserOn().Wm(co.WM_SIZE, record(&calls, "before1", events.HandledOk))
	b.BeforeUserOn().Wm(co.WM_SIZE, record(&calls, "before2", events.NotHandled))

	process(t, b, ncCreate)
	if got := process(t, b, size); got != 2 {
		t.Errorf("reply = %d, want 2", got)
	}
	want := []string{"before1", "before2", "user2", "after"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("calls mismatch (-want, +got):\n%s", diff)
	}
	if b.Hwnd() != hwnd {
		t.Errorf("Hwnd() = %#x, want %#x", b.Hwnd(), hwnd)
	}
}

func TestWindowReplies(t *testing.T) {
	for _, test := range []struct {
		name   string
		before events.WmRet // NotHandled means no handler
		user   *events.WmRet
		want   uintptr
		def    bool
	}{
		{name: "no handler", want: defReply, def: true},
		{name: "user declines", user: &events.NotHandled, want: defReply, def: true},
		{name: "user ok", user: &events.HandledOk, want: 0},
		{name: "user value", user: ptr(events.HandledWithRet(5)), want: 5},
		{name: "before only", before: events.HandledOk, want: 0},
		{name: "before and user value", before: events.HandledOk, user: ptr(events.HandledWithRet(5)), want: 5},
	} {
		t.Run(test.name, func(t *testing.T) {
			var f fake
			b := wnd.New(f.options(false))
			var calls []string
			if test.before.Handled() {
				b.BeforeUserOn().Wm(co.WM_SIZE, record(&calls, "before", test.before))
			}
			if test.user != nil {
				b.On().Wm(co.WM_SIZE, record(&calls, "user", *test.user))
			}
			process(t, b, ncCreate)
			f.defProc = nil
			if got := process(t, b, size); got != test.want {
				t.Errorf("reply = %#x, want %#x", got, test.want)
			}
			if got := len(f.defProc) == 1; got != test.def {
				t.Errorf("default procedure called: %t, want %t", got, test.def)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestDialogReplies(t *testing.T) {
	for _, test := range []struct {
		name          string
		p             msg.WndMsg
		before        bool
		user          *events.WmRet
		want          uintptr
		wantMsgResult []uintptr
	}{
		{name: "no handler", p: size, want: 0},
		{name: "before only", p: size, before: true, want: 1},
		{name: "user ok", p: size, user: &events.HandledOk, want: 1},
		{name: "user value", p: size, user: ptr(events.HandledWithRet(5)), want: 5},
		{
			name:          "get dlg code",
			p:             msg.WndMsg{MsgID: co.WM_GETDLGCODE},
			user:          ptr(events.HandledWithRet(uintptr(co.DLGC_WANTALLKEYS))),
			want:          1,
			wantMsgResult: []uintptr{uintptr(co.DLGC_WANTALLKEYS)},
		},
		{
			name:          "set cursor",
			p:             msg.WndMsg{MsgID: co.WM_SETCURSOR},
			user:          ptr(events.HandledWithRet(1)),
			want:          1,
			wantMsgResult: []uintptr{1},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var f fake
			b := wnd.New(f.options(true))
			var calls []string
			if test.before {
				b.BeforeUserOn().Wm(test.p.MsgID, record(&calls, "before", events.HandledOk))
			}
			if test.user != nil {
				b.On().Wm(test.p.MsgID, record(&calls, "user", *test.user))
			}
			process(t, b, initDialog)
			if got := process(t, b, test.p); got != test.want {
				t.Errorf("reply = %#x, want %#x", got, test.want)
			}
			if diff := cmp.Diff(test.wantMsgResult, f.msgResult); diff != "" {
				t.Errorf("message results mismatch (-want, +got):\n%s", diff)
			}
			if len(f.defProc) != 0 {
				t.Errorf("default procedure called for %v in a dialog", f.defProc)
			}
		})
	}
}

func TestBeforeAttach(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	called := false
	b.On().Wm(co.WM_GETMINMAXINFO, func(msg.WndMsg) (events.WmRet, error) {
		called = true
		return events.HandledOk, nil
	})
	// WM_GETMINMAXINFO precedes WM_NCCREATE.
	if got := process(t, b, msg.WndMsg{MsgID: co.WM_GETMINMAXINFO}); got != defReply {
		t.Errorf("reply = %#x, want %#x", got, defReply)
	}
	if called {
		t.Error("handler called before the window was attached")
	}
	if b.Hwnd() != 0 {
		t.Errorf("Hwnd() = %#x before attach", b.Hwnd())
	}
	// Still open for registration.
	b.On().WmClose(func() error { return nil })
}

func TestSealed(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	process(t, b, ncCreate)
	for name, layer := range map[string]func() *events.WindowEvents{
		"On":           b.On,
		"BeforeUserOn": b.BeforeUserOn,
		"AfterUserOn":  b.AfterUserOn,
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic after attach", name)
				}
			}()
			layer()
		}()
	}
}

func TestNcDestroy(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	var calls []string
	b.On().Wm(co.WM_NCDESTROY, record(&calls, "ncdestroy", events.HandledOk))
	b.AfterUserOn().Wm(co.WM_NCDESTROY, record(&calls, "after", events.HandledOk))
	b.On().Wm(co.WM_SIZE, record(&calls, "size", events.HandledOk))

	process(t, b, ncCreate)
	process(t, b, msg.WndMsg{MsgID: co.WM_NCDESTROY})
	if b.Hwnd() != 0 {
		t.Errorf("Hwnd() = %#x after WM_NCDESTROY", b.Hwnd())
	}
	f.defProc = nil
	if got := process(t, b, size); got != defReply {
		t.Errorf("reply after destroy = %#x, want %#x", got, defReply)
	}
	if diff := cmp.Diff([]string{"ncdestroy", "after"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]co.WM{co.WM_SIZE}, f.defProc); diff != "" {
		t.Errorf("default procedure mismatch (-want, +got):\n%s", diff)
	}
}

func TestNcDestroyError(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	called := false
	b.On().WmNcDestroy(func() error { return errors.New("boom") })
	b.On().WmSize(func(wm.Size) error {
		called = true
		return nil
	})
	process(t, b, ncCreate)
	if _, err := b.Process(hwnd, msg.WndMsg{MsgID: co.WM_NCDESTROY}); err == nil {
		t.Fatal("got nil error")
	}
	process(t, b, size)
	if called {
		t.Error("handlers survived a failed WM_NCDESTROY")
	}
}

func TestProcessError(t *testing.T) {
	errBefore := errors.New("before failed")
	var f fake
	b := wnd.New(f.options(false))
	userCalled := false
	b.BeforeUserOn().WmSize(func(wm.Size) error { return errBefore })
	b.On().WmSize(func(wm.Size) error {
		userCalled = true
		return nil
	})
	process(t, b, ncCreate)
	got, err := b.Process(hwnd, size)
	if err != errBefore {
		t.Errorf("err = %v, want %v", err, errBefore)
	}
	if got != 0 {
		t.Errorf("reply = %#x, want 0", got)
	}
	if userCalled {
		t.Error("user handler ran after a before-user error")
	}
}

func TestWndProcError(t *testing.T) {
	var logged []string
	var f fake
	opts := f.options(false)
	opts.Logger = funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})
	b := wnd.New(opts)
	errFirst := errors.New("first failure")
	errSecond := errors.New("second failure")
	b.On().WmClose(func() error { return errFirst })
	b.On().WmDestroy(func() error { return errSecond })

	if got := b.WndProc(hwnd, uint32(co.WM_NCCREATE), 0, 0); got != defReply {
		t.Errorf("WM_NCCREATE reply = %#x, want %#x", got, defReply)
	}
	if got := b.WndProc(hwnd, uint32(co.WM_CLOSE), 0, 0); got != 0 {
		t.Errorf("WM_CLOSE reply = %#x, want 0", got)
	}
	b.WndProc(hwnd, uint32(co.WM_DESTROY), 0, 0)

	if b.Err() != errFirst {
		t.Errorf("Err() = %v, want %v", b.Err(), errFirst)
	}
	if diff := cmp.Diff([]int32{1, 1}, f.quit); diff != "" {
		t.Errorf("quit codes mismatch (-want, +got):\n%s", diff)
	}
	if len(logged) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(logged), logged)
	}
	for i, want := range []string{"first failure", "second failure"} {
		if !strings.Contains(logged[i], want) || !strings.Contains(logged[i], "WM_") {
			t.Errorf("log line %d = %q, want error %q and message name", i, logged[i], want)
		}
	}
}

func TestDialogWndProcError(t *testing.T) {
	var f fake
	b := wnd.New(f.options(true))
	b.On().WmClose(func() error { return errors.New("close refused") })

	b.WndProc(hwnd, uint32(co.WM_INITDIALOG), 0, 0)
	if got := b.WndProc(hwnd, uint32(co.WM_CLOSE), 0, 0); got != 1 {
		t.Errorf("WM_CLOSE reply = %#x, want 1", got)
	}
	if diff := cmp.Diff([]int32{1}, f.quit); diff != "" {
		t.Errorf("quit codes mismatch (-want, +got):\n%s", diff)
	}
}

func TestCallbackCreatedOnce(t *testing.T) {
	var f fake
	opts := f.options(false)
	created := 0
	opts.NewCallback = func(func(win.HWND, uint32, uintptr, uintptr) uintptr) uintptr {
		created++
		return 0x4000 + uintptr(created)
	}
	b := wnd.New(opts)
	first := b.Callback()
	if second := b.Callback(); second != first {
		t.Errorf("second Callback() = %#x, want %#x", second, first)
	}
	if created != 1 {
		t.Errorf("callback created %d times, want 1", created)
	}
}

func TestWndProcDiscardsLogsByDefault(t *testing.T) {
	var f fake
	b := wnd.New(f.options(false))
	b.On().WmClose(func() error { return errors.New("boom") })
	b.WndProc(hwnd, uint32(co.WM_NCCREATE), 0, 0)
	b.WndProc(hwnd, uint32(co.WM_CLOSE), 0, 0)
	if b.Err() == nil {
		t.Error("Err() = nil after a failing handler")
	}
}

func TestThreadAffinity(t *testing.T) {
	f := fake{tid: 1}
	b := wnd.New(f.options(false))
	b.On().WmClose(func() error { return nil })
	f.tid = 2
	for name, call := range map[string]func(){
		"On":      func() { b.On() },
		"Process": func() { b.Process(hwnd, ncCreate) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on another thread did not panic", name)
				}
			}()
			call()
		}()
	}
}

func TestObserverSeesEveryLayer(t *testing.T) {
	var f fake
	var rec eventstest.Recorder
	opts := f.options(false)
	opts.Observer = &rec
	b := wnd.New(opts)
	b.BeforeUserOn().WmSize(func(wm.Size) error { return nil })
	b.On().WmSize(func(wm.Size) error { return nil })
	process(t, b, ncCreate)
	rec.Dispatches = nil
	process(t, b, size)

	var modes []events.Mode
	for _, d := range rec.Dispatches {
		modes = append(modes, d.Mode)
	}
	want := []events.Mode{events.RunAll, events.LastWins, events.RunAll}
	if diff := cmp.Diff(want, modes); diff != "" {
		t.Errorf("dispatch modes mismatch (-want, +got):\n%s", diff)
	}
}
