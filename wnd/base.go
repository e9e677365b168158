// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wnd

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/win"
	"golang.org/x/xerrors"
)

// Options configures a Base. A nil *Options is valid and means an
// ordinary window using the system window functions.
type Options struct {
	// Dialog selects dialog procedure conventions.
	Dialog bool

	// Logger receives handler errors swallowed by WndProc.
	// The zero Logger discards them.
	Logger logr.Logger

	// Observer and Now are passed to every layer; see events.Options.
	Observer events.Observer
	Now      func() time.Time

	// DefProc computes the reply of a message no handler processed in an
	// ordinary window. It defaults to win.DefWindowProc.
	DefProc func(hwnd win.HWND, p msg.WndMsg) uintptr

	// SetMsgResult stores a dialog reply that cannot travel as the return
	// value of the dialog procedure. It defaults to setting the
	// DWLP_MSGRESULT window long.
	SetMsgResult func(hwnd win.HWND, v uintptr) error

	// PostQuit is called with exit code 1 when WndProc swallows an error.
	// It defaults to win.PostQuitMessage.
	PostQuit func(code int32)

	// ThreadID identifies the calling OS thread. It defaults to
	// win.CurrentThreadID.
	ThreadID func() uint32

	// NewCallback converts WndProc into a callback pointer. It is called at
	// most once per Base and defaults to win.NewWndProcCallback.
	NewCallback func(fn func(hwnd win.HWND, id uint32, wParam, lParam uintptr) uintptr) uintptr
}

type state uint8

const (
	detached state = iota // no window yet
	attached
	destroyed // WM_NCDESTROY seen
)

// Base routes the messages of one window through three handler layers.
type Base struct {
	dialog   bool
	attachID co.WM
	hwnd     win.HWND
	state    state
	err      error

	before, user, after *events.WindowEvents

	logger       logr.Logger
	defProc      func(win.HWND, msg.WndMsg) uintptr
	setMsgResult func(win.HWND, uintptr) error
	postQuit     func(int32)
	threadID     func() uint32
	tid          uint32
	newCallback  func(func(win.HWND, uint32, uintptr, uintptr) uintptr) uintptr
	callback     uintptr
}

// New returns a Base with empty layers, bound to the calling OS thread.
func New(opts *Options) *Base {
	if opts == nil {
		opts = &Options{}
	}
	eo := &events.Options{Dialog: opts.Dialog, Observer: opts.Observer, Now: opts.Now}
	b := &Base{
		dialog:       opts.Dialog,
		attachID:     co.WM_NCCREATE,
		before:       events.New(eo),
		user:         events.New(eo),
		after:        events.New(eo),
		logger:       opts.Logger,
		defProc:      opts.DefProc,
		setMsgResult: opts.SetMsgResult,
		postQuit:     opts.PostQuit,
		threadID:     opts.ThreadID,
		newCallback:  opts.NewCallback,
	}
	if b.dialog {
		b.attachID = co.WM_INITDIALOG
	}
	if b.logger.GetSink() == nil {
		b.logger = logr.Discard()
	}
	if b.defProc == nil {
		b.defProc = func(hwnd win.HWND, p msg.WndMsg) uintptr {
			return win.DefWindowProc(hwnd, uint32(p.MsgID), p.WParam, p.LParam)
		}
	}
	if b.setMsgResult == nil {
		b.setMsgResult = func(hwnd win.HWND, v uintptr) error {
			_, err := win.SetWindowLongPtr(hwnd, win.DWLP_MSGRESULT, v)
			return err
		}
	}
	if b.postQuit == nil {
		b.postQuit = win.PostQuitMessage
	}
	if b.threadID == nil {
		b.threadID = win.CurrentThreadID
	}
	if b.newCallback == nil {
		b.newCallback = win.NewWndProcCallback
	}
	b.tid = b.threadID()
	return b
}

// Hwnd returns the window handle, or 0 before the window is attached and
// after it is destroyed.
func (b *Base) Hwnd() win.HWND { return b.hwnd }

// Err returns the first handler error swallowed by WndProc.
func (b *Base) Err() error { return b.err }

// On returns the user handlers.
func (b *Base) On() *events.WindowEvents { return b.layer(b.user) }

// BeforeUserOn returns the handlers run before the user handlers.
func (b *Base) BeforeUserOn() *events.WindowEvents { return b.layer(b.before) }

// AfterUserOn returns the handlers run after the user handlers.
func (b *Base) AfterUserOn() *events.WindowEvents { return b.layer(b.after) }

func (b *Base) layer(e *events.WindowEvents) *events.WindowEvents {
	b.checkThread()
	if b.state != detached {
		panic("wnd: cannot add handlers after the window is created")
	}
	return e
}

func (b *Base) checkThread() {
	if tid := b.threadID(); tid != b.tid {
		panic(fmt.Sprintf("wnd: called on thread %d, window belongs to thread %d", tid, b.tid))
	}
}

// Process dispatches p through the three layers and returns the reply of
// the window or dialog procedure. Handler errors are returned unchanged;
// the reply is then 0.
func (b *Base) Process(hwnd win.HWND, p msg.WndMsg) (uintptr, error) {
	b.checkThread()
	switch b.state {
	case detached:
		if p.MsgID != b.attachID {
			return b.unprocessed(hwnd, p), nil
		}
		b.hwnd, b.state = hwnd, attached
	case destroyed:
		return b.unprocessed(hwnd, p), nil
	}
	if p.MsgID == co.WM_NCDESTROY {
		defer b.destroy()
	}

	ranBefore, err := b.before.ProcessAllMessages(hwnd, p)
	if err != nil {
		return 0, err
	}
	ret, err := b.user.ProcessLastMessage(hwnd, p)
	if err != nil {
		return 0, err
	}
	ranAfter, err := b.after.ProcessAllMessages(hwnd, p)
	if err != nil {
		return 0, err
	}

	if b.dialog {
		return b.dialogReply(hwnd, p, ret, ranBefore || ranAfter)
	}
	if !ret.Handled() && (ranBefore || ranAfter) {
		return 0, nil
	}
	return ret.Reply(false, func() uintptr { return b.defProc(hwnd, p) }), nil
}

func (b *Base) dialogReply(hwnd win.HWND, p msg.WndMsg, ret events.WmRet, ran bool) (uintptr, error) {
	if !ret.Handled() {
		if ran {
			return 1, nil
		}
		return 0, nil
	}
	v := ret.Reply(true, nil)
	switch p.MsgID {
	case co.WM_GETDLGCODE, co.WM_SETCURSOR:
		if err := b.setMsgResult(hwnd, v); err != nil {
			return 0, xerrors.Errorf("wnd: %v reply: %w", p.MsgID, err)
		}
		return 1, nil
	}
	return v, nil
}

func (b *Base) unprocessed(hwnd win.HWND, p msg.WndMsg) uintptr {
	if b.dialog {
		return 0
	}
	return b.defProc(hwnd, p)
}

func (b *Base) destroy() {
	b.before.Clear()
	b.user.Clear()
	b.after.Clear()
	b.hwnd, b.state = 0, destroyed
}

// WndProc has the shape of a window procedure. A handler error is logged,
// remembered for Err if it is the first, and ends the message loop by
// posting WM_QUIT; the reply is then 0, or TRUE for a dialog.
func (b *Base) WndProc(hwnd win.HWND, id uint32, wParam, lParam uintptr) uintptr {
	p := msg.WndMsg{MsgID: co.WM(id), WParam: wParam, LParam: lParam}
	ret, err := b.Process(hwnd, p)
	if err != nil {
		b.logger.Error(err, "message handler failed", "hwnd", uintptr(hwnd), "wm", p.String())
		if b.err == nil {
			b.err = err
		}
		b.postQuit(1)
		if b.dialog {
			return 1
		}
		return 0
	}
	return ret
}

// Callback returns a pointer to WndProc usable as a WNDPROC or DLGPROC.
// The pointer is created on first use and reused; callback slots are never
// released.
func (b *Base) Callback() uintptr {
	if b.callback == 0 {
		b.callback = b.newCallback(b.WndProc)
	}
	return b.callback
}
