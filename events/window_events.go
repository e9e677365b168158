// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"iter"
	"time"

	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/internal/funcstore"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

// A Handler processes one raw message. Handlers registered through the
// typed Wm* methods decode the triple themselves.
type Handler func(p msg.WndMsg) (WmRet, error)

// Options configures a WindowEvents. A nil *Options is valid and means
// an ordinary window with no observer.
type Options struct {
	// Dialog selects WM_INITDIALOG as the creation message instead of
	// WM_CREATE, and dialog reply conventions in Reply.
	Dialog bool

	// Observer, if set, receives one Dispatch record per dispatch call.
	Observer Observer

	// Now is the clock used to time dispatches for the Observer.
	// It defaults to time.Now.
	Now func() time.Time
}

// WindowEvents holds the message handlers of one window.
//
// A WindowEvents must only be used by the goroutine, locked to its OS
// thread, that runs the window's message loop; it does no locking. A
// handler may register further handlers while it runs, and they take part
// in later dispatches only. wnd.Base checks the thread on every call.
type WindowEvents struct {
	dialog     bool
	creationID co.WM
	observer   Observer
	now        func() time.Time

	msgs     funcstore.FuncStore[co.WM, Handler]
	creation funcstore.FuncStore[co.WM, Handler]
	cmds     funcstore.FuncStore[CmdKey, Handler]
	nfys     funcstore.FuncStore[NfyKey, Handler]
	tmrs     funcstore.FuncStore[TimerKey, Handler]
}

// New returns an empty WindowEvents.
func New(opts *Options) *WindowEvents {
	e := &WindowEvents{creationID: co.WM_CREATE, now: time.Now}
	if opts == nil {
		return e
	}
	if opts.Dialog {
		e.dialog = true
		e.creationID = co.WM_INITDIALOG
	}
	e.observer = opts.Observer
	if opts.Now != nil {
		e.now = opts.Now
	}
	return e
}

// IsDialog reports whether e was created for a dialog.
func (e *WindowEvents) IsDialog() bool { return e.dialog }

// CreationID returns the message id of the creation registry.
func (e *WindowEvents) CreationID() co.WM { return e.creationID }

// IsEmpty reports whether no handler is registered.
func (e *WindowEvents) IsEmpty() bool {
	return e.msgs.IsEmpty() && e.creation.IsEmpty() && e.cmds.IsEmpty() &&
		e.nfys.IsEmpty() && e.tmrs.IsEmpty()
}

// Len returns the number of registered handlers.
func (e *WindowEvents) Len() int {
	return e.msgs.Len() + e.creation.Len() + e.cmds.Len() + e.nfys.Len() + e.tmrs.Len()
}

// Clear removes every handler. A dispatch in progress stops after the
// running handler returns.
func (e *WindowEvents) Clear() {
	e.msgs.Clear()
	e.creation.Clear()
	e.cmds.Clear()
	e.nfys.Clear()
	e.tmrs.Clear()
}

// Classify returns the registry that handles messages with the given id.
func (e *WindowEvents) Classify(id co.WM) Category {
	switch id {
	case co.WM_COMMAND:
		return CategoryCommand
	case co.WM_NOTIFY:
		return CategoryNotify
	case co.WM_TIMER:
		return CategoryTimer
	case e.creationID:
		return CategoryCreation
	}
	return CategoryMsg
}

// lookup classifies p, decodes its key and returns the matching handlers,
// most recent first if rev is set.
func (e *WindowEvents) lookup(p msg.WndMsg, rev bool) (Category, fmt.Stringer, iter.Seq[Handler]) {
	cat := e.Classify(p.MsgID)
	switch cat {
	case CategoryCommand:
		c := msg.Decode[wm.Command](p)
		k := CmdKey{Code: c.Code, CtrlID: c.CtrlID}
		return cat, k, pick(&e.cmds, k, rev)
	case CategoryNotify:
		n := msg.Decode[wm.Notify](p)
		k := NfyKey{IDFrom: n.Hdr.IDFrom(), Code: n.Code()}
		return cat, k, pick(&e.nfys, k, rev)
	case CategoryTimer:
		k := TimerKey(msg.Decode[wm.Timer](p).ID)
		return cat, k, pick(&e.tmrs, k, rev)
	case CategoryCreation:
		return cat, p.MsgID, pick(&e.creation, p.MsgID, rev)
	}
	return cat, p.MsgID, pick(&e.msgs, p.MsgID, rev)
}

func pick[K comparable](s *funcstore.FuncStore[K, Handler], k K, rev bool) iter.Seq[Handler] {
	if rev {
		return s.FilterRev(k)
	}
	return s.Filter(k)
}

// ProcessLastMessage runs the handlers registered for p, most recently
// registered first, until one of them handles it, and returns that
// handler's result. It returns NotHandled if there is no such handler.
//
// A handler error stops the dispatch and is returned unchanged.
func (e *WindowEvents) ProcessLastMessage(hwnd win.HWND, p msg.WndMsg) (WmRet, error) {
	var start time.Time
	if e.observer != nil {
		start = e.now()
	}
	cat, key, seq := e.lookup(p, true)
	ret, n := NotHandled, 0
	var err error
	for fn := range seq {
		n++
		if ret, err = fn(p); err != nil {
			ret = NotHandled
			break
		}
		if ret.Handled() {
			break
		}
	}
	if e.observer != nil {
		e.observe(hwnd, p, cat, LastWins, key, n, ret, err, start)
	}
	return ret, err
}

// ProcessAllMessages runs every handler registered for p in registration
// order and reports whether at least one of them handled it. Individual
// reply values are discarded.
//
// A handler error stops the dispatch: later handlers are not run, and the
// error is returned unchanged with false.
func (e *WindowEvents) ProcessAllMessages(hwnd win.HWND, p msg.WndMsg) (bool, error) {
	var start time.Time
	if e.observer != nil {
		start = e.now()
	}
	cat, key, seq := e.lookup(p, false)
	handled, n := false, 0
	var err error
	for fn := range seq {
		n++
		var ret WmRet
		if ret, err = fn(p); err != nil {
			handled = false
			break
		}
		handled = handled || ret.Handled()
	}
	if e.observer != nil {
		ret := NotHandled
		if handled {
			ret = HandledOk
		}
		e.observe(hwnd, p, cat, RunAll, key, n, ret, err, start)
	}
	return handled, err
}

func (e *WindowEvents) observe(hwnd win.HWND, p msg.WndMsg, cat Category, mode Mode, key fmt.Stringer, n int, ret WmRet, err error, start time.Time) {
	e.observer.Dispatched(Dispatch{
		Hwnd:     hwnd,
		Msg:      p,
		Category: cat,
		Mode:     mode,
		Key:      key,
		Invoked:  n,
		Result:   ret,
		Err:      err,
		Start:    start,
		Elapsed:  e.now().Sub(start),
	})
}
