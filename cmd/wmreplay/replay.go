// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	golog "github.com/go-logfmt/logfmt"
	"github.com/wmdispatch/wmdispatch/adapter/logfmt"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
	"golang.org/x/xerrors"
)

// hwnd is the window handle reported for every dispatch.
const hwnd win.HWND = 0x1

// now is the dispatch clock; tests replace it.
var now = time.Now

type replayer struct {
	s      *script
	mode   events.Mode
	dialog bool
	ev     *events.WindowEvents
	out    *golog.Encoder
	log    *logfmt.Observer
	outErr error
	pin    runtime.Pinner
}

func newReplayer(w io.Writer, s *script, mode events.Mode, dialog, timing bool) *replayer {
	r := &replayer{
		s:      s,
		mode:   mode,
		dialog: dialog || s.Dialog,
		out:    golog.NewEncoder(w),
		log:    logfmt.New(w),
	}
	r.log.Timing = timing
	r.ev = events.New(&events.Options{Dialog: r.dialog, Observer: r.log, Now: now})
	for _, h := range s.Handlers {
		r.register(h)
	}
	return r
}

// handler returns the raw form of h: it prints a call line and replies as
// h says.
func (r *replayer) handler(h *handlerSpec) events.Handler {
	return func(msg.WndMsg) (events.WmRet, error) {
		r.line("call", h.Name)
		switch h.Reply.kind {
		case replyPass:
			return events.NotHandled, nil
		case replyValue:
			return events.HandledWithRet(h.Reply.value), nil
		case replyError:
			return events.NotHandled, xerrors.New(h.Error)
		}
		return events.HandledOk, nil
	}
}

// simple returns h for registration methods whose handlers can only
// succeed or fail.
func (r *replayer) simple(h *handlerSpec) func() error {
	raw := r.handler(h)
	return func() error {
		_, err := raw(msg.WndMsg{})
		return err
	}
}

func (r *replayer) register(h *handlerSpec) {
	switch {
	case h.WM != nil:
		r.ev.Wm(co.WM(*h.WM), r.handler(h))
	case h.Command != nil:
		r.ev.WmCommandRaw(co.CMD(h.Command.Code), h.Command.ID, r.handler(h))
	case h.Notify != nil:
		raw := r.handler(h)
		r.ev.WmNotify(h.Notify.ID, co.NM(h.Notify.Code), func(p wm.Notify) (events.WmRet, error) {
			return raw(p.AsGenericWm())
		})
	case h.Timer != nil:
		r.ev.WmTimer(uintptr(*h.Timer), r.simple(h))
	case h.AccelMenu != nil:
		r.ev.WmCommandAccelMenu(*h.AccelMenu, r.simple(h))
	case h.Creation:
		r.ev.WmCreateOrInitDialog(r.simple(h))
	}
}

// triple builds the message m describes. Notification headers are pinned
// until run returns.
func (r *replayer) triple(m *messageSpec) msg.WndMsg {
	switch {
	case m.Command != nil:
		return wm.Command{Code: co.CMD(m.Command.Code), CtrlID: m.Command.ID}.AsGenericWm()
	case m.Notify != nil:
		hdr := &win.NMHDR{HwndFrom: hwnd, IdFrom: uintptr(m.Notify.ID), Code: uint32(m.Notify.Code)}
		r.pin.Pin(hdr)
		return wm.Notify{Hdr: hdr}.AsGenericWm()
	case m.Timer != nil:
		return wm.Timer{ID: uintptr(*m.Timer)}.AsGenericWm()
	}
	return msg.WndMsg{MsgID: co.WM(*m.WM), WParam: uintptr(m.WParam), LParam: uintptr(m.LParam)}
}

// run dispatches every message. Handler errors are printed, not returned.
func (r *replayer) run() error {
	defer r.pin.Unpin()
	for _, m := range r.s.Messages {
		p := r.triple(m)
		if r.mode == events.RunAll {
			handled, err := r.ev.ProcessAllMessages(hwnd, p)
			if err == nil {
				r.line("handled", handled)
			}
		} else {
			ret, err := r.ev.ProcessLastMessage(hwnd, p)
			if err == nil {
				r.reply(ret)
			}
		}
		if err := r.err(); err != nil {
			return err
		}
	}
	return nil
}

func (r *replayer) reply(ret events.WmRet) {
	if !ret.Handled() && !r.dialog {
		r.line("reply", "default")
		return
	}
	r.line("reply", fmt.Sprintf("%#x", ret.Reply(r.dialog, nil)))
}

// line writes one k=v record. The first write error is kept for err.
func (r *replayer) line(k string, v interface{}) {
	if r.outErr != nil {
		return
	}
	if r.outErr = r.out.EncodeKeyval(k, v); r.outErr == nil {
		r.outErr = r.out.EndRecord()
	}
}

func (r *replayer) err() error {
	err := r.outErr
	if err == nil {
		err = r.log.Err()
	}
	if err != nil {
		return xerrors.Errorf("writing output: %w", err)
	}
	return nil
}
