// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	eslog "github.com/wmdispatch/wmdispatch/adapter/slog"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/events/eventstest"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

func newLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func TestObserver(t *testing.T) {
	var buf bytes.Buffer
	ev := events.New(&events.Options{
		Observer: eslog.New(newLogger(&buf, slog.LevelDebug)),
		Now:      eventstest.Clock(time.Millisecond),
	})
	ev.WmSize(func(wm.Size) error { return errors.New("layout failed") })
	ev.ProcessLastMessage(0x1, wm.Size{ClientArea: win.SIZE{Cx: 100, Cy: 200}}.AsGenericWm())

	want := `level=ERROR msg="dispatch failed" hwnd=0x1 wm=WM_SIZE wparam=0x0 lparam=0xc80064 category=msg mode=last key=WM_SIZE invoked=1 result="not handled" elapsed=1ms err="layout failed"` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	o := eslog.New(newLogger(&buf, slog.LevelInfo))
	o.Dispatched(events.Dispatch{Key: co.WM_PAINT})
	if buf.Len() != 0 {
		t.Errorf("debug dispatch written at info level: %q", buf.String())
	}
}
