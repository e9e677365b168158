// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logrus_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	elogrus "github.com/wmdispatch/wmdispatch/adapter/logrus"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/events/eventstest"
	"github.com/wmdispatch/wmdispatch/msg/wm"
)

var wmClose = wm.Close{}.AsGenericWm()

func TestObserver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ev := events.New(&events.Options{
		Observer: elogrus.New(logger),
		Now:      eventstest.Clock(time.Millisecond),
	})
	errClose := errors.New("close refused")
	ev.WmClose(func() error { return errClose })

	ev.ProcessLastMessage(0x10, eventstest.Timer(3))
	ev.ProcessLastMessage(0x10, wmClose)

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if got := entries[0]; got.Level != logrus.DebugLevel || got.Message != "dispatched" {
		t.Errorf("entry 0: got %v %q", got.Level, got.Message)
	}
	want := logrus.Fields{
		"hwnd":     "0x10",
		"wm":       "WM_CLOSE",
		"wparam":   "0x0",
		"lparam":   "0x0",
		"category": "msg",
		"mode":     "last",
		"key":      "WM_CLOSE",
		"invoked":  1,
		"result":   "not handled",
		"elapsed":  time.Millisecond,
		"error":    errClose,
	}
	got := entries[1]
	if got.Level != logrus.ErrorLevel || got.Message != "dispatch failed" {
		t.Errorf("entry 1: got %v %q", got.Level, got.Message)
	}
	if diff := cmp.Diff(want, got.Data, cmp.Comparer(func(x, y error) bool { return x == y })); diff != "" {
		t.Errorf("fields mismatch (-want, +got):\n%s", diff)
	}
}
