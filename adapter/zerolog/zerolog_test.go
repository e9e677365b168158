// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zerolog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	ezerolog "github.com/wmdispatch/wmdispatch/adapter/zerolog"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/events"
	"github.com/wmdispatch/wmdispatch/events/eventstest"
)

func TestObserver(t *testing.T) {
	var buf bytes.Buffer
	ev := events.New(&events.Options{
		Observer: ezerolog.New(zerolog.New(&buf)),
		Now:      eventstest.Clock(2 * time.Millisecond),
	})
	ev.WmCommandAccelMenu(5, func() error { return errors.New("no document") })
	ev.ProcessLastMessage(0xabc, eventstest.Command(co.CMD_ACCELERATOR, 5))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v: %q", err, buf.String())
	}
	want := map[string]interface{}{
		"level":    "error",
		"message":  "dispatch failed",
		"error":    "no document",
		"hwnd":     "0xabc",
		"wm":       "WM_COMMAND",
		"wparam":   "0x10005",
		"lparam":   "0x0",
		"category": "command",
		"mode":     "last",
		"key":      "accel id=5",
		"invoked":  float64(1),
		"result":   "not handled",
		"elapsed":  float64(2),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	o := ezerolog.New(zerolog.New(&buf).Level(zerolog.InfoLevel))
	o.Dispatched(events.Dispatch{Key: co.WM_PAINT})
	if buf.Len() != 0 {
		t.Errorf("debug dispatch written at info level: %q", buf.String())
	}
}
