// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slog logs dispatches to a log/slog Logger.
package slog

import (
	"context"
	"log/slog"

	"github.com/wmdispatch/wmdispatch/events"
)

type observer struct {
	l *slog.Logger
}

// New returns an Observer that logs successful dispatches at
// slog.LevelDebug and failed ones at slog.LevelError. A nil l means
// slog.Default().
func New(l *slog.Logger) events.Observer {
	if l == nil {
		l = slog.Default()
	}
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	ctx := context.Background()
	level := slog.LevelDebug
	if d.Err != nil {
		level = slog.LevelError
	}
	if !o.l.Enabled(ctx, level) {
		return
	}
	kv := d.KeyValues()
	attrs := make([]slog.Attr, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		attrs = append(attrs, slog.Any(kv[i].(string), kv[i+1]))
	}
	if d.Err != nil {
		attrs = append(attrs, slog.Any("err", d.Err))
	}
	o.l.LogAttrs(ctx, level, d.Message(), attrs...)
}
