// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap logs dispatches to a zap.Logger.
package zap

import (
	"time"

	"github.com/wmdispatch/wmdispatch/events"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type observer struct {
	l *zap.Logger
}

// New returns an Observer that logs successful dispatches at debug level
// and failed ones at error level.
func New(l *zap.Logger) events.Observer {
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	level := zapcore.DebugLevel
	if d.Err != nil {
		level = zapcore.ErrorLevel
	}
	ce := o.l.Check(level, d.Message())
	if ce == nil {
		return
	}
	kv := d.KeyValues()
	fields := make([]zap.Field, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		fields = append(fields, newField(kv[i].(string), kv[i+1]))
	}
	if d.Err != nil {
		fields = append(fields, zap.Error(d.Err))
	}
	ce.Write(fields...)
}

func newField(k string, v any) zap.Field {
	switch v := v.(type) {
	case string:
		return zap.String(k, v)
	case int:
		return zap.Int(k, v)
	case time.Duration:
		return zap.Duration(k, v)
	}
	return zap.Any(k, v)
}
