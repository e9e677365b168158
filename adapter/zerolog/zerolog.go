// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog logs dispatches to a zerolog.Logger.
package zerolog

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/wmdispatch/wmdispatch/events"
)

type observer struct {
	l zerolog.Logger
}

// New returns an Observer that logs successful dispatches at debug level
// and failed ones at error level.
func New(l zerolog.Logger) events.Observer {
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	e := o.l.Debug()
	if d.Err != nil {
		e = o.l.Error().Err(d.Err)
	}
	if e == nil {
		return
	}
	kv := d.KeyValues()
	for i := 0; i < len(kv); i += 2 {
		k := kv[i].(string)
		switch v := kv[i+1].(type) {
		case string:
			e.Str(k, v)
		case int:
			e.Int(k, v)
		case time.Duration:
			e.Dur(k, v)
		default:
			e.Interface(k, v)
		}
	}
	e.Msg(d.Message())
}
