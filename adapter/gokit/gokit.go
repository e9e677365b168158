// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit logs dispatches to a go-kit logger.
package gokit

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/wmdispatch/wmdispatch/events"
)

type observer struct {
	l log.Logger
}

// New returns an Observer that logs successful dispatches at debug level
// and failed ones at error level. Errors returned by l are ignored.
func New(l log.Logger) events.Observer {
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	kv := append(d.KeyValues(), "msg", d.Message())
	if d.Err != nil {
		level.Error(o.l).Log(append(kv, "err", d.Err)...)
		return
	}
	level.Debug(o.l).Log(kv...)
}
