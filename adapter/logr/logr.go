// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr logs dispatches to a logr.Logger.
package logr

import (
	"github.com/go-logr/logr"
	"github.com/wmdispatch/wmdispatch/events"
)

// DebugLevel is the verbosity of successful dispatches.
const DebugLevel = 1

type observer struct {
	l logr.Logger
}

// New returns an Observer that logs successful dispatches at verbosity
// DebugLevel and failed ones as errors.
func New(l logr.Logger) events.Observer {
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	if d.Err != nil {
		o.l.Error(d.Err, d.Message(), d.KeyValues()...)
		return
	}
	if l := o.l.V(DebugLevel); l.Enabled() {
		l.Info(d.Message(), d.KeyValues()...)
	}
}
