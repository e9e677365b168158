// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus logs dispatches to a logrus logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/wmdispatch/wmdispatch/events"
)

type observer struct {
	l logrus.FieldLogger
}

// New returns an Observer that logs successful dispatches at debug level
// and failed ones at error level.
func New(l logrus.FieldLogger) events.Observer {
	return observer{l: l}
}

func (o observer) Dispatched(d events.Dispatch) {
	kv := d.KeyValues()
	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1]
	}
	e := o.l.WithFields(fields)
	if d.Err != nil {
		e.WithError(d.Err).Error(d.Message())
		return
	}
	e.Debug(d.Message())
}
