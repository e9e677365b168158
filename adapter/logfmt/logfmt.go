// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logfmt prints dispatches in logfmt format, one line each.
package logfmt

import (
	"io"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/wmdispatch/wmdispatch/events"
)

// TimeFormat is the layout of the time field.
const TimeFormat = "2006/01/02 15:04:05"

// Observer writes each dispatch to a writer.
type Observer struct {
	// Timing adds the start time and duration of timed dispatches.
	Timing bool

	enc *logfmt.Encoder
	err error
}

// New returns an Observer writing to w.
func New(w io.Writer) *Observer {
	return &Observer{enc: logfmt.NewEncoder(w)}
}

// Err returns the first error writing to the underlying writer. Lines are
// not written after an error.
func (o *Observer) Err() error { return o.err }

func (o *Observer) Dispatched(d events.Dispatch) {
	if o.err != nil {
		return
	}
	if o.Timing && d.Timed() {
		o.keyval("time", d.Start.Format(TimeFormat))
	}
	kv := d.KeyValues()
	for i := 0; i < len(kv); i += 2 {
		v := kv[i+1]
		if e, ok := v.(time.Duration); ok {
			if !o.Timing {
				continue
			}
			v = e.String()
		}
		o.keyval(kv[i].(string), v)
	}
	o.keyval("msg", d.Message())
	if d.Err != nil {
		o.keyval("err", d.Err)
	}
	if o.err == nil {
		o.err = o.enc.EndRecord()
	}
}

func (o *Observer) keyval(k string, v any) {
	if o.err == nil {
		o.err = o.enc.EncodeKeyval(k, v)
	}
}
