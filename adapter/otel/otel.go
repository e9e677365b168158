// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel reports dispatches to OpenTelemetry as spans and metrics.
package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/wmdispatch/wmdispatch/events"
)

// Instrument names.
const (
	DispatchCount    = "wm.dispatch.count"
	DispatchDuration = "wm.dispatch.duration"
)

// Options selects where an Observer reports. A nil field disables that
// signal.
type Options struct {
	Tracer trace.Tracer
	Meter  metric.Meter
}

// Observer records one span per dispatch, a dispatch counter and, for
// timed dispatches, a duration histogram in milliseconds.
type Observer struct {
	tracer   trace.Tracer
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

// New returns an Observer. It fails only if the instruments cannot be
// created.
func New(opts *Options) (*Observer, error) {
	if opts == nil {
		opts = &Options{}
	}
	tracer, meter := opts.Tracer, opts.Meter
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer("")
	}
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("")
	}
	count, err := meter.Int64Counter(DispatchCount,
		metric.WithDescription("Number of window message dispatches."))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(DispatchDuration,
		metric.WithDescription("Time spent in the handlers of one dispatch."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Observer{tracer: tracer, count: count, duration: duration}, nil
}

func (o *Observer) Dispatched(d events.Dispatch) {
	ctx := context.Background()
	labels := attribute.NewSet(
		attribute.String("wm", d.Msg.MsgID.String()),
		attribute.String("category", d.Category.String()),
		attribute.String("mode", d.Mode.String()),
		attribute.Bool("handled", d.Result.Handled()),
		attribute.Bool("error", d.Err != nil),
	)
	o.count.Add(ctx, 1, metric.WithAttributeSet(labels))
	if d.Timed() {
		ms := float64(d.Elapsed) / float64(time.Millisecond)
		o.duration.Record(ctx, ms, metric.WithAttributeSet(labels))
	}
	o.span(ctx, d)
}

func (o *Observer) span(ctx context.Context, d events.Dispatch) {
	start := []trace.SpanStartOption{trace.WithAttributes(spanAttrs(d)...)}
	var end []trace.SpanEndOption
	if d.Timed() {
		start = append(start, trace.WithTimestamp(d.Start))
		end = append(end, trace.WithTimestamp(d.Start.Add(d.Elapsed)))
	}
	_, span := o.tracer.Start(ctx, "dispatch "+d.Msg.MsgID.String(), start...)
	if d.Err != nil {
		span.RecordError(d.Err)
		span.SetStatus(codes.Error, d.Err.Error())
	}
	span.End(end...)
}

func spanAttrs(d events.Dispatch) []attribute.KeyValue {
	kv := d.KeyValues()
	attrs := make([]attribute.KeyValue, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k := kv[i].(string)
		switch v := kv[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(k, v))
		case int:
			attrs = append(attrs, attribute.Int(k, v))
		}
	}
	return attrs
}
