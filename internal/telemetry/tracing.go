// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used by hello-sum
const TracerName = "hello-sum"

// GetTracer returns a tracer with the given name.
// Without an installed provider this is a no-op tracer.
func GetTracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// StartSpan starts a new span with the given name and options
func StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return GetTracer(TracerName).Start(ctx, spanName, opts...)
}

// AddAttributes adds attributes to the current span
func AddAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attrs...)
	}
}

// RecordError records an error on the current span and marks it failed
func RecordError(ctx context.Context, err error, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.RecordError(err, trace.WithAttributes(attrs...))
		span.SetStatus(codes.Error, err.Error())
	}
}

// Common attribute keys for consistency
const (
	AttrLineIndex = attribute.Key("report.line_index")
	AttrLineCount = attribute.Key("report.line_count")
	AttrBytes     = attribute.Key("report.bytes")

	AttrOperandA = attribute.Key("calc.a")
	AttrOperandB = attribute.Key("calc.b")
	AttrResult   = attribute.Key("calc.result")
)

// CalcAttrs creates attributes for an arithmetic step
func CalcAttrs(a, b, result int32) []attribute.KeyValue {
	return []attribute.KeyValue{
		AttrOperandA.Int(int(a)),
		AttrOperandB.Int(int(b)),
		AttrResult.Int(int(result)),
	}
}
