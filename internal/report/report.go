// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package report builds the lines printed by hello-sum and writes them out.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bitfield/script"

	"hello-sum/internal/config"
	"hello-sum/internal/telemetry"
	"hello-sum/pkg/calculator"
)

// ErrNilConfig is returned by Build when no configuration is given
var ErrNilConfig = errors.New("config is nil")

// Report is the ordered output of a single run
type Report struct {
	lines []string
}

// Build computes the greeting, number and sum lines from cfg
func Build(ctx context.Context, cfg *config.Config) (*Report, error) {
	ctx, span := telemetry.StartSpan(ctx, "report.Build")
	defer span.End()

	if cfg == nil {
		telemetry.RecordError(ctx, ErrNilConfig)
		return nil, ErrNilConfig
	}

	sum := add(ctx, cfg.Sum.A, cfg.Sum.B)

	lines := []string{
		cfg.Greeting,
		fmt.Sprintf("The number is: %d", cfg.Number),
		fmt.Sprintf("The sum is: %d", sum),
	}
	telemetry.AddAttributes(ctx, telemetry.AttrLineCount.Int(len(lines)))

	slog.Debug("Report built", "lines", len(lines), "sum", sum)
	return &Report{lines: lines}, nil
}

func add(ctx context.Context, a, b int32) int32 {
	ctx, span := telemetry.StartSpan(ctx, "calculator.Add")
	defer span.End()

	result := calculator.Add(a, b)
	telemetry.AddAttributes(ctx, telemetry.CalcAttrs(a, b, result)...)

	slog.Debug("Computed sum", "a", a, "b", b, "result", result)
	return result
}

// Lines returns a copy of the report lines without terminators
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// String returns the report as newline-terminated text
func (r *Report) String() string {
	s, _ := script.Slice(r.lines).String()
	return s
}

// Write writes each line followed by a newline to w
func (r *Report) Write(ctx context.Context, w io.Writer) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "report.Write")
	defer span.End()

	n, err := script.Slice(r.lines).WithStdout(w).Stdout()
	telemetry.AddAttributes(ctx, telemetry.AttrBytes.Int(n))
	if err != nil {
		telemetry.RecordError(ctx, err)
		return n, fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("Report written", "bytes", n)
	return n, nil
}
