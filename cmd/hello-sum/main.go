// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hello-sum/internal/config"
	"hello-sum/internal/report"
)

func main() {
	// stdout carries only the report; diagnostics go to stderr
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))

	if err := run(context.Background(), os.Stdout); err != nil {
		slog.Error("hello-sum failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer) error {
	cfg, err := config.Default()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r, err := report.Build(ctx, cfg)
	if err != nil {
		return err
	}

	_, err = r.Write(ctx, w)
	return err
}
