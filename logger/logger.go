// Copyright (c) Pushbeam
// SPDX-License-Identifier: Apache-2.0

// Package logger contains a structured logger constructor shared by
// all service entry points.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to the given writer. The level
// string accepts the standard slog level names (debug, info, warn, error).
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelText, err)
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// NewMock returns a logger that discards all records. Used in tests.
func NewMock() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ExitWithError terminates the process with the given code. Deferred in main
// so that cleanup registered before it still runs.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
