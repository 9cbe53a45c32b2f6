// Package logging builds the structured logger shared by an execution environment.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New returns a JSON slog.Logger writing to w at the named level
// (debug, info, warn or error; case-insensitive).
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
