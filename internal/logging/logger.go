// Package logging wires the MindCare server's slog pipeline: JSON to
// stdout, fanned out to a batching Postgres sink for ERROR+ records,
// with a daily retention sweep over the persisted logs.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger as the process default. It runs
// before the database is up; main swaps in the fan-out handler with the
// Postgres sink once a connection exists.
func Setup() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}
