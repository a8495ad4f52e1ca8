// Package app contains the core application logic for the clen CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/clen-cli/clen/internal/probe"
	"github.com/clen-cli/clen/internal/report"
)

// Config holds all configuration options for one clen invocation.
type Config struct {
	Args       []string       // non-option arguments, in input order
	Metrics    report.Metrics // which statistics to compute
	ShowTiming bool           // include per-argument timing in output
	Debug      bool

	// Probe resolves file arguments; defaults to the filesystem probe.
	// Overridable for tests.
	Probe probe.Prober
}

// Run executes the main clen logic: it announces the argument count, then
// builds and writes one report per argument, strictly in input order. Each
// report is fully written before the next argument is scanned.
//
// ctx cancellation is honored between arguments; an individual scan is a
// bounded single pass and always terminates on its own.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	if len(cfg.Args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	p := cfg.Probe
	if p == nil {
		p = probe.NewFSProbe()
	}

	reporter, err := report.NewReporter(cfg.Metrics, p)
	if err != nil {
		return err
	}
	formatter := report.NewFormatter(cfg.ShowTiming)

	slog.Debug("Starting run", "arguments", len(cfg.Args))

	if len(cfg.Args) == 1 {
		fmt.Fprintf(w, "1 Argument given\n\n")
	} else {
		fmt.Fprintf(w, "%d Arguments given\n\n", len(cfg.Args))
	}

	for i, arg := range cfg.Args {
		if err := ctx.Err(); err != nil {
			return err
		}

		rep := reporter.Build(i+1, arg)
		if err := formatter.WriteReport(w, rep); err != nil {
			return fmt.Errorf("failed to write report for argument %d: %w", i+1, err)
		}
	}

	return nil
}
