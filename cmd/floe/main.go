// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command floe builds a project's dependency graph and resolves selection
// specs against it.
//
// Usage:
//
//	floe ls --project-dir ./jaffle_shop --select 'tag:daily' --exclude 'staging.*'
//	floe parse '@shop.orders'
//	floe packages
//
// Selection specs follow the grammar documented in the selector package:
// an optional leading @ or +, a body (fqn path, tag:..., source:...), and
// an optional trailing +.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/floedata/floe/telemetry"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var (
	projectDir string
	logLevel   string
	jsonOutput bool

	rootCmd = &cobra.Command{
		Use:   "floe",
		Short: "Build and select data transformation graphs",
		Long: `floe loads a project definition, builds the dependency graph of its
models and sources, and resolves --select/--exclude specs into the set
of nodes to operate on.`,
		SilenceUsage: true,
	}
)

func main() {
	ctx := context.Background()

	shutdown, err := telemetry.Init(ctx, telemetryConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "floe: init telemetry: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func telemetryConfig() telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.ServiceVersion = version
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", ".", "directory containing floe_project.yml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger.With("invocation_id", uuid.New().String()))
		return nil
	}
}
