// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/floedata/floe/selector"
)

var (
	lsSelect  []string
	lsExclude []string

	lsCmd = &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the nodes matching the selection specs",
		Long: `List the nodes of the project graph matched by --select, minus the
nodes matched by --exclude. With no --select, every node is listed.

Examples:
  floe ls
  floe ls --select shop.orders
  floe ls --select 'tag:daily' --select 'staging.*'
  floe ls --select '+shop.orders+' --exclude 'tag:deprecated'
  floe ls --select '@shop.stg_orders' --json`,
		RunE: runLs,
	}
)

func init() {
	lsCmd.Flags().StringArrayVarP(&lsSelect, "select", "s", nil, "selection spec (repeatable, OR'd together)")
	lsCmd.Flags().StringArrayVarP(&lsExclude, "exclude", "e", nil, "exclusion spec (repeatable, OR'd together)")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	tracer := otel.Tracer("floe/cmd")

	ctx, span := tracer.Start(ctx, "floe.ls")
	defer span.End()

	_, loadSpan := tracer.Start(ctx, "project.load")
	g, cat, err := loadGraph()
	loadSpan.End()
	if err != nil {
		return err
	}

	include := lsSelect
	if len(include) == 0 {
		include = []string{"*"}
	}

	_, selSpan := tracer.Start(ctx, "selection.resolve")
	s := selector.New(g, cat, selector.WithLogger(slog.Default()))
	nodes, err := s.Select(include, lsExclude)
	selSpan.End()
	if err != nil {
		return err
	}

	span.SetAttributes(
		attribute.Int("floe.graph_nodes", g.Len()),
		attribute.Int("floe.selected_nodes", nodes.Len()),
	)
	if counter, merr := otel.Meter("floe/cmd").Int64Counter("floe.selection.selected_nodes"); merr == nil {
		counter.Add(ctx, int64(nodes.Len()))
	}

	slog.Debug("selection complete",
		"include", include,
		"exclude", lsExclude,
		"selected", nodes.Len(),
	)
	return printNodes(cmd, cat, nodes)
}
