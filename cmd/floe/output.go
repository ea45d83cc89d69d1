// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/floedata/floe/catalog"
	"github.com/floedata/floe/graph"
)

var (
	packageStyle = lipgloss.NewStyle().Bold(true)
	countStyle   = lipgloss.NewStyle().Faint(true)
)

// loadGraph loads the project under --project-dir and materializes its
// graph and catalog.
func loadGraph() (*graph.Graph, catalog.Catalog, error) {
	p, err := catalog.LoadProject(projectDir)
	if err != nil {
		return nil, nil, err
	}
	return catalog.BuildGraph(p)
}

// printNodes writes the selected node IDs to the command's output, as a
// JSON array with --json, otherwise grouped by package with lipgloss
// styling when stdout is a terminal.
func printNodes(cmd *cobra.Command, cat catalog.Catalog, nodes graph.NodeSet) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes.Sorted())
	}

	byPackage := make(map[string][]string)
	for _, id := range nodes.Sorted() {
		meta, err := cat.Metadata(id)
		if err != nil {
			return err
		}
		pkg := meta.PackageName()
		byPackage[pkg] = append(byPackage[pkg], id)
	}

	packages := make([]string, 0, len(byPackage))
	for pkg := range byPackage {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	styled := isTerminal(out)
	for _, pkg := range packages {
		ids := byPackage[pkg]
		header := fmt.Sprintf("%s (%d)", pkg, len(ids))
		if styled {
			header = packageStyle.Render(pkg) + " " + countStyle.Render(fmt.Sprintf("(%d)", len(ids)))
		}
		fmt.Fprintln(out, header)
		for _, id := range ids {
			fmt.Fprintf(out, "  %s\n", id)
		}
	}
	return nil
}

// isTerminal reports whether out is an interactive terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
