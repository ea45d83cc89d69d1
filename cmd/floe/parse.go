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

	"github.com/spf13/cobra"

	"github.com/floedata/floe/selector"
)

var parseCmd = &cobra.Command{
	Use:   "parse SPEC...",
	Short: "Show how selection specs are parsed",
	Long: `Parse selection specs and print the resulting criteria without
resolving them against a project. Useful for debugging quoting issues.

Examples:
  floe parse '@shop.orders'
  floe parse '+tag:daily+' 'staging.*'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// parsedSpec is the JSON shape for one parsed spec.
type parsedSpec struct {
	Spec             string `json:"spec"`
	Type             string `json:"type"`
	Value            string `json:"value"`
	Parents          bool   `json:"parents"`
	Children         bool   `json:"children"`
	ChildrensParents bool   `json:"childrens_parents"`
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	parsed := make([]parsedSpec, 0, len(args))
	for _, spec := range args {
		c, err := selector.ParseSpec(spec)
		if err != nil {
			return err
		}
		parsed = append(parsed, parsedSpec{
			Spec:             c.Raw,
			Type:             string(c.Type),
			Value:            c.Value,
			Parents:          c.SelectParents,
			Children:         c.SelectChildren,
			ChildrensParents: c.SelectChildrensParents,
		})
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	}

	for _, p := range parsed {
		fmt.Fprintf(out, "%s\n", p.Spec)
		fmt.Fprintf(out, "  type:              %s\n", p.Type)
		fmt.Fprintf(out, "  value:             %s\n", p.Value)
		fmt.Fprintf(out, "  parents:           %v\n", p.Parents)
		fmt.Fprintf(out, "  children:          %v\n", p.Children)
		fmt.Fprintf(out, "  childrens_parents: %v\n", p.ChildrensParents)
	}
	return nil
}
