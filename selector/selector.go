// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package selector

import (
	"fmt"
	"log/slog"

	"github.com/floedata/floe/catalog"
	"github.com/floedata/floe/graph"
)

// Option is a functional option for configuring a Selector.
type Option func(*Selector)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// Selector resolves include/exclude spec lists against one graph and
// catalog.
//
// Selection is pure and read-only: the graph and catalog must not be
// mutated during a Select call, and under that precondition a Selector is
// safe for concurrent use.
type Selector struct {
	graph   *graph.Graph
	catalog catalog.Catalog
	logger  *slog.Logger
}

// New creates a Selector over a built graph and its catalog.
func New(g *graph.Graph, c catalog.Catalog, opts ...Option) *Selector {
	s := &Selector{
		graph:   g,
		catalog: c,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select resolves include and exclude specs into a final node set.
//
// Every spec is parsed before any resolution happens: one malformed spec
// fails the whole call with an *InvalidSelectorError and no partial
// result. Include specs are OR'd; the resolved exclude set (computed with
// the same directional closure rules) is subtracted last.
//
// A graph node missing from the catalog fails the call with
// catalog.ErrUnknownNode; skipping it silently would corrupt the result.
func (s *Selector) Select(include, exclude []string) (graph.NodeSet, error) {
	includeCriteria, err := parseSpecs(include)
	if err != nil {
		return nil, err
	}
	excludeCriteria, err := parseSpecs(exclude)
	if err != nil {
		return nil, err
	}

	selected, err := s.resolve(includeCriteria)
	if err != nil {
		return nil, err
	}
	excluded, err := s.resolve(excludeCriteria)
	if err != nil {
		return nil, err
	}

	result := selected.Difference(excluded)
	s.logger.Debug("selection resolved",
		"include", include,
		"exclude", exclude,
		"excluded", excluded.Len(),
		"selected", result.Len(),
	)
	return result, nil
}

// resolve unions the node sets of all criteria.
func (s *Selector) resolve(criteria []SelectionCriteria) (graph.NodeSet, error) {
	result := graph.NewNodeSet()
	for _, c := range criteria {
		set, err := s.resolveOne(c)
		if err != nil {
			return nil, err
		}
		result.Union(set)
	}
	return result, nil
}

// resolveOne computes directMatches for one criterion and applies its
// directional closure over the graph.
func (s *Selector) resolveOne(c SelectionCriteria) (graph.NodeSet, error) {
	matches := graph.NewNodeSet()
	for _, id := range s.graph.Nodes() {
		meta, err := s.catalog.Metadata(id)
		if err != nil {
			return nil, fmt.Errorf("resolve spec %q: %w", c.Raw, err)
		}
		if Matches(meta, c) {
			matches.Add(id)
		}
	}

	var result graph.NodeSet
	switch {
	case c.SelectChildrensParents:
		// The matched nodes, everything they feed, and everything needed
		// to build all of that.
		downstream := matches.Clone().Union(graph.Descendants(s.graph, matches))
		result = downstream.Clone().Union(graph.Ancestors(s.graph, downstream))
	default:
		result = matches.Clone()
		if c.SelectParents {
			result.Union(graph.Ancestors(s.graph, matches))
		}
		if c.SelectChildren {
			result.Union(graph.Descendants(s.graph, matches))
		}
	}

	s.logger.Debug("spec resolved",
		"spec", c.Raw,
		"direct_matches", matches.Len(),
		"selected", result.Len(),
	)
	return result, nil
}
