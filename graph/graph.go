// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

import "sort"

// Graph is a directed acyclic graph of resource identifiers.
//
// Edges run from dependency to dependent. Graphs are built with a Builder
// and are immutable afterwards.
//
// Thread Safety: Graph is safe for concurrent use after Build returns.
type Graph struct {
	nodes   map[string]struct{}
	forward map[string][]string // dependency -> direct dependents
	reverse map[string][]string // dependent -> direct dependencies
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Has reports whether the graph contains the given node.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node identifiers in lexicographic order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Successors returns the direct dependents of a node: every node with an
// incoming edge from id. Returns nil for unknown nodes.
func (g *Graph) Successors(id string) []string {
	return g.forward[id]
}

// Predecessors returns the direct dependencies of a node: every node with
// an outgoing edge into id. Returns nil for unknown nodes.
func (g *Graph) Predecessors(id string) []string {
	return g.reverse[id]
}
