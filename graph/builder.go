// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

import "sort"

// Edge is a directed dependency edge: To depends on From.
type Edge struct {
	From string
	To   string
}

// Builder constructs a Graph with validation.
//
// AddNode and AddEdge record problems instead of failing immediately so
// calls can be chained; Build reports the first recorded problem, then
// validates edge endpoints and acyclicity.
//
// Thread Safety: Builder is NOT safe for concurrent use. Build the graph
// in a single goroutine.
type Builder struct {
	nodes  map[string]struct{}
	edges  []Edge
	errors []error
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[string]struct{}),
	}
}

// AddNode declares a node. Empty and duplicate identifiers are recorded as
// errors and surfaced by Build.
func (b *Builder) AddNode(id string) *Builder {
	if id == "" {
		b.errors = append(b.errors, ErrEmptyNodeID)
		return b
	}
	if _, exists := b.nodes[id]; exists {
		b.errors = append(b.errors, &NodeError{NodeID: id, Err: ErrDuplicateNode})
		return b
	}
	b.nodes[id] = struct{}{}
	return b
}

// AddEdge declares that to depends on from. Endpoints are validated at
// Build time so declaration order does not matter.
func (b *Builder) AddEdge(from, to string) *Builder {
	b.edges = append(b.edges, Edge{From: from, To: to})
	return b
}

// Build validates and constructs the Graph.
//
// Validation order: recorded AddNode errors first, then dangling edges,
// then cycles. Returns a DanglingEdgeError or CycleError on failure.
func (b *Builder) Build() (*Graph, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	for _, e := range b.edges {
		if _, ok := b.nodes[e.From]; !ok {
			return nil, &DanglingEdgeError{From: e.From, To: e.To, Missing: e.From}
		}
		if _, ok := b.nodes[e.To]; !ok {
			return nil, &DanglingEdgeError{From: e.From, To: e.To, Missing: e.To}
		}
	}

	forward := make(map[string][]string, len(b.nodes))
	reverse := make(map[string][]string, len(b.nodes))
	for _, e := range b.edges {
		forward[e.From] = append(forward[e.From], e.To)
		reverse[e.To] = append(reverse[e.To], e.From)
	}
	for id := range forward {
		sort.Strings(forward[id])
	}
	for id := range reverse {
		sort.Strings(reverse[id])
	}

	if err := detectCycles(b.nodes, forward); err != nil {
		return nil, err
	}

	nodes := make(map[string]struct{}, len(b.nodes))
	for id := range b.nodes {
		nodes[id] = struct{}{}
	}

	return &Graph{
		nodes:   nodes,
		forward: forward,
		reverse: reverse,
	}, nil
}

// detectCycles runs DFS over the forward adjacency lists and returns a
// CycleError describing the first cycle found.
func detectCycles(nodes map[string]struct{}, forward map[string][]string) error {
	visited := make(map[string]bool, len(nodes))
	recStack := make(map[string]bool, len(nodes))
	path := make([]string, 0, len(nodes))

	var dfs func(id string) error
	dfs = func(id string) error {
		visited[id] = true
		recStack[id] = true
		path = append(path, id)

		for _, next := range forward[id] {
			if !visited[next] {
				if err := dfs(next); err != nil {
					return err
				}
			} else if recStack[next] {
				// Found a cycle. Report it starting from its first node.
				cycleStart := 0
				for i, n := range path {
					if n == next {
						cycleStart = i
						break
					}
				}
				cyclePath := append(append([]string{}, path[cycleStart:]...), next)
				return &CycleError{Path: cyclePath}
			}
		}

		path = path[:len(path)-1]
		recStack[id] = false
		return nil
	}

	// Iterate in sorted order so the reported cycle is deterministic.
	ordered := make([]string, 0, len(nodes))
	for id := range nodes {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	for _, id := range ordered {
		if !visited[id] {
			if err := dfs(id); err != nil {
				return err
			}
		}
	}
	return nil
}
