// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

// Ancestors returns every node with a directed path into any seed: the
// transitive dependencies of the seed set, intermediates included at every
// depth. Seeds are never part of the result; callers that want them union
// the seed set back in.
//
// Reverse BFS with a visited set, O(V+E). The visited set also guards
// against runaway traversal if the acyclicity precondition is ever
// violated.
func Ancestors(g *Graph, seeds NodeSet) NodeSet {
	return closure(g, seeds, g.Predecessors)
}

// Descendants returns every node reachable by a directed path from any
// seed: the transitive dependents of the seed set, intermediates included
// at every depth. Seeds are never part of the result; callers that want
// them union the seed set back in.
func Descendants(g *Graph, seeds NodeSet) NodeSet {
	return closure(g, seeds, g.Successors)
}

// closure runs BFS from every seed following the given neighbor function.
func closure(g *Graph, seeds NodeSet, neighbors func(string) []string) NodeSet {
	result := NewNodeSet()
	visited := make(map[string]bool, len(seeds))

	queue := make([]string, 0, len(seeds))
	for id := range seeds {
		visited[id] = true
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range neighbors(current) {
			if !visited[next] {
				visited[next] = true
				result.Add(next)
				queue = append(queue, next)
			}
		}
	}

	return result
}
