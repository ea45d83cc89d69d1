// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond builds:
//
//	    a
//	   / \
//	  b   c
//	   \ /
//	    d
//
// where b and c depend on a, and d depends on b and c.
func buildDiamond(t *testing.T) *Graph {
	t.Helper()
	g, err := NewBuilder().
		AddNode("a").AddNode("b").AddNode("c").AddNode("d").
		AddEdge("a", "b").AddEdge("a", "c").
		AddEdge("b", "d").AddEdge("c", "d").
		Build()
	require.NoError(t, err)
	return g
}

func TestBuilder_Build(t *testing.T) {
	g := buildDiamond(t)

	assert.Equal(t, 4, g.Len())
	assert.True(t, g.Has("a"))
	assert.False(t, g.Has("z"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Nodes())

	assert.Equal(t, []string{"b", "c"}, g.Successors("a"))
	assert.Equal(t, []string{"b", "c"}, g.Predecessors("d"))
	assert.Empty(t, g.Successors("d"))
	assert.Empty(t, g.Predecessors("a"))
	assert.Empty(t, g.Successors("unknown"))
}

func TestBuilder_EmptyNodeID(t *testing.T) {
	_, err := NewBuilder().AddNode("").Build()
	assert.ErrorIs(t, err, ErrEmptyNodeID)
}

func TestBuilder_DuplicateNode(t *testing.T) {
	_, err := NewBuilder().AddNode("a").AddNode("a").Build()
	require.ErrorIs(t, err, ErrDuplicateNode)

	var nodeErr *NodeError
	require.True(t, errors.As(err, &nodeErr))
	assert.Equal(t, "a", nodeErr.NodeID)
}

func TestBuilder_DanglingEdge(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		missing string
	}{
		{name: "unknown source", from: "ghost", to: "a", missing: "ghost"},
		{name: "unknown target", from: "a", to: "ghost", missing: "ghost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuilder().AddNode("a").AddEdge(tc.from, tc.to).Build()
			require.ErrorIs(t, err, ErrDanglingEdge)

			var dangling *DanglingEdgeError
			require.True(t, errors.As(err, &dangling))
			assert.Equal(t, tc.missing, dangling.Missing)
		})
	}
}

func TestBuilder_CycleDetection(t *testing.T) {
	_, err := NewBuilder().
		AddNode("a").AddNode("b").AddNode("c").
		AddEdge("a", "b").AddEdge("b", "c").AddEdge("c", "a").
		Build()
	require.ErrorIs(t, err, ErrCycleDetected)

	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycle.Path)
}

func TestBuilder_SelfLoop(t *testing.T) {
	_, err := NewBuilder().AddNode("a").AddEdge("a", "a").Build()
	assert.ErrorIs(t, err, ErrCycleDetected)
}

func TestNodeSet_Algebra(t *testing.T) {
	s := NewNodeSet("a", "b")
	s.Add("c")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())

	union := s.Clone().Union(NewNodeSet("c", "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, union.Sorted())

	diff := s.Clone().Difference(NewNodeSet("b", "z"))
	assert.Equal(t, []string{"a", "c"}, diff.Sorted())

	// Clone is independent of the original.
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}

func TestAncestorsDescendants_Diamond(t *testing.T) {
	g := buildDiamond(t)

	assert.Equal(t, []string{"a", "b", "c"}, Ancestors(g, NewNodeSet("d")).Sorted())
	assert.Equal(t, []string{"b", "c", "d"}, Descendants(g, NewNodeSet("a")).Sorted())

	// Closure excludes the seeds themselves.
	assert.False(t, Ancestors(g, NewNodeSet("d")).Has("d"))
	assert.False(t, Descendants(g, NewNodeSet("a")).Has("a"))

	// Intermediates appear at every depth.
	assert.Equal(t, []string{"a"}, Ancestors(g, NewNodeSet("b")).Sorted())
	assert.Equal(t, []string{"d"}, Descendants(g, NewNodeSet("b")).Sorted())
}

func TestAncestorsDescendants_MultiSeed(t *testing.T) {
	g, err := NewBuilder().
		AddNode("a").AddNode("b").AddNode("x").AddNode("y").
		AddEdge("a", "b").AddEdge("x", "y").
		Build()
	require.NoError(t, err)

	anc := Ancestors(g, NewNodeSet("b", "y"))
	assert.Equal(t, []string{"a", "x"}, anc.Sorted())

	desc := Descendants(g, NewNodeSet("a", "x"))
	assert.Equal(t, []string{"b", "y"}, desc.Sorted())
}

func TestAncestorsDescendants_DeepChain(t *testing.T) {
	b := NewBuilder()
	ids := []string{"n0", "n1", "n2", "n3", "n4", "n5"}
	for _, id := range ids {
		b.AddNode(id)
	}
	for i := 1; i < len(ids); i++ {
		b.AddEdge(ids[i-1], ids[i])
	}
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"n0", "n1", "n2", "n3", "n4"}, Ancestors(g, NewNodeSet("n5")).Sorted())
	assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5"}, Descendants(g, NewNodeSet("n0")).Sorted())
	assert.Equal(t, []string{"n3", "n4", "n5"}, Descendants(g, NewNodeSet("n2")).Sorted())
}
