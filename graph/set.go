// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

import "sort"

// NodeSet is an unordered set of node identifiers.
//
// The zero value is not usable; create sets with NewNodeSet.
type NodeSet map[string]struct{}

// NewNodeSet creates a NodeSet containing the given identifiers.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an identifier into the set.
func (s NodeSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether the identifier is in the set.
func (s NodeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s NodeSet) Len() int {
	return len(s)
}

// Union adds every identifier from other into s and returns s.
func (s NodeSet) Union(other NodeSet) NodeSet {
	for id := range other {
		s[id] = struct{}{}
	}
	return s
}

// Difference removes every identifier in other from s and returns s.
func (s NodeSet) Difference(other NodeSet) NodeSet {
	for id := range other {
		delete(s, id)
	}
	return s
}

// Clone returns an independent copy of the set.
func (s NodeSet) Clone() NodeSet {
	out := make(NodeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the identifiers in lexicographic order.
func (s NodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
