// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package graph provides the dependency DAG that floe builds from a project
// and that the selector traverses.
//
// Edges run from dependency to dependent (producer to consumer): an edge
// A -> B means B depends on A, so A must be built before B.
//
// A Graph is constructed through a Builder, which validates the node set
// (no duplicates), the edge set (no references to undeclared nodes), and
// acyclicity. Once built, a Graph is immutable and safe for any number of
// concurrent readers.
//
// Ancestors and Descendants compute transitive closure by breadth-first
// search over the adjacency lists, O(V+E) per call.
package graph
