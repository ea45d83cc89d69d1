// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the graph package.
var (
	// ErrEmptyNodeID is returned when a node is added with an empty identifier.
	ErrEmptyNodeID = errors.New("node identifier must not be empty")

	// ErrDuplicateNode is returned when adding a node whose identifier already exists.
	ErrDuplicateNode = errors.New("node with this identifier already exists")

	// ErrCycleDetected is returned when the graph contains a cycle.
	ErrCycleDetected = errors.New("cycle detected in dependency graph")

	// ErrDanglingEdge is returned when an edge references an undeclared node.
	ErrDanglingEdge = errors.New("edge references undeclared node")
)

// NodeError wraps an error with the node that caused it.
type NodeError struct {
	NodeID string
	Err    error
}

// Error returns the error message.
func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q: %v", e.NodeID, e.Err)
}

// Unwrap returns the underlying error.
func (e *NodeError) Unwrap() error {
	return e.Err
}

// CycleError reports a dependency cycle with the path that closes it.
type CycleError struct {
	Path []string
}

// Error returns the cycle description.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Path, " -> "))
}

// Unwrap returns ErrCycleDetected so callers can match with errors.Is.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}

// DanglingEdgeError reports an edge whose endpoint was never declared.
type DanglingEdgeError struct {
	From    string
	To      string
	Missing string
}

// Error returns the edge description.
func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("edge %q -> %q: %v: %q", e.From, e.To, ErrDanglingEdge, e.Missing)
}

// Unwrap returns ErrDanglingEdge so callers can match with errors.Is.
func (e *DanglingEdgeError) Unwrap() error {
	return ErrDanglingEdge
}
