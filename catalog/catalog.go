// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package catalog maps graph node identifiers to resource metadata: the
// namespace path (FQN), the tag set, and the resource kind. The selection
// engine only reads this metadata; it is produced by the project loader.
package catalog

import (
	"sort"
)

// Kind classifies a resource.
type Kind string

const (
	// KindModel is a transformation managed by the project.
	KindModel Kind = "model"

	// KindSource is an external table the project reads from.
	KindSource Kind = "source"
)

// Valid reports whether k is a known resource kind.
func (k Kind) Valid() bool {
	return k == KindModel || k == KindSource
}

// NodeMetadata is the fixed-shape metadata record for one node.
//
// FQN is the namespace path: package name first, zero or more namespace
// segments, then the resource's simple name. Invariant: len(FQN) >= 2.
type NodeMetadata struct {
	UniqueID string
	FQN      []string
	Tags     []string
	Kind     Kind
}

// PackageName returns the first FQN segment.
func (m NodeMetadata) PackageName() string {
	return m.FQN[0]
}

// HasTag reports whether the node carries the given tag.
func (m NodeMetadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog resolves node identifiers to metadata.
//
// Implementations must treat lookups of unknown identifiers as contract
// violations and return ErrUnknownNode rather than zero values; a silently
// skipped node would corrupt selection results.
//
// Thread Safety: implementations must be safe for concurrent readers once
// fully populated.
type Catalog interface {
	// Metadata returns the metadata for a node identifier.
	Metadata(id string) (NodeMetadata, error)

	// Nodes returns all known identifiers in lexicographic order.
	Nodes() []string
}

// MemoryCatalog is a map-backed Catalog.
//
// Populate with Put during loading, then treat as read-only.
type MemoryCatalog struct {
	entries map[string]NodeMetadata
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{entries: make(map[string]NodeMetadata)}
}

// Put adds one node's metadata.
//
// Rejects empty identifiers, FQNs shorter than two segments, unknown kinds,
// and duplicate identifiers.
func (c *MemoryCatalog) Put(meta NodeMetadata) error {
	if meta.UniqueID == "" {
		return ErrEmptyNodeID
	}
	if len(meta.FQN) < 2 {
		return &EntryError{NodeID: meta.UniqueID, Err: ErrShortFQN}
	}
	if !meta.Kind.Valid() {
		return &EntryError{NodeID: meta.UniqueID, Err: ErrInvalidKind}
	}
	if _, exists := c.entries[meta.UniqueID]; exists {
		return &EntryError{NodeID: meta.UniqueID, Err: ErrDuplicateEntry}
	}
	c.entries[meta.UniqueID] = meta
	return nil
}

// Metadata returns the metadata for a node identifier.
func (c *MemoryCatalog) Metadata(id string) (NodeMetadata, error) {
	meta, ok := c.entries[id]
	if !ok {
		return NodeMetadata{}, &EntryError{NodeID: id, Err: ErrUnknownNode}
	}
	return meta, nil
}

// Nodes returns all known identifiers in lexicographic order.
func (c *MemoryCatalog) Nodes() []string {
	out := make([]string, 0, len(c.entries))
	for id := range c.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PackageNames returns the distinct package names (first FQN segment)
// across all nodes, in lexicographic order. Auxiliary tooling only; the
// selector does not use it.
func PackageNames(c Catalog) ([]string, error) {
	seen := make(map[string]struct{})
	for _, id := range c.Nodes() {
		meta, err := c.Metadata(id)
		if err != nil {
			return nil, err
		}
		seen[meta.PackageName()] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
