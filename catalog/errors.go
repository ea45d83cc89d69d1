// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog package.
var (
	// ErrUnknownNode is returned when a graph node has no catalog entry.
	// This is a contract violation by the loader, never a skippable miss.
	ErrUnknownNode = errors.New("no catalog entry for node")

	// ErrEmptyNodeID is returned for metadata with an empty identifier.
	ErrEmptyNodeID = errors.New("node identifier must not be empty")

	// ErrShortFQN is returned for an FQN with fewer than two segments.
	ErrShortFQN = errors.New("fqn must have at least package and name")

	// ErrInvalidKind is returned for an unrecognized resource kind.
	ErrInvalidKind = errors.New("invalid resource kind")

	// ErrDuplicateEntry is returned when an identifier is registered twice.
	ErrDuplicateEntry = errors.New("catalog entry already exists")
)

// EntryError wraps an error with the node it concerns.
type EntryError struct {
	NodeID string
	Err    error
}

// Error returns the error message.
func (e *EntryError) Error() string {
	return fmt.Sprintf("catalog entry %q: %v", e.NodeID, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
