// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package selector

import (
	"strings"

	"github.com/floedata/floe/catalog"
)

// glob is the wildcard element inside fqn patterns.
const glob = "*"

// Matches reports whether one criterion's selector matches a node,
// independent of any directional modifiers.
func Matches(meta catalog.NodeMetadata, c SelectionCriteria) bool {
	switch c.Type {
	case SelectorTag:
		return meta.HasTag(c.Value)
	case SelectorSource:
		if meta.Kind != catalog.KindSource {
			return false
		}
		return isSelectedNode(meta.FQN, strings.Split(c.Value, "."))
	default:
		return isSelectedNode(meta.FQN, strings.Split(c.Value, "."))
	}
}

// isSelectedNode reports whether the pattern selects the namespace path.
//
// The pattern matches if it is a prefix of the full path or of the path
// with its leading package segment removed, so a resource is addressable
// with or without its package name in front.
func isSelectedNode(fqn, pattern []string) bool {
	if matchesPath(fqn, pattern) {
		return true
	}
	if len(fqn) > 1 && matchesPath(fqn[1:], pattern) {
		return true
	}
	return false
}

// matchesPath reports whether pattern is a prefix of path. A trailing "*"
// is dropped first; it stands for any suffix, including the empty one. A
// pattern longer than the path never matches.
func matchesPath(path, pattern []string) bool {
	if n := len(pattern); n > 0 && pattern[n-1] == glob {
		pattern = pattern[:n-1]
	}
	if len(pattern) > len(path) {
		return false
	}
	for i, part := range pattern {
		if path[i] != part {
			return false
		}
	}
	return true
}
