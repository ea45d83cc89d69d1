// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package selector

import "strings"

// SelectorType routes a spec body to its matching rule.
type SelectorType string

const (
	// SelectorFQN matches against the node's namespace path.
	SelectorFQN SelectorType = "fqn"

	// SelectorTag matches against the node's tag set.
	SelectorTag SelectorType = "tag"

	// SelectorSource matches source-kind nodes by namespace prefix.
	SelectorSource SelectorType = "source"
)

// Spec body prefixes routing to non-fqn selector types.
const (
	tagPrefix    = "tag:"
	sourcePrefix = "source:"
)

// SelectionCriteria is one parsed selection spec.
//
// Criteria are immutable value objects: created per spec string, consumed
// during a single Select call, then discarded.
type SelectionCriteria struct {
	// Raw is the spec string the criteria were parsed from.
	Raw string

	// SelectParents includes all ancestors of the matched nodes.
	SelectParents bool

	// SelectChildren includes all descendants of the matched nodes.
	SelectChildren bool

	// SelectChildrensParents includes the matched nodes' descendants and
	// every ancestor of any of those. Incompatible with SelectChildren.
	SelectChildrensParents bool

	Type  SelectorType
	Value string
}

// ParseSpec compiles one selection spec string.
//
// Grammar: an optional leading "@" or "+", a body, an optional trailing
// "+". "@" with a trailing "+" is rejected rather than coerced; so is an
// empty body. Dots and "*" inside an fqn body are preserved verbatim for
// the matcher.
func ParseSpec(spec string) (SelectionCriteria, error) {
	c := SelectionCriteria{Raw: spec}
	body := spec

	if strings.HasPrefix(body, "@") {
		c.SelectChildrensParents = true
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		c.SelectParents = true
		body = body[1:]
	}
	if strings.HasSuffix(body, "+") {
		c.SelectChildren = true
		body = body[:len(body)-1]
	}

	if c.SelectChildrensParents && c.SelectChildren {
		return SelectionCriteria{}, &InvalidSelectorError{
			Spec:   spec,
			Reason: "the @ prefix cannot be combined with a trailing +",
		}
	}
	if body == "" {
		return SelectionCriteria{}, &InvalidSelectorError{
			Spec:   spec,
			Reason: "missing selector body",
		}
	}

	switch {
	case strings.HasPrefix(body, tagPrefix):
		c.Type = SelectorTag
		c.Value = body[len(tagPrefix):]
	case strings.HasPrefix(body, sourcePrefix):
		c.Type = SelectorSource
		c.Value = body[len(sourcePrefix):]
	default:
		c.Type = SelectorFQN
		c.Value = body
	}

	if c.Value == "" {
		return SelectionCriteria{}, &InvalidSelectorError{
			Spec:   spec,
			Reason: "missing selector value",
		}
	}

	return c, nil
}

// parseSpecs compiles every spec, failing on the first malformed one.
func parseSpecs(specs []string) ([]SelectionCriteria, error) {
	out := make([]SelectionCriteria, 0, len(specs))
	for _, spec := range specs {
		c, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
