// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package selector

import (
	"strings"
	"testing"

	"github.com/floedata/floe/catalog"
)

func TestIsSelectedNode(t *testing.T) {
	tests := []struct {
		fqn     string
		pattern string
		want    bool
	}{
		// Dual comparison: with and without the package segment.
		{fqn: "X.a", pattern: "a", want: true},
		{fqn: "X.a", pattern: "X.a", want: true},
		{fqn: "X.a", pattern: "*", want: true},
		{fqn: "X.a", pattern: "X.*", want: true},

		// Prefix matching over deeper paths.
		{fqn: "X.a.b.c", pattern: "X.*", want: true},
		{fqn: "X.a.b.c", pattern: "X.a.*", want: true},
		{fqn: "X.a.b.c", pattern: "X.a.b.*", want: true},
		{fqn: "X.a.b.c", pattern: "X.a.b.c", want: true},
		{fqn: "X.a.b.c", pattern: "X.a", want: true},
		{fqn: "X.a.b.c", pattern: "X.a.b", want: true},
		{fqn: "X.a.b.c", pattern: "a.b", want: true},

		// Non-matches.
		{fqn: "X.a", pattern: "b", want: false},
		{fqn: "X.a", pattern: "X.b", want: false},
		{fqn: "X.a", pattern: "X.a.b", want: false},
		{fqn: "X.a", pattern: "Y.*", want: false},
		{fqn: "X.a.b.c", pattern: "X.b", want: false},
		{fqn: "X.a.b.c", pattern: "b.c", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.fqn+"/"+tc.pattern, func(t *testing.T) {
			fqn := strings.Split(tc.fqn, ".")
			pattern := strings.Split(tc.pattern, ".")
			if got := isSelectedNode(fqn, pattern); got != tc.want {
				t.Errorf("isSelectedNode(%v, %v) = %v, expected %v", fqn, pattern, got, tc.want)
			}
		})
	}
}

func TestMatches_Tag(t *testing.T) {
	meta := catalog.NodeMetadata{
		UniqueID: "model.X.a",
		FQN:      []string{"X", "a"},
		Tags:     []string{"abc"},
		Kind:     catalog.KindModel,
	}

	c, err := ParseSpec("tag:abc")
	if err != nil {
		t.Fatal(err)
	}
	if !Matches(meta, c) {
		t.Error("Matches(tag:abc) = false for node tagged abc")
	}

	c, err = ParseSpec("tag:efg")
	if err != nil {
		t.Fatal(err)
	}
	if Matches(meta, c) {
		t.Error("Matches(tag:efg) = true for node tagged abc")
	}
}

func TestMatches_Source(t *testing.T) {
	source := catalog.NodeMetadata{
		UniqueID: "source.shop.raw.orders",
		FQN:      []string{"shop", "raw", "orders"},
		Kind:     catalog.KindSource,
	}
	model := catalog.NodeMetadata{
		UniqueID: "model.shop.raw",
		FQN:      []string{"shop", "raw"},
		Kind:     catalog.KindModel,
	}

	tests := []struct {
		spec string
		meta catalog.NodeMetadata
		want bool
	}{
		{spec: "source:raw", meta: source, want: true},
		{spec: "source:raw.orders", meta: source, want: true},
		{spec: "source:shop.raw", meta: source, want: true},
		{spec: "source:other", meta: source, want: false},
		// A model never matches a source selector, even with the same prefix.
		{spec: "source:raw", meta: model, want: false},
		// The plain fqn selector ignores kind.
		{spec: "raw", meta: model, want: true},
		{spec: "raw", meta: source, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.spec+"/"+tc.meta.UniqueID, func(t *testing.T) {
			c, err := ParseSpec(tc.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got := Matches(tc.meta, c); got != tc.want {
				t.Errorf("Matches(%s, %s) = %v, expected %v", tc.meta.UniqueID, tc.spec, got, tc.want)
			}
		})
	}
}
