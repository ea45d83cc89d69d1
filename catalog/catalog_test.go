// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestMemoryCatalog_Put(t *testing.T) {
	tests := []struct {
		name    string
		meta    NodeMetadata
		wantErr error
	}{
		{
			name: "valid model",
			meta: NodeMetadata{
				UniqueID: "model.shop.orders",
				FQN:      []string{"shop", "orders"},
				Kind:     KindModel,
			},
		},
		{
			name: "valid source",
			meta: NodeMetadata{
				UniqueID: "source.shop.raw.orders",
				FQN:      []string{"shop", "raw", "orders"},
				Kind:     KindSource,
			},
		},
		{
			name:    "empty id",
			meta:    NodeMetadata{FQN: []string{"shop", "x"}, Kind: KindModel},
			wantErr: ErrEmptyNodeID,
		},
		{
			name:    "short fqn",
			meta:    NodeMetadata{UniqueID: "model.shop.x", FQN: []string{"x"}, Kind: KindModel},
			wantErr: ErrShortFQN,
		},
		{
			name:    "invalid kind",
			meta:    NodeMetadata{UniqueID: "model.shop.x", FQN: []string{"shop", "x"}, Kind: Kind("seed")},
			wantErr: ErrInvalidKind,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewMemoryCatalog()
			err := c.Put(tc.meta)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Put() error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestMemoryCatalog_PutDuplicate(t *testing.T) {
	c := NewMemoryCatalog()
	meta := NodeMetadata{
		UniqueID: "model.shop.orders",
		FQN:      []string{"shop", "orders"},
		Kind:     KindModel,
	}
	if err := c.Put(meta); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := c.Put(meta); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("Put() error = %v, expected ErrDuplicateEntry", err)
	}
}

func TestMemoryCatalog_Metadata(t *testing.T) {
	c := NewMemoryCatalog()
	want := NodeMetadata{
		UniqueID: "model.shop.orders",
		FQN:      []string{"shop", "marts", "orders"},
		Tags:     []string{"daily"},
		Kind:     KindModel,
	}
	if err := c.Put(want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := c.Metadata("model.shop.orders")
	if err != nil {
		t.Fatalf("Metadata() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Metadata() = %+v, expected %+v", got, want)
	}

	_, err = c.Metadata("model.shop.ghost")
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Metadata() error = %v, expected ErrUnknownNode", err)
	}
	var entryErr *EntryError
	if !errors.As(err, &entryErr) || entryErr.NodeID != "model.shop.ghost" {
		t.Errorf("Metadata() error = %v, expected EntryError naming the node", err)
	}
}

func TestNodeMetadata_HasTag(t *testing.T) {
	meta := NodeMetadata{Tags: []string{"daily", "marts"}}
	if !meta.HasTag("daily") {
		t.Error("HasTag(daily) = false")
	}
	if meta.HasTag("hourly") {
		t.Error("HasTag(hourly) = true")
	}
}

func TestPackageNames(t *testing.T) {
	c := NewMemoryCatalog()
	entries := []NodeMetadata{
		{UniqueID: "model.X.a", FQN: []string{"X", "a"}, Kind: KindModel},
		{UniqueID: "model.Y.b", FQN: []string{"Y", "b"}, Kind: KindModel},
		{UniqueID: "model.X.c", FQN: []string{"X", "c"}, Kind: KindModel},
	}
	for _, meta := range entries {
		if err := c.Put(meta); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	got, err := PackageNames(c)
	if err != nil {
		t.Fatalf("PackageNames() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Errorf("PackageNames() = %v, expected [X Y]", got)
	}
}
