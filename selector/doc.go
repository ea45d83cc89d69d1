// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package selector resolves selection specs into the set of graph nodes
// they name.
//
// A spec is one DSL token of the form:
//
//	[@|+]body[+]
//
// The body names nodes:
//
//	tag:daily        every node tagged "daily"
//	source:raw       every source under the "raw" prefix
//	shop.orders      fqn match: dotted namespace path, optional trailing *
//	*                every node
//
// fqn bodies match by prefix against the node's namespace path, with or
// without its leading package name, so "orders", "shop.orders" and
// "shop.marts.*" can all address the same resource.
//
// The modifiers add graph closure:
//
//	+body            the matched nodes and all their ancestors
//	body+            the matched nodes and all their descendants
//	+body+           both of the above
//	@body            the matched nodes, their descendants, and every
//	                 ancestor of any of those
//
// @ combined with a trailing + is ambiguous and rejected at parse time.
//
// Select resolves a list of include specs and a list of exclude specs:
// includes are OR'd together, then the resolved exclude set is subtracted.
// A malformed spec anywhere fails the whole call; partially honored
// selections are never returned.
package selector
