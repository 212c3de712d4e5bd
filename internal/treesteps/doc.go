// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treesteps materializes and renders hierarchical snapshots.
//
// A hierarchy participates by implementing the Node interface. Each node
// provides:
//   - A descriptive name
//   - Key properties (as key-value pairs)
//   - Optional marks (e.g. "current", "inserted")
//   - References to child nodes
//
// Build walks a hierarchy and returns a TreeNode, which is a value copy that
// shares nothing with the nodes it was built from. TreeToString renders a
// hierarchy as text:
//
//	50 (h=3, bf=1)
//	 ├── 30 (h=2, bf=0) <current>
//	 │    ├── 20 (h=1, bf=0)
//	 │    └── 40 (h=1, bf=0)
//	 └── 70 (h=1, bf=0)
//
// The MaxTreeDepth option limits how deep Build descends, which keeps the
// output readable for large trees.
package treesteps
