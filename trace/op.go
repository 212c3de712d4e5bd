// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

// Op classifies the operation a Step records.
type Op string

// Operation tags shared by all generators.
const (
	OpStart    Op = "start"
	OpCompare  Op = "compare"
	OpSwap     Op = "swap"
	OpInsert   Op = "insert"
	OpDelete   Op = "delete"
	OpFound    Op = "found"
	OpNotFound Op = "not-found"
	OpVisit    Op = "visit"
	OpEnqueue  Op = "enqueue"
	OpDequeue  Op = "dequeue"
	OpPush     Op = "push"
	OpPop      Op = "pop"
	OpPeek     Op = "peek"
	OpRotate   Op = "rotate"
	OpUpdate   Op = "update"
	OpSelect   Op = "select"
	OpRelax    Op = "relax"
	OpAccept   Op = "accept"
	OpReject   Op = "reject"
	OpPath     Op = "path"
	OpDone     Op = "done"
	OpError    Op = "error"
)
