// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeprinter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreePrinter(t *testing.T) {
	tp := New()
	root := tp.Child("root")
	left := root.Child("left")
	left.Childf("leaf %d", 1)
	root.Child("right")

	expected := "root\n" +
		" ├── left\n" +
		" │    └── leaf 1\n" +
		" └── right\n"
	require.Equal(t, expected, tp.String())
	// Any node renders the whole tree.
	require.Equal(t, expected, left.String())
}

func TestTreePrinterEmpty(t *testing.T) {
	require.Equal(t, "", New().String())
}
