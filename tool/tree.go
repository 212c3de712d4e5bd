// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"

	"github.com/cockroachdb/algoviz/avl"
	"github.com/cockroachdb/algoviz/bst"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// treeT implements the binary search tree and AVL tree commands.
type treeT struct {
	BST         *cobra.Command
	BSTInsert   *cobra.Command
	BSTSearch   *cobra.Command
	BSTDelete   *cobra.Command
	BSTTraverse *cobra.Command
	AVL         *cobra.Command
	AVLInsert   *cobra.Command
	AVLSearch   *cobra.Command

	t     *T
	init  intList
	value int
	order string
}

func newTree(t *T) *treeT {
	r := &treeT{t: t}

	r.BST = &cobra.Command{
		Use:   "bst",
		Short: "binary search tree traces",
	}
	r.BSTInsert = &cobra.Command{
		Use:   "insert",
		Short: "trace inserting --value",
		Args:  cobra.NoArgs,
		RunE:  r.run(bst.Insert),
	}
	r.BSTSearch = &cobra.Command{
		Use:   "search",
		Short: "trace searching for --value",
		Args:  cobra.NoArgs,
		RunE:  r.run(bst.Search),
	}
	r.BSTDelete = &cobra.Command{
		Use:   "delete",
		Short: "trace deleting --value",
		Long: `
Trace deleting --value from the tree built from --init. A node with two
children is replaced by its in-order successor.
`,
		Args: cobra.NoArgs,
		RunE: r.run(bst.Delete),
	}
	r.BSTTraverse = &cobra.Command{
		Use:   "traverse",
		Short: "trace a depth-first traversal",
		Args:  cobra.NoArgs,
		RunE:  r.runTraverse,
	}
	r.AVL = &cobra.Command{
		Use:   "avl",
		Short: "AVL tree traces",
	}
	r.AVLInsert = &cobra.Command{
		Use:   "insert",
		Short: "trace inserting --value with rebalancing",
		Args:  cobra.NoArgs,
		RunE:  r.run(avl.Insert),
	}
	r.AVLSearch = &cobra.Command{
		Use:   "search",
		Short: "trace searching for --value",
		Args:  cobra.NoArgs,
		RunE:  r.run(avl.Search),
	}

	r.BST.AddCommand(r.BSTInsert, r.BSTSearch, r.BSTDelete, r.BSTTraverse)
	r.AVL.AddCommand(r.AVLInsert, r.AVLSearch)
	for _, root := range []*cobra.Command{r.BST, r.AVL} {
		t.addRenderFlags(root)
		root.PersistentFlags().Var(
			&r.init, "init", "keys inserted to build the initial tree")
		root.PersistentFlags().IntVar(
			&t.render.maxDepth, "max-depth", 0, "draw nodes deeper than this as \"...\" (0 uses the default)")
	}
	for _, cmd := range []*cobra.Command{r.BSTInsert, r.BSTSearch, r.BSTDelete, r.AVLInsert, r.AVLSearch} {
		cmd.Flags().IntVar(&r.value, "value", 0, "the key to operate on")
		_ = cmd.MarkFlagRequired("value")
	}
	r.BSTTraverse.Flags().StringVar(
		&r.order, "order", "in", "traversal order: in, pre or post")
	return r
}

func (r *treeT) run(gen func(initial []int, v int) *trace.Trace) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return r.t.emit(cmd, gen(r.init, r.value), keysTable)
	}
}

func (r *treeT) runTraverse(cmd *cobra.Command, args []string) error {
	var order tree.Traversal
	switch r.order {
	case "in":
		order = tree.InOrderTraversal
	case "pre":
		order = tree.PreOrderTraversal
	case "post":
		order = tree.PostOrderTraversal
	default:
		return errors.Newf("unknown traversal order %q", r.order)
	}
	return r.t.emit(cmd, bst.Traverse(r.init, order), keysTable)
}

// keysTable prints the key, height and balance factor of every node of the
// final tree in in-order.
func keysTable(w io.Writer, last trace.Step) {
	s, ok := last.Snapshot().(*tree.Snapshot)
	if !ok {
		return
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Key", "Height", "Balance"})
	tree.Walk(s.Root, tree.InOrderTraversal, func(n *tree.Node) {
		tbl.Append([]string{
			fmt.Sprint(n.Key),
			fmt.Sprint(tree.Height(n)),
			fmt.Sprint(tree.BalanceFactor(n)),
		})
	})
	tbl.Render()
}
