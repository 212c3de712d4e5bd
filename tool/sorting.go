// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"

	"github.com/cockroachdb/algoviz/sorting"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// sortingT implements the sort and search commands.
type sortingT struct {
	Sort      *cobra.Command
	Bubble    *cobra.Command
	Selection *cobra.Command
	Insertion *cobra.Command
	Search    *cobra.Command
	Linear    *cobra.Command
	Binary    *cobra.Command

	t      *T
	values intList
	target int
}

func newSorting(t *T) *sortingT {
	s := &sortingT{t: t}

	s.Sort = &cobra.Command{
		Use:   "sort",
		Short: "sorting traces",
	}
	s.Bubble = &cobra.Command{
		Use:   "bubble",
		Short: "trace bubble sort",
		Args:  cobra.NoArgs,
		RunE:  s.runSort(sorting.BubbleSort),
	}
	s.Selection = &cobra.Command{
		Use:   "selection",
		Short: "trace selection sort",
		Args:  cobra.NoArgs,
		RunE:  s.runSort(sorting.SelectionSort),
	}
	s.Insertion = &cobra.Command{
		Use:   "insertion",
		Short: "trace insertion sort",
		Args:  cobra.NoArgs,
		RunE:  s.runSort(sorting.InsertionSort),
	}
	s.Search = &cobra.Command{
		Use:   "search",
		Short: "searching traces",
	}
	s.Linear = &cobra.Command{
		Use:   "linear",
		Short: "trace a linear search for --target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return t.emit(cmd, sorting.LinearSearch(s.values, s.target), countersTable)
		},
	}
	s.Binary = &cobra.Command{
		Use:   "binary",
		Short: "trace a binary search for --target in sorted --values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := sorting.BinarySearch(s.values, s.target)
			if err != nil {
				return err
			}
			return t.emit(cmd, tr, countersTable)
		},
	}

	s.Sort.AddCommand(s.Bubble, s.Selection, s.Insertion)
	s.Search.AddCommand(s.Linear, s.Binary)
	for _, root := range []*cobra.Command{s.Sort, s.Search} {
		t.addRenderFlags(root)
		root.PersistentFlags().Var(
			&s.values, "values", "the array to operate on")
		root.PersistentFlags().BoolVar(
			&t.render.plot, "plot", false, "plot the array values of every step")
	}
	for _, cmd := range []*cobra.Command{s.Linear, s.Binary} {
		cmd.Flags().IntVar(&s.target, "target", 0, "the value to look for")
		_ = cmd.MarkFlagRequired("target")
	}
	return s
}

func (s *sortingT) runSort(gen func([]int) *trace.Trace) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return s.t.emit(cmd, gen(s.values), countersTable)
	}
}

// countersTable prints the comparison and swap counts of the final step.
func countersTable(w io.Writer, last trace.Step) {
	s, ok := last.Snapshot().(*sorting.Snapshot)
	if !ok {
		return
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Length", "Comparisons", "Swaps"})
	tbl.Append([]string{fmt.Sprint(len(s.Values)), fmt.Sprint(s.Comparisons), fmt.Sprint(s.Swaps)})
	tbl.Render()
}
