// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/cockroachdb/algoviz/linear"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/spf13/cobra"
)

// linearT implements the stack, queue and array commands. Every command
// builds the structure from --init and --capacity and traces one operation.
type linearT struct {
	Stack *cobra.Command
	Queue *cobra.Command
	Array *cobra.Command

	t        *T
	capacity int
	init     intList
	value    int
	index    int
}

func newLinear(t *T) *linearT {
	l := &linearT{t: t}

	l.Stack = &cobra.Command{
		Use:   "stack",
		Short: "bounded stack traces",
	}
	l.Stack.AddCommand(
		l.command("push", "trace pushing --value", true, false, func() (*trace.Trace, error) {
			s, err := linear.NewStack(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return s.Push(l.value), nil
		}),
		l.command("pop", "trace popping the top value", false, false, func() (*trace.Trace, error) {
			s, err := linear.NewStack(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return s.Pop(), nil
		}),
		l.command("peek", "trace reading the top value", false, false, func() (*trace.Trace, error) {
			s, err := linear.NewStack(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return s.Peek(), nil
		}),
	)

	l.Queue = &cobra.Command{
		Use:   "queue",
		Short: "bounded queue traces",
	}
	l.Queue.AddCommand(
		l.command("enqueue", "trace adding --value at the rear", true, false, func() (*trace.Trace, error) {
			q, err := linear.NewQueue(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return q.Enqueue(l.value), nil
		}),
		l.command("dequeue", "trace removing the front value", false, false, func() (*trace.Trace, error) {
			q, err := linear.NewQueue(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return q.Dequeue(), nil
		}),
		l.command("peek", "trace reading the front value", false, false, func() (*trace.Trace, error) {
			q, err := linear.NewQueue(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return q.Peek(), nil
		}),
	)

	l.Array = &cobra.Command{
		Use:   "array",
		Short: "bounded array traces",
	}
	l.Array.AddCommand(
		l.command("insert", "trace inserting --value at --index", true, true, func() (*trace.Trace, error) {
			a, err := linear.NewArray(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return a.InsertAt(l.index, l.value), nil
		}),
		l.command("delete", "trace deleting the value at --index", false, true, func() (*trace.Trace, error) {
			a, err := linear.NewArray(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return a.DeleteAt(l.index), nil
		}),
		l.command("update", "trace setting --index to --value", true, true, func() (*trace.Trace, error) {
			a, err := linear.NewArray(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return a.Update(l.index, l.value), nil
		}),
		l.command("get", "trace reading the value at --index", false, true, func() (*trace.Trace, error) {
			a, err := linear.NewArray(l.capacity, l.init...)
			if err != nil {
				return nil, err
			}
			return a.Get(l.index), nil
		}),
	)

	for _, root := range []*cobra.Command{l.Stack, l.Queue, l.Array} {
		t.addRenderFlags(root)
		root.PersistentFlags().IntVar(
			&l.capacity, "capacity", 8, "the maximum number of values")
		root.PersistentFlags().Var(
			&l.init, "init", "the initial values")
	}
	return l
}

func (l *linearT) command(
	use, short string, value, index bool, gen func() (*trace.Trace, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := gen()
			if err != nil {
				return err
			}
			return l.t.emit(cmd, tr, nil)
		},
	}
	if value {
		cmd.Flags().IntVar(&l.value, "value", 0, "the value to add")
		_ = cmd.MarkFlagRequired("value")
	}
	if index {
		cmd.Flags().IntVar(&l.index, "index", 0, "the position to operate on")
		_ = cmd.MarkFlagRequired("index")
	}
	return cmd
}
