// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the algoviz command line: one cobra command per
// generator family, each printing or playing back the generated trace.
package tool

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/algoviz"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Config holds the settings read from the environment. Command line flags
// default to these values.
type Config struct {
	// Speed is the default playback speed multiplier.
	Speed float64 `env:"ALGOVIZ_SPEED" envDefault:"1"`
	// Autoplay plays traces back instead of printing them at once.
	Autoplay bool `env:"ALGOVIZ_AUTOPLAY"`
	// LogEvents logs player lifecycle events to stderr.
	LogEvents bool `env:"ALGOVIZ_LOG_EVENTS"`
}

// ParseConfig reads the Config from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// T is the container for all of the algoviz commands.
type T struct {
	Commands []*cobra.Command
	tree     *treeT
	graph    *graphT
	sorting  *sortingT
	linear   *linearT
	bench    *benchT

	cfg    Config
	render renderOptions
	// clock drives autoplay; nil uses the wall clock.
	clock algoviz.Clock
}

// New creates the algoviz commands.
func New(cfg Config) *T {
	t := &T{cfg: cfg}
	t.tree = newTree(t)
	t.graph = newGraph(t)
	t.sorting = newSorting(t)
	t.linear = newLinear(t)
	t.bench = newBench()
	t.Commands = []*cobra.Command{
		t.tree.BST,
		t.tree.AVL,
		t.graph.Root,
		t.sorting.Sort,
		t.sorting.Search,
		t.linear.Stack,
		t.linear.Queue,
		t.linear.Array,
		t.bench.Root,
	}
	return t
}

// addRenderFlags registers the playback flags shared by every generator
// command on root.
func (t *T) addRenderFlags(root *cobra.Command) {
	root.PersistentFlags().BoolVar(
		&t.render.play, "play", t.cfg.Autoplay, "play the trace back one step per tick")
	root.PersistentFlags().Float64Var(
		&t.render.speed, "speed", t.cfg.Speed, "playback speed multiplier")
	root.PersistentFlags().IntVar(
		&t.render.step, "step", 0, "print only the given step, counting from 1 (with --play, start from it)")
	root.PersistentFlags().BoolVar(
		&t.render.summary, "summary", false, "print a summary table after the trace")
}
