// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/algoviz/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algoviz [command] (flags)",
	Short: "algorithm trace generation and playback tool",
	Long: `
Generate step-by-step traces of data structure operations and algorithms,
print them, or play them back one step per tick.

Environment:
  ALGOVIZ_SPEED       default playback speed multiplier (default 1)
  ALGOVIZ_AUTOPLAY    play traces back by default
  ALGOVIZ_LOG_EVENTS  log playback events to stderr
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cfg, err := tool.ParseConfig()
	if err != nil {
		log.Fatal(err)
	}
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(tool.New(cfg).Commands...)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
