// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package algoviz replays recorded algorithm traces.
//
// A trace is produced once, eagerly, by one of the generator packages (bst,
// avl, graph, sorting, linear): the algorithm runs to completion and every
// semantically meaningful point of its execution is recorded as an immutable
// trace.Step holding a deep copy of the algorithm state. A Player then lets a
// viewer move through the recorded steps: forward, backward, to an arbitrary
// position, or automatically at one of a fixed set of speeds.
//
//	tr := bst.Insert([]int{50, 30, 70}, 40)
//	p := algoviz.NewPlayer(nil)
//	defer p.Close()
//	if err := p.Load(tr); err != nil {
//		return err
//	}
//	p.Subscribe(func(s algoviz.State) {
//		fmt.Println(s.Step())
//	})
//	p.Play()
//
// All Player methods are safe for concurrent use; each one is applied
// atomically. Subscribers and EventListener callbacks run after the Player's
// lock is released and always observe a consistent State.
package algoviz
