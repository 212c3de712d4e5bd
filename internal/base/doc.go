// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines fundamental types shared by the trace generators and
// the player: the Logger interface, error markers for malformed generator
// input, and a stopwatch used to time trace generation.
package base
