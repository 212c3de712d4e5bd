// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrMalformedInput is a marker for errors returned when a generator is given
// input it cannot run on (a non-numeric value, an unknown node, a negative
// weight where none is allowed). No trace is produced in that case.
var ErrMalformedInput = errors.New("algoviz: malformed input")

// MalformedInputErrorf formats an error and marks it as ErrMalformedInput.
func MalformedInputErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedInput)
}

// MarkMalformedInput marks err as ErrMalformedInput, keeping its message.
func MarkMalformedInput(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrMalformedInput)
}

// IsMalformedInput returns true if the error is (or wraps) an
// ErrMalformedInput.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
