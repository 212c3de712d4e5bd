// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/algoviz/internal/strparse"
	"github.com/spf13/pflag"
)

// intList is a pflag.Value holding a comma or whitespace separated list of
// integers.
type intList []int

var _ pflag.Value = (*intList)(nil)

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Type() string {
	return "ints"
}

func (l *intList) Set(v string) error {
	vals, err := strparse.Ints(v)
	if err != nil {
		return err
	}
	*l = vals
	return nil
}
