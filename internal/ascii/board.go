// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii draws text diagrams on a growable grid of runes.
package ascii

import (
	"fmt"
	"strings"
)

// Board is a grid of runes that grows as text is written past its edges.
type Board struct {
	rows  [][]rune
	width int
}

// Make returns a Board with the given initial size.
func Make(width, height int) Board {
	b := Board{width: width}
	for range height {
		b.addRow()
	}
	return b
}

func (b *Board) addRow() {
	row := make([]rune, b.width)
	for i := range row {
		row[i] = ' '
	}
	b.rows = append(b.rows, row)
}

// At returns a cursor at the given row and column.
func (b *Board) At(r, c int) Cursor {
	return Cursor{b: b, r: r, c: c, cr: c}
}

// NewLine returns a cursor at the start of a new row below the content.
func (b *Board) NewLine() Cursor {
	b.addRow()
	return b.At(len(b.rows)-1, 0)
}

// Lines returns the number of rows.
func (b *Board) Lines() int { return len(b.rows) }

// String renders the board with trailing spaces trimmed from every row.
func (b *Board) String() string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// Reset clears the board.
func (b *Board) Reset(width int) {
	b.rows = b.rows[:0]
	b.width = width
}

func (b *Board) set(r, c int, ch rune) {
	for r >= len(b.rows) {
		b.addRow()
	}
	if c >= b.width {
		b.width = c + 1
	}
	row := b.rows[r]
	for len(row) < b.width {
		row = append(row, ' ')
	}
	row[c] = ch
	b.rows[r] = row
}

// Cursor is a position on a Board. Cursors are values; every method returns a
// new cursor.
type Cursor struct {
	b    *Board
	r, c int
	// cr is the column newlines return to.
	cr int
}

// Row returns the cursor's row.
func (c Cursor) Row() int { return c.r }

// Column returns the cursor's column.
func (c Cursor) Column() int { return c.c }

// Right moves the cursor n columns right.
func (c Cursor) Right(n int) Cursor {
	c.c += n
	return c
}

// Down moves the cursor n rows down, keeping its column.
func (c Cursor) Down(n int) Cursor {
	c.r += n
	return c
}

// WriteString writes s at the cursor and returns the cursor after the last
// rune. A newline moves to the next row, at the column the cursor was created
// at.
func (c Cursor) WriteString(s string) Cursor {
	for _, ch := range s {
		if ch == '\n' {
			c.r++
			c.c = c.cr
			continue
		}
		c.b.set(c.r, c.c, ch)
		c.c++
	}
	return c
}

// Printf writes formatted text at the cursor.
func (c Cursor) Printf(format string, args ...any) Cursor {
	return c.WriteString(fmt.Sprintf(format, args...))
}

// Repeat writes ch n times.
func (c Cursor) Repeat(n int, ch rune) Cursor {
	for range n {
		c.b.set(c.r, c.c, ch)
		c.c++
	}
	return c
}
