// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import "unicode/utf8"

// Cell is one box of a row drawn by Cells.
type Cell struct {
	Text string
	// Label is written under the box (an index, "top", "front").
	Label string
	// Marked cells are drawn with a double border.
	Marked bool
}

// Cells draws the cells as a row of boxes starting at the cursor and returns
// a cursor on the row after the drawing. Labels get a row of their own when
// any cell has one.
//
//	┌────┬────╥────╖
//	│ 10 │ 20 ║ 30 ║
//	└────┴────╨────╜
//	  0    1    2
func Cells(c Cursor, cells []Cell) Cursor {
	if len(cells) == 0 {
		return c.WriteString("(empty)").Down(1).setColumn(c.c)
	}
	top, mid, bot := c, c.Down(1), c.Down(2)
	labels := c.Down(3)
	hasLabels := false
	for i, cell := range cells {
		w := max(utf8.RuneCountInString(cell.Text), utf8.RuneCountInString(cell.Label)) + 2
		prevMarked := i > 0 && cells[i-1].Marked
		switch {
		case i == 0 && cell.Marked:
			top, mid, bot = top.WriteString("╓"), mid.WriteString("║"), bot.WriteString("╙")
		case i == 0:
			top, mid, bot = top.WriteString("┌"), mid.WriteString("│"), bot.WriteString("└")
		case cell.Marked || prevMarked:
			top, mid, bot = top.WriteString("╥"), mid.WriteString("║"), bot.WriteString("╨")
		default:
			top, mid, bot = top.WriteString("┬"), mid.WriteString("│"), bot.WriteString("┴")
		}
		labels = labels.Right(1)
		top = top.Repeat(w, '─')
		mid = mid.WriteString(" " + cell.Text).Repeat(w-1-utf8.RuneCountInString(cell.Text), ' ')
		bot = bot.Repeat(w, '─')
		if cell.Label != "" {
			hasLabels = true
			labels.Right(1).WriteString(cell.Label)
		}
		labels = labels.Right(w)
	}
	if cells[len(cells)-1].Marked {
		top.WriteString("╖")
		mid.WriteString("║")
		bot.WriteString("╜")
	} else {
		top.WriteString("┐")
		mid.WriteString("│")
		bot.WriteString("┘")
	}
	if hasLabels {
		return c.Down(4)
	}
	return c.Down(3)
}

func (c Cursor) setColumn(col int) Cursor {
	c.c = col
	return c
}
