package game

import (
	"fmt"
	"strings"
)

// String renders the board as ASCII, one row per line with column and row
// headers. Hidden cells are "-", flags "F", revealed mines "*", empty cells
// "." and numbered cells their count.
func (b *Board) String() string {
	var sb strings.Builder

	// Column header
	sb.WriteString("   ")
	for x := 0; x < b.width; x++ {
		fmt.Fprintf(&sb, "%2d", x%100)
	}
	sb.WriteString("\n")

	for y := 0; y < b.height; y++ {
		fmt.Fprintf(&sb, "%2d:", y%100)
		for x := 0; x < b.width; x++ {
			sb.WriteString(" ")
			sb.WriteByte(b.grid[y][x].symbol())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (c Cell) symbol() byte {
	switch {
	case c.IsFlagged:
		return 'F'
	case !c.IsRevealed:
		return '-'
	case c.IsMine:
		return '*'
	case c.AdjacentMines == 0:
		return '.'
	default:
		return byte('0' + c.AdjacentMines)
	}
}
