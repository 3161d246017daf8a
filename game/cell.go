package game

// Cell represents a single square of a minesweeper board.
type Cell struct {
	// IsMine reports whether the cell holds a mine. Fixed once mines are placed.
	IsMine bool
	// IsRevealed reports whether the player has exposed the cell. Never reset.
	IsRevealed bool
	// IsFlagged reports whether the player marked the cell. Only set while hidden.
	IsFlagged bool
	// AdjacentMines is the number of mines among the up to 8 surrounding cells.
	// Unused for mine cells.
	AdjacentMines int
}

// CellPosition addresses a cell by column (X) and row (Y).
type CellPosition struct {
	X int
	Y int
}

var (
	// orthogonal deltas used by the flood fill.
	orthogonal = []CellPosition{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

	// surrounding deltas used for adjacency counting.
	surrounding = []CellPosition{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)
