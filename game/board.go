/*
Package game implements the rules of minesweeper on a rectangular board.

A Board is created with its dimensions and mine count but without mines. Mines
are laid on the first click, excluding the clicked cell, after which every
safe cell knows how many mines surround it. Revealing a cell with no
surrounding mines opens the connected empty region and its numbered border.

A Board is not safe for concurrent use; callers serialize access.
*/
package game

import (
	"errors"
	"fmt"
)

// Board errors.
var (
	ErrInvalidDimension   = errors.New("board dimensions must be positive")
	ErrInvalidMineCount   = errors.New("mine count must be in [0, width*height)")
	ErrOutOfBounds        = errors.New("position is outside the board")
	ErrNotInitialized     = errors.New("board has no mines yet")
	ErrAlreadyInitialized = errors.New("board is already initialized")
	ErrInvalidPlacement   = errors.New("invalid mine placement")
)

// Board is a minesweeper grid together with its mine layout and status.
type Board struct {
	width     int
	height    int
	mineCount int
	status    Status
	grid      [][]Cell // Indexed grid[y][x].
	placer    MinePlacer
}

// New creates a width x height board that will hold mineCount mines once
// initialized. All cells start hidden, unflagged and mine free.
func New(width, height, mineCount int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, ErrInvalidMineCount
	}

	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}

	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		status:    StatusStarted,
		grid:      grid,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.placer == nil {
		b.placer = defaultPlacer()
	}

	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines the board holds once initialized.
func (b *Board) MineCount() int { return b.mineCount }

// Status returns the current game status.
func (b *Board) Status() Status { return b.status }

// InBounds reports whether (x, y) addresses a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// CellAt returns a copy of the cell at (x, y). It panics when the position
// is outside the board.
func (b *Board) CellAt(x, y int) Cell {
	return b.grid[y][x]
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	flags := 0
	for y := range b.grid {
		for x := range b.grid[y] {
			if b.grid[y][x].IsFlagged {
				flags++
			}
		}
	}
	return flags
}

// MinesRemaining returns the mine count minus the flags placed. It goes
// negative when the player over-flags.
func (b *Board) MinesRemaining() int {
	return b.mineCount - b.FlagCount()
}

// Initialize lays the mines, keeping (firstClickX, firstClickY) safe, and
// computes adjacency counts. It moves the board from StatusStarted to
// StatusOngoing and may only be called once.
func (b *Board) Initialize(firstClickX, firstClickY int) error {
	if b.status != StatusStarted {
		return ErrAlreadyInitialized
	}
	if !b.InBounds(firstClickX, firstClickY) {
		return ErrOutOfBounds
	}

	if err := b.placeMines(firstClickX, firstClickY); err != nil {
		return err
	}
	b.calculateAdjacentMines()
	b.status = StatusOngoing
	return nil
}

// placeMines asks the placer for a layout among every cell except the first
// click and validates it before touching the grid.
func (b *Board) placeMines(firstClickX, firstClickY int) error {
	candidates := make([]CellPosition, 0, b.width*b.height-1)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x == firstClickX && y == firstClickY {
				continue
			}
			candidates = append(candidates, CellPosition{X: x, Y: y})
		}
	}

	mines := b.placer(candidates, b.mineCount)
	if len(mines) != b.mineCount {
		return fmt.Errorf("%w: got %d mines, want %d", ErrInvalidPlacement, len(mines), b.mineCount)
	}

	seen := make(map[CellPosition]struct{}, len(mines))
	for _, pos := range mines {
		if !b.InBounds(pos.X, pos.Y) {
			return fmt.Errorf("%w: mine at (%d,%d) is outside the board", ErrInvalidPlacement, pos.X, pos.Y)
		}
		if pos.X == firstClickX && pos.Y == firstClickY {
			return fmt.Errorf("%w: mine under the first click", ErrInvalidPlacement)
		}
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("%w: duplicate mine at (%d,%d)", ErrInvalidPlacement, pos.X, pos.Y)
		}
		seen[pos] = struct{}{}
	}

	for _, pos := range mines {
		b.grid[pos.Y][pos.X].IsMine = true
	}
	return nil
}

// calculateAdjacentMines counts the mines around every safe cell.
func (b *Board) calculateAdjacentMines() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.grid[y][x].IsMine {
				continue
			}
			count := 0
			for _, d := range surrounding {
				nx, ny := x+d.X, y+d.Y
				if b.InBounds(nx, ny) && b.grid[ny][nx].IsMine {
					count++
				}
			}
			b.grid[y][x].AdjacentMines = count
		}
	}
}

// Open initializes the board around (x, y) if no mines are placed yet and
// then reveals (x, y). A flagged first click still places the mines but
// leaves the cell hidden.
func (b *Board) Open(x, y int) error {
	if b.status == StatusStarted {
		if err := b.Initialize(x, y); err != nil {
			return err
		}
	}
	return b.Reveal(x, y)
}

// Reveal exposes the cell at (x, y) and updates the status.
//
// Revealing a mine ends the game with StatusSteppedMine. Revealing a cell with
// no adjacent mines also opens its 4-connected empty region plus the numbered
// cells bordering it. Flagged cells are left untouched, and so is every cell
// once the game is over.
func (b *Board) Reveal(x, y int) error {
	if b.status == StatusStarted {
		return ErrNotInitialized
	}
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.status.IsTerminal() {
		return nil
	}

	cell := &b.grid[y][x]
	if cell.IsFlagged {
		return nil
	}

	cell.IsRevealed = true
	if cell.IsMine {
		b.status = StatusSteppedMine
		return nil
	}

	if cell.AdjacentMines == 0 {
		b.floodFill(x, y)
	}

	b.UpdateStatus()
	return nil
}

// floodFill opens the empty region around an already revealed zero cell.
// Cells are marked revealed before being pushed, so each is visited once.
func (b *Board) floodFill(x, y int) {
	stack := []CellPosition{{X: x, Y: y}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range orthogonal {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !b.InBounds(nx, ny) {
				continue
			}
			next := &b.grid[ny][nx]
			if next.IsRevealed || next.IsFlagged || next.IsMine {
				continue
			}
			next.IsRevealed = true
			if next.AdjacentMines == 0 {
				stack = append(stack, CellPosition{X: nx, Y: ny})
			}
		}
	}
}

// ToggleFlag flips the flag on a hidden cell. Cells may be flagged before the
// mines are placed. Revealed cells and finished games are left as they are.
func (b *Board) ToggleFlag(x, y int) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.status.IsTerminal() {
		return nil
	}

	cell := &b.grid[y][x]
	if cell.IsRevealed {
		return nil
	}
	cell.IsFlagged = !cell.IsFlagged
	return nil
}

// UpdateStatus declares victory once every safe cell is revealed. Flags on
// mines are not required. Terminal and not yet initialized boards are left
// unchanged.
func (b *Board) UpdateStatus() {
	if b.status != StatusOngoing {
		return
	}
	for y := range b.grid {
		for x := range b.grid[y] {
			c := b.grid[y][x]
			if !c.IsMine && !c.IsRevealed {
				return
			}
		}
	}
	b.status = StatusVictory
}

// Mines returns the positions of every mine, row by row. Hosts use it to
// uncover the layout once the game is lost.
func (b *Board) Mines() []CellPosition {
	mines := make([]CellPosition, 0, b.mineCount)
	for y := range b.grid {
		for x := range b.grid[y] {
			if b.grid[y][x].IsMine {
				mines = append(mines, CellPosition{X: x, Y: y})
			}
		}
	}
	return mines
}
