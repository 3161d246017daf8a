package i

import (
	"github.com/beka-birhanu/vinom-sweeper/game"
	"github.com/google/uuid"
)

// BoardManager owns live minesweeper boards and exposes them to hosts
// through opaque handles.
type BoardManager interface {
	// Create allocates a new board and returns its handle.
	Create(width, height, mineCount int) (uuid.UUID, error)

	// Initialize places the mines, keeping the first click safe.
	Initialize(id uuid.UUID, firstClickX, firstClickY int) error

	// Reveal exposes a cell and returns the resulting status.
	// game.StatusError is returned for an unknown handle.
	Reveal(id uuid.UUID, x, y int) (game.Status, error)

	// ToggleFlag flips the flag on a hidden cell.
	ToggleFlag(id uuid.UUID, x, y int) error

	// Cell returns a snapshot of a single cell.
	Cell(id uuid.UUID, x, y int) (game.Cell, error)

	// Status returns the board status, or game.StatusError for an unknown handle.
	Status(id uuid.UUID) game.Status

	// Render returns an ASCII view of the board.
	Render(id uuid.UUID) (string, error)

	// Destroy releases the board. The handle is invalid afterwards.
	Destroy(id uuid.UUID) error
}
