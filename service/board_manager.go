package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/beka-birhanu/vinom-sweeper/config"
	"github.com/beka-birhanu/vinom-sweeper/game"
	"github.com/beka-birhanu/vinom-sweeper/service/i"
	"github.com/google/uuid"
)

var _ i.BoardManager = (*BoardManager)(nil)

// BoardManager errors.
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrTooManyBoards  = errors.New("too many live boards")
	ErrGameInProgress = errors.New("game is still in progress")
)

// BoardFactory builds a board for the given dimensions and mine count.
type BoardFactory func(width, height, mineCount int) (*game.Board, error)

// BoardManager is a handle table of live boards. Every call holds the
// manager lock, so hosts never touch a board concurrently.
type BoardManager struct {
	boards       map[uuid.UUID]*game.Board
	boardFactory BoardFactory
	maxBoards    int
	logger       *log.Logger
	sync.RWMutex
}

// Config is used to initialize a BoardManager.
type Config struct {
	BoardFactory BoardFactory // Defaults to game.New with random layouts.
	MaxBoards    int          // Maximum live boards; 0 means unlimited.
	Logger       *log.Logger  // Discards output when nil.
}

// NewBoardManager creates an empty BoardManager.
func NewBoardManager(c *Config) (*BoardManager, error) {
	if c == nil {
		c = &Config{}
	}
	if c.MaxBoards < 0 {
		return nil, fmt.Errorf("invalid max boards: %d", c.MaxBoards)
	}

	bm := &BoardManager{
		boards:       make(map[uuid.UUID]*game.Board),
		boardFactory: c.BoardFactory,
		maxBoards:    c.MaxBoards,
		logger:       c.Logger,
	}

	if bm.boardFactory == nil {
		bm.boardFactory = func(width, height, mineCount int) (*game.Board, error) {
			return game.New(width, height, mineCount)
		}
	}

	if bm.logger == nil {
		bm.logger = log.New(io.Discard, "", 0)
	}

	return bm, nil
}

// SeededBoardFactory returns a BoardFactory whose boards shuffle mines with
// a generator seeded by seed. A zero seed keeps layouts random.
func SeededBoardFactory(seed int64) BoardFactory {
	return func(width, height, mineCount int) (*game.Board, error) {
		if seed == 0 {
			return game.New(width, height, mineCount)
		}
		return game.New(width, height, mineCount, game.WithSeed(seed))
	}
}

// Create builds a new board and stores it under a fresh handle.
func (bm *BoardManager) Create(width, height, mineCount int) (uuid.UUID, error) {
	bm.Lock()
	defer bm.Unlock()

	if bm.maxBoards > 0 && len(bm.boards) >= bm.maxBoards {
		bm.logger.Printf("%s[ERROR]%s refusing new board: %d boards live", config.LogErrorColor, config.LogColorReset, len(bm.boards))
		return uuid.Nil, ErrTooManyBoards
	}

	board, err := bm.boardFactory(width, height, mineCount)
	if err != nil {
		bm.logger.Printf("%s[ERROR]%s creating %dx%d board with %d mines: %s", config.LogErrorColor, config.LogColorReset, width, height, mineCount, err)
		return uuid.Nil, err
	}

	id := uuid.New()
	for {
		if _, ok := bm.boards[id]; !ok {
			break
		}
		id = uuid.New()
	}
	bm.boards[id] = board

	bm.logger.Printf("%s[INFO]%s created %dx%d board with %d mines: %s", config.LogInfoColor, config.LogColorReset, width, height, mineCount, id)
	return id, nil
}

// Initialize places the mines of the board, keeping the first click safe.
func (bm *BoardManager) Initialize(id uuid.UUID, firstClickX, firstClickY int) error {
	bm.Lock()
	defer bm.Unlock()

	board, err := bm.mutableBoard(id, "initialize")
	if err != nil {
		return err
	}

	if err := board.Initialize(firstClickX, firstClickY); err != nil {
		bm.logger.Printf("%s[ERROR]%s initializing board %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return err
	}

	bm.logger.Printf("%s[INFO]%s initialized board %s at (%d,%d)", config.LogInfoColor, config.LogColorReset, id, firstClickX, firstClickY)
	return nil
}

// Reveal exposes the cell at (x, y) and returns the board status afterwards.
// Unknown handles yield game.StatusError.
func (bm *BoardManager) Reveal(id uuid.UUID, x, y int) (game.Status, error) {
	bm.Lock()
	defer bm.Unlock()

	board, err := bm.mutableBoard(id, "reveal")
	if err != nil {
		return game.StatusError, err
	}

	before := board.Status()
	if err := board.Reveal(x, y); err != nil {
		return board.Status(), err
	}

	after := board.Status()
	if after != before && after.IsTerminal() {
		bm.logger.Printf("%s[INFO]%s board %s finished: %s", config.LogInfoColor, config.LogColorReset, id, after)
	}
	return after, nil
}

// ToggleFlag flips the flag on the cell at (x, y).
func (bm *BoardManager) ToggleFlag(id uuid.UUID, x, y int) error {
	bm.Lock()
	defer bm.Unlock()

	board, err := bm.mutableBoard(id, "toggle flag")
	if err != nil {
		return err
	}
	return board.ToggleFlag(x, y)
}

// Cell returns a snapshot of the cell at (x, y).
func (bm *BoardManager) Cell(id uuid.UUID, x, y int) (game.Cell, error) {
	bm.RLock()
	defer bm.RUnlock()

	board, err := bm.board(id)
	if err != nil {
		return game.Cell{}, err
	}
	if !board.InBounds(x, y) {
		return game.Cell{}, game.ErrOutOfBounds
	}
	return board.CellAt(x, y), nil
}

// Status returns the status of the board, or game.StatusError when the
// handle is unknown.
func (bm *BoardManager) Status(id uuid.UUID) game.Status {
	bm.RLock()
	defer bm.RUnlock()

	board, err := bm.board(id)
	if err != nil {
		return game.StatusError
	}
	return board.Status()
}

// Render returns the ASCII view of the board.
func (bm *BoardManager) Render(id uuid.UUID) (string, error) {
	bm.RLock()
	defer bm.RUnlock()

	board, err := bm.board(id)
	if err != nil {
		return "", err
	}
	return board.String(), nil
}

// Mines returns the mine positions of a board once its game is over.
// Before that it returns ErrGameInProgress.
func (bm *BoardManager) Mines(id uuid.UUID) ([]game.CellPosition, error) {
	bm.RLock()
	defer bm.RUnlock()

	board, err := bm.board(id)
	if err != nil {
		return nil, err
	}
	if !board.Status().IsTerminal() {
		return nil, ErrGameInProgress
	}
	return board.Mines(), nil
}

// Destroy releases the board behind id.
func (bm *BoardManager) Destroy(id uuid.UUID) error {
	bm.Lock()
	defer bm.Unlock()

	if _, err := bm.mutableBoard(id, "destroy"); err != nil {
		return err
	}
	delete(bm.boards, id)

	bm.logger.Printf("%s[INFO]%s destroyed board %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// DestroyAll releases every live board.
func (bm *BoardManager) DestroyAll() {
	bm.Lock()
	defer bm.Unlock()

	for id := range bm.boards {
		delete(bm.boards, id)
	}
}

// Len returns the number of live boards.
func (bm *BoardManager) Len() int {
	bm.RLock()
	defer bm.RUnlock()
	return len(bm.boards)
}

// board looks up a live board. The caller must hold the lock.
func (bm *BoardManager) board(id uuid.UUID) (*game.Board, error) {
	board, ok := bm.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// mutableBoard looks up a live board for a state change and logs unknown
// handles. The caller must hold the write lock.
func (bm *BoardManager) mutableBoard(id uuid.UUID, op string) (*game.Board, error) {
	board, err := bm.board(id)
	if err != nil {
		bm.logger.Printf("%s[ERROR]%s %s on unknown board handle: %s", config.LogErrorColor, config.LogColorReset, op, id)
	}
	return board, err
}
