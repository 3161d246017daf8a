package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-sweeper/game"
	"github.com/beka-birhanu/vinom-sweeper/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoard(t *testing.T) uuid.UUID {
	t.Helper()
	appLogger = log.New(io.Discard, "", 0)

	var err error
	boardManager, err = service.NewBoardManager(&service.Config{
		BoardFactory: func(width, height, mineCount int) (*game.Board, error) {
			return game.New(width, height, mineCount, game.WithMinePlacer(game.FixedPlacer(game.CellPosition{X: 2, Y: 2})))
		},
	})
	require.NoError(t, err)

	id, err := boardManager.Create(3, 3, 1)
	require.NoError(t, err)
	return id
}

func TestPlay(t *testing.T) {
	t.Run("Winning game", func(t *testing.T) {
		id := setupBoard(t)
		var out bytes.Buffer

		require.NoError(t, play(id, strings.NewReader("r 0 0\n"), &out))
		assert.Contains(t, out.String(), " 0: . . .\n")
		assert.Contains(t, out.String(), "You win!")
	})

	t.Run("Losing game", func(t *testing.T) {
		id := setupBoard(t)
		var out bytes.Buffer

		require.NoError(t, play(id, strings.NewReader("r 1 1\nr 2 2\nr 0 0\n"), &out))
		assert.Contains(t, out.String(), "Boom! Mines were at [{2 2}]")
		assert.Equal(t, game.StatusSteppedMine, boardManager.Status(id))
	})

	t.Run("Bad input is reported and skipped", func(t *testing.T) {
		id := setupBoard(t)
		var out bytes.Buffer

		input := "x\nr a 1\nr 1\nr 5 5\nf 2 2\nq\nr 0 0\n"
		require.NoError(t, play(id, strings.NewReader(input), &out))

		assert.Contains(t, out.String(), `unknown command "x"`)
		assert.Contains(t, out.String(), `invalid column "a"`)
		assert.Contains(t, out.String(), "expected two coordinates, got 1")
		assert.Contains(t, out.String(), game.ErrOutOfBounds.Error())
		assert.NotContains(t, out.String(), game.ErrNotInitialized.Error())
		assert.Equal(t, game.StatusStarted, boardManager.Status(id))

		cell, err := boardManager.Cell(id, 2, 2)
		require.NoError(t, err)
		assert.True(t, cell.IsFlagged)
	})
}
