package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults when nothing is set", func(t *testing.T) {
		for _, key := range []string{"SWEEPER_WIDTH", "SWEEPER_HEIGHT", "SWEEPER_MINES", "SWEEPER_MAX_BOARDS", "SWEEPER_SEED"} {
			t.Setenv(key, "")
		}

		c := initConfig()
		assert.Equal(t, Config{BoardWidth: 9, BoardHeight: 9, BoardMines: 10, MaxBoards: 1}, c)
	})

	t.Run("Values from the environment", func(t *testing.T) {
		t.Setenv("SWEEPER_WIDTH", "30")
		t.Setenv("SWEEPER_HEIGHT", "16")
		t.Setenv("SWEEPER_MINES", "99")
		t.Setenv("SWEEPER_MAX_BOARDS", "0")
		t.Setenv("SWEEPER_SEED", "1234")

		c := initConfig()
		assert.Equal(t, 30, c.BoardWidth)
		assert.Equal(t, 16, c.BoardHeight)
		assert.Equal(t, 99, c.BoardMines)
		assert.Equal(t, 0, c.MaxBoards)
		assert.Equal(t, int64(1234), c.Seed)
	})
}
