package game

import (
	"math/rand"
	"time"
)

// MinePlacer picks count positions out of candidates to hold mines.
// candidates never contains the first-click position.
type MinePlacer func(candidates []CellPosition, count int) []CellPosition

// ShufflePlacer returns a MinePlacer that shuffles the candidates with r
// and takes the first count of them.
func ShufflePlacer(r *rand.Rand) MinePlacer {
	return func(candidates []CellPosition, count int) []CellPosition {
		shuffled := make([]CellPosition, len(candidates))
		copy(shuffled, candidates)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled[:count]
	}
}

// FixedPlacer returns a MinePlacer that always yields positions,
// regardless of the candidates offered.
func FixedPlacer(positions ...CellPosition) MinePlacer {
	return func(_ []CellPosition, _ int) []CellPosition {
		return positions
	}
}

// Option configures a Board.
type Option func(*Board)

// WithMinePlacer sets the strategy used to lay mines on the first click.
func WithMinePlacer(p MinePlacer) Option {
	return func(b *Board) {
		b.placer = p
	}
}

// WithRand shuffles mine positions with r.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.placer = ShufflePlacer(r)
	}
}

// WithSeed shuffles mine positions with a generator seeded by seed,
// making layouts reproducible.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func defaultPlacer() MinePlacer {
	return ShufflePlacer(rand.New(rand.NewSource(time.Now().UnixNano())))
}
