// Package score converts between the engine's signed integer scores and
// human-facing notions like distance to the end of the game, and holds the shared score bound
// constants used by both the transposition table and the search.
package score

import (
	"golang.org/x/exp/constraints"

	"github.com/connectfour/c4solver/internal/position"
)

const (
	// MinScore is the worst possible score: a loss as early as possible.
	MinScore = -(position.BoardSize)/2 + 3
	// MaxScore is the best possible score: a win as early as possible.
	MaxScore = (position.BoardSize)/2 - 3
)

// ToWinDistance converts an engine score for a position with the given move
// count into a distance to the end of the game, assuming perfect play by
// both sides. For a draw it is the number of plies left until the board is
// full; for a win or a loss it counts moves of the winning side, roughly
// half the plies left.
func ToWinDistance(s, moves int) int {
	switch {
	case s == 0:
		return position.BoardSize - moves
	case s > 0:
		return (position.BoardSize/2 + 1 - s) - moves/2
	default:
		return (position.BoardSize/2 + 1 + s) - moves/2
	}
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
