package search

import "github.com/connectfour/c4solver/internal/position"

// Result is the outcome of a solve: an exact score for the side to move,
// and the move that achieves it. BestMove is position.Width ("no move") at
// a terminal root, matching spec's out-of-band sentinel.
type Result struct {
	Score     int
	BestMove  int
	NodeCount uint64
}

// Solve performs the outer iterated null-window search: it repeatedly
// narrows [min, max) with null-window probes (beta = alpha+1) biased toward
// zero, which proves draws fastest, until the window collapses to the exact
// score.
func (e *Engine) Solve(p position.Position) Result {
	return e.solve(p, nil)
}

// SolveVerbose behaves exactly like Solve but additionally logs one debug
// event per outer-loop iteration with the current depth estimate and
// window uncertainty, mirroring the reference solver's verbose mode. The
// returned score and move are identical to Solve's.
func (e *Engine) SolveVerbose(p position.Position) Result {
	return e.solve(p, logIteration)
}

func logIteration(p position.Position, min, max int) {
	depth := position.BoardSize - p.Moves() - minInt(abs(min), abs(max))
	log.Debug().
		Int("depth", depth).
		Int("total_depth", position.BoardSize-p.Moves()).
		Int("uncertainty", max-min).
		Msg("search iteration")
}

func (e *Engine) solve(p position.Position, trace func(position.Position, int, int)) Result {
	e.nodes = 0
	min :=-(position.BoardSize - p.Moves()) / 2
	max := (position.BoardSize + 1 - p.Moves()) / 2
	bestMove := position.Width

	for min < max {
		mid := min + (max-min)/2
		switch {
		case mid <= 0 && min/2 < mid:
			mid = min / 2
		case mid >= 0 && max/2 > mid:
			mid = max / 2
		}

		if trace != nil {
			trace(p, min, max)
		}

		result, move := e.topLevel(p, mid, mid+1)
		bestMove = move

		if result <= mid {
			max = result
		} else {
			min = result
		}
	}

	return Result{Score: min, BestMove: bestMove, NodeCount: e.nodes}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
