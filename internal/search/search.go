// Package search implements the negamax alpha-beta engine and its outer
// iterated-null-window driver: given a position, it proves an exact
// game-theoretic score and a best move.
package search

import (
	"github.com/connectfour/c4solver/internal/book"
	"github.com/connectfour/c4solver/internal/logging"
	"github.com/connectfour/c4solver/internal/position"
	"github.com/connectfour/c4solver/internal/score"
	"github.com/connectfour/c4solver/internal/tt"
)

var log = logging.Named("search")

// Engine evaluates positions against a shared transposition table and an
// optional opening book. It is single-threaded: the table is mutated during
// recursion with no locking, matching the solver's single-call-stack
// concurrency model.
type Engine struct {
	table *tt.Table
	book  *book.Book
	nodes uint64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBook attaches an opening book consulted at the book's Depth() plies.
// Omitting it is equivalent to a book miss at every node: the search simply
// falls through to ordinary negamax.
func WithBook(b *book.Book) Option {
	return func(e *Engine) { e.book = b }
}

// New creates an Engine backed by table, optionally attaching an opening
// book via WithBook.
func New(table *tt.Table, opts ...Option) *Engine {
	e := &Engine{table: table}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NodeCount reports how many positions the most recent Solve/SolveVerbose
// call visited. It exists for tests asserting the transposition table and
// book actually prune the tree, not as a solver operation in its own right.
func (e *Engine) NodeCount() uint64 { return e.nodes }

// immediateWin returns the forced-win score and column if some playable
// column wins outright, scanning columns in natural order as the cheapest
// possible check before any heavier computation.
func immediateWin(p position.Position) (int, int, bool) {
	for col := 0; col < position.Width; col++ {
		if p.Playable(col) && p.CheckWinningMove(col) {
			return (position.BoardSize + 1 - p.Moves()) / 2, col, true
		}
	}
	return 0, 0, false
}

// negamax returns v such that if v <= alpha the true score is <= v
// (fail-low), if v >= beta the true score is >= v (fail-high), and
// otherwise v is the exact score.
func (e *Engine) negamax(p position.Position, alpha, beta int) int {
	e.nodes++

	if v, _, ok := immediateWin(p); ok {
		return v
	}

	nonLosing := p.NonLosingMoves()
	if nonLosing == 0 {
		return -(position.BoardSize - p.Moves()) / 2
	}

	if p.Moves() == position.BoardSize {
		return 0
	}

	if e.book != nil && p.Moves() == e.book.Depth() {
		if v, ok := e.book.Get(p.CanonicalCode()); ok {
			return int(v)
		}
	}

	key := p.HashKey()
	newAlpha, newBeta, cutoff, decisive := e.table.Probe(key, alpha, beta)
	if decisive {
		return cutoff
	}
	alpha, beta = newAlpha, newBeta

	// The move count alone bounds how early a win can still land.
	inherentMax := (position.BoardSize - 1 - p.Moves()) / 2
	beta = score.Clamp(beta, score.MinScore, inherentMax)
	if alpha >= beta {
		return beta
	}

	sorter := orderedMoves(p, nonLosing)
	for {
		move, _, ok := sorter.next()
		if !ok {
			break
		}
		child := p.Play(move)
		result := -e.negamax(child, -beta, -alpha)

		if result >= beta {
			e.table.StoreLowerBound(key, result)
			return result
		}
		if result > alpha {
			alpha = result
		}
	}

	e.table.StoreUpperBound(key, alpha)
	return alpha
}

// topLevel is identical to negamax but additionally tracks the argmax move,
// and -- unlike negamax -- never consults the transposition table for its
// own returned score, so the returned move always accompanies it. Children
// still go through negamax, which does use the table.
func (e *Engine) topLevel(p position.Position, alpha, beta int) (int, int) {
	e.nodes++

	if v, col, ok := immediateWin(p); ok {
		return v, col
	}

	nonLosing := p.NonLosingMoves()
	if nonLosing == 0 {
		for col := 0; col < position.Width; col++ {
			if p.Playable(col) {
				return -(position.BoardSize - p.Moves()) / 2, col
			}
		}
	}

	if p.Moves() == position.BoardSize {
		return 0, position.Width
	}

	sorter := orderedMoves(p, nonLosing)
	bestScore := score.MinScore
	bestMove := position.Width

	for {
		move, col, ok := sorter.next()
		if !ok {
			break
		}
		child := p.Play(move)
		result := -e.negamax(child, -beta, -alpha)

		if result >= beta {
			return result, col
		}
		if result > bestScore {
			bestScore = result
			bestMove = col
		}
		if result > alpha {
			alpha = result
		}
	}

	return alpha, bestMove
}
