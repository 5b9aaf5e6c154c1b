package search

import (
	"testing"

	"github.com/connectfour/c4solver/internal/position"
	"github.com/connectfour/c4solver/internal/score"
	"github.com/connectfour/c4solver/internal/tt"
)

func BenchmarkNegamax(b *testing.B) {
	p, err := position.FromMoveSequence("32164")
	if err != nil {
		b.Fatalf("FromMoveSequence: %v", err)
	}
	for i := 0; i < b.N; i++ {
		e := New(tt.New())
		_ = e.negamax(p, score.MinScore, score.MaxScore)
	}
}

func BenchmarkSolveBottomRow(b *testing.B) {
	p, err := position.FromMoveSequence("1234567")
	if err != nil {
		b.Fatalf("FromMoveSequence: %v", err)
	}
	for i := 0; i < b.N; i++ {
		e := New(tt.New())
		_ = e.Solve(p)
	}
}
