package tt

import (
	"testing"

	"github.com/connectfour/c4solver/internal/score"
)

func TestUpperBoundRoundTrip(t *testing.T) {
	tbl := New(WithCapacity(97))
	key := uint64(123456789)

	tbl.StoreUpperBound(key, 4)

	_, beta, cutoff, decisive := tbl.Probe(key, 4, score.MaxScore)
	if !decisive {
		t.Fatalf("expected decisive probe after storing a tight upper bound")
	}
	if beta != 4 {
		t.Fatalf("beta = %d, want 4", beta)
	}
	if cutoff != 4 {
		t.Fatalf("cutoff = %d, want 4", cutoff)
	}
}

func TestLowerBoundRoundTrip(t *testing.T) {
	tbl := New(WithCapacity(97))
	key := uint64(42)

	tbl.StoreLowerBound(key, -3)

	alpha, _, cutoff, decisive := tbl.Probe(key, score.MinScore, -3)
	if !decisive {
		t.Fatalf("expected decisive probe after storing a matching lower bound")
	}
	if alpha != -3 {
		t.Fatalf("alpha = %d, want -3", alpha)
	}
	if cutoff != -3 {
		t.Fatalf("cutoff = %d, want -3", cutoff)
	}
}

func TestMissReturnsUnchangedWindow(t *testing.T) {
	tbl := New(WithCapacity(97))

	alpha, beta, _, decisive := tbl.Probe(999, -5, 5)
	if decisive {
		t.Fatalf("expected a miss on an empty table")
	}
	if alpha != -5 || beta != 5 {
		t.Fatalf("Probe on miss changed the window: got (%d, %d)", alpha, beta)
	}
}

func TestAlwaysReplaceOnCollision(t *testing.T) {
	tbl := New(WithCapacity(1))
	key1 := uint64(1)
	key2 := uint64(1 + 1) // same index mod 1, different partial key

	tbl.StoreUpperBound(key1, 1)
	tbl.StoreUpperBound(key2, 2)

	// key1's entry was evicted by key2's write (always-replace). Had it
	// survived, its upper bound of 1 would collapse the window [1, MaxScore].
	_, _, _, decisive := tbl.Probe(key1, 1, score.MaxScore)
	if decisive {
		t.Fatalf("expected key1's bound to have been evicted")
	}
}

func TestClear(t *testing.T) {
	tbl := New(WithCapacity(17))
	tbl.StoreUpperBound(5, 0)
	tbl.Clear()

	_, _, _, decisive := tbl.Probe(5, 0, score.MaxScore)
	if decisive {
		t.Fatalf("expected table to be empty after Clear")
	}
}
