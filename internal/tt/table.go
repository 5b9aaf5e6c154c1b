// Package tt implements the solver's transposition table: a fixed-capacity,
// always-replace cache mapping a position's hash key to a bounded score.
//
// Each slot stores a 32-bit truncation of the 49-bit effective key alongside
// a single byte that encodes either an upper bound, a lower bound, or
// "empty" -- see the encode/decode helpers below for the packing. Full-key collisions
// among legal positions are impossible (HashKey is collision-free); 32-bit
// partial-key collisions across unrelated positions are rare enough that
// always-replace nets a speedup over any write-protection scheme.
package tt

import (
	"github.com/connectfour/c4solver/internal/logging"
	"github.com/connectfour/c4solver/internal/score"
)

// DefaultCapacity is a prime slightly larger than 2^23, chosen (as in the
// reference solver) to minimise clustering from the modulo-index scheme.
const DefaultCapacity = 8388617

var log = logging.Named("tt")

type entry struct {
	key   uint32
	value uint8
}

// Table is a single-threaded, fixed-capacity transposition table. It is not
// safe for concurrent use; the solver's search is single-threaded by design
// (see the search package).
type Table struct {
	entries []entry
}

// Option configures a Table at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity overrides DefaultCapacity. Intended for tests exercising
// collision behaviour on a small table; production solves should use the
// default.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// New creates an empty Table.
func New(opts ...Option) *Table {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	log.Debug().Int("capacity", o.capacity).Msg("allocating transposition table")
	return &Table{entries: make([]entry, o.capacity)}
}

// Clear zeroes every slot.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}

func (t *Table) index(key uint64) uint64 {
	return key % uint64(len(t.entries))
}

func (t *Table) put(key uint64, value uint8) {
	t.entries[t.index(key)] = entry{key: uint32(key), value: value}
}

func (t *Table) get(key uint64) uint8 {
	e := t.entries[t.index(key)]
	if e.key != uint32(key) {
		return 0
	}
	return e.value
}

// Probe looks up key and tightens alpha/beta against any stored bound. When
// the window collapses (alpha >= beta) as a result, decisive is true and
// cutoff is the value the caller should return immediately: the tightened
// alpha when a lower bound caused the cutoff, the tightened beta when an
// upper bound did.
func (t *Table) Probe(key uint64, alpha, beta int) (newAlpha, newBeta, cutoff int, decisive bool) {
	v := t.get(key)
	if v == 0 {
		return alpha, beta, 0, false
	}
	if isLowerBound(v) {
		alpha = max(alpha, decodeLowerBound(v))
		if alpha >= beta {
			return alpha, beta, alpha, true
		}
		return alpha, beta, 0, false
	}
	beta = min(beta, decodeUpperBound(v))
	if alpha >= beta {
		return alpha, beta, beta, true
	}
	return alpha, beta, 0, false
}

// StoreLowerBound records that the true score is at least v (a beta
// cutoff).
func (t *Table) StoreLowerBound(key uint64, v int) {
	t.put(key, encodeLowerBound(v))
}

// StoreUpperBound records that the true score is at most v (a fail-low, the
// final alpha of an exhausted move loop).
func (t *Table) StoreUpperBound(key uint64, v int) {
	t.put(key, encodeUpperBound(v))
}

// The value byte packs two disjoint ranges: [1, span] is an upper bound,
// [span+1, 2*span] is a lower bound, where span = MaxScore-MinScore+1. Zero
// means "empty slot" -- this holds because both encodings start at 1.
const span = score.MaxScore - score.MinScore + 1

func encodeUpperBound(v int) uint8 {
	return uint8(v - score.MinScore + 1)
}

func decodeUpperBound(v uint8) int {
	return int(v) + score.MinScore - 1
}

func encodeLowerBound(v int) uint8 {
	return uint8(v + score.MaxScore - 2*score.MinScore + 2)
}

func decodeLowerBound(v uint8) int {
	return int(v) + 2*score.MinScore - score.MaxScore - 2
}

func isLowerBound(v uint8) bool {
	return int(v) > span
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
