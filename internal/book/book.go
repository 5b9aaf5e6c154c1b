// Package book implements the solver's opening book: a sorted flat array of
// (canonical code, exact score) pairs for every position reached after
// exactly DefaultDepth plies, loaded once from a binary file and then
// queried read-only for the rest of the process's life.
package book

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/connectfour/c4solver/internal/logging"
)

const (
	// DefaultDepth is the ply count at which book positions are recorded.
	DefaultDepth = 12
	// NumPositions is the number of entries the reference book holds.
	NumPositions = 4200899
	entrySize    = 5 // 4 bytes big-endian code + 1 signed byte score
)

var log = logging.Named("book")

// Missing is returned by Load when the book file does not exist.
type Missing struct {
	Path string
	Err  error
}

func (e *Missing) Error() string {
	return fmt.Sprintf("opening book %q not found: %v", e.Path, e.Err)
}

func (e *Missing) Unwrap() error { return e.Err }

// Corrupt is returned by Load when the book file exists but is short,
// truncated, or otherwise fails to decode.
type Corrupt struct {
	Path string
	Err  error
}

func (e *Corrupt) Error() string {
	return fmt.Sprintf("opening book %q is corrupt: %v", e.Path, e.Err)
}

func (e *Corrupt) Unwrap() error { return e.Err }

// Book is a read-only, sorted (code -> score) lookup table.
type Book struct {
	depth int
	codes []uint32
	vals  []int8
}

// Depth returns the ply count this book was built for.
func (b *Book) Depth() int { return b.depth }

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	depth        int
	numPositions int
}

// WithDepth overrides DefaultDepth. Intended for tests against small,
// synthetic book files.
func WithDepth(depth int) Option {
	return func(o *loadOptions) { o.depth = depth }
}

// WithNumPositions overrides NumPositions. Intended for tests against
// small, synthetic book files.
func WithNumPositions(n int) Option {
	return func(o *loadOptions) { o.numPositions = n }
}

// Load reads a book file in one sequential pass. The file must hold exactly
// numPositions entries, each 5 bytes: a big-endian uint32 canonical code
// followed by a signed byte score, sorted by code ascending.
//
// The stat-and-validate-size check and the bulk decode are independent
// failure modes, so they run as two errgroup-coordinated steps: either can
// fail on its own, and Load reports the first failure as a Corrupt error.
func Load(path string, opts ...Option) (*Book, error) {
	o := loadOptions{depth: DefaultDepth, numPositions: NumPositions}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &Missing{Path: path, Err: err}
	}
	defer f.Close()

	wantSize := int64(o.numPositions) * entrySize

	var g errgroup.Group
	g.Go(func() error {
		info, err := f.Stat()
		if err != nil {
			return err
		}
		if info.Size() != wantSize {
			return fmt.Errorf("expected %d bytes, found %d", wantSize, info.Size())
		}
		return nil
	})

	b := &Book{depth: o.depth, codes: make([]uint32, o.numPositions), vals: make([]int8, o.numPositions)}
	g.Go(func() error {
		return decode(f, b)
	})

	if err := g.Wait(); err != nil {
		return nil, &Corrupt{Path: path, Err: err}
	}

	log.Info().Str("path", path).Int("positions", len(b.codes)).Int("depth", b.depth).Msg("opening book loaded")
	return b, nil
}

func decode(f *os.File, b *Book) error {
	r := bufio.NewReaderSize(f, 1<<20)
	var row [entrySize]byte
	for i := range b.codes {
		if _, err := io.ReadFull(r, row[:]); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		b.codes[i] = binary.BigEndian.Uint32(row[:4])
		b.vals[i] = int8(row[4])
	}
	return nil
}

// Get looks up code and reports whether it was found, using a step-halving
// descent whose first step is ceil(N/2): it visits O(log N) entries without
// assuming N is a power of two, reaches every stored entry for any table
// size, and never reads past the bounds of the table.
func (b *Book) Get(code uint32) (int8, bool) {
	n := len(b.codes)
	if n == 0 {
		return 0, false
	}
	step := n
	pos := n - 1

	for step > 0 {
		if step != 1 {
			step = (step + 1) / 2
		} else {
			step = 0
		}

		// pos can walk past the end of the table; an out-of-range probe sorts
		// above every stored code, so the descent steps back left.
		if pos >= n {
			pos -= step
			continue
		}
		probe := b.codes[pos]

		switch {
		case code < probe:
			if pos >= step {
				pos -= step
			} else {
				pos = 0
			}
		case code > probe:
			pos += step
		default:
			return b.vals[pos], true
		}
	}

	return 0, false
}
