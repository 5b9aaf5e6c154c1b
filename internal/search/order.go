package search

import "github.com/connectfour/c4solver/internal/position"

// columnOrder visits the centre column first, then alternates outward:
// [3, 4, 2, 5, 1, 6, 0] for a 7-wide board. Move ordering probes columns in
// this order before re-sorting by the heuristic threat count.
var columnOrder = buildColumnOrder()

func buildColumnOrder() [position.Width]int {
	var order [position.Width]int
	for i := 0; i < position.Width; i++ {
		if i%2 == 1 {
			order[i] = position.Centre + (i+1)/2
		} else {
			order[i] = position.Centre - i/2
		}
	}
	return order
}

// moveEntry is one candidate move awaiting a heuristic score.
type moveEntry struct {
	bits  uint64
	col   int
	score int
}

// moveSorter keeps candidate moves sorted ascending by heuristic score so
// that the best-scoring move (most new threats) is popped first. Ties keep
// the relative order they were pushed in, which is the static column order
// -- the same behaviour as the reference solver's insertion sort.
type moveSorter struct {
	moves [position.Width]moveEntry
	size  int
}

func (s *moveSorter) push(bits uint64, col, heuristic int) {
	pos := s.size
	s.size++
	for pos > 0 && s.moves[pos-1].score > heuristic {
		s.moves[pos] = s.moves[pos-1]
		pos--
	}
	s.moves[pos] = moveEntry{bits: bits, col: col, score: heuristic}
}

func (s *moveSorter) next() (bits uint64, col int, ok bool) {
	if s.size == 0 {
		return 0, 0, false
	}
	s.size--
	e := s.moves[s.size]
	return e.bits, e.col, true
}

// orderedMoves builds a moveSorter over every playable, non-losing move,
// ready for best-first iteration.
func orderedMoves(p position.Position, nonLosing uint64) moveSorter {
	var sorter moveSorter
	for i := position.Width - 1; i >= 0; i-- {
		col := columnOrder[i]
		candidate := nonLosing & position.ColumnMask(col)
		if candidate != 0 && p.Playable(col) {
			sorter.push(candidate, col, p.MoveScore(candidate))
		}
	}
	return sorter
}
