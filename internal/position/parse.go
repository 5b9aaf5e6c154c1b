package position

// FromMoveSequence parses a string of digits '1'..'7' as column choices (one
// character per ply) and replays them from the empty board. Each character
// must name a playable column, and must not itself complete a four-in-a-row
// -- the corpora this parses from store only non-terminal prefixes, so a
// winning move is treated as a malformed game rather than silently accepted.
func FromMoveSequence(s string) (Position, error) {
	p := New()
	for i, c := range s {
		if c < '1' || c > '0'+rune(Width) {
			return Position{}, InvalidMoveChar{Char: c, Index: i}
		}
		col := int(c - '1')
		if !p.Playable(col) {
			return Position{}, ColumnFull{Column: col, Index: i}
		}
		if p.CheckWinningMove(col) {
			return Position{}, AlreadyWon{Column: col, Index: i}
		}
		p = p.Play(p.moveBit(col))
	}
	return p, nil
}
