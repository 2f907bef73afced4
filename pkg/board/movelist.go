package board

// maxMoves bounds a single position's move list. 256 is far above the
// practical legal-move ceiling for any reachable chess position, but the
// limit is a correctness condition the tests enforce (spec.md §4.4).
const maxMoves = 256

// MoveList is a fixed-capacity, non-allocating container of moves, filled by
// Game.GetMoves.
type MoveList struct {
	moves [maxMoves]Move
	len   int
}

func (l *MoveList) Reset() {
	l.len = 0
}

// NewMoveListFrom builds a MoveList directly from moves, for tests and other
// callers that assemble a list outside of GetMoves.
func NewMoveListFrom(moves ...Move) MoveList {
	var l MoveList
	for _, m := range moves {
		l.push(m)
	}
	return l
}

func (l *MoveList) push(m Move) {
	l.moves[l.len] = m
	l.len++
}

func (l *MoveList) Len() int {
	return l.len
}

func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the list's moves. The returned slice aliases the list's
// backing array and is only valid until the next Reset.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.len]
}

func (l *MoveList) keep(i int, m Move) {
	l.moves[i] = m
}

func (l *MoveList) truncate(n int) {
	l.len = n
}
