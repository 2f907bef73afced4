package board

// Score is a signed centipawn evaluation contribution or running total.
// Positive favors White. Mirrors search.Score's sign convention, kept as a
// distinct type because it is a position property, not a search result.
type Score = int16

// EndgameThreshold is the sum of absolute piece-square contributions (for
// one side) below which the game transitions to GamePhaseEndgame; the
// transition compares against 2×EndgameThreshold because both sides are
// counted together (spec.md §3, §4.7). The original source references this
// constant without giving its value; 1300 centipawns — roughly a rook plus
// a minor piece — is the conventional middlegame/endgame material boundary
// used here.
const EndgameThreshold = 1300

// mirror flips a row for the piece-square tables, which are written from
// Black's point of view: White reads them upside down.
func mirror(row int8, owner Color) int8 {
	if owner == White {
		return 7 - row
	}
	return row
}

// Score returns this piece's piece-square table contribution at pos for the
// given game phase, signed for its owner.
func (p Piece) Score(pos Square, phase GamePhase) Score {
	table := tableFor(p.Kind, phase)
	r := mirror(pos.Row(), p.Owner)
	return table[int(r)*8+int(pos.Col())] * Score(p.Owner)
}

func tableFor(k PieceKind, phase GamePhase) *[64]int16 {
	switch k {
	case Queen:
		return &queenTable
	case Rook:
		return &rookTable
	case Bishop:
		return &bishopTable
	case Knight:
		return &knightTable
	case Pawn:
		return &pawnTable
	case King:
		if phase == GamePhaseEndgame {
			return &kingEndTable
		}
		return &kingMiddleTable
	}
	return &zeroTable
}

var zeroTable [64]int16

// The six tables below are standard piece-square tables (centipawns),
// written rank-8-down-to-rank-1, file-a-to-file-h, from Black's point of
// view per spec.md §4.2 — index 0 is a8, index 63 is h1.

var pawnTable = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int16{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int16{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleTable = [64]int16{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndTable = [64]int16{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}
