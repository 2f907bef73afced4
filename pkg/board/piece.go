package board

import "strings"

// PieceKind identifies a chess piece without color. The declared order is
// significant: move ordering's capture-kind comparator (search package)
// sorts on it directly, so Queen is cheapest-rank-to-capture-first and King
// sorts last.
type PieceKind int8

const (
	Queen PieceKind = iota
	Rook
	Bishop
	Knight
	Pawn
	King

	NoKind PieceKind = -1
)

// ParsePieceKind parses a single FEN/SAN piece letter, case-insensitively.
func ParsePieceKind(r rune) (PieceKind, bool) {
	switch r {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'p', 'P':
		return Pawn, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k PieceKind) String() string {
	switch k {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a piece kind together with its owner.
type Piece struct {
	Kind  PieceKind
	Owner Color
}

func (p Piece) String() string {
	if p.Owner == Black {
		return strings.ToLower(p.Kind.String())
	}
	return strings.ToUpper(p.Kind.String())
}
