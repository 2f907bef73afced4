package board

import "fmt"

// MoveKind discriminates the Move tagged union.
type MoveKind uint8

const (
	NormalMove MoveKind = iota
	PromotionMove
	EnPassantMove
	CastlingShortMove
	CastlingLongMove
)

// Move is a closed tagged union over the legal kinds of chess move. Every
// applied move is reversible from its own payload plus the top of the state
// stack, so make/unmake never needs to consult history beyond one entry.
//
// Only the fields relevant to Kind are meaningful:
//
//	NormalMove:    Piece, Start, End, Captured (optional)
//	PromotionMove: Owner, Start, End, NewKind, Captured (optional)
//	EnPassantMove: Owner, StartCol, EndCol (rows are implied by Owner)
//	CastlingShortMove / CastlingLongMove: Owner
type Move struct {
	Kind MoveKind

	Piece    Piece
	Start    Square
	End      Square
	Captured Piece
	HasCapture bool

	Owner   Color
	NewKind PieceKind

	StartCol int8
	EndCol   int8
}

// NewNormalMove constructs a non-capturing or capturing normal move.
func NewNormalMove(piece Piece, start, end Square, captured Piece, hasCapture bool) Move {
	return Move{Kind: NormalMove, Piece: piece, Start: start, End: end, Captured: captured, HasCapture: hasCapture}
}

// NewPromotionMove constructs a pawn promotion, with or without a capture.
func NewPromotionMove(owner Color, start, end Square, newKind PieceKind, captured Piece, hasCapture bool) Move {
	return Move{Kind: PromotionMove, Owner: owner, Start: start, End: end, NewKind: newKind, Captured: captured, HasCapture: hasCapture}
}

// NewEnPassantMove constructs an en passant capture. Rows are implied by owner.
func NewEnPassantMove(owner Color, startCol, endCol int8) Move {
	return Move{Kind: EnPassantMove, Owner: owner, StartCol: startCol, EndCol: endCol}
}

func NewCastlingShort(owner Color) Move {
	return Move{Kind: CastlingShortMove, Owner: owner}
}

func NewCastlingLong(owner Color) Move {
	return Move{Kind: CastlingLongMove, Owner: owner}
}

// Equals compares moves by their externally observable identity: squares
// (or files) moved between, promotion kind and, where the payload has no
// squares, the owner.
func (m Move) Equals(o Move) bool {
	if m.Kind != o.Kind {
		return false
	}
	switch m.Kind {
	case NormalMove:
		return m.Start == o.Start && m.End == o.End
	case PromotionMove:
		return m.Start == o.Start && m.End == o.End && m.NewKind == o.NewKind
	case EnPassantMove:
		return m.StartCol == o.StartCol && m.EndCol == o.EndCol && m.Owner == o.Owner
	case CastlingShortMove, CastlingLongMove:
		return m.Owner == o.Owner
	}
	return false
}

// IsTactical classifies a move as tactical: a capture where the moving piece
// is worth no more than what it takes, or any promotion, or en passant. The
// search package does not call it; move ordering compares piece kinds
// directly.
func (m Move) IsTactical() bool {
	switch m.Kind {
	case NormalMove:
		return m.HasCapture && nominalValue(m.Piece.Kind) <= nominalValue(m.Captured.Kind)
	case PromotionMove, EnPassantMove:
		return true
	default:
		return false
	}
}

func nominalValue(k PieceKind) int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	default:
		return 0
	}
}

// enPassantRows returns the start/end ranks an en-passant move is played on
// for the given owner: White captures from rank 4 to rank 5, Black from rank
// 3 to rank 2, always removing the pawn standing on the captured pawn's rank.
func enPassantRows(owner Color) (startRow, endRow, capturedRow int8) {
	if owner == White {
		return 4, 5, 4
	}
	return 3, 2, 3
}

// castlingSquares returns the king/rook source and destination squares for a
// castle of the given side (short=true for O-O) and owner.
func castlingSquares(owner Color, short bool) (kingFrom, kingTo, rookFrom, rookTo Square) {
	row := int8(0)
	if owner == Black {
		row = 7
	}
	if short {
		return NewSquareUnchecked(row, 4), NewSquareUnchecked(row, 6), NewSquareUnchecked(row, 7), NewSquareUnchecked(row, 5)
	}
	return NewSquareUnchecked(row, 4), NewSquareUnchecked(row, 2), NewSquareUnchecked(row, 0), NewSquareUnchecked(row, 3)
}

// UCI renders the move in UCI long algebraic notation: 4 chars, 5 with a
// promotion suffix. Castling is transmitted as king-from/king-to.
func (m Move) UCI() string {
	switch m.Kind {
	case NormalMove:
		return fmt.Sprintf("%v%v", m.Start, m.End)
	case PromotionMove:
		return fmt.Sprintf("%v%v%v", m.Start, m.End, m.NewKind)
	case CastlingShortMove:
		if m.Owner == White {
			return "e1g1"
		}
		return "e8g8"
	case CastlingLongMove:
		if m.Owner == White {
			return "e1c1"
		}
		return "e8c8"
	case EnPassantMove:
		startRow, endRow, _ := enPassantRows(m.Owner)
		return fmt.Sprintf("%c%c%c%c", 'a'+byte(m.StartCol), '1'+byte(startRow), 'a'+byte(m.EndCol), '1'+byte(endRow))
	}
	return "0000"
}

func (m Move) String() string {
	return m.UCI()
}
