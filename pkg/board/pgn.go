package board

import (
	"fmt"
	"strings"
)

// PGN renders m in short algebraic notation. Disambiguation between two
// identical pieces able to reach the same square is not attempted — callers
// that need a fully disambiguated SAN stream should track that themselves;
// corvidchess only uses this for human-readable game logs, not for replay.
func (m Move) PGN() string {
	switch m.Kind {
	case CastlingShortMove:
		return "O-O"
	case CastlingLongMove:
		return "O-O-O"

	case EnPassantMove:
		startRow, endRow, _ := enPassantRows(m.Owner)
		start := NewSquareUnchecked(startRow, m.StartCol)
		end := NewSquareUnchecked(endRow, m.EndCol)
		return fmt.Sprintf("%cx%v", 'a'+byte(start.Col()), end)

	case PromotionMove:
		letter := strings.ToUpper(m.NewKind.String())
		if m.HasCapture {
			return fmt.Sprintf("%cx%v=%s", 'a'+byte(m.Start.Col()), m.End, letter)
		}
		return fmt.Sprintf("%v=%s", m.End, letter)

	case NormalMove:
		if m.Piece.Kind == Pawn {
			if m.HasCapture {
				return fmt.Sprintf("%cx%v", 'a'+byte(m.Start.Col()), m.End)
			}
			return m.End.String()
		}
		letter := strings.ToUpper(m.Piece.Kind.String())
		if m.HasCapture {
			return fmt.Sprintf("%sx%v", letter, m.End)
		}
		return fmt.Sprintf("%s%v", letter, m.End)
	}
	return m.UCI()
}

// PGN renders the committed history as a move-numbered game string, e.g.
// "1. e4 e5 2. Nf3 Nc6".
func (g *Game) PGN() string {
	var b strings.Builder
	for i, m := range g.history {
		if i%2 == 0 {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d. ", i/2+1)
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(m.PGN())
	}
	return b.String()
}
