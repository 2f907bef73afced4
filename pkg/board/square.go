package board

import "fmt"

// Square is a board coordinate (row, col), both in 0..8. Rows are ranks: 0 is
// White's back rank, 7 is Black's. Columns are files a..h as 0..7. Any Square
// value that exists was constructed through New or Add and is therefore
// always on-board; no downstream range check is needed.
type Square struct {
	row, col int8
}

// NewSquare returns the square at (row, col), or false if out of range.
func NewSquare(row, col int8) (Square, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Square{}, false
	}
	return Square{row, col}, true
}

// NewSquareUnchecked constructs a square known to be valid. The caller must
// guarantee row and col are both in 0..8.
func NewSquareUnchecked(row, col int8) Square {
	return Square{row, col}
}

func (s Square) Row() int8 { return s.row }
func (s Square) Col() int8 { return s.col }

// Index returns the 0..64 board index for the square.
func (s Square) Index() int {
	return int(s.row)*8 + int(s.col)
}

// Add returns the square offset by (dRow, dCol), or false if it would fall
// off the board.
func (s Square) Add(dRow, dCol int8) (Square, bool) {
	return NewSquare(s.row+dRow, s.col+dCol)
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(s.col), '1'+byte(s.row))
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(str string) (Square, bool) {
	if len(str) != 2 {
		return Square{}, false
	}
	file, rank := str[0], str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return NewSquareUnchecked(int8(rank-'1'), int8(file-'a')), true
}

// Well-known corner squares used to detect castling-rook movement.
var (
	WhiteQueenRook = NewSquareUnchecked(0, 0)
	WhiteKingRook  = NewSquareUnchecked(0, 7)
	BlackQueenRook = NewSquareUnchecked(7, 0)
	BlackKingRook  = NewSquareUnchecked(7, 7)
)
