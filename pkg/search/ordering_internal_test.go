package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/pkg/board"
)

func TestOrderMovesPromotionsFirst(t *testing.T) {
	promo := board.NewPromotionMove(board.White, board.NewSquareUnchecked(6, 0), board.NewSquareUnchecked(7, 0), board.Queen, board.Piece{}, false)
	quiet := board.NewNormalMove(board.Piece{Kind: board.Knight, Owner: board.White}, board.NewSquareUnchecked(0, 1), board.NewSquareUnchecked(2, 2), board.Piece{}, false)

	ml := board.NewMoveListFrom(quiet, promo)
	orderMoves(&ml)
	require.Equal(t, board.PromotionMove, ml.At(0).Kind)
}

func TestOrderMovesCapturesBeforeQuiet(t *testing.T) {
	capture := board.NewNormalMove(
		board.Piece{Kind: board.Knight, Owner: board.White},
		board.NewSquareUnchecked(0, 1), board.NewSquareUnchecked(2, 2),
		board.Piece{Kind: board.Pawn, Owner: board.Black}, true,
	)
	quiet := board.NewNormalMove(board.Piece{Kind: board.Knight, Owner: board.White}, board.NewSquareUnchecked(0, 1), board.NewSquareUnchecked(2, 0), board.Piece{}, false)

	ml := board.NewMoveListFrom(quiet, capture)
	orderMoves(&ml)
	require.True(t, ml.At(0).HasCapture)
}

func TestOrderMovesHighValueVictimFirst(t *testing.T) {
	capturesQueen := board.NewNormalMove(
		board.Piece{Kind: board.Rook, Owner: board.White},
		board.NewSquareUnchecked(0, 0), board.NewSquareUnchecked(0, 4),
		board.Piece{Kind: board.Queen, Owner: board.Black}, true,
	)
	capturesPawn := board.NewNormalMove(
		board.Piece{Kind: board.Rook, Owner: board.White},
		board.NewSquareUnchecked(0, 0), board.NewSquareUnchecked(1, 0),
		board.Piece{Kind: board.Pawn, Owner: board.Black}, true,
	)

	ml := board.NewMoveListFrom(capturesPawn, capturesQueen)
	orderMoves(&ml)
	require.Equal(t, board.Queen, ml.At(0).Captured.Kind)
}

func TestOrderMovesCastlingAndEnPassantLast(t *testing.T) {
	castling := board.NewCastlingShort(board.White)
	enPassant := board.NewEnPassantMove(board.White, 4, 5)
	quiet := board.NewNormalMove(board.Piece{Kind: board.Knight, Owner: board.White}, board.NewSquareUnchecked(0, 1), board.NewSquareUnchecked(2, 2), board.Piece{}, false)

	ml := board.NewMoveListFrom(castling, enPassant, quiet)
	orderMoves(&ml)
	require.Equal(t, board.NormalMove, ml.At(0).Kind)
	require.Equal(t, board.CastlingShortMove, ml.At(1).Kind)
	require.Equal(t, board.EnPassantMove, ml.At(2).Kind)
}
