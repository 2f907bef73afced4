package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
)

// TestPushPopRoundTrip walks every legal move three plies deep from the
// starting position and checks that Pop restores the exact FEN the position
// had before Push, matching chess_game.rs's push/pop contract (spec.md §8.6).
func TestPushPopRoundTrip(t *testing.T) {
	g, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)

	var walk func(depth int)
	walk = func(depth int) {
		before := fen.Format(g)

		var moves board.MoveList
		g.GetMoves(&moves, true)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			g.Push(m)
			if depth > 1 {
				walk(depth - 1)
			}
			g.Pop(m)
			require.Equal(t, before, fen.Format(g), "Pop did not restore position after %v", m)
		}
	}
	walk(3)
}

// TestScoreMatchesRecompute checks the incrementally maintained score against
// a from-scratch recomputation over every square, after a short sequence of
// moves (spec.md §8.2).
func TestScoreMatchesRecompute(t *testing.T) {
	g, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)

	var moves board.MoveList
	for ply := 0; ply < 6; ply++ {
		g.GetMoves(&moves, true)
		require.Greater(t, moves.Len(), 0)
		g.PushHistory(moves.At(0))
	}

	var want board.Score
	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			sq := board.NewSquareUnchecked(row, col)
			if p, ok := g.PieceAt(sq); ok {
				want += p.Score(sq, g.Phase())
			}
		}
	}
	require.Equal(t, want, g.Score())
}

func TestCastlingRightsRevokedByKingMove(t *testing.T) {
	g, err := fen.Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, board.FullCastlingRights, g.Castling())

	var moves board.MoveList
	g.GetMoves(&moves, true)

	var kingMove board.Move
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == board.NormalMove && m.Piece.Kind == board.King {
			kingMove = m
			found = true
			break
		}
	}
	require.True(t, found)

	g.Push(kingMove)
	require.False(t, g.Castling().Has(board.WhiteKingSide))
	require.False(t, g.Castling().Has(board.WhiteQueenSide))
	require.True(t, g.Castling().Has(board.BlackKingSide))
	require.True(t, g.Castling().Has(board.BlackQueenSide))
}

func TestCastlingMoveUpdatesKingAndRook(t *testing.T) {
	g, err := fen.Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	move := board.NewCastlingShort(board.White)
	g.Push(move)

	require.Equal(t, board.NewSquareUnchecked(0, 6), g.KingSquare(board.White))
	p, ok := g.PieceAt(board.NewSquareUnchecked(0, 5))
	require.True(t, ok)
	require.Equal(t, board.Rook, p.Kind)
	require.True(t, g.IsEmpty(board.NewSquareUnchecked(0, 7)))

	g.Pop(move)
	require.Equal(t, board.NewSquareUnchecked(0, 4), g.KingSquare(board.White))
	rook, ok := g.PieceAt(board.NewSquareUnchecked(0, 7))
	require.True(t, ok)
	require.Equal(t, board.Rook, rook.Kind)
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	g, err := fen.Parse("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	require.NoError(t, err)

	ep, has := g.EnPassantFile()
	require.True(t, has)
	require.Equal(t, int8(5), ep)

	move := board.NewEnPassantMove(board.White, 4, 5)
	g.Push(move)

	require.True(t, g.IsEmpty(board.NewSquareUnchecked(4, 5)))
	p, ok := g.PieceAt(board.NewSquareUnchecked(5, 5))
	require.True(t, ok)
	require.Equal(t, board.Pawn, p.Kind)
	require.Equal(t, board.White, p.Owner)

	g.Pop(move)
	capturedPawn, ok := g.PieceAt(board.NewSquareUnchecked(4, 5))
	require.True(t, ok)
	require.Equal(t, board.Black, capturedPawn.Owner)
}
