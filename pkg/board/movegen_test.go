package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
)

// TestKingMovesRejectEnemyKingAdjacency checks that a king never generates a
// step onto a square adjacent to the enemy king, even pseudo-legally
// (verifyKing=false) and even when the mover is not in check — two kings may
// never stand next to each other regardless of check status.
func TestKingMovesRejectEnemyKingAdjacency(t *testing.T) {
	// White king on e1, Black king on e3: e2 is adjacent to both kings and
	// must never appear as a destination for White's king.
	g, err := fen.Parse("8/8/8/8/8/4k3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, verifyKing := range []bool{false, true} {
		var moves board.MoveList
		g.GetMoves(&moves, verifyKing)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			require.False(t, m.Kind == board.NormalMove && m.Piece.Kind == board.King && m.End == board.NewSquareUnchecked(1, 4),
				"king move %v must not land adjacent to the enemy king (verifyKing=%v)", m, verifyKing)
		}
	}
}

func TestKingMovesAllowNonAdjacentSquares(t *testing.T) {
	g, err := fen.Parse("8/8/8/8/8/4k3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var moves board.MoveList
	g.GetMoves(&moves, false)

	var dests []board.Square
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Kind == board.NormalMove && m.Piece.Kind == board.King {
			dests = append(dests, m.End)
		}
	}
	require.Contains(t, dests, board.NewSquareUnchecked(0, 3)) // d1, not adjacent to e3
	require.Contains(t, dests, board.NewSquareUnchecked(0, 5)) // f1, not adjacent to e3
}
