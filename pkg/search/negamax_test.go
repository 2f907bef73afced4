package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
	"github.com/corvidchess/engine/pkg/search"
)

func TestGetBestMoveFindsMateInOne(t *testing.T) {
	// White to move, back rank pattern: the Black king on g8 is hemmed in
	// by its own f7/g7/h7 pawns, and the White rook mates on a8.
	g, err := fen.Parse("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	stop := atomic.NewBool(false)
	move, score, onlyMove, err := search.GetBestMove(g, stop, 3)
	require.NoError(t, err)
	require.False(t, onlyMove)
	require.Equal(t, board.NormalMove, move.Kind)
	require.Equal(t, "a1a8", move.UCI())
	require.True(t, search.IsMateScore(score))
}

func TestGetBestMoveSingleLegalMoveShortCircuits(t *testing.T) {
	// Black king cornered on a8, in check from an undefended queen on b7: the
	// only legal reply is to capture it, since both flight squares (a7, b8)
	// are themselves covered by the queen.
	g, err := fen.Parse("k7/1Q6/8/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	var moves board.MoveList
	g.GetMoves(&moves, true)
	require.Equal(t, 1, moves.Len())

	stop := atomic.NewBool(false)
	move, _, onlyMove, err := search.GetBestMove(g, stop, 4)
	require.NoError(t, err)
	require.True(t, onlyMove)
	require.Equal(t, moves.At(0), move)
}

func TestGetBestMoveRespectsCancellation(t *testing.T) {
	g, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)

	stop := atomic.NewBool(true)
	_, _, _, err = search.GetBestMove(g, stop, 6)
	require.ErrorIs(t, err, search.ErrHalted)
}

func TestGetBestMoveReportsNoMovesOnCheckmate(t *testing.T) {
	// Fool's mate: White to move is checkmated.
	g, err := fen.Parse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	var moves board.MoveList
	g.GetMoves(&moves, true)
	require.Equal(t, 0, moves.Len())

	stop := atomic.NewBool(false)
	_, _, _, err = search.GetBestMove(g, stop, 3)
	require.ErrorIs(t, err, search.ErrNoMoves)
}

func TestIsMateScore(t *testing.T) {
	require.True(t, search.IsMateScore(search.MinScore+50))
	require.True(t, search.IsMateScore(search.MaxScore-50))
	require.False(t, search.IsMateScore(0))
	require.False(t, search.IsMateScore(500))
}
