package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
	"github.com/corvidchess/engine/pkg/engine"
	"github.com/corvidchess/engine/pkg/search"
)

// fakeHandle and fakeLauncher stand in for search.IterativeDeepening so tests
// can drive Analyze/Halt deterministically, without waiting on a real search.
type fakeHandle struct {
	pv search.PV
}

func (h fakeHandle) Halt() search.PV {
	return h.pv
}

type fakeLauncher struct {
	pv search.PV
}

func (l fakeLauncher) Launch(ctx context.Context, g *board.Game, opt search.Options) (search.Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	out <- l.pv
	close(out)
	return fakeHandle{pv: l.pv}, out
}

func TestEngineMoveAppliesLegalMoveAndRejectsIllegal(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))

	want, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)
	var moves board.MoveList
	want.GetMoves(&moves, true)
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).UCI() == "e2e4" {
			want.PushHistory(moves.At(i))
		}
	}
	require.Equal(t, fen.Format(want), e.Position())

	require.Error(t, e.Move(ctx, "e2e5"))
}

func TestEngineResetAlwaysRebuildsFromScratch(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))
	require.Equal(t, 2, e.Ply())

	const midgame = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	require.NoError(t, e.Reset(ctx, midgame))

	want, err := fen.Parse(midgame)
	require.NoError(t, err)
	require.Equal(t, fen.Format(want), e.Position())
	require.Equal(t, want.Ply(), e.Ply())
	require.Empty(t, e.Game().History())
}

func TestEngineTakeBackErrorsWithNoHistory(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.Error(t, e.TakeBack(ctx))
}

func TestEngineTakeBackReplaysFromStartAndRecomputesPhase(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))
	require.NoError(t, e.Move(ctx, "e7e5"))

	history := e.Game().History()
	require.Len(t, history, 2)

	require.NoError(t, e.TakeBack(ctx))

	// TakeBack must be indistinguishable from a fresh game replayed up to the
	// move before the one taken back — including the recomputed game phase,
	// not just the board contents — since it rebuilds from the starting FEN
	// rather than reversing the last Push in place.
	want, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)
	want.PushHistory(history[0])

	got := e.Game()
	require.Equal(t, want.Phase(), got.Phase())
	require.Equal(t, fen.Format(want), fen.Format(got))
	require.Len(t, got.History(), 1)
}

func TestEngineAnalyzeReportsLauncherPVAndHalt(t *testing.T) {
	ctx := context.Background()

	var mv board.Move
	g, err := fen.Parse(fen.StartPos)
	require.NoError(t, err)
	var moves board.MoveList
	g.GetMoves(&moves, true)
	mv = moves.At(0)

	want := search.PV{Depth: 7, Move: mv, Score: 42}
	e := engine.New(ctx, "test", "tester", engine.WithLauncher(fakeLauncher{pv: want}))

	out, err := e.Analyze(ctx, search.Options{})
	require.NoError(t, err)

	pv, ok := <-out
	require.True(t, ok)
	require.Equal(t, want, pv)

	halted, err := e.Halt(ctx)
	require.NoError(t, err)
	require.Equal(t, want, halted)
}

func TestEngineAnalyzeRejectsConcurrentSearch(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester", engine.WithLauncher(fakeLauncher{}))

	_, err := e.Analyze(ctx, search.Options{})
	require.NoError(t, err)

	_, err = e.Analyze(ctx, search.Options{})
	require.Error(t, err)
}

func TestEngineHaltWithNoActiveSearch(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	_, err := e.Halt(ctx)
	require.Error(t, err)
}
