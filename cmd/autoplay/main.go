// autoplay runs the engine against itself until no legal move remains,
// printing the position after every move. See autoplay.rs.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
	"github.com/corvidchess/engine/pkg/search"
)

var (
	timePerMove = flag.Duration("time", 0, "Time budget per move (e.g. 500ms); 0 uses a fixed depth instead")
	depth       = flag.Int("depth", 6, "Search depth, used when -time is 0")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	g, err := fen.Parse(fen.StartPos)
	if err != nil {
		logw.Exitf(ctx, "invalid start position: %v", err)
	}

	var l search.IterativeDeepening
	for {
		var moves board.MoveList
		g.GetMoves(&moves, true)

		fmt.Println(g.PGN())
		fmt.Println(fen.Format(g))

		if moves.Len() == 0 {
			break
		}

		move, ok := bestMove(ctx, l, g)
		if !ok {
			break
		}
		g.PushHistory(move)
	}
}

func bestMove(ctx context.Context, l search.IterativeDeepening, g *board.Game) (board.Move, bool) {
	var opt search.Options
	if *timePerMove > 0 {
		opt.TimeLimit = lang.Some(*timePerMove)
	} else {
		opt.DepthLimit = lang.Some(uint(*depth))
	}

	handle, out := l.Launch(ctx, g.Clone(), opt)

	var last search.PV
	haveMove := false
	for pv := range out {
		last = pv
		haveMove = true
	}
	handle.Halt()

	if !haveMove {
		return board.Move{}, false
	}
	return last.Move, true
}
