// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.StartPos
	}

	g, err := fen.Parse(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(g, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func perft(g *board.Game, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var moves board.MoveList
	g.GetMoves(&moves, true)

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		g.Push(m)
		count := perft(g, depth-1, false)
		g.Pop(m)

		if d {
			fmt.Println(fmt.Sprintf("%v: %v", m.UCI(), count))
		}
		nodes += count
	}
	return nodes
}
