// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/corvidchess/engine/pkg/board/fen"
	"github.com/corvidchess/engine/pkg/engine"
	"github.com/corvidchess/engine/pkg/search"
)

const ProtocolName = "uci"

// maxGameLength caps how many plies a replayed "position ... moves ..." line
// will apply, matching uci_talk's "game.len() >= 400" hard limit — a move
// that crosses the threshold is still applied, but nothing after it on the
// same line is.
const maxGameLength = 400

// TimePerMoveEnv names the environment variable that sets the per-move
// search budget, read once at driver startup (uci_talk's CHESS_TIME_PER_MOVE).
const TimePerMoveEnv = "CHESS_TIME_PER_MOVE"

const defaultTimePerMove = 5000 * time.Millisecond

// Driver implements a UCI driver for an engine. It is activated if sent "uci".
type Driver struct {
	e           *engine.Engine
	out         chan<- string
	timePerMove time.Duration

	quit chan struct{}
}

// NewDriver starts a driver reading lines from in and writing protocol
// output to the returned channel, until in is closed or "quit" is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:           e,
		out:         out,
		timePerMove: timePerMoveFromEnv(),
		quit:        make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

// Closed is closed once the driver has stopped processing input.
func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func timePerMoveFromEnv() time.Duration {
	v, ok := os.LookupEnv(TimePerMoveEnv)
	if !ok {
		return defaultTimePerMove
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return defaultTimePerMove
	}
	return time.Duration(ms) * time.Millisecond
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.quit)
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized, time per move=%v", d.timePerMove)

	for line := range in {
		terms := strings.Fields(line)
		if len(terms) == 0 {
			continue
		}

		switch terms[0] {
		case "uci":
			// * uci: identify the engine and acknowledge UCI mode.

			d.out <- fmt.Sprintf("id name %v", d.e.Name())
			d.out <- fmt.Sprintf("id author %v", d.e.Author())
			d.out <- "uciok"

		case "isready":
			d.out <- "readyok"

		case "ucinewgame":
			// No persistent state (hash tables, book) to clear.

		case "position":
			d.position(ctx, terms[1:])

		case "go":
			d.goSearch(ctx)

		case "stop":
			if pv, err := d.e.Halt(ctx); err == nil {
				d.reportBestMove(pv)
			}

		case "quit":
			return

		default:
			logw.Warningf(ctx, "Unknown command: %v", line)
		}
	}
	logw.Infof(ctx, "Input stream broken. Exiting")
}

// position implements "position [fen <fenstring> | startpos] [moves ...]",
// always rebuilding the game from scratch rather than applying moves
// incrementally onto whatever the engine currently holds, matching
// uci_talk's "position" arm, which always starts from ChessGame::default()
// (or a freshly parsed FEN) before replaying.
func (d *Driver) position(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "startpos":
		if err := d.e.Reset(ctx, fen.StartPos); err != nil {
			logw.Errorf(ctx, "position startpos: %v", err)
			return
		}

		rest := args[1:]
		if len(rest) == 0 || rest[0] != "moves" {
			return
		}
		for _, mv := range rest[1:] {
			if err := d.e.Move(ctx, mv); err != nil {
				// Invalid or illegal move: stop applying the rest of the
				// line, matching uci_talk's "continue 'main_loop".
				logw.Errorf(ctx, "position startpos moves: %v: %v", mv, err)
				return
			}
			if d.e.Ply() >= maxGameLength {
				return
			}
		}

	case "fen":
		// Moves following a FEN position are not supported, matching
		// uci_talk's documented limitation: the whole remainder of the line
		// is passed to the FEN parser, which accepts and ignores a trailing
		// "moves ..." clause the way it ignores any field past the fourth.
		position := strings.Join(args[1:], " ")
		if err := d.e.Reset(ctx, position); err != nil {
			logw.Errorf(ctx, "position fen: %v", err)
		}

	default:
		logw.Warningf(ctx, "position: unrecognized %v", args[0])
	}
}

// goSearch implements "go": it always searches for the driver's fixed
// per-move time budget, ignoring every other "go" parameter (wtime,
// depth, infinite, ...), matching uci_talk's single call to
// get_best_move_in_time(&mut game, time_per_move).
func (d *Driver) goSearch(ctx context.Context) {
	var opt search.Options
	opt.TimeLimit = lang.Some(d.timePerMove)

	out, err := d.e.Analyze(ctx, opt)
	if err != nil {
		logw.Errorf(ctx, "go: %v", err)
		return
	}

	var last search.PV
	haveMove := false
	for pv := range out {
		last = pv
		haveMove = true
	}

	if !haveMove {
		// No PV: either the position has no legal move (checkmate or
		// stalemate), or the time budget ran out before the first search
		// depth (5) completed. Nothing is printed in either case.
		return
	}

	d.reportBestMove(last)

	// The engine immediately commits its own chosen move, matching
	// uci_talk's "game.push(best_move)" right after printing "bestmove".
	if err := d.e.Move(ctx, last.Move.UCI()); err != nil {
		logw.Errorf(ctx, "go: failed to commit best move %v: %v", last.Move, err)
	}
}

func (d *Driver) reportBestMove(pv search.PV) {
	d.out <- fmt.Sprintf("info depth %v score cp %v time %v", pv.Depth, pv.Score, pv.Time.Milliseconds())
	d.out <- fmt.Sprintf("bestmove %v", pv.Move.UCI())
}
