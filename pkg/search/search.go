// Package search contains search functionality and utilities.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"

	"github.com/corvidchess/engine/pkg/board"
)

// Options holds the dynamic limits for one iterative-deepening run. Either,
// both or neither may be set; with neither, the search runs until Halt is
// called or a forced mate is found.
type Options struct {
	// DepthLimit, if set, stops iterative deepening once this ply depth has
	// completed. Deepening starts at depth 5, so a lower limit stops after
	// that first depth.
	DepthLimit lang.Optional[uint]
	// TimeLimit, if set, stops the search once it has run for this long.
	TimeLimit lang.Optional[time.Duration]
}

func (o Options) String() string {
	s := "[]"
	if d, ok := o.DepthLimit.V(); ok {
		s = fmt.Sprintf("[depth=%v]", d)
	}
	if t, ok := o.TimeLimit.V(); ok {
		s = fmt.Sprintf("[time=%v]", t)
	}
	return s
}

// PV is the principal variation reported after completing one depth of
// iterative deepening. Score is a running average of this depth's score and
// the previous depth's, matching get_best_move_in_time's smoothing.
type PV struct {
	Depth int
	Move  board.Move
	Score Score
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v move=%v score=%v time=%v", p.Depth, p.Move, p.Score, p.Time)
}

// Launcher launches iterative-deepening searches.
type Launcher interface {
	// Launch begins searching g, which the caller must not mutate or reuse
	// concurrently, and returns a handle to stop it and a channel of
	// increasingly deep PVs. The channel is closed once the search ends.
	Launch(ctx context.Context, g *board.Game, opt Options) (Handle, <-chan PV)
}

// Handle manages a launched search.
type Handle interface {
	// Halt stops the search, if still running, and returns its most recent
	// PV. Idempotent, and safe to call before the first PV is available: it
	// blocks until one is, or until the search ends without one (then the
	// zero PV is returned).
	Halt() PV
}

// IterativeDeepening is the standard Launcher: it calls GetBestMove at
// successively deeper plies, starting at 5 (search.rs::get_best_move_in_time
// never searches shallower, trusting the depth-specialized leaves to cover
// the first few plies cheaply within that call).
type IterativeDeepening struct{}

func (IterativeDeepening) Launch(ctx context.Context, g *board.Game, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{
		init: make(chan struct{}),
		quit: make(chan struct{}),
	}
	go h.process(ctx, g, opt, out)
	return h, out
}

type handle struct {
	init, quit        chan struct{}
	initialized, done atomic.Bool

	pv PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, g *board.Game, opt Options, out chan PV) {
	defer h.markInitialized()
	defer close(out)

	stop := atomic.NewBool(false)
	go func() {
		select {
		case <-ctx.Done():
		case <-h.quit:
		}
		stop.Store(true)
	}()

	if limit, ok := opt.TimeLimit.V(); ok {
		timer := time.AfterFunc(limit, func() { stop.Store(true) })
		defer timer.Stop()
	}

	var lastScore Score
	haveLastScore := false

	for depth := 5; !stop.Load(); depth++ {
		start := time.Now()

		move, score, onlyMove, err := GetBestMove(g, stop, depth)
		if err != nil {
			if errors.Is(err, ErrHalted) {
				return // Halt was called, the context ended, or the time limit ran out.
			}
			if errors.Is(err, ErrNoMoves) {
				return // Checkmate or stalemate: no PV to report.
			}
			logw.Errorf(ctx, "search failed on %v at depth=%v: %v", g, depth, err)
			return
		}

		avg := score
		if haveLastScore {
			avg = (lastScore + score) / 2
		}
		lastScore, haveLastScore = score, true

		pv := PV{Depth: depth, Move: move, Score: avg, Time: time.Since(start)}
		logw.Debugf(ctx, "searched: %v", pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.markInitialized()

		if onlyMove || IsMateScore(score) {
			return // forced move, or a forced mate has been found
		}
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) >= limit {
			return
		}
	}
}

func (h *handle) markInitialized() {
	if h.initialized.CAS(false, true) {
		close(h.init)
	}
}

func (h *handle) Halt() PV {
	<-h.init
	if h.done.CAS(false, true) {
		close(h.quit)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}
