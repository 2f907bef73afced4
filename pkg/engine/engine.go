// Package engine ties together a position, a search launcher and the
// bookkeeping a driver (UCI or console) needs around them: reset, move
// application, takeback and analyze/halt, all under a single mutex so a
// driver never has to reason about concurrent access itself.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/corvidchess/engine/pkg/board"
	"github.com/corvidchess/engine/pkg/board/fen"
	"github.com/corvidchess/engine/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options are search creation options.
type Options struct {
	// Depth is the default search depth limit. If zero, there is no default
	// limit and Analyze runs until Halt is called or a forced mate is found,
	// unless overridden by the per-call search.Options.
	Depth uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// Engine encapsulates game-playing logic, search and evaluation over a
// single board.Game, mutex-guarded so a driver's goroutines can call it
// freely.
type Engine struct {
	name, author string

	launcher search.Launcher
	opts     Options

	startFEN string
	g        *board.Game
	active   search.Handle

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithLauncher overrides the default iterative-deepening launcher, mainly
// for tests that want a deterministic stand-in.
func WithLauncher(l search.Launcher) Option {
	return func(e *Engine) {
		e.launcher = l
	}
}

// New creates an engine and resets it to the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		launcher: search.IterativeDeepening{},
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, fen.StartPos)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

// Game returns a clone of the current position, safe for the caller to
// inspect or search without holding the engine's lock.
func (e *Engine) Game() *board.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g.Clone()
}

// Ply returns the current game's Game.Ply: 1 at the starting position, plus
// one per committed ply.
func (e *Engine) Ply() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g.Ply()
}

// Position returns the current position in FEN format. Convenience function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Format(e.g)
}

// Reset resets the engine to a new starting position in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, depth=%v", position, e.opts.Depth)

	_, _ = e.haltSearchIfActive(ctx)

	g, err := fen.Parse(position)
	if err != nil {
		return err
	}
	e.startFEN = position
	e.g = g

	logw.Infof(ctx, "New position: %v", fen.Format(e.g))
	return nil
}

// Move applies the given move, in UCI long algebraic notation, usually an
// opponent move relayed by the GUI.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	_, _ = e.haltSearchIfActive(ctx)

	var moves board.MoveList
	e.g.GetMoves(&moves, true)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.UCI() != move {
			continue
		}

		e.g.PushHistory(m)
		logw.Infof(ctx, "Move %v: %v", m, fen.Format(e.g))
		return nil
	}
	return fmt.Errorf("invalid move: %v", move)
}

// TakeBack undoes the latest move. It replays the game from its starting
// position rather than reversing the last Push in place, since the game
// phase transition is one-way: a literal unmake cannot restore the Opening
// phase once the position has crossed into Endgame, but a full replay
// recomputes the phase from scratch at every ply, the same way the engine's
// own position handling always rebuilds from scratch rather than undoing.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	history := e.g.History()
	if len(history) == 0 {
		return fmt.Errorf("no move to take back")
	}

	g, err := fen.Parse(e.startFEN)
	if err != nil {
		return fmt.Errorf("takeback: %w", err)
	}
	for _, m := range history[:len(history)-1] {
		g.PushHistory(m)
	}
	e.g = g

	logw.Infof(ctx, "Takeback %v", history[len(history)-1])
	return nil
}

// Analyze analyzes the current position.
func (e *Engine) Analyze(ctx context.Context, opt search.Options) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := opt.DepthLimit.V(); !ok && e.opts.Depth > 0 {
		opt.DepthLimit = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "Analyze %v, opt=%v", fen.Format(e.g), opt)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	handle, out := e.launcher.Launch(ctx, e.g.Clone(), opt)
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns the principal variation, if any.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (search.PV, bool) {
	if e.active != nil {
		pv := e.active.Halt()
		logw.Infof(ctx, "Search halted: %v", pv)

		e.active = nil
		return pv, true
	}
	return search.PV{}, false
}
