package search

import (
	"errors"

	"go.uber.org/atomic"

	"github.com/corvidchess/engine/pkg/board"
)

// ErrHalted is returned by a search cut short by its cancellation flag.
var ErrHalted = errors.New("search: halted")

// ErrNoMoves is returned by GetBestMove when the position has no legal
// moves (checkmate or stalemate), matching get_best_move_in_time's Option
// return of None (search.rs).
var ErrNoMoves = errors.New("search: no legal moves")

func noMovesScore(g *board.Game, mover board.Color) Score {
	if !g.IsAttacked(g.KingSquare(mover), mover.Opponent()) {
		return 0 // stalemate
	}
	return mateScore(g.Ply())
}

// bestMoveScoreDepth1 is the cheapest leaf: it evaluates every pseudo-legal
// (not legality-filtered) reply with a depth-1 make/unmake and takes the
// static incremental score directly, trading a small amount of accuracy at
// the horizon for speed (search.rs::get_best_move_score_depth_1).
func bestMoveScoreDepth1(g *board.Game, alpha, beta Score) Score {
	mover := g.Turn()
	var moves board.MoveList
	g.GetMoves(&moves, false)

	if moves.Len() == 0 {
		return noMovesScore(g, mover)
	}
	if moves.Len() == 1 {
		m := moves.At(0)
		g.Push(m)
		score := negate(bestMoveScoreDepth1(g, negate(beta), negate(alpha)))
		g.Pop(m)
		return score
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		g.PushDepth1(m)
		score := negate(g.Score() * Score(g.Turn().Sign()))
		g.PopDepth1(m)

		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// bestMoveScoreDepth2 generates fully legal moves, heuristically orders them,
// and evaluates each reply one ply deeper via bestMoveScoreDepth1
// (search.rs::get_best_move_score_depth_2).
func bestMoveScoreDepth2(g *board.Game, alpha, beta Score) Score {
	mover := g.Turn()
	var moves board.MoveList
	g.GetMoves(&moves, true)

	if moves.Len() == 0 {
		return noMovesScore(g, mover)
	}
	if moves.Len() == 1 {
		m := moves.At(0)
		g.Push(m)
		score := negate(bestMoveScoreDepth2(g, negate(beta), negate(alpha)))
		g.Pop(m)
		return score
	}

	orderMoves(&moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		g.Push(m)
		score := negate(bestMoveScoreDepth1(g, negate(beta), negate(alpha)))
		g.Pop(m)

		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// bestMoveScore is the general negamax/alpha-beta recursion. A position with
// only one legal reply is played without consuming depth (a forced-reply
// extension), and at depth >= 5 the move list is ordered by a shallow
// recursive probe rather than the cheap heuristic (search.rs::get_best_move_score).
func bestMoveScore(g *board.Game, stop *atomic.Bool, depth int, alpha, beta Score) (Score, error) {
	if stop.Load() {
		return 0, ErrHalted
	}

	switch depth {
	case 2:
		return bestMoveScoreDepth2(g, alpha, beta), nil
	case 1:
		return bestMoveScoreDepth1(g, alpha, beta), nil
	case 0:
		return g.Score() * Score(g.Turn().Sign()), nil
	}

	mover := g.Turn()
	var moves board.MoveList
	g.GetMoves(&moves, true)

	if moves.Len() == 0 {
		return noMovesScore(g, mover), nil
	}
	if moves.Len() == 1 {
		m := moves.At(0)
		g.Push(m)
		score, err := bestMoveScore(g, stop, depth, negate(beta), negate(alpha))
		g.Pop(m)
		if err != nil {
			return 0, err
		}
		return negate(score), nil
	}

	if depth >= 5 {
		deepOrder(g, &moves, depth-5, alpha, beta, stop)
	} else {
		orderMoves(&moves)
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		g.Push(m)
		score, err := bestMoveScore(g, stop, depth-1, negate(beta), negate(alpha))
		g.Pop(m)
		if err != nil {
			return 0, err
		}

		alpha = max(alpha, negate(score))
		if alpha >= beta {
			break
		}
	}
	return alpha, nil
}

// GetBestMove searches the position to depth plies and returns the best
// move found, its score, and whether it was the only legal move (in which
// case depth was not consulted at all — search.rs::get_best_move).
func GetBestMove(g *board.Game, stop *atomic.Bool, depth int) (board.Move, Score, bool, error) {
	var moves board.MoveList
	g.GetMoves(&moves, true)

	if moves.Len() == 0 {
		return board.Move{}, noMovesScore(g, g.Turn()), false, ErrNoMoves
	}
	if moves.Len() == 1 {
		return moves.At(0), 0, true, nil
	}

	bestScore := MinScore
	var bestMove board.Move
	haveMove := false

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		g.Push(m)
		score, err := bestMoveScore(g, stop, depth-1, MinScore, negate(bestScore))
		g.Pop(m)
		if err != nil {
			return board.Move{}, 0, false, err
		}

		score = negate(score)
		if !haveMove || score > bestScore {
			bestScore = score
			bestMove = m
			haveMove = true
		}
	}
	return bestMove, bestScore, false, nil
}
