package search

import (
	"sort"

	"go.uber.org/atomic"

	"github.com/corvidchess/engine/pkg/board"
)

// orderMoves sorts ms heuristically in place: promotions first, then
// captures (best victim first, tie-broken by attacker), then quiet moves
// ordered by piece type, with en passant and castling last. This is a cheap
// heuristic ordering, not a score-based one — grounded directly on
// search.rs::simple_sort.
func orderMoves(ms *board.MoveList) {
	s := ms.Slice()
	sort.SliceStable(s, func(i, j int) bool {
		return simpleSortLess(s[i], s[j])
	})
}

func simpleSortLess(a, b board.Move) bool {
	switch a.Kind {
	case board.PromotionMove:
		return true
	case board.NormalMove:
		switch b.Kind {
		case board.NormalMove:
			return normalLess(a, b)
		case board.PromotionMove:
			return false
		default:
			return true
		}
	default:
		return false
	}
}

func normalLess(a, b board.Move) bool {
	switch {
	case a.HasCapture && b.HasCapture:
		if a.Captured.Kind != b.Captured.Kind {
			return a.Captured.Kind < b.Captured.Kind
		}
		return b.Piece.Kind < a.Piece.Kind
	case a.HasCapture && !b.HasCapture:
		return true
	case !a.HasCapture && b.HasCapture:
		return false
	default:
		return a.Piece.Kind < b.Piece.Kind
	}
}

// deepOrder reorders ms by a shallow recursive search of each candidate move,
// for use at depths deep enough that the cost is worth it (depth >= 5 in the
// caller). A move whose probe was cancelled sorts first, mirroring
// search.rs's sort_by_cached_key over a Result where Err sorts before Ok.
func deepOrder(g *board.Game, ms *board.MoveList, probeDepth int, alpha, beta Score, stop *atomic.Bool) {
	type keyed struct {
		move board.Move
		key  Score
	}

	s := ms.Slice()
	pairs := make([]keyed, len(s))
	for i, m := range s {
		g.Push(m)
		score, err := bestMoveScore(g, stop, probeDepth, negate(beta), negate(alpha))
		g.Pop(m)
		if err != nil {
			score = MinScore
		}
		pairs[i] = keyed{move: m, key: score}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].key < pairs[j].key
	})
	for i, p := range pairs {
		s[i] = p.move
	}
}
