// Package search implements iterative-deepening negamax with alpha-beta
// pruning over a board.Game, following search.rs's depth-specialized leaves
// and move ordering.
package search

import "github.com/corvidchess/engine/pkg/board"

// Score is the search's evaluation of a position from the perspective of the
// side to move (negamax convention): positive favors the mover. It is
// distinct from Game.Score, which is always White-relative.
type Score = board.Score

const (
	// MinScore is one above the type's true minimum so it can always be
	// safely negated without overflow, matching search.rs's use of
	// Score::MIN + 1 as its effective "negative infinity".
	MinScore Score = -32767
	MaxScore Score = 32767
)

// IsMateScore reports whether score reflects a forced mate for either side
// rather than a material/positional evaluation: it is within 1000 of
// MaxScore (the mover mates) or of MinScore (the mover is mated).
func IsMateScore(score Score) bool {
	return score > MaxScore-1000 || score < MinScore+1000
}

// mateScore is awarded to the side to move when it has no legal moves and
// its king is in check. ply biases the score so that a mate forced sooner in
// the real game is scored worse for the losing side than one forced later
// (search.rs's "Score::MIN + 100 + game.len()").
func mateScore(ply int) Score {
	return MinScore + 100 + Score(ply)
}

func negate(s Score) Score {
	return -s
}

func max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}
