package board

// updatePhase recomputes whether the game has entered the endgame and, if
// so, swaps the King table and rescores both king squares through setSquare
// (the King table is the only one that depends on the phase) so past_scores
// and the running total stay consistent (spec.md §4.7). It is invoked when a
// game is built and when a move is committed to history, not per search
// node.
func (g *Game) updatePhase() {
	if g.phase == GamePhaseEndgame {
		return
	}
	if !g.isEndgame() {
		return
	}

	g.phase = GamePhaseEndgame
	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			sq := NewSquareUnchecked(row, col)
			if p, ok := g.PieceAt(sq); ok && p.Kind == King {
				g.setSquare(sq, p)
			}
		}
	}
}

func (g *Game) isEndgame() bool {
	var total int32
	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			sq := NewSquareUnchecked(row, col)
			if p, ok := g.PieceAt(sq); ok {
				score := p.Score(sq, g.phase)
				if score < 0 {
					score = -score
				}
				total += int32(score)
			}
		}
	}
	return total < 2*EndgameThreshold
}
