package board

var knightOffsets = [8][2]int8{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var orthogonalDirs = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagonalDirs = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var kingDirs = [8][2]int8{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// IsAttacked reports whether sq is attacked by any piece owned by by. It is
// used only for check detection and castling-square safety, and — like
// chess_game.rs::is_targeted — does not need to account for a piece
// interposing itself on the very square being tested; callers only ever
// query squares a friendly piece is about to vacate or pass through.
func (g *Game) IsAttacked(sq Square, by Color) bool {
	if squareAdjacent(sq, g.kingPositions[colorIndex(by)]) {
		return true
	}

	for _, d := range knightOffsets {
		if t, ok := sq.Add(d[0], d[1]); ok {
			if p, occ := g.PieceAt(t); occ && p.Owner == by && p.Kind == Knight {
				return true
			}
		}
	}

	forward := int8(1)
	if by == Black {
		forward = -1
	}
	for _, dc := range [2]int8{-1, 1} {
		if t, ok := sq.Add(-forward, dc); ok {
			if p, occ := g.PieceAt(t); occ && p.Owner == by && p.Kind == Pawn {
				return true
			}
		}
	}

	if g.rayAttacked(sq, orthogonalDirs[:], by, Rook, Queen) {
		return true
	}
	if g.rayAttacked(sq, diagonalDirs[:], by, Bishop, Queen) {
		return true
	}
	return false
}

func (g *Game) rayAttacked(sq Square, dirs [][2]int8, by Color, k1, k2 PieceKind) bool {
	for _, d := range dirs {
		t := sq
		for {
			next, ok := t.Add(d[0], d[1])
			if !ok {
				break
			}
			t = next
			p, occ := g.PieceAt(t)
			if !occ {
				continue
			}
			if p.Owner == by && (p.Kind == k1 || p.Kind == k2) {
				return true
			}
			break
		}
	}
	return false
}
