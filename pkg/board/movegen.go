package board

// GetMoves fills out with every move available to the side to move. If
// verifyKing is false, out contains pseudo-legal moves only (the move may
// leave the mover's own king in check) — used for the search's depth-1
// leaf, which never recurses into check-dependent logic. If
// verifyKing is true, out contains only fully legal moves (chess_game.rs's
// get_moves).
func (g *Game) GetMoves(out *MoveList, verifyKing bool) {
	out.Reset()
	mover := g.turn

	for row := int8(0); row < 8; row++ {
		for col := int8(0); col < 8; col++ {
			sq := NewSquareUnchecked(row, col)
			p, occ := g.PieceAt(sq)
			if !occ || p.Owner != mover {
				continue
			}
			switch p.Kind {
			case Pawn:
				g.genPawnMoves(out, sq, p)
			case Knight:
				g.genStepMoves(out, sq, p, knightOffsets[:])
			case King:
				g.genKingMoves(out, sq, p)
				g.genCastlingMoves(out, mover)
			case Rook:
				g.genSlidingMoves(out, sq, p, orthogonalDirs[:])
			case Bishop:
				g.genSlidingMoves(out, sq, p, diagonalDirs[:])
			case Queen:
				g.genSlidingMoves(out, sq, p, orthogonalDirs[:])
				g.genSlidingMoves(out, sq, p, diagonalDirs[:])
			}
		}
	}

	if verifyKing {
		g.filterLegal(out)
	}
}

func (g *Game) genPawnMoves(out *MoveList, sq Square, p Piece) {
	forward := int8(1)
	startRow := int8(1)
	promoRow := int8(7)
	epRow := int8(4)
	if p.Owner == Black {
		forward = -1
		startRow = 6
		promoRow = 0
		epRow = 3
	}

	if t, ok := sq.Add(forward, 0); ok && g.IsEmpty(t) {
		g.addPawnAdvance(out, sq, t, p, promoRow, Piece{Kind: empty}, false)
		if sq.Row() == startRow {
			if t2, ok2 := sq.Add(2*forward, 0); ok2 && g.IsEmpty(t2) {
				out.push(NewNormalMove(p, sq, t2, Piece{Kind: empty}, false))
			}
		}
	}

	for _, dc := range [2]int8{-1, 1} {
		t, ok := sq.Add(forward, dc)
		if !ok {
			continue
		}
		if target, occ := g.PieceAt(t); occ && target.Owner != p.Owner {
			g.addPawnAdvance(out, sq, t, p, promoRow, target, true)
			continue
		}
		if ep, has := g.EnPassantFile(); has && sq.Row() == epRow && ep == t.Col() {
			out.push(NewEnPassantMove(p.Owner, sq.Col(), t.Col()))
		}
	}
}

func (g *Game) addPawnAdvance(out *MoveList, start, end Square, p Piece, promoRow int8, captured Piece, hasCapture bool) {
	if end.Row() == promoRow {
		for _, k := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
			out.push(NewPromotionMove(p.Owner, start, end, k, captured, hasCapture))
		}
		return
	}
	out.push(NewNormalMove(p, start, end, captured, hasCapture))
}

func (g *Game) genStepMoves(out *MoveList, sq Square, p Piece, offsets [][2]int8) {
	for _, d := range offsets {
		t, ok := sq.Add(d[0], d[1])
		if !ok {
			continue
		}
		if target, occ := g.PieceAt(t); occ {
			if target.Owner != p.Owner {
				out.push(NewNormalMove(p, sq, t, target, true))
			}
			continue
		}
		out.push(NewNormalMove(p, sq, t, Piece{Kind: empty}, false))
	}
}

// genKingMoves generates step moves for the king, unconditionally rejecting
// any destination adjacent to the enemy king — two kings may never stand
// next to each other regardless of whether the mover is currently in check,
// matching piece.rs::get_king_moves, which applies this rule in move
// generation itself rather than leaving it to the post-hoc check-legality
// filter.
func (g *Game) genKingMoves(out *MoveList, sq Square, p Piece) {
	enemyKing := g.kingPositions[colorIndex(p.Owner.Opponent())]
	for _, d := range kingDirs {
		t, ok := sq.Add(d[0], d[1])
		if !ok || squareAdjacent(t, enemyKing) {
			continue
		}
		if target, occ := g.PieceAt(t); occ {
			if target.Owner != p.Owner {
				out.push(NewNormalMove(p, sq, t, target, true))
			}
			continue
		}
		out.push(NewNormalMove(p, sq, t, Piece{Kind: empty}, false))
	}
}

func (g *Game) genSlidingMoves(out *MoveList, sq Square, p Piece, dirs [][2]int8) {
	for _, d := range dirs {
		t := sq
		for {
			next, ok := t.Add(d[0], d[1])
			if !ok {
				break
			}
			t = next
			if target, occ := g.PieceAt(t); occ {
				if target.Owner != p.Owner {
					out.push(NewNormalMove(p, sq, t, target, true))
				}
				break
			}
			out.push(NewNormalMove(p, sq, t, Piece{Kind: empty}, false))
		}
	}
}

func (g *Game) genCastlingMoves(out *MoveList, owner Color) {
	rights := g.Castling()
	opponent := owner.Opponent()
	row := int8(0)
	if owner == Black {
		row = 7
	}
	kingSq := NewSquareUnchecked(row, 4)

	kingSide, queenSide := WhiteKingSide, WhiteQueenSide
	if owner == Black {
		kingSide, queenSide = BlackKingSide, BlackQueenSide
	}

	if g.IsAttacked(kingSq, opponent) {
		return
	}

	if rights.Has(kingSide) {
		f := NewSquareUnchecked(row, 5)
		h := NewSquareUnchecked(row, 6)
		if g.IsEmpty(f) && g.IsEmpty(h) && !g.IsAttacked(f, opponent) && !g.IsAttacked(h, opponent) {
			out.push(NewCastlingShort(owner))
		}
	}
	if rights.Has(queenSide) {
		b := NewSquareUnchecked(row, 1)
		c := NewSquareUnchecked(row, 2)
		d := NewSquareUnchecked(row, 3)
		if g.IsEmpty(b) && g.IsEmpty(c) && g.IsEmpty(d) && !g.IsAttacked(c, opponent) && !g.IsAttacked(d, opponent) {
			out.push(NewCastlingLong(owner))
		}
	}
}

// filterLegal drops any pseudo-legal move that leaves the mover's own king in
// check. As an optimization directly grounded in the original source, a
// Normal move from a square sharing no rank, file or diagonal with the king
// cannot expose it to attack unless the king is already in check, so it is
// kept without a make/unmake test; every other move is verified by actually
// playing it.
func (g *Game) filterLegal(out *MoveList) {
	mover := g.turn
	kingSq := g.KingSquare(mover)
	inCheck := g.IsAttacked(kingSq, mover.Opponent())

	n := 0
	for i := 0; i < out.Len(); i++ {
		m := out.At(i)

		needsTest := inCheck || m.Kind != NormalMove || sharesLine(m.Start, kingSq)
		keep := true
		if needsTest {
			g.Push(m)
			keep = !g.IsAttacked(g.KingSquare(mover), g.turn)
			g.Pop(m)
		}
		if keep {
			out.keep(n, m)
			n++
		}
	}
	out.truncate(n)
}

func sharesLine(a, b Square) bool {
	dr := a.Row() - b.Row()
	dc := a.Col() - b.Col()
	return dr == 0 || dc == 0 || abs8(dr) == abs8(dc)
}
