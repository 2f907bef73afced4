package board

// Push applies m to the position: board, incremental score, king positions,
// castling rights and en passant are all updated, and a new state entry is
// pushed. Pop is the exact inverse (spec.md §4.3).
func (g *Game) Push(m Move) {
	st := g.states.top()
	st.enPassant = noEnPassant

	switch m.Kind {
	case NormalMove:
		g.setSquare(m.Start, Piece{Kind: empty})
		g.setSquare(m.End, m.Piece)

		if m.Piece.Kind == King {
			g.setKingSquare(g.turn, m.End)
			revokeBothRights(&st, g.turn)
		} else if m.Piece.Kind == Rook {
			revokeRookRight(&st, m.Start)
		}
		if m.HasCapture && m.Captured.Kind == Rook {
			revokeRookRight(&st, m.End)
		}
		if m.Piece.Kind == Pawn && abs8(m.End.Row()-m.Start.Row()) == 2 {
			st.enPassant = m.Start.Col()
		}

	case PromotionMove:
		g.setSquare(m.Start, Piece{Kind: empty})
		g.setSquare(m.End, Piece{Kind: m.NewKind, Owner: m.Owner})

		if m.HasCapture && m.Captured.Kind == Rook {
			revokeRookRight(&st, m.End)
		}

	case EnPassantMove:
		startRow, endRow, capturedRow := enPassantRows(m.Owner)
		oldPawn := NewSquareUnchecked(startRow, m.StartCol)
		newPawn := NewSquareUnchecked(endRow, m.EndCol)
		takenPawn := NewSquareUnchecked(capturedRow, m.EndCol)

		g.setSquare(takenPawn, Piece{Kind: empty})
		g.setSquare(oldPawn, Piece{Kind: empty})
		g.setSquare(newPawn, Piece{Kind: Pawn, Owner: m.Owner})

	case CastlingShortMove, CastlingLongMove:
		kingFrom, kingTo, rookFrom, rookTo := castlingSquares(m.Owner, m.Kind == CastlingShortMove)

		g.setSquare(rookFrom, Piece{Kind: empty})
		g.setSquare(kingFrom, Piece{Kind: empty})
		g.setSquare(rookTo, Piece{Kind: Rook, Owner: m.Owner})
		g.setSquare(kingTo, Piece{Kind: King, Owner: m.Owner})

		g.setKingSquare(g.turn, kingTo)
		revokeBothRights(&st, g.turn)
	}

	g.turn = g.turn.Opponent()
	g.states.push(st)
}

// Pop reverses Push(m) exactly, restoring the position byte-for-byte
// (spec.md §8.6).
func (g *Game) Pop(m Move) {
	g.states.pop()
	g.turn = g.turn.Opponent()

	switch m.Kind {
	case NormalMove:
		g.setSquare(m.Start, m.Piece)
		g.setSquare(m.End, capturedOrEmpty(m))

		if m.Piece.Kind == King {
			g.setKingSquare(g.turn, m.Start)
		}

	case PromotionMove:
		g.setSquare(m.Start, Piece{Kind: Pawn, Owner: m.Owner})
		g.setSquare(m.End, capturedOrEmpty(m))

	case EnPassantMove:
		startRow, endRow, capturedRow := enPassantRows(m.Owner)
		oldPawn := NewSquareUnchecked(startRow, m.StartCol)
		newPawn := NewSquareUnchecked(endRow, m.EndCol)
		takenPawn := NewSquareUnchecked(capturedRow, m.EndCol)

		g.setSquare(newPawn, Piece{Kind: empty})
		g.setSquare(takenPawn, Piece{Kind: Pawn, Owner: m.Owner.Opponent()})
		g.setSquare(oldPawn, Piece{Kind: Pawn, Owner: m.Owner})

	case CastlingShortMove, CastlingLongMove:
		kingFrom, kingTo, rookFrom, rookTo := castlingSquares(m.Owner, m.Kind == CastlingShortMove)

		g.setSquare(kingTo, Piece{Kind: empty})
		g.setSquare(rookTo, Piece{Kind: empty})
		g.setSquare(rookFrom, Piece{Kind: Rook, Owner: m.Owner})
		g.setSquare(kingFrom, Piece{Kind: King, Owner: m.Owner})

		g.setKingSquare(m.Owner, kingFrom)
	}
}

// PushDepth1 mutates only the board and side to move: no state stack, no
// king-position bookkeeping. Used at leaves where the generator will not be
// reinvoked beyond a captures-only evaluation (spec.md §4.3).
func (g *Game) PushDepth1(m Move) {
	switch m.Kind {
	case NormalMove:
		g.setSquare(m.Start, Piece{Kind: empty})
		g.setSquare(m.End, m.Piece)

	case PromotionMove:
		g.setSquare(m.Start, Piece{Kind: empty})
		g.setSquare(m.End, Piece{Kind: m.NewKind, Owner: m.Owner})

	case EnPassantMove:
		startRow, endRow, capturedRow := enPassantRows(m.Owner)
		oldPawn := NewSquareUnchecked(startRow, m.StartCol)
		newPawn := NewSquareUnchecked(endRow, m.EndCol)
		takenPawn := NewSquareUnchecked(capturedRow, m.EndCol)

		g.setSquare(takenPawn, Piece{Kind: empty})
		g.setSquare(oldPawn, Piece{Kind: empty})
		g.setSquare(newPawn, Piece{Kind: Pawn, Owner: m.Owner})

	case CastlingShortMove, CastlingLongMove:
		kingFrom, kingTo, rookFrom, rookTo := castlingSquares(m.Owner, m.Kind == CastlingShortMove)

		g.setSquare(rookFrom, Piece{Kind: empty})
		g.setSquare(kingFrom, Piece{Kind: empty})
		g.setSquare(rookTo, Piece{Kind: Rook, Owner: m.Owner})
		g.setSquare(kingTo, Piece{Kind: King, Owner: m.Owner})
	}

	g.turn = g.turn.Opponent()
}

// PopDepth1 is the exact inverse of PushDepth1.
func (g *Game) PopDepth1(m Move) {
	g.turn = g.turn.Opponent()

	switch m.Kind {
	case NormalMove:
		g.setSquare(m.Start, m.Piece)
		g.setSquare(m.End, capturedOrEmpty(m))

	case PromotionMove:
		g.setSquare(m.Start, Piece{Kind: Pawn, Owner: m.Owner})
		g.setSquare(m.End, capturedOrEmpty(m))

	case EnPassantMove:
		startRow, endRow, capturedRow := enPassantRows(m.Owner)
		oldPawn := NewSquareUnchecked(startRow, m.StartCol)
		newPawn := NewSquareUnchecked(endRow, m.EndCol)
		takenPawn := NewSquareUnchecked(capturedRow, m.EndCol)

		g.setSquare(newPawn, Piece{Kind: empty})
		g.setSquare(takenPawn, Piece{Kind: Pawn, Owner: m.Owner.Opponent()})
		g.setSquare(oldPawn, Piece{Kind: Pawn, Owner: m.Owner})

	case CastlingShortMove, CastlingLongMove:
		kingFrom, kingTo, rookFrom, rookTo := castlingSquares(m.Owner, m.Kind == CastlingShortMove)

		g.setSquare(kingTo, Piece{Kind: empty})
		g.setSquare(rookTo, Piece{Kind: empty})
		g.setSquare(rookFrom, Piece{Kind: Rook, Owner: m.Owner})
		g.setSquare(kingFrom, Piece{Kind: King, Owner: m.Owner})
	}
}

// PushHistory commits m as part of the game's permanent history: it is
// recorded for PGN rendering, the game phase is reevaluated (against the
// pre-move position, matching the original source), and then the move is
// applied via Push.
func (g *Game) PushHistory(m Move) {
	g.history = append(g.history, m)
	g.updatePhase()
	g.Push(m)
}

func capturedOrEmpty(m Move) Piece {
	if m.HasCapture {
		return m.Captured
	}
	return Piece{Kind: empty}
}

func revokeBothRights(st *state, owner Color) {
	if owner == White {
		st.castling &^= WhiteKingSide | WhiteQueenSide
	} else {
		st.castling &^= BlackKingSide | BlackQueenSide
	}
}

func revokeRookRight(st *state, sq Square) {
	switch sq {
	case WhiteQueenRook:
		st.castling &^= WhiteQueenSide
	case WhiteKingRook:
		st.castling &^= WhiteKingSide
	case BlackQueenRook:
		st.castling &^= BlackQueenSide
	case BlackKingRook:
		st.castling &^= BlackKingSide
	}
}
