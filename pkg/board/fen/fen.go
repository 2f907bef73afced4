// Package fen parses Forsyth-Edwards Notation into a *board.Game. Only the
// first four fields are consulted — piece placement, side to move, castling
// rights and the en passant target square — the halfmove clock and fullmove
// counter are accepted but ignored, matching chess_game.rs::new.
package fen

import (
	"fmt"
	"strings"

	"github.com/corvidchess/engine/pkg/board"
)

// StartPos is the standard starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse decodes a FEN string into a new Game.
func Parse(s string) (*board.Game, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d in %q", len(fields), s)
	}

	placements, err := parsePlacement(fields[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	turn, err := parseTurn(fields[1])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	epFile, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	g, err := board.NewGame(placements, turn, castling, epFile)
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	return g, nil
}

func parsePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("piece placement %q: expected 8 ranks, got %d", field, len(ranks))
	}

	var placements []board.Placement
	for i, rank := range ranks {
		row := int8(7 - i)
		col := int8(0)
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				col += int8(r - '0')
				continue
			}
			kind, ok := board.ParsePieceKind(r)
			if !ok {
				return nil, fmt.Errorf("piece placement %q: invalid piece %q", field, r)
			}
			if col > 7 {
				return nil, fmt.Errorf("piece placement %q: rank %d overflows", field, 8-i)
			}
			owner := board.Black
			if r >= 'A' && r <= 'Z' {
				owner = board.White
			}
			sq := board.NewSquareUnchecked(row, col)
			placements = append(placements, board.Placement{Square: sq, Piece: board.Piece{Kind: kind, Owner: owner}})
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("piece placement %q: rank %d has %d files, want 8", field, 8-i, col)
		}
	}
	return placements, nil
}

func parseTurn(field string) (board.Color, error) {
	switch field {
	case "w":
		return board.White, nil
	case "b":
		return board.Black, nil
	default:
		return 0, fmt.Errorf("active color %q: expected w or b", field)
	}
}

func parseCastling(field string) (board.Castling, error) {
	if field == "-" {
		return 0, nil
	}
	var c board.Castling
	for _, r := range field {
		switch r {
		case 'K':
			c |= board.WhiteKingSide
		case 'Q':
			c |= board.WhiteQueenSide
		case 'k':
			c |= board.BlackKingSide
		case 'q':
			c |= board.BlackQueenSide
		default:
			return 0, fmt.Errorf("castling rights %q: invalid character %q", field, r)
		}
	}
	return c, nil
}

func parseEnPassant(field string) (int8, error) {
	if field == "-" {
		return -1, nil
	}
	sq, ok := board.ParseSquare(field)
	if !ok {
		return 0, fmt.Errorf("en passant target %q: invalid square", field)
	}
	return sq.Col(), nil
}

// Format renders g's current position as a FEN string's first four fields
// (piece placement, side to move, castling rights, en passant target); the
// halfmove clock and fullmove number are not tracked by Game, so both are
// emitted as fixed placeholders.
func Format(g *board.Game) string {
	var b strings.Builder
	for row := int8(7); row >= 0; row-- {
		empty := 0
		for col := int8(0); col < 8; col++ {
			sq := board.NewSquareUnchecked(row, col)
			p, occ := g.PieceAt(sq)
			if !occ {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&b, "%d", empty)
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
		}
		if row > 0 {
			b.WriteByte('/')
		}
	}

	if g.Turn() == board.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	b.WriteString(g.Castling().String())

	if file, ok := g.EnPassantFile(); ok {
		epRow := int8(2)
		if g.Turn() == board.White {
			epRow = 5
		}
		fmt.Fprintf(&b, " %v", board.NewSquareUnchecked(epRow, file))
	} else {
		b.WriteString(" -")
	}
	b.WriteString(" 0 1")
	return b.String()
}
