package chess

import (
	"fmt"
	"strings"
)

// MoveKind tags the variants of a Move.
type MoveKind uint8

const (
	// NormalMove covers quiet moves, captures and promotions.
	NormalMove MoveKind = iota
	// EnPassantMove is a pawn capture onto the en passant target square.
	EnPassantMove
	// CastleMove is castling; From is the king origin, To the rook origin.
	CastleMove
	// PutMove drops a pocket piece onto an empty square (drop variants).
	PutMove
)

// Move is a value describing one move, meaningful only relative to the
// Position it was generated from. Fields not used by a kind stay zero, so
// moves are directly comparable.
type Move struct {
	Kind      MoveKind
	From      Square       // origin; NoSquare for PutMove
	To        Square       // destination; rook origin for CastleMove
	Promotion Role         // NoRole unless a promotion
	Role      Role         // dropped role for PutMove, NoRole otherwise
	Side      CastlingSide // castling direction for CastleMove
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.Kind == CastleMove }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != NoRole }

// IsDrop reports whether the move drops a pocket piece.
func (m Move) IsDrop() bool { return m.Kind == PutMove }

// KingTo returns the king's destination for a castling move.
func (m Move) KingTo() Square {
	color := White
	if m.From.Rank() == 7 {
		color = Black
	}
	return castleKingTo(color, m.Side)
}

// UCI returns the coordinate notation of the move: "e2e4", "e7e8q", or
// "N@f3" for drops. Castling with standard origins is written king-from to
// king-destination ("e1g1"); non-standard origins use the king-takes-rook
// form to stay unambiguous.
func (m Move) UCI() string {
	switch m.Kind {
	case PutMove:
		return string(m.Role.Letter()) + "@" + m.To.String()
	case CastleMove:
		if m.From.File() == 4 && (m.To.File() == 0 || m.To.File() == 7) {
			return m.From.String() + m.KingTo().String()
		}
		return m.From.String() + m.To.String()
	default:
		s := m.From.String() + m.To.String()
		if m.Promotion != NoRole {
			s += strings.ToLower(string(m.Promotion.Letter()))
		}
		return s
	}
}

// String returns the coordinate notation of the move.
func (m Move) String() string { return m.UCI() }

// ParseUCI parses coordinate notation and resolves it against the legal-move
// set of the position. Castling is accepted both as king-to-destination
// ("e1g1") and as king-takes-rook ("e1h1").
func ParseUCI(p *Position, s string) (Move, error) {
	if !uciWellFormed(s) {
		return Move{}, fmt.Errorf("malformed coordinate move %q: %w", s, ErrIllegalMove)
	}
	for _, m := range p.LegalMoves() {
		if m.UCI() == s {
			return m, nil
		}
		if m.Kind == CastleMove {
			// Alternate spellings for the same castling move.
			if s == m.From.String()+m.To.String() || s == m.From.String()+m.KingTo().String() {
				return m, nil
			}
		}
	}
	return Move{}, fmt.Errorf("coordinate move %q: %w", s, ErrIllegalMove)
}

// uciWellFormed checks the fixed grammar: from+to, optional promotion
// letter, or a drop such as "Q@f7".
func uciWellFormed(s string) bool {
	if len(s) == 4 && s[1] == '@' {
		return RoleFromLetter(s[0]) != NoRole && validSquareName(s[2:4])
	}
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if !validSquareName(s[0:2]) || !validSquareName(s[2:4]) {
		return false
	}
	if len(s) == 5 {
		switch s[4] {
		case 'n', 'b', 'r', 'q', 'k':
			return true
		default:
			return false
		}
	}
	return true
}

// validSquareName reports whether s names a board square such as "e4".
func validSquareName(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}
