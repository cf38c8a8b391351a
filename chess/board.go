package chess

import (
	bb "github.com/lgbarn/chesskit/bitboard"
)

// Board holds piece placement as one bitboard per (color, role) pair plus a
// derived occupancy bitboard and a per-square piece cache. The promoted set
// tracks pieces created by promotion, which Crazyhouse demotes to pawns when
// captured. Board is a value type; copying it copies the whole placement.
type Board struct {
	byColor  [2]bb.Bitboard
	byRole   [7]bb.Bitboard // indexed by Role; index 0 unused
	occupied bb.Bitboard
	promoted bb.Bitboard
	pieces   [64]Piece
}

// PieceAt returns the piece on a square, or NoPiece.
func (b Board) PieceAt(sq Square) Piece {
	return b.pieces[sq]
}

// Put places a piece on a square, replacing any existing piece.
func (b *Board) Put(sq Square, p Piece) {
	b.Remove(sq)
	if p == NoPiece {
		return
	}
	bit := bb.FromSquare(int(sq))
	b.byColor[p.Color()] |= bit
	b.byRole[p.Role()] |= bit
	b.occupied |= bit
	b.pieces[sq] = p
}

// Remove clears a square and returns the piece that was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	mask := ^bb.FromSquare(int(sq))
	b.byColor[p.Color()] &= mask
	b.byRole[p.Role()] &= mask
	b.occupied &= mask
	b.promoted &= mask
	b.pieces[sq] = NoPiece
	return p
}

// Occupied returns the set of all occupied squares.
func (b Board) Occupied() bb.Bitboard { return b.occupied }

// ByColor returns the squares occupied by the given side.
func (b Board) ByColor(c Color) bb.Bitboard { return b.byColor[c] }

// ByRole returns the squares occupied by pieces of the given role,
// either color.
func (b Board) ByRole(r Role) bb.Bitboard { return b.byRole[r] }

// Pieces returns the squares occupied by pieces of the given color and role.
func (b Board) Pieces(c Color, r Role) bb.Bitboard {
	return b.byColor[c] & b.byRole[r]
}

// Promoted returns the set of squares holding promotion-created pieces.
func (b Board) Promoted() bb.Bitboard { return b.promoted }

// SetPromoted marks or unmarks a square as holding a promoted piece.
func (b *Board) SetPromoted(sq Square, promoted bool) {
	if promoted {
		b.promoted |= bb.FromSquare(int(sq))
	} else {
		b.promoted &= ^bb.FromSquare(int(sq))
	}
}

// KingOf returns the square of the given side's king, or NoSquare if that
// side has no king (permitted by some variants).
func (b Board) KingOf(c Color) Square {
	kings := b.Pieces(c, King)
	if kings.IsEmpty() {
		return NoSquare
	}
	return Square(kings.First())
}

// AttacksOf returns the squares attacked by a piece on sq given the
// occupancy. The same primitive serves candidate-move generation, check
// detection and castling transit tests.
func AttacksOf(p Piece, sq Square, occ bb.Bitboard) bb.Bitboard {
	switch p.Role() {
	case Pawn:
		return bb.PawnAttacks(int(p.Color()), int(sq))
	case Knight:
		return bb.KnightAttacks(int(sq))
	case Bishop:
		return bb.BishopAttacks(int(sq), occ)
	case Rook:
		return bb.RookAttacks(int(sq), occ)
	case Queen:
		return bb.QueenAttacks(int(sq), occ)
	case King:
		return bb.KingAttacks(int(sq))
	default:
		return 0
	}
}

// AttackersTo returns the pieces of the given side that attack sq under the
// supplied occupancy. Passing an occupancy with the defending king removed
// answers "is this square safe for the king to step to".
func (b Board) AttackersTo(sq Square, by Color, occ bb.Bitboard) bb.Bitboard {
	// Pawn attacks are looked up in reverse: the squares from which an
	// attacking pawn would reach sq are the pawn-capture targets of the
	// defending color from sq.
	return bb.PawnAttacks(int(by.Opposite()), int(sq))&b.Pieces(by, Pawn) |
		bb.KnightAttacks(int(sq))&b.Pieces(by, Knight) |
		bb.KingAttacks(int(sq))&b.Pieces(by, King) |
		bb.RookAttacks(int(sq), occ)&(b.Pieces(by, Rook)|b.Pieces(by, Queen)) |
		bb.BishopAttacks(int(sq), occ)&(b.Pieces(by, Bishop)|b.Pieces(by, Queen))
}

// Equal reports whether two boards have identical placement, including
// promoted-piece marks.
func (b Board) Equal(other Board) bool {
	return b == other
}
