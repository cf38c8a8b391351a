package chess

// CastlingSide distinguishes the two castling directions.
type CastlingSide uint8

const (
	KingSide  CastlingSide = 0
	QueenSide CastlingSide = 1
)

// String returns "O-O" or "O-O-O".
func (s CastlingSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// Castles records which king/rook pairs remain eligible to castle, keyed by
// the rook's origin square. Non-standard rook origins accommodate Chess960.
type Castles struct {
	rooks [2][2]Square // [color][side]; NoSquare when the right is gone
}

// NoCastles returns empty castling rights.
func NoCastles() Castles {
	return Castles{rooks: [2][2]Square{{NoSquare, NoSquare}, {NoSquare, NoSquare}}}
}

// Set declares the rook on rookSq eligible to castle for the given color
// and side.
func (c *Castles) Set(color Color, side CastlingSide, rookSq Square) {
	c.rooks[color][side] = rookSq
}

// Rook returns the origin square of the castling rook for the given color
// and side, or NoSquare if the right is gone.
func (c Castles) Rook(color Color, side CastlingSide) Square {
	return c.rooks[color][side]
}

// Has reports whether the given color retains the given castling right.
func (c Castles) Has(color Color, side CastlingSide) bool {
	return c.rooks[color][side] != NoSquare
}

// IsEmpty reports whether no castling rights remain.
func (c Castles) IsEmpty() bool {
	return !c.Has(White, KingSide) && !c.Has(White, QueenSide) &&
		!c.Has(Black, KingSide) && !c.Has(Black, QueenSide)
}

// DiscardColor removes both castling rights of a color (king moved).
func (c *Castles) DiscardColor(color Color) {
	c.rooks[color][KingSide] = NoSquare
	c.rooks[color][QueenSide] = NoSquare
}

// DiscardRook removes any castling right referencing the given rook origin
// square (rook moved or was captured).
func (c *Castles) DiscardRook(sq Square) {
	for color := White; color <= Black; color++ {
		for side := KingSide; side <= QueenSide; side++ {
			if c.rooks[color][side] == sq {
				c.rooks[color][side] = NoSquare
			}
		}
	}
}

// backRank returns the castling rank of a color: 0 for White, 7 for Black.
func backRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// castleKingTo returns the king's destination square for a castling move.
// The destination file is fixed (g or c) regardless of the king's origin.
func castleKingTo(color Color, side CastlingSide) Square {
	file := 6 // g-file
	if side == QueenSide {
		file = 2 // c-file
	}
	return MakeSquare(file, backRank(color))
}

// castleRookTo returns the rook's destination square for a castling move.
func castleRookTo(color Color, side CastlingSide) Square {
	file := 5 // f-file
	if side == QueenSide {
		file = 3 // d-file
	}
	return MakeSquare(file, backRank(color))
}
