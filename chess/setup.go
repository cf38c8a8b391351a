package chess

// Pocket counts the pieces a side holds in hand, indexed by Role.
type Pocket [7]uint8

// Count returns the number of pieces of the given role in the pocket.
func (p Pocket) Count(r Role) int { return int(p[r]) }

// Total returns the total number of pieces in the pocket.
func (p Pocket) Total() int {
	n := 0
	for r := Pawn; r <= King; r++ {
		n += int(p[r])
	}
	return n
}

// Pockets holds both sides' pockets, indexed by Color.
type Pockets [2]Pocket

// Setup is an unvalidated raw position description. It is the decode target
// of FEN and the input to FromSetup; nothing guarantees internal consistency
// until validation promotes it to a Position.
type Setup struct {
	Board    Board
	Turn     Color
	Castles  Castles // declared castling-rook origin squares
	EPSquare Square  // en passant target hint, or NoSquare

	HalfmoveClock int
	Fullmoves     int

	// Variant extension fields.
	Pockets            Pockets
	HasPockets         bool
	RemainingChecks    [2]int
	HasRemainingChecks bool
}

// NewSetup returns an empty Setup: no pieces, White to move, no castling
// rights, move counters at their initial values.
func NewSetup() Setup {
	return Setup{
		Turn:      White,
		Castles:   NoCastles(),
		EPSquare:  NoSquare,
		Fullmoves: 1,
	}
}
