package chess

import (
	bb "github.com/lgbarn/chesskit/bitboard"
)

// Outcome is the result of a finished game, or Ongoing.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result string for the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// winner returns the winning outcome for a color.
func winner(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// hillSquares are the center squares a king must reach in King of the Hill.
var hillSquares = bb.FromSquare(int(D4)) | bb.FromSquare(int(E4)) |
	bb.FromSquare(int(D5)) | bb.FromSquare(int(E5))

// IsCheckmate reports checkmate under the position's variant: the side to
// move is in check with no legal moves, and no variant end has preempted it.
func (p *Position) IsCheckmate() bool {
	return !p.IsVariantEnd() && p.IsCheck() && !p.HasLegalMoves()
}

// IsStalemate reports that the side to move has no legal moves while not in
// check. What a stalemate means is variant-dependent (a draw in standard
// law, a win for the stalemated side in Antichess); see Outcome.
func (p *Position) IsStalemate() bool {
	return !p.IsVariantEnd() && !p.IsCheck() && !p.HasLegalMoves()
}

// IsVariantEnd reports whether a variant-specific winning condition has
// been reached. Standard checkmate and stalemate are not variant ends.
func (p *Position) IsVariantEnd() bool {
	_, ended := p.variantOutcome()
	return ended
}

// IsGameOver reports whether the game has ended by any rule of the variant,
// not counting the optional draw rules (fifty moves, repetition).
func (p *Position) IsGameOver() bool {
	return p.IsVariantEnd() || !p.HasLegalMoves()
}

// Outcome evaluates the position: a variant-specific result if one has been
// reached, otherwise checkmate or stalemate if the side to move has no
// moves, otherwise Ongoing. Variant conditions are checked first so that,
// for example, a ThreeCheck win on the final check is not misread as an
// ordinary check.
func (p *Position) Outcome() Outcome {
	if o, ended := p.variantOutcome(); ended {
		return o
	}
	if p.HasLegalMoves() {
		return Ongoing
	}
	if p.IsCheck() {
		return winner(p.turn.Opposite())
	}
	// Stalemate.
	if p.variant == Antichess {
		return winner(p.turn)
	}
	return Draw
}

// variantOutcome evaluates the variant-specific terminal condition in
// isolation. Each arm is independent of the others; only the variant the
// position carries is consulted.
func (p *Position) variantOutcome() (Outcome, bool) {
	switch p.variant {
	case KingOfTheHill:
		if (p.board.Pieces(White, King) & hillSquares).Any() {
			return WhiteWins, true
		}
		if (p.board.Pieces(Black, King) & hillSquares).Any() {
			return BlackWins, true
		}

	case RacingKings:
		whiteHome := (p.board.Pieces(White, King) & bb.Rank8).Any()
		blackHome := (p.board.Pieces(Black, King) & bb.Rank8).Any()
		switch {
		case whiteHome && blackHome:
			return Draw, true
		case blackHome:
			return BlackWins, true
		case whiteHome:
			// White arrived first, but Black gets one move to equalize
			// for a draw. The game only ends once that chance is gone.
			if p.turn == Black && p.kingCanRace() {
				return Ongoing, false
			}
			return WhiteWins, true
		}

	case ThreeCheck:
		if p.remainingChecks[White] == 0 {
			return WhiteWins, true
		}
		if p.remainingChecks[Black] == 0 {
			return BlackWins, true
		}

	case Atomic:
		if p.board.Pieces(White, King).IsEmpty() {
			return BlackWins, true
		}
		if p.board.Pieces(Black, King).IsEmpty() {
			return WhiteWins, true
		}

	case Horde:
		if p.board.ByColor(White).IsEmpty() {
			return BlackWins, true
		}

	case Antichess:
		if p.board.ByColor(White).IsEmpty() {
			return WhiteWins, true
		}
		if p.board.ByColor(Black).IsEmpty() {
			return BlackWins, true
		}
	}
	return Ongoing, false
}

// kingCanRace reports whether the side to move's king has a legal move to
// the eighth rank (Racing Kings equalization test). Implemented directly
// on king steps to avoid recursing through the full generator.
func (p *Position) kingCanRace() bool {
	us := p.turn
	them := us.Opposite()
	ksq := p.board.KingOf(us)
	if ksq == NoSquare {
		return false
	}
	occ := p.board.Occupied()
	occSansKing := occ.Without(int(ksq))
	targets := bb.KingAttacks(int(ksq)) & bb.Rank8 &^ p.board.ByColor(us)
	for t := targets; t.Any(); {
		to := Square(t.Pop())
		if p.board.AttackersTo(to, them, occSansKing).Any() {
			continue
		}
		q := p.applyUnchecked(Move{Kind: NormalMove, From: ksq, To: to})
		if q.checkers.IsEmpty() { // the race move must not give check either
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports the standard-law dead positions (K vs K,
// K+minor vs K, and same-colored-bishop endings). It only applies where
// standard mating law holds; variants with other winning conditions
// always report false.
func (p *Position) IsInsufficientMaterial() bool {
	switch p.variant {
	case Standard, Chess960:
	default:
		return false
	}
	if (p.board.ByRole(Pawn) | p.board.ByRole(Rook) | p.board.ByRole(Queen)).Any() {
		return false
	}
	knights := p.board.ByRole(Knight)
	bishops := p.board.ByRole(Bishop)
	minors := knights.Count() + bishops.Count()
	if minors <= 1 {
		return true // K vs K, or a lone minor piece
	}
	if knights.Any() || minors > 2 {
		return false
	}
	// Exactly one bishop each: dead only if both stand on the same color.
	lightSquares := bb.Bitboard(0x55AA_55AA_55AA_55AA)
	wb := p.board.Pieces(White, Bishop)
	bbp := p.board.Pieces(Black, Bishop)
	if wb.Count() == 1 && bbp.Count() == 1 {
		return (wb & lightSquares).Any() == (bbp & lightSquares).Any()
	}
	return false
}

// IsFiftyMoves reports that the fifty-move rule threshold has been reached.
func (p *Position) IsFiftyMoves() bool { return p.halfmoves >= 100 }

// IsSeventyFiveMoves reports the forced seventy-five-move draw threshold.
func (p *Position) IsSeventyFiveMoves() bool { return p.halfmoves >= 150 }
