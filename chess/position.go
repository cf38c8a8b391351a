package chess

import (
	"fmt"

	bb "github.com/lgbarn/chesskit/bitboard"
)

// Position is a validated, immutable board state tagged with a variant,
// plus derived legality facts (checkers and pinned pieces) cached at
// construction. The only ways to obtain a Position are FromSetup and Apply;
// both return a fresh value and never mutate an existing one.
type Position struct {
	board    Board
	variant  Variant
	turn     Color
	castles  Castles
	epSquare Square

	halfmoves int
	fullmoves int

	pockets         Pockets
	remainingChecks [2]int

	// Derived at construction; never mutated afterwards.
	checkers bb.Bitboard
	pinned   bb.Bitboard
}

// Board returns the piece placement.
func (p *Position) Board() Board { return p.board }

// Variant returns the rule set the position was constructed under.
func (p *Position) Variant() Variant { return p.variant }

// Turn returns the side to move.
func (p *Position) Turn() Color { return p.turn }

// Castles returns the remaining castling rights.
func (p *Position) Castles() Castles { return p.castles }

// EPSquare returns the en passant target square, or NoSquare.
func (p *Position) EPSquare() Square { return p.epSquare }

// HalfmoveClock returns the half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoves }

// Fullmoves returns the full move number, starting at 1.
func (p *Position) Fullmoves() int { return p.fullmoves }

// Pockets returns both sides' pocket contents (drop variants).
func (p *Position) Pockets() Pockets { return p.pockets }

// RemainingChecks returns how many checks each side still has to deliver
// to win (ThreeCheck).
func (p *Position) RemainingChecks() [2]int { return p.remainingChecks }

// Checkers returns the pieces currently attacking the side to move's king.
func (p *Position) Checkers() bb.Bitboard { return p.checkers }

// Pinned returns the side to move's pieces that lie on a pin ray.
func (p *Position) Pinned() bb.Bitboard { return p.pinned }

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool { return p.checkers.Any() }

// Setup exports the position back into an unvalidated Setup, for example
// to re-encode it as FEN.
func (p *Position) Setup() Setup {
	return Setup{
		Board:              p.board,
		Turn:               p.turn,
		Castles:            p.castles,
		EPSquare:           p.epSquare,
		HalfmoveClock:      p.halfmoves,
		Fullmoves:          p.fullmoves,
		Pockets:            p.pockets,
		HasPockets:         p.variant.hasPockets(),
		RemainingChecks:    p.remainingChecks,
		HasRemainingChecks: p.variant.hasRemainingChecks(),
	}
}

// Equal reports whether two positions are identical in every rule-relevant
// respect: placement, turn, castling rights, en passant target, clocks,
// variant and variant state.
func (p Position) Equal(other Position) bool {
	return p == other
}

// FromSetup validates a Setup under the given variant's rules and promotes
// it to a Position. Construction is all-or-nothing: any violated invariant
// yields a SetupError and no Position.
func FromSetup(setup Setup, variant Variant) (Position, error) {
	p := Position{
		board:     setup.Board,
		variant:   variant,
		turn:      setup.Turn,
		castles:   setup.Castles,
		epSquare:  setup.EPSquare,
		halfmoves: setup.HalfmoveClock,
		fullmoves: setup.Fullmoves,
	}
	if p.fullmoves < 1 {
		p.fullmoves = 1
	}
	if variant.hasPockets() {
		p.pockets = setup.Pockets
	}
	if variant.hasRemainingChecks() {
		if setup.HasRemainingChecks {
			p.remainingChecks = setup.RemainingChecks
		} else {
			p.remainingChecks = [2]int{3, 3}
		}
	}

	if err := p.validateKings(); err != nil {
		return Position{}, err
	}
	if err := p.validatePawnRanks(); err != nil {
		return Position{}, err
	}
	if err := p.validateChecks(); err != nil {
		return Position{}, err
	}
	if err := p.validateCastles(); err != nil {
		return Position{}, err
	}
	if err := p.validateEnPassant(); err != nil {
		return Position{}, err
	}
	if err := p.validateVariantState(); err != nil {
		return Position{}, err
	}

	p.computeCheckersAndPins()
	return p, nil
}

// validateKings enforces the variant's king-count policy.
func (p *Position) validateKings() error {
	for color := White; color <= Black; color++ {
		kings := p.board.Pieces(color, King).Count()
		switch {
		case p.variant == Antichess:
			// Kings are ordinary pieces; any count is fine.
		case p.variant == Horde && color == White:
			if kings != 0 {
				return setupErr(SetupTooManyKings, "the horde side has no king")
			}
		case kings == 0:
			return setupErr(SetupNoKing, "%v has no king", color)
		case kings > 1:
			return setupErr(SetupTooManyKings, "%v has %d kings", color, kings)
		}
	}
	return nil
}

// validatePawnRanks rejects pawns on the back ranks. The horde side's pawns
// may stand on their own first rank.
func (p *Position) validatePawnRanks() error {
	whitePawns := p.board.Pieces(White, Pawn)
	blackPawns := p.board.Pieces(Black, Pawn)
	whiteBad := bb.Rank1 | bb.Rank8
	if p.variant == Horde {
		whiteBad = bb.Rank8
	}
	if (whitePawns & whiteBad).Any() || (blackPawns & (bb.Rank1 | bb.Rank8)).Any() {
		return setupErr(SetupPawnsOnBackrank, "")
	}
	return nil
}

// validateChecks rejects positions where the side not to move is in check.
// Racing Kings additionally forbids any check at all.
func (p *Position) validateChecks() error {
	if !p.variant.hasCheckConcept() {
		return nil
	}
	if p.kingAttacked(p.turn.Opposite()) {
		return setupErr(SetupOppositeCheck, "%v is to move but %v is in check",
			p.turn, p.turn.Opposite())
	}
	if p.variant == RacingKings && p.kingAttacked(p.turn) {
		return setupErr(SetupVariantRule, "racing kings positions may not contain a check")
	}
	return nil
}

// validateCastles verifies that every declared castling right references an
// actual king/rook pair on the back rank. Variants without castling have
// their declared rights cleared silently.
func (p *Position) validateCastles() error {
	if !p.variant.allowsCastling() {
		p.castles = NoCastles()
		return nil
	}
	for color := White; color <= Black; color++ {
		kingSq := p.board.KingOf(color)
		for side := KingSide; side <= QueenSide; side++ {
			rookSq := p.castles.Rook(color, side)
			if rookSq == NoSquare {
				continue
			}
			if kingSq == NoSquare || kingSq.Rank() != backRank(color) {
				return setupErr(SetupBadCastling, "%v king is not on its back rank", color)
			}
			if rookSq.Rank() != backRank(color) ||
				p.board.PieceAt(rookSq) != MakePiece(color, Rook) {
				return setupErr(SetupBadCastling, "no %v rook on %v", color, rookSq)
			}
			// The side must match the rook's position relative to the king.
			if side == KingSide && rookSq.File() < kingSq.File() {
				return setupErr(SetupBadCastling, "king-side rook on %v is left of the king", rookSq)
			}
			if side == QueenSide && rookSq.File() > kingSq.File() {
				return setupErr(SetupBadCastling, "queen-side rook on %v is right of the king", rookSq)
			}
			// Outside Chess960 the origins must be the classical squares.
			if p.variant != Chess960 {
				if kingSq.File() != 4 || (rookSq.File() != 0 && rookSq.File() != 7) {
					return setupErr(SetupBadCastling, "non-standard castling squares require chess960")
				}
			}
		}
	}
	return nil
}

// validateEnPassant checks the en passant hint. A target on an impossible
// rank is an error; a target that is geometrically unreachable by a double
// step that just happened is cleared.
func (p *Position) validateEnPassant() error {
	ep := p.epSquare
	if ep == NoSquare {
		return nil
	}
	mover := p.turn.Opposite() // the side that just double-stepped
	dir := 8
	expectedRank := 2
	if mover == Black {
		dir = -8
		expectedRank = 5
	}
	rankOK := ep.Rank() == expectedRank
	if p.variant == Horde && mover == White && ep.Rank() == 1 {
		rankOK = true // double step from the horde's first rank
	}
	if !rankOK {
		return setupErr(SetupBadEnPassant, "impossible en passant target %v", ep)
	}
	landing := ep + Square(dir)
	origin := ep - Square(dir)
	if p.board.PieceAt(landing) != MakePiece(mover, Pawn) ||
		p.board.PieceAt(ep) != NoPiece ||
		p.board.PieceAt(origin) != NoPiece {
		p.epSquare = NoSquare // hint inconsistent with a double step; drop it
	}
	return nil
}

// validateVariantState checks the variant extension fields.
func (p *Position) validateVariantState() error {
	switch p.variant {
	case Crazyhouse:
		for color := White; color <= Black; color++ {
			if p.pockets[color].Count(King) > 0 {
				return setupErr(SetupBadPockets, "kings cannot be pocketed")
			}
			// At most 16 pieces of a role can ever leave the board.
			for role := Pawn; role <= Queen; role++ {
				if n := p.pockets[color].Count(role); n > 16 {
					return setupErr(SetupBadPockets, "%v pocket holds %d %vs",
						color, n, role)
				}
			}
		}
	case ThreeCheck:
		for color := White; color <= Black; color++ {
			if p.remainingChecks[color] < 0 || p.remainingChecks[color] > 3 {
				return setupErr(SetupBadChecks, "%v has %d remaining checks",
					color, p.remainingChecks[color])
			}
		}
	case RacingKings:
		if p.board.ByRole(Pawn).Any() {
			return setupErr(SetupVariantRule, "racing kings has no pawns")
		}
	}
	return nil
}

// kingAttacked reports whether the given side's king is attacked by the
// other side. In Atomic, kings standing next to each other cannot be in
// check, since capturing either would explode both.
func (p *Position) kingAttacked(c Color) bool {
	ksq := p.board.KingOf(c)
	if ksq == NoSquare {
		return false
	}
	other := c.Opposite()
	if p.variant == Atomic &&
		(bb.KingAttacks(int(ksq)) & p.board.Pieces(other, King)).Any() {
		return false
	}
	return p.board.AttackersTo(ksq, other, p.board.Occupied()).Any()
}

// computeCheckersAndPins caches the check and pin facts for the side to
// move. The cached values drive both move filtering and the terminal
// predicates, and are computed exactly once per Position.
func (p *Position) computeCheckersAndPins() {
	p.checkers, p.pinned = 0, 0
	if !p.variant.hasCheckConcept() {
		return
	}
	us := p.turn
	ksq := p.board.KingOf(us)
	if ksq == NoSquare {
		return
	}
	them := us.Opposite()
	occ := p.board.Occupied()

	if p.variant == Atomic &&
		(bb.KingAttacks(int(ksq)) & p.board.Pieces(them, King)).Any() {
		return // connected kings: no checks possible
	}

	p.checkers = p.board.AttackersTo(ksq, them, occ)

	// A pin exists where an enemy slider aligned with our king sees exactly
	// one of our pieces between itself and the king.
	snipers := bb.RookAttacks(int(ksq), 0)&(p.board.Pieces(them, Rook)|p.board.Pieces(them, Queen)) |
		bb.BishopAttacks(int(ksq), 0)&(p.board.Pieces(them, Bishop)|p.board.Pieces(them, Queen))
	for s := snipers; s.Any(); {
		sniper := s.Pop()
		blockers := bb.Between(int(ksq), sniper) & occ
		if !blockers.MoreThanOne() && (blockers & p.board.ByColor(us)).Any() {
			p.pinned |= blockers
		}
	}
}

// PinRay returns the ray a pinned piece is restricted to (through its own
// king and the pinning slider, endpoints included), or the empty set if the
// piece on sq is not pinned.
func (p *Position) PinRay(sq Square) bb.Bitboard {
	if !p.pinned.Has(int(sq)) {
		return 0
	}
	ksq := p.board.KingOf(p.turn)
	return bb.Line(int(ksq), int(sq))
}

// Apply validates the move against the legal-move set and returns the
// successor position, leaving the receiver untouched. Moves not drawn from
// LegalMoves yield ErrIllegalMove.
func (p Position) Apply(m Move) (Position, error) {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return p.applyUnchecked(m), nil
		}
	}
	return Position{}, fmt.Errorf("%v: %w", m, ErrIllegalMove)
}

// applyUnchecked plays a move assumed to be legal and returns the successor
// position. All state transitions live here: placement, clocks, castling
// rights, en passant, pockets, explosions and check counters.
func (p Position) applyUnchecked(m Move) Position {
	q := p
	us := q.turn
	q.epSquare = NoSquare
	resetClock := false

	switch m.Kind {
	case CastleMove:
		q.board.Remove(m.From)
		q.board.Remove(m.To)
		q.board.Put(castleKingTo(us, m.Side), MakePiece(us, King))
		q.board.Put(castleRookTo(us, m.Side), MakePiece(us, Rook))
		q.castles.DiscardColor(us)

	case PutMove:
		q.board.Put(m.To, MakePiece(us, m.Role))
		q.pockets[us][m.Role]--
		if m.Role == Pawn {
			resetClock = true
		}

	case EnPassantMove:
		capSq := MakeSquare(m.To.File(), m.From.Rank())
		q.board.Remove(capSq)
		q.board.Remove(m.From)
		q.board.Put(m.To, MakePiece(us, Pawn))
		resetClock = true
		if q.variant.hasPockets() {
			q.pockets[us][Pawn]++
		}
		if q.variant == Atomic {
			q.explode(m.To)
		}

	case NormalMove:
		movedPromoted := q.board.Promoted().Has(int(m.From))
		capturedPromoted := q.board.Promoted().Has(int(m.To))
		moving := q.board.Remove(m.From)
		captured := q.board.PieceAt(m.To)

		if captured != NoPiece {
			q.board.Remove(m.To)
			q.castles.DiscardRook(m.To)
			resetClock = true
			if q.variant.hasPockets() {
				role := captured.Role()
				if capturedPromoted {
					role = Pawn
				}
				q.pockets[us][role]++
			}
		}

		if moving.Role() == Pawn {
			resetClock = true
			if abs(m.To.Rank()-m.From.Rank()) == 2 {
				q.epSquare = MakeSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
			}
		}

		placed := moving
		if m.Promotion != NoRole {
			placed = MakePiece(us, m.Promotion)
		}
		q.board.Put(m.To, placed)
		if m.Promotion != NoRole || movedPromoted {
			q.board.SetPromoted(m.To, true)
		}

		if moving.Role() == King {
			q.castles.DiscardColor(us)
		}
		if moving.Role() == Rook {
			q.castles.DiscardRook(m.From)
		}

		if q.variant == Atomic && captured != NoPiece {
			q.explode(m.To)
		}
	}

	if resetClock {
		q.halfmoves = 0
	} else {
		q.halfmoves++
	}
	if us == Black {
		q.fullmoves++
	}
	q.turn = us.Opposite()
	q.computeCheckersAndPins()

	if q.variant == ThreeCheck && q.checkers.Any() && q.remainingChecks[us] > 0 {
		q.remainingChecks[us]--
	}
	return q
}

// explode removes the capturing piece on sq together with every non-pawn
// piece in the surrounding king ring, clearing castling rights of exploded
// rooks and kings (Atomic).
func (q *Position) explode(sq Square) {
	removed := q.board.Remove(sq)
	if removed.Role() == King {
		q.castles.DiscardColor(removed.Color())
	}
	ring := bb.KingAttacks(int(sq)) & q.board.Occupied()
	for ring.Any() {
		target := Square(ring.Pop())
		if q.board.PieceAt(target).Role() == Pawn {
			continue
		}
		victim := q.board.Remove(target)
		q.castles.DiscardRook(target)
		if victim.Role() == King {
			q.castles.DiscardColor(victim.Color())
		}
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
