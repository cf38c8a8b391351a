package chess

import (
	bb "github.com/lgbarn/chesskit/bitboard"
)

// LegalMoves returns the full set of legal moves for the side to move.
// The result is deterministic: king moves first, then pieces by role and
// ascending square, pawns, castling, and finally drops. An empty result
// with the king in check means checkmate; without check, stalemate. A
// position that has already reached a variant-specific end has no moves.
func (p *Position) LegalMoves() []Move {
	moves := make([]Move, 0, 48)
	if p.IsVariantEnd() {
		return moves
	}
	switch p.variant {
	case Antichess:
		p.antichessMoves(&moves)
	case Atomic:
		p.atomicMoves(&moves)
	case RacingKings:
		p.racingKingsMoves(&moves)
	case Crazyhouse:
		p.standardMoves(&moves)
		p.dropMoves(&moves)
	default:
		p.standardMoves(&moves)
	}
	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.LegalMoves()) > 0
}

// standardMoves generates the legal moves of standard chess law: king
// steps to unattacked squares, check evasions restricted to the block-or-
// capture mask, pinned pieces restricted to their pin rays, the en passant
// self-check simulation, and castling.
func (p *Position) standardMoves(moves *[]Move) {
	us := p.turn
	them := us.Opposite()
	occ := p.board.Occupied()
	ours := p.board.ByColor(us)
	ksq := p.board.KingOf(us)

	if ksq != NoSquare {
		// The king's own departure square is removed from the occupancy so
		// that stepping away along a slider's ray is still detected.
		occSansKing := occ.Without(int(ksq))
		targets := bb.KingAttacks(int(ksq)) &^ ours
		for t := targets; t.Any(); {
			to := Square(t.Pop())
			if p.board.AttackersTo(to, them, occSansKing).IsEmpty() {
				*moves = append(*moves, Move{Kind: NormalMove, From: ksq, To: to})
			}
		}
		if p.checkers.MoreThanOne() {
			return // double check: only king moves can resolve it
		}
	}

	// Non-king moves must capture the checker or block its ray.
	checkMask := bb.Full
	if p.checkers.Any() {
		checker := p.checkers.First()
		checkMask = bb.Between(int(ksq), checker).With(checker)
	}

	for role := Knight; role <= Queen; role++ {
		for pieces := p.board.Pieces(us, role); pieces.Any(); {
			from := Square(pieces.Pop())
			targets := AttacksOf(MakePiece(us, role), from, occ) &^ ours & checkMask
			if p.pinned.Has(int(from)) {
				targets &= bb.Line(int(ksq), int(from))
			}
			for t := targets; t.Any(); {
				*moves = append(*moves, Move{Kind: NormalMove, From: from, To: Square(t.Pop())})
			}
		}
	}

	p.pawnMoves(moves, checkMask)

	if p.checkers.IsEmpty() {
		p.castlingMoves(moves)
	}
}

// pawnMoves generates pawn pushes, captures, promotions and en passant.
func (p *Position) pawnMoves(moves *[]Move, checkMask bb.Bitboard) {
	us := p.turn
	them := us.Opposite()
	occ := p.board.Occupied()
	theirs := p.board.ByColor(them)
	ksq := p.board.KingOf(us)

	dir := Square(8)
	promoRank := 7
	if us == Black {
		dir = -8
		promoRank = 0
	}

	for pawns := p.board.Pieces(us, Pawn); pawns.Any(); {
		from := Square(pawns.Pop())
		targets := bb.PawnAttacks(int(us), int(from)) & theirs

		oneUp := from + dir
		if !occ.Has(int(oneUp)) {
			targets = targets.With(int(oneUp))
			if p.canDoublePush(from) {
				twoUp := oneUp + dir
				if !occ.Has(int(twoUp)) {
					targets = targets.With(int(twoUp))
				}
			}
		}

		targets &= checkMask
		if ksq != NoSquare && p.pinned.Has(int(from)) {
			targets &= bb.Line(int(ksq), int(from))
		}

		for t := targets; t.Any(); {
			to := Square(t.Pop())
			if to.Rank() == promoRank {
				for _, role := range promotionRoles(p.variant) {
					*moves = append(*moves, Move{Kind: NormalMove, From: from, To: to, Promotion: role})
				}
			} else {
				*moves = append(*moves, Move{Kind: NormalMove, From: from, To: to})
			}
		}

		if p.epSquare != NoSquare && bb.PawnAttacks(int(us), int(from)).Has(int(p.epSquare)) {
			if p.epLegal(from) {
				*moves = append(*moves, Move{Kind: EnPassantMove, From: from, To: p.epSquare})
			}
		}
	}
}

// canDoublePush reports whether a pawn on from may advance two squares.
// The horde side's pawns may also double-step from their first rank.
func (p *Position) canDoublePush(from Square) bool {
	if p.turn == White {
		if from.Rank() == 1 {
			return true
		}
		return p.variant == Horde && from.Rank() == 0
	}
	return from.Rank() == 6
}

// epLegal simulates the en passant capture (both pawns leave their squares)
// and reports whether the mover's king is safe afterwards. This covers the
// horizontal-pin case that no static pin test catches: king and an enemy
// rook on the capturing pawn's rank with both pawns in between.
func (p *Position) epLegal(from Square) bool {
	us := p.turn
	ksq := p.board.KingOf(us)
	if ksq == NoSquare {
		return true
	}
	capSq := MakeSquare(p.epSquare.File(), from.Rank())
	occ := p.board.Occupied().
		Without(int(from)).
		Without(int(capSq)).
		With(int(p.epSquare))
	attackers := p.board.AttackersTo(ksq, us.Opposite(), occ) &^ bb.FromSquare(int(capSq))
	return attackers.IsEmpty()
}

// castlingMoves generates legal castling. Paths and destinations are
// computed from the actual king and rook origins, which for Chess960 may
// be anywhere on the back rank, including adjacent to or astride the
// destination squares.
func (p *Position) castlingMoves(moves *[]Move) {
	if !p.variant.allowsCastling() {
		return
	}
	us := p.turn
	them := us.Opposite()
	ksq := p.board.KingOf(us)
	if ksq == NoSquare || ksq.Rank() != backRank(us) {
		return
	}
	occ := p.board.Occupied()
	occSansKing := occ.Without(int(ksq))

	for side := KingSide; side <= QueenSide; side++ {
		rsq := p.castles.Rook(us, side)
		if rsq == NoSquare {
			continue
		}
		kto := castleKingTo(us, side)
		rto := castleRookTo(us, side)

		// Every square either participant crosses or lands on must be
		// empty, except for the king and rook themselves.
		path := (bb.Between(int(ksq), int(kto)) |
			bb.Between(int(rsq), int(rto)) |
			bb.FromSquare(int(kto)) |
			bb.FromSquare(int(rto))) &^
			(bb.FromSquare(int(ksq)) | bb.FromSquare(int(rsq)))
		if (path & occ).Any() {
			continue
		}

		// The king's transit squares, destination included, must not be
		// attacked. The origin is known safe: castling is only generated
		// when not in check.
		transit := bb.Between(int(ksq), int(kto)).With(int(kto))
		safe := true
		for t := transit; t.Any(); {
			if p.board.AttackersTo(Square(t.Pop()), them, occSansKing).Any() {
				safe = false
				break
			}
		}
		if safe {
			*moves = append(*moves, Move{Kind: CastleMove, From: ksq, To: rsq, Side: side})
		}
	}
}

// dropMoves generates Crazyhouse pocket drops. Drops must land on empty
// squares, pawns never on a back rank, and under check only on the
// blocking ray (a drop can never capture the checker).
func (p *Position) dropMoves(moves *[]Move) {
	if p.checkers.MoreThanOne() {
		return
	}
	us := p.turn
	mask := ^p.board.Occupied()
	if p.checkers.Any() {
		ksq := p.board.KingOf(us)
		mask &= bb.Between(int(ksq), p.checkers.First())
	}
	for role := Pawn; role <= Queen; role++ {
		if p.pockets[us].Count(role) == 0 {
			continue
		}
		targets := mask
		if role == Pawn {
			targets &= ^(bb.Rank1 | bb.Rank8)
		}
		for t := targets; t.Any(); {
			*moves = append(*moves, Move{Kind: PutMove, From: NoSquare, To: Square(t.Pop()), Role: role})
		}
	}
}

// antichessMoves generates Antichess moves: no check law at all, kings are
// ordinary pieces, and capturing is mandatory whenever possible.
func (p *Position) antichessMoves(moves *[]Move) {
	var all []Move
	p.pseudoMoves(&all, ^p.board.ByColor(p.turn), true)

	var captures []Move
	for _, m := range all {
		if p.isCapture(m) {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		*moves = append(*moves, captures...)
		return
	}
	*moves = append(*moves, all...)
}

// atomicMoves generates Atomic moves: kings never capture, no piece may
// move onto a king's square, and legality is decided by simulating the
// explosion — a move survives if the mover's king survives, or if it blows
// up the opposing king outright.
func (p *Position) atomicMoves(moves *[]Move) {
	targetMask := ^p.board.ByColor(p.turn) &^ p.board.ByRole(King)
	var pseudo []Move
	p.pseudoMoves(&pseudo, targetMask, false)
	if p.checkers.IsEmpty() {
		p.castlingMoves(&pseudo)
	}
	us := p.turn
	for _, m := range pseudo {
		q := p.applyUnchecked(m)
		if q.board.KingOf(us) == NoSquare {
			continue // exploded its own king
		}
		if q.board.KingOf(us.Opposite()) == NoSquare {
			*moves = append(*moves, m) // wins on the spot
			continue
		}
		if !q.kingAttacked(us) {
			*moves = append(*moves, m)
		}
	}
}

// racingKingsMoves generates Racing Kings moves: standard legality plus
// the rule that no move may give check to either side.
func (p *Position) racingKingsMoves(moves *[]Move) {
	var std []Move
	p.standardMoves(&std)
	for _, m := range std {
		q := p.applyUnchecked(m)
		if q.checkers.IsEmpty() {
			*moves = append(*moves, m)
		}
	}
}

// pseudoMoves generates movement-geometry moves without any king-safety
// filtering, used by the simulation-based variants. targetMask restricts
// destinations; kingCaptures additionally permits the king to capture.
func (p *Position) pseudoMoves(moves *[]Move, targetMask bb.Bitboard, kingCaptures bool) {
	us := p.turn
	them := us.Opposite()
	occ := p.board.Occupied()
	theirs := p.board.ByColor(them)

	for role := Knight; role <= King; role++ {
		if role == Pawn {
			continue
		}
		for pieces := p.board.Pieces(us, role); pieces.Any(); {
			from := Square(pieces.Pop())
			targets := AttacksOf(MakePiece(us, role), from, occ) & targetMask
			if role == King && !kingCaptures {
				targets &= ^occ
			}
			for t := targets; t.Any(); {
				*moves = append(*moves, Move{Kind: NormalMove, From: from, To: Square(t.Pop())})
			}
		}
	}

	dir := Square(8)
	promoRank := 7
	if us == Black {
		dir = -8
		promoRank = 0
	}
	for pawns := p.board.Pieces(us, Pawn); pawns.Any(); {
		from := Square(pawns.Pop())
		targets := bb.PawnAttacks(int(us), int(from)) & theirs & targetMask
		oneUp := from + dir
		if !occ.Has(int(oneUp)) {
			if targetMask.Has(int(oneUp)) {
				targets = targets.With(int(oneUp))
			}
			if p.canDoublePush(from) {
				twoUp := oneUp + dir
				if !occ.Has(int(twoUp)) && targetMask.Has(int(twoUp)) {
					targets = targets.With(int(twoUp))
				}
			}
		}
		for t := targets; t.Any(); {
			to := Square(t.Pop())
			if to.Rank() == promoRank {
				for _, role := range promotionRoles(p.variant) {
					*moves = append(*moves, Move{Kind: NormalMove, From: from, To: to, Promotion: role})
				}
			} else {
				*moves = append(*moves, Move{Kind: NormalMove, From: from, To: to})
			}
		}
		if p.epSquare != NoSquare && bb.PawnAttacks(int(us), int(from)).Has(int(p.epSquare)) {
			*moves = append(*moves, Move{Kind: EnPassantMove, From: from, To: p.epSquare})
		}
	}
}

// isCapture reports whether the move captures, en passant included.
func (p *Position) isCapture(m Move) bool {
	return m.Kind == EnPassantMove ||
		(m.Kind == NormalMove && p.board.PieceAt(m.To) != NoPiece)
}

// promotionRoles returns the roles a pawn may promote to under the variant.
func promotionRoles(v Variant) []Role {
	if v == Antichess {
		return []Role{Queen, Rook, Bishop, Knight, King}
	}
	return []Role{Queen, Rook, Bishop, Knight}
}
