package bitboard

import (
	"testing"
)

// Square indices used below, a1=0 rank-major.
const (
	a1 = 0
	c1 = 2
	a2 = 8
	b3 = 17
	c2 = 10
	d4 = 27
	e4 = 28
	d5 = 35
	f5 = 37
	d6 = 43
	e6 = 44
	a8 = 56
	h8 = 63
)

func TestKnightAttacks(t *testing.T) {
	corner := KnightAttacks(a1)
	if corner != FromSquare(b3)|FromSquare(c2) {
		t.Errorf("knight on a1 attacks:\n%v", corner)
	}
	if KnightAttacks(d4).Count() != 8 {
		t.Errorf("knight on d4 should attack 8 squares, got %d", KnightAttacks(d4).Count())
	}
}

func TestKingAttacks(t *testing.T) {
	if KingAttacks(a1).Count() != 3 {
		t.Errorf("king on a1 should attack 3 squares, got %d", KingAttacks(a1).Count())
	}
	if KingAttacks(e4).Count() != 8 {
		t.Errorf("king on e4 should attack 8 squares, got %d", KingAttacks(e4).Count())
	}
}

func TestPawnAttacks(t *testing.T) {
	if PawnAttacks(White, e4) != FromSquare(d5)|FromSquare(f5) {
		t.Errorf("white pawn on e4 attacks:\n%v", PawnAttacks(White, e4))
	}
	if PawnAttacks(Black, e4) != FromSquare(19)|FromSquare(21) {
		t.Errorf("black pawn on e4 attacks:\n%v", PawnAttacks(Black, e4))
	}
	// Edge pawns attack a single square.
	if PawnAttacks(White, a2) != FromSquare(b3) {
		t.Errorf("white pawn on a2 attacks:\n%v", PawnAttacks(White, a2))
	}
}

func TestSliderAttacks(t *testing.T) {
	if RookAttacks(d4, 0).Count() != 14 {
		t.Errorf("rook on an empty board should attack 14 squares, got %d",
			RookAttacks(d4, 0).Count())
	}
	// A blocker is included in the attack set; squares beyond it are not.
	blocked := RookAttacks(d4, FromSquare(d6))
	if !blocked.Has(d5) || !blocked.Has(d6) {
		t.Error("rook should attack up to and including the blocker")
	}
	if blocked.Has(51) { // d7
		t.Error("rook should not see past the blocker")
	}

	if BishopAttacks(c1, 0).Count() != 7 {
		t.Errorf("bishop on c1 should attack 7 squares, got %d",
			BishopAttacks(c1, 0).Count())
	}
	if QueenAttacks(d4, 0) != RookAttacks(d4, 0)|BishopAttacks(d4, 0) {
		t.Error("queen attacks should be the union of rook and bishop attacks")
	}
}

func TestBetween(t *testing.T) {
	if Between(a1, h8).Count() != 6 {
		t.Errorf("Between(a1, h8) = %d squares, want 6", Between(a1, h8).Count())
	}
	if Between(a1, h8).Has(a1) || Between(a1, h8).Has(h8) {
		t.Error("Between should exclude its endpoints")
	}
	if Between(a1, a8).Count() != 6 {
		t.Errorf("Between(a1, a8) = %d squares, want 6", Between(a1, a8).Count())
	}
	if Between(a1, c2) != 0 {
		t.Error("Between of unaligned squares should be empty")
	}
	if Between(d4, e4) != 0 {
		t.Error("Between of adjacent squares should be empty")
	}
}

func TestLine(t *testing.T) {
	diag := Line(a1, h8)
	if diag.Count() != 8 || !diag.Has(a1) || !diag.Has(h8) || !diag.Has(d4) {
		t.Errorf("Line(a1, h8):\n%v", diag)
	}
	if Line(e4, e6) != FileE {
		t.Errorf("Line(e4, e6) should be the full e-file:\n%v", Line(e4, e6))
	}
	if Line(a1, c2) != 0 {
		t.Error("Line of unaligned squares should be empty")
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(a1, d4, h8) {
		t.Error("a1, d4, h8 lie on one diagonal")
	}
	if Aligned(a1, b3, d4) {
		t.Error("a1, b3, d4 are not collinear")
	}
}
