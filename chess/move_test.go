package chess

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesskit/internal/testutil"
)

func TestMoveUCI(t *testing.T) {
	tests := []struct {
		name string
		m    Move
		want string
	}{
		{"quiet", Move{Kind: NormalMove, From: E2, To: E4}, "e2e4"},
		{"promotion", Move{Kind: NormalMove, From: A7, To: A8, Promotion: Queen}, "a7a8q"},
		{"underpromotion", Move{Kind: NormalMove, From: A7, To: A8, Promotion: Knight}, "a7a8n"},
		{"en passant", Move{Kind: EnPassantMove, From: E5, To: D6}, "e5d6"},
		{"classic castle", Move{Kind: CastleMove, From: E1, To: H1, Side: KingSide}, "e1g1"},
		{"960 castle", Move{Kind: CastleMove, From: B1, To: A1, Side: QueenSide}, "b1a1"},
		{"drop", Move{Kind: PutMove, From: NoSquare, To: F3, Role: Knight}, "N@f3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.m.UCI(), tt.want)
			testutil.AssertEqual(t, tt.m.String(), tt.want)
		})
	}
}

func TestParseUCI(t *testing.T) {
	pos := Standard.InitialPosition()

	m, err := ParseUCI(&pos, "e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: E2, To: E4})

	// Legal-looking but illegal moves are rejected.
	_, err = ParseUCI(&pos, "e2e5")
	testutil.AssertError(t, err)
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("error %v should wrap ErrIllegalMove", err)
	}

	// Malformed strings are rejected.
	for _, s := range []string{"", "e2", "e2e9", "i2i4", "e2e4x", "e2e4qq"} {
		if _, err := ParseUCI(&pos, s); err == nil {
			t.Errorf("ParseUCI(%q) should fail", s)
		}
	}
}

// Castling is accepted both as king destination and as king-takes-rook.
func TestParseUCICastlingSpellings(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", Standard)

	a, err := ParseUCI(&pos, "e1g1")
	testutil.AssertNoError(t, err)
	b, err := ParseUCI(&pos, "e1h1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, a, b)
	testutil.AssertTrue(t, a.IsCastle())
	testutil.AssertEqual(t, a.KingTo(), G1)
}

func TestMovePredicates(t *testing.T) {
	testutil.AssertTrue(t, Move{Kind: CastleMove, From: E1, To: H1}.IsCastle())
	testutil.AssertTrue(t, Move{Kind: NormalMove, From: A7, To: A8, Promotion: Queen}.IsPromotion())
	testutil.AssertTrue(t, Move{Kind: PutMove, From: NoSquare, To: E4, Role: Pawn}.IsDrop())
	testutil.AssertFalse(t, Move{Kind: NormalMove, From: E2, To: E4}.IsCastle())
}
