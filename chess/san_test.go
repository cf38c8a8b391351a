package chess

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesskit/internal/testutil"
)

func TestSANEncoding(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight development", InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5", "exd5"},
		{"kingside castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", "O-O"},
		{"queenside castle", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1c1", "O-O-O"},
		{"rook check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q+"},
		{"underpromotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", "a8=N"},
		{"en passant", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3", "d4e3", "dxe3"},
		{"file disambiguation", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "a1d1", "Rad1"},
		{"rank disambiguation", "4k3/8/8/8/R7/8/4K3/R7 w - - 0 1", "a1a3", "R1a3"},
		{"checkmate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2", "d8h4", "Qh4#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen, Standard)
			m, err := ParseUCI(&pos, tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, pos.SAN(m), tt.want)
		})
	}
}

func TestParseSAN(t *testing.T) {
	pos := Standard.InitialPosition()

	m, err := ParseSAN(&pos, "e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: E2, To: E4})

	m, err = ParseSAN(&pos, "Nf3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: G1, To: F3})

	// Decorations are tolerated.
	m, err = ParseSAN(&pos, "e4!?")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.To, E4)
}

func TestParseSANErrors(t *testing.T) {
	pos := Standard.InitialPosition()
	_, err := ParseSAN(&pos, "Ke2")
	testutil.AssertError(t, err)
	if !errors.Is(err, ErrIllegalSan) {
		t.Errorf("error %v should wrap ErrIllegalSan", err)
	}
	var sanErr *SanError
	if !errors.As(err, &sanErr) {
		t.Fatalf("error %v should be a SanError", err)
	}
	testutil.AssertEqual(t, sanErr.Text, "Ke2")

	// Both rooks reach d1; the token must disambiguate.
	ambiguous := mustPosition(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", Standard)
	_, err = ParseSAN(&ambiguous, "Rd1")
	testutil.AssertError(t, err)
	if !errors.Is(err, ErrAmbiguousSan) {
		t.Errorf("error %v should wrap ErrAmbiguousSan", err)
	}

	_, err = ParseSAN(&pos, "")
	testutil.AssertError(t, err)
	_, err = ParseSAN(&pos, "xyzzy")
	testutil.AssertError(t, err)
}

func TestParseSANCastling(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", Standard)
	m, err := ParseSAN(&pos, "O-O")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.IsCastle())
	testutil.AssertEqual(t, m.Side, KingSide)

	// The zero-spelled form is accepted too.
	m, err = ParseSAN(&pos, "0-0-0")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Side, QueenSide)
}

// A lowercase leading letter is always a file, so b-pawn tokens decode as
// pawn moves and never as bishop moves.
func TestParseSANBFilePawns(t *testing.T) {
	pos := Standard.InitialPosition()
	m, err := ParseSAN(&pos, "b4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: B2, To: B4})

	m, err = ParseSAN(&pos, "b3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: B2, To: B3})

	// Both the b-pawn and the bishop can take on c3; the letter case picks
	// the piece.
	pos = mustPosition(t, "rnbqk1nr/p1pppppp/8/4b3/1p6/2P5/PP1PPPPP/RNBQKBNR b KQkq - 0 3", Standard)
	m, err = ParseSAN(&pos, "bxc3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: B4, To: C3})

	m, err = ParseSAN(&pos, "Bxc3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: E5, To: C3})

	promo := mustPosition(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", Standard)
	m, err = ParseSAN(&promo, "b8=Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Kind: NormalMove, From: B7, To: B8, Promotion: Queen})
}

// Every legal move must survive an encode-decode cycle in a variety of
// middlegame shapes: castling, promotions, pins, en passant.
func TestSANRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen, Standard)
		for _, m := range pos.LegalMoves() {
			san := pos.SAN(m)
			got, err := ParseSAN(&pos, san)
			if err != nil {
				t.Errorf("%q in %q: %v", san, fen, err)
				continue
			}
			if got != m {
				t.Errorf("%q in %q decoded to %v, want %v", san, fen, got, m)
			}
		}
	}
}

func TestSANDrops(t *testing.T) {
	pos := mustPosition(t, "r1bqkbnr/ppp1pppp/2n5/3p4/8/8/PPPP1PPP/RNBQKBNR[Np] w KQkq - 0 4", Crazyhouse)

	m, err := ParseSAN(&pos, "N@e5")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.IsDrop())
	testutil.AssertEqual(t, m.Role, Knight)
	testutil.AssertEqual(t, m.To, E5)
	testutil.AssertEqual(t, pos.SAN(m), "N@e5")

	// No pawn in the white pocket, so a pawn drop is illegal.
	_, err = ParseSAN(&pos, "P@e4")
	testutil.AssertError(t, err)
	if !errors.Is(err, ErrIllegalSan) {
		t.Errorf("error %v should wrap ErrIllegalSan", err)
	}
}
