package chess

import (
	"testing"
)

// Published perft node counts. Depths are kept modest so the suite stays
// fast; the initial position gets one deeper ply outside -short mode.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"initial d1", InitialFEN, 1, 20},
		{"initial d2", InitialFEN, 2, 400},
		{"initial d3", InitialFEN, 3, 8902},
		{"initial d4", InitialFEN, 4, 197281},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"endgame d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"endgame d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"endgame d4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"promotions d1", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"promotions d2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"promotions d3", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},
		{"talkchess d1", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"talkchess d2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
		{"talkchess d3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
		{"steven d1", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 1, 46},
		{"steven d2", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2, 2079},
		{"steven d3", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen, Standard)
			if got := Perft(&pos, tt.depth); got != tt.nodes {
				t.Errorf("perft(%d) = %d, want %d", tt.depth, got, tt.nodes)
			}
		})
	}
}

func TestPerftInitialDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	pos := Standard.InitialPosition()
	if got := Perft(&pos, 5); got != 4865609 {
		t.Errorf("perft(5) = %d, want 4865609", got)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := Standard.InitialPosition()
	entries := Divide(&pos, 3)
	if len(entries) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(entries))
	}
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	if want := Perft(&pos, 3); sum != want {
		t.Errorf("divide sum = %d, want %d", sum, want)
	}
}

func TestPerftDepthZero(t *testing.T) {
	pos := Standard.InitialPosition()
	if got := Perft(&pos, 0); got != 1 {
		t.Errorf("perft(0) = %d, want 1", got)
	}
}
