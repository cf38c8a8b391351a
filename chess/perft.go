package chess

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It exercises generation and application together and is the standard
// cross-check against published node counts.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		q := p.applyUnchecked(m)
		nodes += Perft(&q, depth-1)
	}
	return nodes
}

// DivideEntry is one root move with its subtree leaf count.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide splits a perft count by root move, in generation order. The sum of
// the entries equals Perft(p, depth).
func Divide(p *Position, depth int) []DivideEntry {
	moves := p.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		q := p.applyUnchecked(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(&q, depth-1)})
	}
	return entries
}
