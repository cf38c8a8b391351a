// perft is a move-generation cross-checking tool. It counts legal move tree
// leaves from a position and optionally splits the count by root move.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chesskit/chess"
)

var (
	fen     = flag.String("fen", "", "position to search from (default: the variant's initial position)")
	variant = flag.String("variant", "standard", "rule set: standard, chess960, crazyhouse, atomic, horde, racingkings, 3check, antichess, kingofthehill")
	depth   = flag.Int("depth", 5, "search depth in plies")
	divide  = flag.Bool("divide", false, "print per-root-move subtree counts")
)

func main() {
	flag.Parse()

	v, err := chess.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}

	pos := v.InitialPosition()
	if *fen != "" {
		pos, err = chess.NewPositionFromFEN(*fen, v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	var nodes uint64
	if *divide {
		for _, entry := range chess.Divide(&pos, *depth) {
			fmt.Printf("%s: %d\n", entry.Move.UCI(), entry.Nodes)
			nodes += entry.Nodes
		}
	} else {
		nodes = chess.Perft(&pos, *depth)
	}
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d (%.2fs, %.0f knps)\n",
		*depth, nodes, elapsed.Seconds(), float64(nodes)/1000/elapsed.Seconds())
}
