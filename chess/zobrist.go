package chess

import (
	"math/rand"
)

// Zobrist key tables. The keys are generated once from a fixed seed so that
// hashes are stable across runs and builds. Piece keys are indexed by the
// Piece encoding directly; the extension tables cover the variant state that
// the board alone does not capture (pockets, promoted pieces, remaining
// checks).
var (
	zobristPiece     [16][64]uint64
	zobristBlackTurn uint64
	zobristCastle    [2][2]uint64
	zobristEPFile    [8]uint64
	zobristPromoted  [64]uint64
	zobristPocket    [2][7][17]uint64
	zobristChecks    [2][4]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x1D5C4E3B2A19F807))
	for _, role := range []Role{Pawn, Knight, Bishop, Rook, Queen, King} {
		for color := White; color <= Black; color++ {
			piece := MakePiece(color, role)
			for sq := 0; sq < 64; sq++ {
				zobristPiece[piece][sq] = rng.Uint64()
			}
		}
	}
	zobristBlackTurn = rng.Uint64()
	for color := White; color <= Black; color++ {
		for side := KingSide; side <= QueenSide; side++ {
			zobristCastle[color][side] = rng.Uint64()
		}
	}
	for file := 0; file < 8; file++ {
		zobristEPFile[file] = rng.Uint64()
	}
	for sq := 0; sq < 64; sq++ {
		zobristPromoted[sq] = rng.Uint64()
	}
	for color := White; color <= Black; color++ {
		for role := Pawn; role <= King; role++ {
			// Count zero hashes to nothing so an empty pocket is free.
			for count := 1; count <= 16; count++ {
				zobristPocket[color][role][count] = rng.Uint64()
			}
		}
	}
	for color := White; color <= Black; color++ {
		for n := 0; n < 4; n++ {
			zobristChecks[color][n] = rng.Uint64()
		}
	}
}

// Hash returns the Zobrist hash of the position. Two positions hash equal
// when board, turn, castling rights, en passant file, and all variant
// extension state agree; the halfmove clock and fullmove number are
// excluded, matching repetition-detection semantics.
func (p *Position) Hash() uint64 {
	var h uint64

	occ := p.board.Occupied()
	for b := occ; b.Any(); {
		sq := b.Pop()
		h ^= zobristPiece[p.board.PieceAt(Square(sq))][sq]
	}
	for b := p.board.Promoted(); b.Any(); {
		h ^= zobristPromoted[b.Pop()]
	}

	if p.turn == Black {
		h ^= zobristBlackTurn
	}
	for color := White; color <= Black; color++ {
		for side := KingSide; side <= QueenSide; side++ {
			if p.castles.Rook(color, side) != NoSquare {
				h ^= zobristCastle[color][side]
			}
		}
	}
	if p.epSquare != NoSquare {
		h ^= zobristEPFile[p.epSquare.File()]
	}

	if p.variant.hasPockets() {
		for color := White; color <= Black; color++ {
			for role := Pawn; role <= King; role++ {
				h ^= zobristPocket[color][role][p.pockets[color].Count(role)]
			}
		}
	}
	if p.variant.hasRemainingChecks() {
		for color := White; color <= Black; color++ {
			n := p.remainingChecks[color]
			if n > 3 {
				n = 3
			}
			h ^= zobristChecks[color][n]
		}
	}
	return h
}
