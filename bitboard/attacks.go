package bitboard

import "math/bits"

// Colors for pawn attack lookups. These mirror the chess package values so
// callers can convert without a mapping table.
const (
	White = 0
	Black = 1
)

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// pawnAttacks[color][sq] is the set of squares a pawn of that color attacks
// from sq. Note these are capture targets only, not pushes.
var pawnAttacks [2][64]Bitboard

// Occupancy masks and occupancy-indexed attack tables for sliders,
// addressed with a software pext over the edge-trimmed mask.
var rookMask [64]Bitboard
var bishopMask [64]Bitboard
var rookTable [64][]Bitboard
var bishopTable [64][]Bitboard

// between[a][b] is the open segment strictly between aligned squares a and b;
// line[a][b] is the full rank/file/diagonal through both, or 0 if unaligned.
var between [64][64]Bitboard
var line [64][64]Bitboard

func init() {
	initLeaperTables()
	initSliderTables()
	initLineTables()
}

// KnightAttacks returns the squares a knight attacks from sq.
func KnightAttacks(sq int) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the squares a king attacks from sq.
func KingAttacks(sq int) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the capture targets of a pawn of the given color on sq.
func PawnAttacks(color int, sq int) Bitboard { return pawnAttacks[color][sq] }

// RookAttacks returns the squares a rook attacks from sq given the occupancy.
func RookAttacks(sq int, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(rookMask[sq]))
	return rookTable[sq][idx]
}

// BishopAttacks returns the squares a bishop attacks from sq given the occupancy.
func BishopAttacks(sq int, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(bishopMask[sq]))
	return bishopTable[sq][idx]
}

// QueenAttacks returns the squares a queen attacks from sq given the occupancy.
func QueenAttacks(sq int, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and the empty set otherwise.
func Between(a, b int) Bitboard { return between[a][b] }

// Line returns the full rank, file or diagonal through a and b, including
// both endpoints, or the empty set when the squares are not aligned.
func Line(a, b int) Bitboard { return line[a][b] }

// Aligned reports whether square c lies on the line through a and b.
func Aligned(a, b, c int) bool {
	return line[a][b].Has(c)
}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// initLeaperTables precomputes knight, king and pawn capture masks.
func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var knight, king Bitboard
		for _, off := range knightOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				knight |= FromSquare(r*8 + f)
			}
		}
		for _, off := range kingOffsets {
			if r, f := rank+off[0], file+off[1]; r >= 0 && r < 8 && f >= 0 && f < 8 {
				king |= FromSquare(r*8 + f)
			}
		}
		knightAttacks[sq] = knight
		kingAttacks[sq] = king

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= FromSquare((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= FromSquare((rank+1)*8 + file + 1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= FromSquare((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= FromSquare((rank-1)*8 + file + 1)
			}
		}
	}
}

// slidingAttacks walks the given ray directions from sq, stopping at the
// first occupied square in each direction (which is included in the result).
func slidingAttacks(sq int, occ Bitboard, deltas [4][2]int) Bitboard {
	var attacks Bitboard
	file := sq % 8
	rank := sq / 8
	for _, d := range deltas {
		for r, f := rank+d[0], file+d[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+d[0], f+d[1] {
			target := r*8 + f
			attacks |= FromSquare(target)
			if occ.Has(target) {
				break
			}
		}
	}
	return attacks
}

// initSliderTables builds the per-square occupancy masks and attack tables
// by enumerating every subset of each mask.
func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		// Edge squares never affect blocking, so they are trimmed from
		// the masks to keep the tables small.
		edges := ((Rank1 | Rank8) &^ RankMask(sq/8)) | ((FileA | FileH) &^ FileMask(sq%8))
		rookMask[sq] = slidingAttacks(sq, 0, rookDeltas) &^ edges
		bishopMask[sq] = slidingAttacks(sq, 0, bishopDeltas) &^ edges

		rBits := rookMask[sq].Count()
		bBits := bishopMask[sq].Count()
		rookTable[sq] = make([]Bitboard, 1<<uint(rBits))
		bishopTable[sq] = make([]Bitboard, 1<<uint(bBits))

		for idx := 0; idx < 1<<uint(rBits); idx++ {
			occ := Bitboard(pdep(uint64(idx), uint64(rookMask[sq])))
			rookTable[sq][idx] = slidingAttacks(sq, occ, rookDeltas)
		}
		for idx := 0; idx < 1<<uint(bBits); idx++ {
			occ := Bitboard(pdep(uint64(idx), uint64(bishopMask[sq])))
			bishopTable[sq][idx] = slidingAttacks(sq, occ, bishopDeltas)
		}
	}
}

// initLineTables derives the between and line tables from empty-board
// slider attacks.
func initLineTables() {
	for a := 0; a < 64; a++ {
		rookA := slidingAttacks(a, 0, rookDeltas)
		bishopA := slidingAttacks(a, 0, bishopDeltas)
		for b := 0; b < 64; b++ {
			if a == b {
				continue
			}
			switch {
			case rookA.Has(b):
				rookB := slidingAttacks(b, 0, rookDeltas)
				line[a][b] = (rookA & rookB) | FromSquare(a) | FromSquare(b)
				between[a][b] = slidingAttacks(a, FromSquare(b), rookDeltas) &
					slidingAttacks(b, FromSquare(a), rookDeltas)
			case bishopA.Has(b):
				bishopB := slidingAttacks(b, 0, bishopDeltas)
				line[a][b] = (bishopA & bishopB) | FromSquare(a) | FromSquare(b)
				between[a][b] = slidingAttacks(a, FromSquare(b), bishopDeltas) &
					slidingAttacks(b, FromSquare(a), bishopDeltas)
			}
		}
	}
}

// pext extracts the bits of x at the positions where mask is set, packed
// into the low bits of the result (software fallback for the BMI2 PEXT).
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// pdep deposits the low bits of x into the positions where mask is set.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}
