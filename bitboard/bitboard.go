// Package bitboard provides 64-square set algebra and precomputed attack
// geometry for chess move generation. All tables are built once during
// package initialization and are read-only afterwards, so any number of
// concurrent readers may use them without coordination.
package bitboard

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of up to 64 squares. Bit i is set when square i
// (a1=0 .. h8=63, rank-major) is a member of the set.
type Bitboard uint64

// Full is the bitboard with every square set.
const Full Bitboard = 0xFFFF_FFFF_FFFF_FFFF

// FromSquare returns a bitboard with only the given square set.
func FromSquare(sq int) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether the square is a member of the set.
func (b Bitboard) Has(sq int) bool {
	return b&FromSquare(sq) != 0
}

// With returns the set with the given square added.
func (b Bitboard) With(sq int) Bitboard {
	return b | FromSquare(sq)
}

// Without returns the set with the given square removed.
func (b Bitboard) Without(sq int) Bitboard {
	return b &^ FromSquare(sq)
}

// Any reports whether the set contains at least one square.
func (b Bitboard) Any() bool { return b != 0 }

// IsEmpty reports whether the set contains no squares.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// First returns the lowest square in the set, or -1 if the set is empty.
func (b Bitboard) First() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// Last returns the highest square in the set, or -1 if the set is empty.
func (b Bitboard) Last() int {
	if b == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(uint64(b))
}

// Pop removes and returns the lowest square in the set.
// It returns -1 when the set is empty.
func (b *Bitboard) Pop() int {
	if *b == 0 {
		return -1
	}
	sq := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return sq
}

// MoreThanOne reports whether the set contains two or more squares.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// File masks, a-file through h-file.
const (
	FileA Bitboard = 0x0101_0101_0101_0101 << iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank masks, rank 1 through rank 8.
const (
	Rank1 Bitboard = 0xFF << (8 * iota)
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// FileMask returns the mask of the given file (0 = a-file).
func FileMask(file int) Bitboard {
	return FileA << uint(file)
}

// RankMask returns the mask of the given rank (0 = rank 1).
func RankMask(rank int) Bitboard {
	return Rank1 << uint(8*rank)
}

// String renders the set as an 8x8 grid with rank 8 on top, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(rank*8 + file) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
