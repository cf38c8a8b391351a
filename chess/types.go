// Package chess implements the rules of chess and a closed set of variants:
// validated immutable positions, legality-checking move generation, and the
// FEN, SAN and coordinate notation codecs.
package chess

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite color.
func (c Color) Opposite() Color {
	return c ^ 1
}

// Letter returns the FEN side-to-move letter for the color.
func (c Color) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Role represents a piece type without a color.
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a role.
func (r Role) String() string {
	names := []string{"NoRole", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Letter returns the uppercase SAN letter for the role.
func (r Role) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(r) < len(letters) {
		return letters[r]
	}
	return '?'
}

// RoleFromLetter converts a SAN or FEN piece letter (either case) to a role.
// It returns NoRole for unrecognized letters.
func RoleFromLetter(c byte) Role {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoRole
	}
}

// Piece is a role with a color, compactly encoded so that p&7 is the role
// and p>>3 is the color.
type Piece uint8

// NoPiece is the absence of a piece.
const NoPiece Piece = 0

// MakePiece combines a color and a role into a piece.
func MakePiece(c Color, r Role) Piece {
	return Piece(r) | Piece(c)<<3
}

// Role returns the colorless role of the piece.
func (p Piece) Role() Role { return Role(p & 7) }

// Color returns the owning side of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Role().Letter()
	if p.Color() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a FEN piece letter to a piece, deriving the color
// from the letter case. It returns NoPiece for unrecognized letters.
func PieceFromLetter(c byte) Piece {
	role := RoleFromLetter(c)
	if role == NoRole {
		return NoPiece
	}
	color := White
	if c >= 'a' {
		color = Black
	}
	return MakePiece(color, role)
}

// String returns a human-readable description such as "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "NoPiece"
	}
	return fmt.Sprintf("%v %v", p.Color(), p.Role())
}

// Square identifies a board square, a1=0 through h8=63, rank-major.
type Square int8

// NoSquare is the absence of a square (for example no en passant target).
const NoSquare Square = -1

// Square constants in FEN order.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// MakeSquare builds a square from a file (0 = a) and a rank (0 = rank 1).
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the square's file, 0 for the a-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank, 0 for rank 1.
func (sq Square) Rank() int { return int(sq) / 8 }

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q: %w", s, ErrInvalidSquare)
	}
	return MakeSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}
