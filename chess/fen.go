package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into an unvalidated Setup. Only the grammar
// is checked here; semantic validation happens in FromSetup. Fields after
// the placement are optional, but a present field must be well-formed.
//
// Recognized extensions: a bracketed pocket after the placement
// ("...RNBQKBNR[QRq]"), a '~' marking a promoted piece, Shredder castling
// letters ("HAha"), and a remaining-checks field ("3+3") before the clocks.
func ParseFEN(fen string) (Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Setup{}, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}
	setup := NewSetup()

	if err := parsePlacement(&setup, parts[0]); err != nil {
		return Setup{}, err
	}
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			setup.Turn = White
		case "b":
			setup.Turn = Black
		default:
			return Setup{}, fmt.Errorf("invalid side to move %q: %w", parts[1], ErrInvalidFEN)
		}
	}
	if len(parts) >= 3 {
		if err := parseCastlingField(&setup, parts[2]); err != nil {
			return Setup{}, err
		}
	}
	if len(parts) >= 4 {
		if err := parseEnPassantField(&setup, parts[3]); err != nil {
			return Setup{}, err
		}
	}

	clocks := parts[4:]
	if len(clocks) > 0 && strings.Contains(clocks[0], "+") {
		if err := parseChecksField(&setup, clocks[0]); err != nil {
			return Setup{}, err
		}
		clocks = clocks[1:]
	}
	if len(clocks) >= 1 {
		n, err := strconv.Atoi(clocks[0])
		if err != nil || n < 0 {
			return Setup{}, fmt.Errorf("invalid halfmove clock %q: %w", clocks[0], ErrInvalidFEN)
		}
		setup.HalfmoveClock = n
	}
	if len(clocks) >= 2 {
		n, err := strconv.Atoi(clocks[1])
		if err != nil || n < 0 {
			return Setup{}, fmt.Errorf("invalid fullmove number %q: %w", clocks[1], ErrInvalidFEN)
		}
		setup.Fullmoves = n
	}
	return setup, nil
}

// parsePlacement parses the piece placement field, including the optional
// bracketed pocket and '~' promotion marks.
func parsePlacement(setup *Setup, field string) error {
	placement := field
	if open := strings.IndexByte(field, '['); open >= 0 {
		if !strings.HasSuffix(field, "]") {
			return fmt.Errorf("unterminated pocket: %w", ErrInvalidFEN)
		}
		placement = field[:open]
		setup.HasPockets = true
		for i := open + 1; i < len(field)-1; i++ {
			p := PieceFromLetter(field[i])
			if p == NoPiece {
				return fmt.Errorf("invalid pocket piece %q: %w", field[i], ErrInvalidFEN)
			}
			setup.Pockets[p.Color()][p.Role()]++
		}
	}

	rank, file := 7, 0
	lastPiece := NoSquare
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != 8 || rank == 0 {
				return fmt.Errorf("bad rank length: %w", ErrInvalidFEN)
			}
			rank--
			file = 0
			lastPiece = NoSquare
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return fmt.Errorf("rank overflow: %w", ErrInvalidFEN)
			}
			lastPiece = NoSquare
		case c == '~':
			if lastPiece == NoSquare {
				return fmt.Errorf("stray promotion mark: %w", ErrInvalidFEN)
			}
			setup.Board.SetPromoted(lastPiece, true)
			lastPiece = NoSquare
		default:
			piece := PieceFromLetter(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			if file > 7 {
				return fmt.Errorf("rank overflow: %w", ErrInvalidFEN)
			}
			sq := MakeSquare(file, rank)
			setup.Board.Put(sq, piece)
			lastPiece = sq
			file++
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("placement does not cover 8 ranks: %w", ErrInvalidFEN)
	}
	return nil
}

// parseCastlingField parses castling availability: "-", classical "KQkq",
// or Shredder file letters. Classical letters resolve to the outermost
// rook on the named side of the king, which also covers X-FEN input.
func parseCastlingField(setup *Setup, field string) error {
	setup.Castles = NoCastles()
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		color := White
		if c >= 'a' && c <= 'z' {
			color = Black
		}
		kingFile := castlingKingFile(&setup.Board, color)
		switch {
		case c == 'K' || c == 'k':
			setup.Castles.Set(color, KingSide, outermostRook(&setup.Board, color, kingFile, +1))
		case c == 'Q' || c == 'q':
			setup.Castles.Set(color, QueenSide, outermostRook(&setup.Board, color, kingFile, -1))
		case c >= 'A' && c <= 'H' || c >= 'a' && c <= 'h':
			file := int(c - 'A')
			if color == Black {
				file = int(c - 'a')
			}
			side := KingSide
			if file < kingFile {
				side = QueenSide
			}
			setup.Castles.Set(color, side, MakeSquare(file, backRank(color)))
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, ErrInvalidFEN)
		}
	}
	return nil
}

// castlingKingFile returns the file of the color's king on its back rank,
// defaulting to the e-file when absent (FromSetup reports the real error).
func castlingKingFile(board *Board, color Color) int {
	ksq := board.KingOf(color)
	if ksq == NoSquare || ksq.Rank() != backRank(color) {
		return 4
	}
	return ksq.File()
}

// outermostRook finds the rook square the classical castling letters refer
// to: the outermost rook on the given side of the king. When none exists
// the classical corner is recorded so validation can name the failure.
func outermostRook(board *Board, color Color, kingFile, dir int) Square {
	rank := backRank(color)
	start := 7
	if dir < 0 {
		start = 0
	}
	for file := start; file != kingFile; file -= dir {
		sq := MakeSquare(file, rank)
		if board.PieceAt(sq) == MakePiece(color, Rook) {
			return sq
		}
	}
	return MakeSquare(start, rank)
}

// parseEnPassantField parses the en passant target field.
func parseEnPassantField(setup *Setup, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return fmt.Errorf("invalid en passant target %q: %w", field, ErrInvalidFEN)
	}
	setup.EPSquare = sq
	return nil
}

// parseChecksField parses the remaining-checks field, e.g. "3+3".
func parseChecksField(setup *Setup, field string) error {
	white, black, ok := strings.Cut(field, "+")
	w, errW := strconv.Atoi(white)
	b, errB := strconv.Atoi(black)
	if !ok || errW != nil || errB != nil || w < 0 || b < 0 {
		return fmt.Errorf("invalid remaining checks %q: %w", field, ErrInvalidFEN)
	}
	setup.HasRemainingChecks = true
	setup.RemainingChecks[White] = w
	setup.RemainingChecks[Black] = b
	return nil
}

// EncodeFEN writes a Setup in canonical FEN form, appending the pocket and
// remaining-checks extension fields when the Setup carries them.
func EncodeFEN(setup Setup) string {
	var sb strings.Builder

	writePlacement(&sb, &setup)
	sb.WriteByte(' ')
	sb.WriteByte(setup.Turn.Letter())
	sb.WriteByte(' ')
	writeCastlingField(&sb, &setup)
	sb.WriteByte(' ')
	sb.WriteString(setup.EPSquare.String())
	if setup.HasRemainingChecks {
		fmt.Fprintf(&sb, " %d+%d", setup.RemainingChecks[White], setup.RemainingChecks[Black])
	}
	fmt.Fprintf(&sb, " %d %d", setup.HalfmoveClock, setup.Fullmoves)

	return sb.String()
}

// writePlacement writes the placement field, promoted marks and pocket
// included.
func writePlacement(sb *strings.Builder, setup *Setup) {
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			piece := setup.Board.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
			if setup.Board.Promoted().Has(int(sq)) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if setup.HasPockets {
		sb.WriteByte('[')
		for _, color := range []Color{White, Black} {
			for role := Queen; role >= Pawn; role-- {
				for i := 0; i < setup.Pockets[color].Count(role); i++ {
					sb.WriteByte(MakePiece(color, role).Letter())
				}
			}
		}
		sb.WriteByte(']')
	}
}

// writeCastlingField writes castling availability, using classical letters
// when every right sits on the classical squares and Shredder file letters
// otherwise.
func writeCastlingField(sb *strings.Builder, setup *Setup) {
	if setup.Castles.IsEmpty() {
		sb.WriteByte('-')
		return
	}
	classical := castlesAreClassical(setup)
	for _, color := range []Color{White, Black} {
		for _, side := range []CastlingSide{KingSide, QueenSide} {
			rook := setup.Castles.Rook(color, side)
			if rook == NoSquare {
				continue
			}
			var c byte
			if classical {
				if side == KingSide {
					c = 'K'
				} else {
					c = 'Q'
				}
			} else {
				c = byte('A' + rook.File())
			}
			if color == Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
	}
}

// castlesAreClassical reports whether every declared right uses the
// classical king and rook origins.
func castlesAreClassical(setup *Setup) bool {
	for _, color := range []Color{White, Black} {
		for _, side := range []CastlingSide{KingSide, QueenSide} {
			rook := setup.Castles.Rook(color, side)
			if rook == NoSquare {
				continue
			}
			if castlingKingFile(&setup.Board, color) != 4 {
				return false
			}
			if side == KingSide && rook.File() != 7 {
				return false
			}
			if side == QueenSide && rook.File() != 0 {
				return false
			}
		}
	}
	return true
}

// FEN returns the canonical FEN of the position, extension fields included
// for variants that use them.
func (p *Position) FEN() string {
	return EncodeFEN(p.Setup())
}

// NewPositionFromFEN parses a FEN string and validates it under the given
// variant in one step.
func NewPositionFromFEN(fen string, variant Variant) (Position, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return Position{}, err
	}
	return FromSetup(setup, variant)
}
