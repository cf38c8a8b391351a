package chess

import (
	"strings"
)

// SAN renders a legal move in Standard Algebraic Notation, with the minimal
// disambiguation the current legal move set requires and a '+' or '#' suffix
// derived from the resulting position. The move must come from LegalMoves;
// output for other moves is unspecified.
func (p *Position) SAN(m Move) string {
	var sb strings.Builder
	p.writeSanBody(&sb, m)
	sb.WriteString(p.sanSuffix(m))
	return sb.String()
}

func (p *Position) writeSanBody(sb *strings.Builder, m Move) {
	switch m.Kind {
	case CastleMove:
		sb.WriteString(m.Side.String())
		return
	case PutMove:
		sb.WriteByte(m.Role.Letter())
		sb.WriteByte('@')
		sb.WriteString(m.To.String())
		return
	}

	role := p.board.PieceAt(m.From).Role()
	capture := p.isCapture(m)
	if role == Pawn {
		if capture {
			sb.WriteByte(byte('a' + m.From.File()))
			sb.WriteByte('x')
		}
	} else {
		sb.WriteByte(role.Letter())
		sb.WriteString(p.sanDisambiguation(m, role))
		if capture {
			sb.WriteByte('x')
		}
	}
	sb.WriteString(m.To.String())
	if m.Promotion != NoRole {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
}

// sanDisambiguation returns the origin qualifier for a non-pawn move: empty
// when no other legal move of the same role shares the target, otherwise the
// file, the rank, or both, whichever is the shortest unique prefix.
func (p *Position) sanDisambiguation(m Move, role Role) string {
	sameFile, sameRank, others := false, false, false
	for _, other := range p.LegalMoves() {
		if other.Kind != NormalMove || other == m || other.To != m.To {
			continue
		}
		if p.board.PieceAt(other.From).Role() != role {
			continue
		}
		others = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string(byte('a' + m.From.File()))
	case !sameRank:
		return string(byte('1' + m.From.Rank()))
	default:
		return m.From.String()
	}
}

// sanSuffix computes the check decoration by playing the move out.
func (p *Position) sanSuffix(m Move) string {
	q := p.applyUnchecked(m)
	if !q.IsCheck() {
		return ""
	}
	if !q.HasLegalMoves() {
		return "#"
	}
	return "+"
}

// ParseSAN resolves a SAN token against the position's legal moves. The
// parser is forgiving about decorations ('+', '#', '!', '?') and accepts
// both "O-O" and "0-0" castling spellings, but the token must match exactly
// one legal move: no match yields ErrIllegalSan, several yield
// ErrAmbiguousSan, both wrapped in a SanError carrying the token.
func ParseSAN(p *Position, san string) (Move, error) {
	token := strings.TrimRight(san, "+#!?")
	if token == "" {
		return Move{}, &SanError{Text: san, Err: ErrIllegalSan}
	}

	pattern, ok := parseSanPattern(token)
	if !ok {
		return Move{}, &SanError{Text: san, Err: ErrIllegalSan}
	}

	var found Move
	matches := 0
	for _, m := range p.LegalMoves() {
		if pattern.matches(p, m) {
			found = m
			matches++
		}
	}
	switch matches {
	case 0:
		return Move{}, &SanError{Text: san, Err: ErrIllegalSan}
	case 1:
		return found, nil
	default:
		return Move{}, &SanError{Text: san, Err: ErrAmbiguousSan}
	}
}

// sanPattern is the constraint set extracted from a SAN token. Unset origin
// constraints are -1; unset promotion is NoRole.
type sanPattern struct {
	castle    bool
	side      CastlingSide
	drop      bool
	role      Role
	fromFile  int
	fromRank  int
	to        Square
	promotion Role
}

func parseSanPattern(token string) (sanPattern, bool) {
	pat := sanPattern{fromFile: -1, fromRank: -1, to: NoSquare, promotion: NoRole}

	switch token {
	case "O-O", "0-0":
		pat.castle = true
		pat.side = KingSide
		return pat, true
	case "O-O-O", "0-0-0":
		pat.castle = true
		pat.side = QueenSide
		return pat, true
	}

	if at := strings.IndexByte(token, '@'); at >= 0 {
		pat.drop = true
		pat.role = Pawn
		switch at {
		case 0:
		case 1:
			pat.role = RoleFromLetter(token[0])
			if pat.role == NoRole || token[0] >= 'a' {
				return pat, false
			}
		default:
			return pat, false
		}
		to, err := ParseSquare(token[at+1:])
		if err != nil {
			return pat, false
		}
		pat.to = to
		return pat, true
	}

	i := 0
	pat.role = Pawn
	// Only an uppercase letter names a role; a lowercase letter is always a
	// file, so "b4" and "bxc3" stay pawn moves.
	if i < len(token) && token[i] >= 'A' && token[i] <= 'Z' {
		if r := RoleFromLetter(token[i]); r != NoRole && r != Pawn {
			pat.role = r
			i++
		}
	}
	if i < len(token) && token[i] >= 'a' && token[i] <= 'h' {
		// A file here is either the origin hint or the start of the target
		// square; decide by what follows.
		if i+2 < len(token) && token[i+1] >= '1' && token[i+1] <= '8' &&
			(token[i+2] == 'x' || token[i+2] >= 'a' && token[i+2] <= 'h') {
			pat.fromFile = int(token[i] - 'a')
			pat.fromRank = int(token[i+1] - '1')
			i += 2
		} else if i+1 < len(token) && (token[i+1] == 'x' || token[i+1] >= 'a' && token[i+1] <= 'h') {
			pat.fromFile = int(token[i] - 'a')
			i++
		}
	} else if i < len(token) && token[i] >= '1' && token[i] <= '8' {
		pat.fromRank = int(token[i] - '1')
		i++
	}
	if i < len(token) && token[i] == 'x' {
		i++
	}
	if i+2 > len(token) {
		return pat, false
	}
	to, err := ParseSquare(token[i : i+2])
	if err != nil {
		return pat, false
	}
	pat.to = to
	i += 2
	if i < len(token) && token[i] == '=' {
		i++
	}
	if i < len(token) {
		pat.promotion = RoleFromLetter(token[i])
		if pat.promotion == NoRole || pat.promotion == Pawn {
			return pat, false
		}
		i++
	}
	return pat, i == len(token)
}

// matches reports whether a legal move satisfies every constraint the token
// imposed.
func (pat *sanPattern) matches(p *Position, m Move) bool {
	if pat.castle {
		return m.Kind == CastleMove && m.Side == pat.side
	}
	if pat.drop {
		return m.Kind == PutMove && m.Role == pat.role && m.To == pat.to
	}
	if m.Kind != NormalMove && m.Kind != EnPassantMove {
		return false
	}
	if m.To != pat.to || m.Promotion != pat.promotion {
		return false
	}
	if p.board.PieceAt(m.From).Role() != pat.role {
		return false
	}
	if pat.fromFile >= 0 && m.From.File() != pat.fromFile {
		return false
	}
	if pat.fromRank >= 0 && m.From.Rank() != pat.fromRank {
		return false
	}
	return true
}
