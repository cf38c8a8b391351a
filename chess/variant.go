package chess

import (
	"fmt"
	"strings"
)

// Variant selects a rule set. The set is closed: variants are dispatched by
// tag against this enumeration, not registered at runtime. A Position is
// tagged with its variant at construction and keeps it for life.
type Variant uint8

const (
	Standard Variant = iota
	Chess960
	Crazyhouse
	Atomic
	Horde
	RacingKings
	ThreeCheck
	Antichess
	KingOfTheHill
)

var variantNames = []string{
	"standard",
	"chess960",
	"crazyhouse",
	"atomic",
	"horde",
	"racingkings",
	"3check",
	"antichess",
	"kingofthehill",
}

// String returns the canonical lowercase name of the variant.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// ParseVariant converts a variant name to its tag. Recognized spellings
// include the canonical names plus common aliases ("fischerandom",
// "threecheck", "koth").
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "chess", "":
		return Standard, nil
	case "chess960", "fischerandom", "fischerrandom", "960":
		return Chess960, nil
	case "crazyhouse", "zh":
		return Crazyhouse, nil
	case "atomic":
		return Atomic, nil
	case "horde":
		return Horde, nil
	case "racingkings", "racing kings", "race":
		return RacingKings, nil
	case "3check", "threecheck", "three-check":
		return ThreeCheck, nil
	case "antichess", "giveaway", "suicide":
		return Antichess, nil
	case "kingofthehill", "king of the hill", "koth":
		return KingOfTheHill, nil
	default:
		return Standard, fmt.Errorf("variant %q: %w", s, ErrInvalidVariant)
	}
}

// hasPockets reports whether the variant uses piece pockets and drops.
func (v Variant) hasPockets() bool { return v == Crazyhouse }

// hasRemainingChecks reports whether the variant counts delivered checks.
func (v Variant) hasRemainingChecks() bool { return v == ThreeCheck }

// hasCheckConcept reports whether check law applies at all. Antichess has no
// check; Racing Kings forbids checks entirely but still reasons about them.
func (v Variant) hasCheckConcept() bool { return v != Antichess }

// allowsCastling reports whether castling exists under the variant.
func (v Variant) allowsCastling() bool {
	switch v {
	case Antichess, RacingKings:
		return false
	default:
		return true
	}
}

// InitialFEN returns the starting FEN of the variant.
func (v Variant) InitialFEN() string {
	switch v {
	case Crazyhouse:
		return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1"
	case Horde:
		return "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
	case RacingKings:
		return "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1"
	case ThreeCheck:
		return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1"
	case Antichess:
		return "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	default:
		return InitialFEN
	}
}

// InitialSetup returns the starting Setup of a fresh game in this variant.
func (v Variant) InitialSetup() Setup {
	setup, err := ParseFEN(v.InitialFEN())
	if err != nil {
		// The initial FENs are constants; a parse failure is a defect.
		panic(fmt.Sprintf("chess: bad initial FEN for %v: %v", v, err))
	}
	return setup
}

// InitialPosition returns the validated starting Position of the variant.
func (v Variant) InitialPosition() Position {
	pos, err := FromSetup(v.InitialSetup(), v)
	if err != nil {
		panic(fmt.Sprintf("chess: bad initial position for %v: %v", v, err))
	}
	return pos
}
