package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidSetup indicates a syntactically valid but semantically
	// impossible position setup.
	ErrInvalidSetup = errors.New("invalid position setup")

	// ErrIllegalMove indicates a move that is not in the legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalSan indicates a SAN token matching no legal move.
	ErrIllegalSan = errors.New("illegal SAN move")

	// ErrAmbiguousSan indicates a SAN token matching more than one legal move.
	ErrAmbiguousSan = errors.New("ambiguous SAN move")

	// ErrInvalidVariant indicates an unrecognized variant name.
	ErrInvalidVariant = errors.New("invalid variant")
)

// Setup invariant tags carried by SetupError.
const (
	SetupNoKing          = "no-king"
	SetupTooManyKings    = "too-many-kings"
	SetupPawnsOnBackrank = "pawns-on-backrank"
	SetupOppositeCheck   = "opposite-check"
	SetupBadCastling     = "bad-castling-rights"
	SetupBadEnPassant    = "bad-en-passant"
	SetupBadPockets      = "bad-pockets"
	SetupBadChecks       = "bad-remaining-checks"
	SetupVariantRule     = "variant-rule"
)

// SetupError reports a violated position invariant during Setup validation.
// Invariant holds one of the Setup* tags; Detail adds specifics.
// It unwraps to ErrInvalidSetup.
type SetupError struct {
	Invariant string
	Detail    string
}

// Error returns a formatted message naming the violated invariant.
func (e *SetupError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%s): %v", e.Invariant, e.Detail, ErrInvalidSetup)
	}
	return fmt.Sprintf("%s: %v", e.Invariant, ErrInvalidSetup)
}

// Unwrap returns ErrInvalidSetup, enabling errors.Is() checks.
func (e *SetupError) Unwrap() error {
	return ErrInvalidSetup
}

// setupErr builds a SetupError with optional formatted detail.
func setupErr(invariant, format string, args ...interface{}) error {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &SetupError{Invariant: invariant, Detail: detail}
}

// SanError reports a SAN token that could not be resolved against the legal
// move set. It wraps either ErrIllegalSan or ErrAmbiguousSan.
type SanError struct {
	Text string
	Err  error
}

// Error returns a formatted message including the offending token.
func (e *SanError) Error() string {
	return fmt.Sprintf("san %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *SanError) Unwrap() error {
	return e.Err
}
