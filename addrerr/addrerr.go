// Package addrerr defines the constant error kinds shared across the
// geosyllable packages, following the sentinel-string-error convention used
// throughout this codebase rather than ad-hoc error types per package.
package addrerr

import "fmt"

// Kind is a constant error identifying a class of failure. Kind satisfies
// the error interface directly so callers can compare with errors.Is without
// needing to know which package raised it.
type Kind string

// Error implements the error interface.
func (k Kind) Error() string { return string(k) }

const (
	// CoordinateOutOfRange: latitude or longitude outside valid range.
	CoordinateOutOfRange = Kind("coordinate out of range")

	// MalformedAddress: wrong length, odd length, non-letter character, or
	// unknown consonant/vowel.
	MalformedAddress = Kind("malformed address")

	// AddressOutOfRange: well-formed string whose decoded integer has no
	// corresponding cell.
	AddressOutOfRange = Kind("address out of range")

	// PrefixError: empty prefix, prefix at or beyond full length, or a
	// malformed prefix passed to the partial estimator.
	PrefixError = Kind("invalid prefix")

	// InfeasibleConfiguration: letter selection lacks a vowel or consonant,
	// or would require an address length beyond what is supportable.
	InfeasibleConfiguration = Kind("infeasible configuration")

	// PermutationUnavailable: the Hamiltonian search exceeded its deadline.
	PermutationUnavailable = Kind("permutation unavailable")
)

// Detailed wraps a Kind with the offending input, so error messages name
// both the failure class and what specifically was wrong with it.
type Detailed struct {
	Kind   Kind
	Detail string
}

// Error implements the error interface.
func (e *Detailed) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap lets errors.Is(err, addrerr.MalformedAddress) succeed against a
// *Detailed that wraps it.
func (e *Detailed) Unwrap() error { return e.Kind }

// New builds a Detailed error for the given kind and offending input.
func New(kind Kind, detail string) *Detailed {
	return &Detailed{Kind: kind, Detail: detail}
}

// Newf builds a Detailed error with a formatted detail message.
func Newf(kind Kind, format string, args ...any) *Detailed {
	return &Detailed{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
