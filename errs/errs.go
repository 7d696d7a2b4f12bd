// Package errs defines the failure kinds shared by every layer of the
// arithmetic core: dv, bn, fp, fb, ep, eb and engine. Operations never
// invent ad-hoc error strings for conditions already covered here; they
// wrap one of these kinds with fmt.Errorf so callers can still
// errors.Is/errors.As against the kind while humans get a readable message.
package errs

import "fmt"

// Kind identifies one of the failure categories a core operation can
// signal. Kind itself satisfies the error interface so it can be used
// directly as a sentinel with errors.Is.
type Kind string

const (
	// OutOfMemory means an arena or the heap was exhausted acquiring
	// scratch storage for an operation.
	OutOfMemory Kind = "out of memory"
	// PrecisionExceeded means a value was requested at a precision
	// larger than the compiled-in maximum for the active Context.
	PrecisionExceeded Kind = "precision exceeded"
	// InvalidInput covers inversion of zero, division by zero, and
	// points failing an on-curve check.
	InvalidInput Kind = "invalid input"
	// NoValidConfig means the requested variant does not support the
	// active Context (e.g. a constant-time ladder on a supersingular
	// binary curve, or a right-to-left recoding under mixed-coordinate
	// addition).
	NoValidConfig Kind = "no valid configuration"
	// Internal marks an unreachable-state assertion; it should never
	// occur in correct code and is not meant to be recovered from.
	Internal Kind = "internal error"
)

// Error implements the error interface so a bare Kind can be compared
// with errors.Is without first being wrapped.
func (k Kind) Error() string {
	return string(k)
}

// Wrap attaches a human-readable detail to a Kind, producing an error
// that still satisfies errors.Is(err, kind).
func Wrap(k Kind, detail string) error {
	return fmt.Errorf("%s: %w", detail, k)
}

// Wrapf is Wrap with fmt.Sprintf-style formatting of the detail.
func Wrapf(k Kind, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), k)
}
