// Package verr holds the kind-tagged sentinel errors callers use to
// discriminate failure classes without depending on concrete error
// types, per the taxonomy: IoError, InvalidState, GeometryError.
// DecoderRecoverable and RenderPanic never surface as errors (the
// decoder always resolves to Key(Unknown); a panicking render callback
// is recovered by render.Terminal.Draw, which returns an
// InvalidState-kind error wrapping the recovered value; teardown is
// left to the caller's Close).
package verr

import "errors"

// Kind classifies an error from this module for errors.Is matching.
type Kind struct{ name string }

func (k Kind) Error() string { return k.name }

var (
	// IoError: the underlying terminal device refused a read or write.
	IoError = Kind{"io error"}
	// InvalidState: a call happened out of lifecycle order (e.g. Close
	// before Create).
	InvalidState = Kind{"invalid state"}
	// GeometryError: a zero or negative dimension was given where the
	// operation requires a positive one.
	GeometryError = Kind{"geometry error"}
)

// Wrap attaches kind to err so errors.Is(wrapped, kind) succeeds while
// still carrying the original message via Unwrap/%w.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}

// New builds a fresh error of kind with the given message.
func New(kind Kind, msg string) error {
	return &kindError{kind: kind, err: errors.New(msg)}
}

type kindError struct {
	kind Kind
	err  error
}

func (e *kindError) Error() string { return e.kind.name + ": " + e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }
func (e *kindError) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return k == e.kind
	}
	return false
}
