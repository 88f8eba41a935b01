// Package zerr defines the error kinds shared across Zeevonk's packages.
//
// Kinds are used for branching (callers switch on Kind, not on message
// text); the message itself is free-form and meant for logs.
package zerr

import "fmt"

// Kind classifies an error so callers can decide how to propagate it
// without string matching.
type Kind int

const (
	// KindIO covers socket bind/accept/read/write and file-open failures.
	KindIO Kind = iota
	// KindProtocolDecode covers malformed frames, unknown message tags,
	// and bad sACN magic/vectors.
	KindProtocolDecode
	// KindShowfileBuild covers missing GDTF types/modes, address
	// collisions, and other patch-build failures. Fatal at startup.
	KindShowfileBuild
	// KindAddressArithmetic covers channel/universe/offset range errors.
	KindAddressArithmetic
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindProtocolDecode:
		return "protocol_decode"
	case KindShowfileBuild:
		return "showfile_build"
	case KindAddressArithmetic:
		return "address_arithmetic"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new kind-tagged error.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap wraps an existing error with a kind and message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if ze, ok := err.(*Error); ok {
		e = ze
		return e.Kind == kind
	}
	return false
}
