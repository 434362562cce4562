// Package acserror defines the six error kinds the ingest pipeline and
// frame player report, per the error handling design: EmptyFrames,
// UnsupportedPlatform, DecodeFailed, EncodeFailed, IoFailed, and
// InvalidInput. Internal packages wrap lower-level causes with
// github.com/pkg/errors as they propagate; by the time an error
// crosses a public package boundary it is normalized to one of these
// kinds, following the sentinel-error style the teacher uses in
// internal/container (ErrTruncated, ErrInvalidChunk, ...).
package acserror

import "fmt"

// Kind identifies one of the six error categories.
type Kind int

const (
	EmptyFrames Kind = iota
	UnsupportedPlatform
	DecodeFailed
	EncodeFailed
	IoFailed
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case EmptyFrames:
		return "EmptyFrames"
	case UnsupportedPlatform:
		return "UnsupportedPlatform"
	case DecodeFailed:
		return "DecodeFailed"
	case EncodeFailed:
		return "EncodeFailed"
	case IoFailed:
		return "IoFailed"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type surfaced by every package in this
// module. Detail is a human-readable description; Cause, when present,
// is the underlying error that triggered this one.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with no underlying cause.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds an *Error carrying cause as its Unwrap target.
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// UnsupportedSignature reports a container magic that isn't Agent 2.0.
func UnsupportedSignature(value uint32) *Error {
	return New(InvalidInput, fmt.Sprintf("unsupported ACS signature %#x", value))
}

// UnknownAnimation reports a play() or construction request for a clip
// name the manifest does not contain.
func UnknownAnimation(name string) *Error {
	return New(InvalidInput, fmt.Sprintf("unknown animation %q", name))
}

// ImageDecodeFailed reports that the LZSS-style decompressor could not
// reconstruct an image payload.
func ImageDecodeFailed(detail string) *Error {
	return New(DecodeFailed, detail)
}

// AtlasTooLarge reports that the computed atlas dimensions exceed the
// configured maximum.
func AtlasTooLarge(width, height, max int) *Error {
	return New(InvalidInput, fmt.Sprintf("atlas %dx%d exceeds maximum dimension %d", width, height, max))
}

// NoFrames reports that ingest produced (or was given) zero frames.
func NoFrames() *Error {
	return New(EmptyFrames, "no frames produced")
}
