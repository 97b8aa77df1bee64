package abi

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
Identifies the broad category of a decoding failure, independent of the
message text. Callers that need to branch on failure type should use
"errors.As" to recover an "Error" and switch on its "Kind", rather than
matching message substrings.
*/
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// The schema demands more words than remain in the input.
	KindTruncatedInput

	// The input has a non-hex digit, or its length isn't a multiple of 64
	// hex chars once any "0x" prefix is dropped.
	KindInvalidHex

	// The schema itself is malformed: a zero-length static array, an
	// unrecognized integer width, a fixed byte array length outside
	// [1, 32], or nesting deeper than the decoder's maximum depth.
	KindInvalidSchema

	// A decoded offset points outside the input, or, inside a dynamic
	// struct, doesn't strictly increase over the previous dynamic field.
	KindOffsetOutOfRange

	// A declared dynamic length doesn't fit host addressing, or its
	// implied byte range exceeds the input.
	KindLengthOverflow

	// Strict UTF-8 validation was requested and the decoded bytes aren't
	// valid UTF-8.
	KindInvalidUtf8

	// The schema names a kind this decoder doesn't implement.
	KindUnsupported
)

func (self ErrorKind) String() string {
	switch self {
	case KindTruncatedInput:
		return "TruncatedInput"
	case KindInvalidHex:
		return "InvalidHex"
	case KindInvalidSchema:
		return "InvalidSchema"
	case KindOffsetOutOfRange:
		return "OffsetOutOfRange"
	case KindLengthOverflow:
		return "LengthOverflow"
	case KindInvalidUtf8:
		return "InvalidUtf8"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

/*
A decoding failure tagged with its "Kind". Always wrapped in a stack trace via
"errors.WithStack" before leaving this package; recover it at the call site
with "errors.As(err, &abi.Error{})".
*/
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (self Error) Error() string { return fmt.Sprintf("%v: %v", self.Kind, self.Msg) }

func kindErrorf(kind ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
