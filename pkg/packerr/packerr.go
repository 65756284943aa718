// Package packerr defines the typed error kinds the packedit core surfaces,
// per the error handling design: structural decode failures, encoding
// failures, naming violations, duplicate paths, missing paths, unsupported
// archives, I/O failures, and empty-patch failures.
package packerr

import (
	"errors"
	"fmt"
)

// Kind classifies a packedit failure so callers can branch on it without
// string-matching the error text.
type Kind int

const (
	// BadFormat is a structural decode failure: wrong magic, truncated
	// slice, or a bad field value.
	BadFormat Kind = iota
	// BadEncoding is invalid UTF-8/UTF-16 or a non-zero padding byte.
	BadEncoding
	// BadLength is a string longer than its fixed width, or a length
	// prefix exceeding the remaining bytes.
	BadLength
	// BadName is an invalid archive filename or entry name.
	BadName
	// Duplicate means an add/merge/rename would create two entries with
	// the same path.
	Duplicate
	// NotFound means the operation targets a tree path that classifies
	// as None.
	NotFound
	// Unsupported covers encrypted archives, unknown RigidModel versions,
	// and RigidModel already at the target version.
	Unsupported
	// Io is an underlying filesystem error.
	Io
	// Empty means a SiegeAI patch was requested on an archive with no
	// in-scope entries.
	Empty
)

func (k Kind) String() string {
	switch k {
	case BadFormat:
		return "BadFormat"
	case BadEncoding:
		return "BadEncoding"
	case BadLength:
		return "BadLength"
	case BadName:
		return "BadName"
	case Duplicate:
		return "Duplicate"
	case NotFound:
		return "NotFound"
	case Unsupported:
		return "Unsupported"
	case Io:
		return "Io"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Error is a packedit failure: a Kind plus a human-readable message and an
// optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error of the given kind with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is a packedit error of the given kind.
func Is(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
