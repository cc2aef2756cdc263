package ngerrors

import (
	"errors"
	"fmt"
)

// Kind identifies the high level class of an error surfaced by ninjagen.
type Kind string

const (
	// KindValidation indicates a supplied build description failed validation.
	KindValidation Kind = "validation"
	// KindParse indicates a manifest or build file could not be parsed.
	KindParse Kind = "parse"
	// KindRender indicates build-file rendering failed.
	KindRender Kind = "render"
	// KindUnsupported indicates a feature that is not implemented.
	KindUnsupported Kind = "unsupported"
	// KindInternal indicates an unknown or internal error.
	KindInternal Kind = "internal"
)

// Error wraps an underlying error with its Kind so callers can branch on the
// class of failure without string matching.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates an error of the given Kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

var (
	// ErrNotImplemented is the shared sentinel for unimplemented directions,
	// such as parsing generated build files back into a description.
	ErrNotImplemented = errors.New("ninjagen: not implemented")
)
