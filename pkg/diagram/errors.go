package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic branching via errors.Is().
var (
	// ErrNotFound indicates an input that names a document file which does
	// not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidInput indicates a document file that exists but could not
	// be read.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates text that is not valid under the JSON5 grammar.
	ErrParse = errors.New("parse error")

	// ErrSemantic indicates a well-formed document that violates a shape
	// constraint: non-object root, missing diagram key, or a diagram key
	// whose value has the wrong type.
	ErrSemantic = errors.New("semantic error")
)

// NotFoundError reports an input that was treated as a file path (by its
// suffix) but matched no existing file.
// Wraps ErrNotFound for errors.Is() compatibility.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidInputError reports a document file that exists but failed to read.
// The underlying I/O error is kept in Err.
// Wraps ErrInvalidInput for errors.Is() compatibility.
type InvalidInputError struct {
	Path string
	Err  error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: error reading file %s: %v", ErrInvalidInput.Error(), e.Path, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ParseError reports a syntax-level failure from the JSON5 parser, distinct
// from the semantic failures raised after a successful parse.
// Wraps ErrParse for errors.Is() compatibility.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid JSON5 format: %v", ErrParse.Error(), e.Err)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// SemanticError reports a shape violation in a successfully parsed document.
// Wraps ErrSemantic for errors.Is() compatibility.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	if e.Msg == "" {
		return ErrSemantic.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSemantic.Error(), e.Msg)
}

func (e *SemanticError) Unwrap() error { return ErrSemantic }
