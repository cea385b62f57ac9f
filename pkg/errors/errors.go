package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel kinds matched with errors.Is against the typed errors below.
var (
	ErrInvalidColorFormat = stdErrors.New("invalid color format")
	ErrSplitFailure       = stdErrors.New("failed to split color into byte groups")
)

// ColorFormatError reports an input that is neither a known color name nor a
// well-formed hex literal.
type ColorFormatError struct {
	Input string
}

// NewColorFormatError constructs a ColorFormatError for the rejected input.
func NewColorFormatError(input string) error {
	return &ColorFormatError{Input: input}
}

func (e *ColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q", ErrInvalidColorFormat, e.Input)
}

// Unwrap exposes the ErrInvalidColorFormat kind.
func (e *ColorFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidColorFormat
}

// SplitError signals a normalized color that could not be chunked into byte
// groups. Seeing one means the normalizer let something through it should not
// have.
type SplitError struct {
	Value string
}

// NewSplitError constructs a SplitError for the offending normalized value.
func NewSplitError(value string) error {
	return &SplitError{Value: value}
}

func (e *SplitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q", ErrSplitFailure, e.Value)
}

// Unwrap exposes the ErrSplitFailure kind.
func (e *SplitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrSplitFailure
}

// ParseError represents a palette file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Kind returns a short machine-readable name for the color error kinds, or an
// empty string for anything else.
func Kind(err error) string {
	switch {
	case stdErrors.Is(err, ErrInvalidColorFormat):
		return "invalid_color_format"
	case stdErrors.Is(err, ErrSplitFailure):
		return "split_failure"
	default:
		return ""
	}
}
