// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument is matched by every SchemaError. The loader returns it
// (wrapped) when a parsed document lacks a required section.
var ErrInvalidDocument = errors.New("invalid source document")

// ArgumentError reports an invalid combination of command-line arguments.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// ParseError reports a source file that could not be read or decoded.
// Line and Column are zero when the position is unknown.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a parsed document missing a required section.
type SchemaError struct {
	Path    string
	Section string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required section %q", e.Path, e.Section)
}

func (e *SchemaError) Is(target error) bool { return target == ErrInvalidDocument }

// MissingSectionError reports a section required by the selected control
// protocol that is absent from the source.
type MissingSectionError struct {
	Section string
	Reason  string
}

func (e *MissingSectionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("missing section %q: %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("missing section %q", e.Section)
}

// MissingFieldError reports a required key absent from a section.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s.%s", e.Section, e.Field)
}

// InvalidFieldError reports a key whose value has the wrong shape or type.
type InvalidFieldError struct {
	Section string
	Field   string
	Reason  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s.%s: %s", e.Section, e.Field, e.Reason)
}

// UnknownEnumValueError reports a value outside a fixed enumeration.
type UnknownEnumValueError struct {
	Section string
	Field   string
	Value   any
	Allowed []string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown value %v for %s.%s (allowed: %v)", e.Value, e.Section, e.Field, e.Allowed)
}
