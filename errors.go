//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/config.go
//

package optparse

import (
	"fmt"
	"strings"
)

// ErrorCode is a closed enumeration of parsing failure kinds, plus an
// open range starting at [UserError] reserved for handler-returned errors.
type ErrorCode int

const (
	// UnrecognizedOption means the tokenizer saw an option it does not know.
	UnrecognizedOption ErrorCode = iota

	// AmbiguousOption means an abbreviated name matched more than one candidate.
	AmbiguousOption

	// MissingOptionArgument means a required argument was not supplied.
	MissingOptionArgument

	// ExtraOptionArgument means a value was attached to an option taking none.
	ExtraOptionArgument

	// ExtraPositional means more positional arguments appeared than any
	// slot would accept.
	ExtraPositional

	// ValidationError means an occurrence quantifier or a user validator failed.
	ValidationError

	// UserError marks the start of the open range for handler-returned errors.
	UserError
)

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	switch c {
	case UnrecognizedOption:
		return "UnrecognizedOption"
	case AmbiguousOption:
		return "AmbiguousOption"
	case MissingOptionArgument:
		return "MissingOptionArgument"
	case ExtraOptionArgument:
		return "ExtraOptionArgument"
	case ExtraPositional:
		return "ExtraPositional"
	case ValidationError:
		return "ValidationError"
	default:
		return "UserError"
	}
}

// ParseError is the structured error a [*Parser.Parse] call returns for
// a parsing failure; a configuration error recorded by a [Setting] is
// returned as-is instead. Callers distinguish kinds via [ParseError.Code] or
// [errors.As] against [ParseError.Err] for [UserError].
type ParseError struct {
	// Code identifies the failure kind.
	Code ErrorCode

	// Prefix and Name identify the offending option, when applicable.
	Prefix string
	Name   string

	// Value is the offending positional or attached value, when applicable.
	Value string

	// Candidates lists abbreviation matches for AmbiguousOption.
	Candidates []string

	// ArgIndex is the 0-based argv index that triggered the error.
	ArgIndex int

	// Description carries a validator's Describe() text for ValidationError.
	Description string

	// Err wraps the handler-returned error for UserError.
	Err error

	// formatter overrides defaultMessage, set from [Parser.ErrorFormatter].
	formatter ErrorFormatter
}

var _ error = &ParseError{}

// Error implements the error interface, honoring the owning [Parser]'s
// [Parser.ErrorFormatter] override when one was configured.
func (e *ParseError) Error() string {
	if e.formatter != nil {
		return e.formatter(e)
	}
	return e.Code.defaultMessage(e)
}

// Unwrap returns the wrapped handler error, so `errors.As`/`errors.Is`
// reach through a UserError to the caller's own error type.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorFormatter overrides the default message catalog. Set
// [Parser.ErrorFormatter] to substitute application-specific wording
// without touching the parsing engine.
type ErrorFormatter func(*ParseError) string

func (c ErrorCode) defaultMessage(e *ParseError) string {
	switch c {
	case UnrecognizedOption:
		return fmt.Sprintf("unrecognized option: %s%s", e.Prefix, e.Name)
	case AmbiguousOption:
		return fmt.Sprintf("ambiguous option %s%s: candidates are %s",
			e.Prefix, e.Name, strings.Join(e.Candidates, ", "))
	case MissingOptionArgument:
		return fmt.Sprintf("option %s%s requires an argument", e.Prefix, e.Name)
	case ExtraOptionArgument:
		return fmt.Sprintf("option %s%s does not accept an argument", e.Prefix, e.Name)
	case ExtraPositional:
		return fmt.Sprintf("unexpected positional argument: %q", e.Value)
	case ValidationError:
		return fmt.Sprintf("validation failed: %s", e.Description)
	default:
		return fmt.Sprintf("%s%s: %s", e.Prefix, e.Name, e.Err)
	}
}

// ErrDuplicatePositionalName indicates two positionals share a name.
type ErrDuplicatePositionalName struct {
	Name string
}

var _ error = ErrDuplicatePositionalName{}

// Error returns a string representation of this error.
func (err ErrDuplicatePositionalName) Error() string {
	return fmt.Sprintf("duplicate positional name %q", err.Name)
}

// ErrUnsupportedItem indicates [*Parser.Add] was called with something
// other than an [*Option] or a [*Positional].
type ErrUnsupportedItem struct {
	Item any
}

var _ error = ErrUnsupportedItem{}

// Error returns a string representation of this error.
func (err ErrUnsupportedItem) Error() string {
	return fmt.Sprintf("optparse: cannot add item of type %T", err.Item)
}
