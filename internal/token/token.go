//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagscanner/blob/main/scanner.go
//

// Package token implements the registry-based command line tokenizer.
//
// Unlike [github.com/bassosimone/flagscanner], which scans a whole argv
// slice up front with no abbreviation or bundling support, this package
// drives the scan through a callback so a parser driver can defer option
// completion and stop mid-bundle.
package token

// Token is the common interface implemented by every token kind.
type Token interface {
	// Index returns the 0-based index of the argv entry this token
	// originated from.
	Index() int

	isToken()
}

// base carries the fields common to every token kind.
type base struct {
	Idx int
}

// Index implements [Token].
func (b base) Index() int { return b.Idx }

func (base) isToken() {}

// Option is a recognized option token.
type Option struct {
	base

	// OptionIndex is the index into the registry's option table.
	OptionIndex int

	// Name is the specific name the user typed (without prefix).
	Name string

	// Prefix is the prefix the user typed.
	Prefix string

	// Value is the attached value, if any (e.g. `--opt=value`).
	Value *string
}

var _ Token = Option{}

// Argument is a positional-like raw string.
type Argument struct {
	base

	// Value is the raw argument string.
	Value string
}

var _ Token = Argument{}

// OptionStop is the option-stop marker token (conventionally `--`).
type OptionStop struct {
	base
}

var _ Token = OptionStop{}

// Unknown is an unrecognized option.
type Unknown struct {
	base

	// Name is the unrecognized name (without prefix).
	Name string

	// Prefix is the prefix the user typed.
	Prefix string

	// Value is the attached value, if any.
	Value *string
}

var _ Token = Unknown{}

// Ambiguous is an option whose abbreviation matches more than one
// registered name.
type Ambiguous struct {
	base

	// Name is the typed (possibly abbreviated) name.
	Name string

	// Prefix is the prefix the user typed.
	Prefix string

	// Value is the attached value, if any.
	Value *string

	// Candidates is the list of full names this name could complete to,
	// each already prefixed with the typed prefix.
	Candidates []string
}

var _ Token = Ambiguous{}

// Result is returned by a [Handler] to control tokenization.
type Result int

const (
	// Continue keeps tokenizing normally.
	Continue Result = iota

	// StopAfter consumes the current token's source text before stopping.
	StopAfter

	// StopBefore stops without consuming the current token's source
	// text, pushing it back onto the tail.
	StopBefore
)

// Handler receives one token at a time and decides whether to continue.
type Handler func(Token) Result
