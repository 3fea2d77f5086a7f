//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/parser.go
//

package optparse

import (
	"io"

	"github.com/bassosimone/optparse/internal/token"
	"github.com/bassosimone/optparse/validate"
	"github.com/bassosimone/runtimex"
)

// Parser drives tokenization and dispatch for a declared set of options
// and positionals.
//
// Construct with [NewParser]. Declare options and positionals with
// [*Parser.Add]. Register cross-argument rules with
// [*Parser.AddValidator]. Parse a command line with [*Parser.Parse] or
// [*Parser.ParseUntilUnknown].
//
// A *Parser must not be re-entered: two [*Parser.Parse] calls on the
// same instance may not overlap.
type Parser struct {
	// ErrorFormatter overrides the default message catalog for every
	// [*ParseError] this parser produces. Leave nil to use the default.
	ErrorFormatter ErrorFormatter

	registry    *token.Registry
	options     []*Option
	positionals []*Positional
	validators  []validate.Validator

	updateCount int
	err         error

	parsing     bool
	debugWriter io.Writer
}

// NewParser constructs a parser. With no settings, it defaults to the
// [CommonUnix] preset (GNU-style: `-` short, `--` long, `--` stop, `=`
// delimiter), matching the teacher package's GNU defaults.
//
// Settings that report a configuration error (e.g. a prefix registered
// as both long and short) do not panic immediately; the error is
// recorded and surfaces the first time [*Parser.Parse] or
// [*Parser.ParseUntilUnknown] is called. Option registration errors,
// by contrast, are returned directly by [*Parser.Add].
func NewParser(settings ...Setting) *Parser {
	px := &Parser{
		registry:    token.NewRegistry(true),
		debugWriter: io.Discard,
	}
	if len(settings) == 0 {
		settings = []Setting{CommonUnix()}
	}
	for _, setting := range settings {
		if err := setting(px); err != nil {
			px.err = err
			break
		}
	}
	return px
}

// Add enrolls an [*Option] or [*Positional]. It may be called during
// parsing, from within a handler: the tokenizer and positional
// partitioner pick up the new declaration on the next token.
func (px *Parser) Add(item any) error {
	switch v := item.(type) {
	case *Option:
		return px.addOption(v)
	case *Positional:
		return px.addPositional(v)
	default:
		return ErrUnsupportedItem{Item: item}
	}
}

func (px *Parser) addOption(o *Option) error {
	idx := len(px.options)
	for _, name := range o.Names {
		if _, err := px.registry.AddName(name, idx); err != nil {
			return err
		}
	}
	px.options = append(px.options, o)
	px.updateCount++
	return nil
}

func (px *Parser) addPositional(p *Positional) error {
	for _, existing := range px.positionals {
		if existing.Name == p.Name {
			return ErrDuplicatePositionalName{Name: p.Name}
		}
	}
	px.positionals = append(px.positionals, p)
	px.updateCount++
	return nil
}

// AddValidator registers a cross-argument rule checked once parsing
// completes, after positional occurrence bounds.
func (px *Parser) AddValidator(v validate.Validator) {
	px.validators = append(px.validators, v)
}

// Parse parses argv (which must not include the program name), treating
// an unrecognized option as an error.
//
// This method does not mutate declarations other than through handlers
// the caller itself registered, and is not safe to call concurrently
// with another Parse/ParseUntilUnknown on the same *Parser.
func (px *Parser) Parse(argv []string) error {
	_, err := px.parse(argv, false)
	return err
}

// ParseUntilUnknown parses argv like [*Parser.Parse], except that an
// unrecognized option or an unaccepted positional stops parsing and
// returns the unconsumed tail of argv (starting at the offending
// token) instead of an error. Every other error kind is still returned.
func (px *Parser) ParseUntilUnknown(argv []string) ([]string, error) {
	return px.parse(argv, true)
}

func (px *Parser) parse(argv []string, stopOnUnknown bool) ([]string, error) {
	if px.err != nil {
		return nil, px.err
	}

	runtimex.Assert(!px.parsing)
	px.parsing = true
	defer func() { px.parsing = false }()

	st := newParseState(px)
	tail := st.run(argv, stopOnUnknown)
	if st.err != nil {
		return nil, st.err
	}
	return tail, nil
}
