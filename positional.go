//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/option.go
//

package optparse

// Positional is a declared positional argument slot.
//
// Construct with [NewPositional]. A [Positional] is owned by the
// [Parser] it was added to via [*Parser.Add].
type Positional struct {
	// Name identifies this slot for validation purposes and must be
	// unique within the owning parser.
	Name string

	// Occurs bounds how many arguments this slot may claim. Default
	// (set by [NewPositional]) is [Once].
	Occurs Quantifier

	handler func(value string) error
}

// NewPositional declares a positional argument slot named name, with
// [Once] as its default occurrence quantifier.
func NewPositional(name string, handler func(value string) error) *Positional {
	return &Positional{Name: name, Occurs: Once, handler: handler}
}

// WithOccurs overrides the default occurrence quantifier.
func (p *Positional) WithOccurs(q Quantifier) *Positional {
	p.Occurs = q
	return p
}
