//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/option.go
//

package optparse

// ArgKind selects the shape of an [Option]'s handler.
type ArgKind int

const (
	// ArgNone means the option takes no argument.
	ArgNone ArgKind = iota

	// ArgOptional means the option takes an argument that may be omitted.
	ArgOptional

	// ArgRequired means the option always takes an argument.
	ArgRequired
)

// Option is a declared option.
//
// Construct with [NewOption], then chain the `With*` methods to fix its
// argument kind, handler, occurrence range, and attachment requirement.
// An [Option] is owned by the [Parser] it was added to via [*Parser.Add]
// and must not be shared between parsers.
type Option struct {
	// Names is the ordered, non-empty set of names identifying this
	// option (e.g. `[]string{"-v", "--verbose"}`). The first entry is
	// the main name, used as the validation counter key.
	Names []string

	// Kind fixes which handler field is invoked at completion time.
	Kind ArgKind

	// Occurs bounds how many times this option may appear.
	Occurs Quantifier

	// RequireAttached, when true, forces the argument to be supplied
	// inline (`--name=value` or `-nvalue`); the option never consumes
	// the following argv entry as its value.
	RequireAttached bool

	onNone     func() error
	onOptional func(value *string) error
	onRequired func(value string) error
}

// NewOption declares an option identified by one or more names, each
// registered under its own prefix and all resolving to this same option.
// Default occurrence is
// [ZeroOrMore]; default kind is [ArgNone].
func NewOption(names ...string) *Option {
	return &Option{Names: names, Occurs: ZeroOrMore}
}

// MainName returns the first declared name, used as the validation key.
func (o *Option) MainName() string {
	return o.Names[0]
}

// WithNoArgument configures the option to take no argument.
func (o *Option) WithNoArgument(handler func() error) *Option {
	o.Kind = ArgNone
	o.onNone = handler
	return o
}

// WithOptionalArgument configures the option to take an optional argument.
func (o *Option) WithOptionalArgument(handler func(value *string) error) *Option {
	o.Kind = ArgOptional
	o.onOptional = handler
	return o
}

// WithRequiredArgument configures the option to require an argument.
func (o *Option) WithRequiredArgument(handler func(value string) error) *Option {
	o.Kind = ArgRequired
	o.onRequired = handler
	return o
}

// WithOccurs overrides the default occurrence quantifier.
func (o *Option) WithOccurs(q Quantifier) *Option {
	o.Occurs = q
	return o
}

// WithRequireAttached sets [Option.RequireAttached].
func (o *Option) WithRequireAttached(v bool) *Option {
	o.RequireAttached = v
	return o
}
