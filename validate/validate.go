//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/inc/argum/validators.h
//

// Package validate implements the validator algebra: composable
// predicates over occurrence counts, with a describe contract for
// diagnostics, combined via And/Or/Not/OnlyOneOf/OneOrNoneOf/AllOrNoneOf.
package validate

import (
	"fmt"
	"strings"
)

// Data holds the occurrence counters a [Validator] is evaluated against.
// A zero Data is ready to use.
type Data struct {
	options     map[string]int
	positionals map[string]int
}

// IncrementOption bumps the counter for the named option and returns the
// new count.
func (d *Data) IncrementOption(name string) int {
	if d.options == nil {
		d.options = make(map[string]int)
	}
	d.options[name]++
	return d.options[name]
}

// IncrementPositional bumps the counter for the named positional and
// returns the new count.
func (d *Data) IncrementPositional(name string) int {
	if d.positionals == nil {
		d.positionals = make(map[string]int)
	}
	d.positionals[name]++
	return d.positionals[name]
}

// OptionCount returns the current count for the named option.
func (d *Data) OptionCount(name string) int {
	return d.options[name]
}

// PositionalCount returns the current count for the named positional.
func (d *Data) PositionalCount(name string) int {
	return d.positionals[name]
}

// Validator is a predicate over [Data] plus a describe operation.
type Validator interface {
	// Evaluate reports whether this validator holds against d.
	Evaluate(d *Data) bool

	// Describe returns a human-readable description of this validator.
	Describe() string
}

// Describable lets callers register an arbitrary predicate with its own
// description via [AddValidator]-style APIs without implementing the
// full [Validator] interface by hand.
type Describable struct {
	Predicate func(d *Data) bool
	Text      string
}

var _ Validator = Describable{}

// Evaluate implements [Validator].
func (d Describable) Evaluate(data *Data) bool { return d.Predicate(data) }

// Describe implements [Validator].
func (d Describable) Describe() string { return d.Text }

type opKind int

const (
	opAtLeast opKind = iota
	opAtMost
	opMoreThan
	opLessThan
	opExactly
	opNotExactly
	opPresent
	opAbsent
)

type occursValidator struct {
	isOption bool
	name     string
	k        int
	kind     opKind
}

var _ Validator = &occursValidator{}

func (v *occursValidator) count(d *Data) int {
	if v.isOption {
		return d.OptionCount(v.name)
	}
	return d.PositionalCount(v.name)
}

// Evaluate implements [Validator].
func (v *occursValidator) Evaluate(d *Data) bool {
	count := v.count(d)
	switch v.kind {
	case opAtLeast:
		return count >= v.k
	case opAtMost:
		return count <= v.k
	case opMoreThan:
		return count > v.k
	case opLessThan:
		return count < v.k
	case opExactly:
		return count == v.k
	case opNotExactly:
		return count != v.k
	case opPresent:
		return count >= 1
	case opAbsent:
		return count == 0
	default:
		panic(fmt.Sprintf("unhandled opKind: %d", v.kind))
	}
}

// Describe implements [Validator].
func (v *occursValidator) Describe() string {
	label := "positional"
	if v.isOption {
		label = "option"
	}
	switch v.kind {
	case opAtLeast:
		return fmt.Sprintf("%s %q occurs at least %d time(s)", label, v.name, v.k)
	case opAtMost:
		return fmt.Sprintf("%s %q occurs at most %d time(s)", label, v.name, v.k)
	case opMoreThan:
		return fmt.Sprintf("%s %q occurs more than %d time(s)", label, v.name, v.k)
	case opLessThan:
		return fmt.Sprintf("%s %q occurs less than %d time(s)", label, v.name, v.k)
	case opExactly:
		return fmt.Sprintf("%s %q occurs exactly %d time(s)", label, v.name, v.k)
	case opNotExactly:
		return fmt.Sprintf("%s %q does not occur exactly %d time(s)", label, v.name, v.k)
	case opPresent:
		return fmt.Sprintf("%s %q is present", label, v.name)
	case opAbsent:
		return fmt.Sprintf("%s %q is absent", label, v.name)
	default:
		panic(fmt.Sprintf("unhandled opKind: %d", v.kind))
	}
}

// invert returns the validator's logical negation, per the Inversion
// laws: not(atLeast k) = lessThan k, not(atMost k) = moreThan k,
// not(exactly k) = doesntOccurExactly k, and symmetrically.
func (v *occursValidator) invert() *occursValidator {
	dual := map[opKind]opKind{
		opAtLeast:    opLessThan,
		opAtMost:     opMoreThan,
		opMoreThan:   opAtMost,
		opLessThan:   opAtLeast,
		opExactly:    opNotExactly,
		opNotExactly: opExactly,
		opPresent:    opAbsent,
		opAbsent:     opPresent,
	}
	return &occursValidator{isOption: v.isOption, name: v.name, k: v.k, kind: dual[v.kind]}
}

func newOccurs(isOption bool, name string, k int, kind opKind) Validator {
	return &occursValidator{isOption: isOption, name: name, k: k, kind: kind}
}

// OptionPresent reports whether the named option occurred at least once.
func OptionPresent(name string) Validator { return newOccurs(true, name, 0, opPresent) }

// OptionAbsent reports whether the named option never occurred.
func OptionAbsent(name string) Validator { return newOccurs(true, name, 0, opAbsent) }

// OptionOccursAtLeast reports whether the named option occurred at least k times.
func OptionOccursAtLeast(name string, k int) Validator { return newOccurs(true, name, k, opAtLeast) }

// OptionOccursAtMost reports whether the named option occurred at most k times.
func OptionOccursAtMost(name string, k int) Validator { return newOccurs(true, name, k, opAtMost) }

// OptionOccursMoreThan reports whether the named option occurred more than k times.
func OptionOccursMoreThan(name string, k int) Validator { return newOccurs(true, name, k, opMoreThan) }

// OptionOccursLessThan reports whether the named option occurred less than k times.
func OptionOccursLessThan(name string, k int) Validator { return newOccurs(true, name, k, opLessThan) }

// OptionOccursExactly reports whether the named option occurred exactly k times.
func OptionOccursExactly(name string, k int) Validator { return newOccurs(true, name, k, opExactly) }

// OptionDoesntOccurExactly reports whether the named option did not occur exactly k times.
func OptionDoesntOccurExactly(name string, k int) Validator {
	return newOccurs(true, name, k, opNotExactly)
}

// PositionalPresent reports whether the named positional occurred at least once.
func PositionalPresent(name string) Validator { return newOccurs(false, name, 0, opPresent) }

// PositionalAbsent reports whether the named positional never occurred.
func PositionalAbsent(name string) Validator { return newOccurs(false, name, 0, opAbsent) }

// PositionalOccursAtLeast reports whether the named positional occurred at least k times.
func PositionalOccursAtLeast(name string, k int) Validator {
	return newOccurs(false, name, k, opAtLeast)
}

// PositionalOccursAtMost reports whether the named positional occurred at most k times.
func PositionalOccursAtMost(name string, k int) Validator {
	return newOccurs(false, name, k, opAtMost)
}

// PositionalOccursMoreThan reports whether the named positional occurred more than k times.
func PositionalOccursMoreThan(name string, k int) Validator {
	return newOccurs(false, name, k, opMoreThan)
}

// PositionalOccursLessThan reports whether the named positional occurred less than k times.
func PositionalOccursLessThan(name string, k int) Validator {
	return newOccurs(false, name, k, opLessThan)
}

// PositionalOccursExactly reports whether the named positional occurred exactly k times.
func PositionalOccursExactly(name string, k int) Validator {
	return newOccurs(false, name, k, opExactly)
}

// PositionalDoesntOccurExactly reports whether the named positional did not occur exactly k times.
func PositionalDoesntOccurExactly(name string, k int) Validator {
	return newOccurs(false, name, k, opNotExactly)
}

type combKind int

const (
	kindAnd combKind = iota
	kindOr
)

type combined struct {
	kind combKind
	args []Validator
}

var _ Validator = &combined{}

// Evaluate implements [Validator]. Evaluation short-circuits in
// declaration order, as required.
func (c *combined) Evaluate(d *Data) bool {
	switch c.kind {
	case kindAnd:
		for _, a := range c.args {
			if !a.Evaluate(d) {
				return false
			}
		}
		return true
	case kindOr:
		for _, a := range c.args {
			if a.Evaluate(d) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("unhandled combKind: %d", c.kind))
	}
}

// Describe implements [Validator].
func (c *combined) Describe() string {
	sep := " and "
	if c.kind == kindOr {
		sep = " or "
	}
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.Describe()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// flatten implements the associativity-flattening rule: composing
// and(and(a,b), c) must produce the flat form and(a,b,c), so describe
// output is a flat list rather than a right-leaning chain.
func flatten(kind combKind, vs []Validator) Validator {
	var flat []Validator
	for _, v := range vs {
		if c, ok := v.(*combined); ok && c.kind == kind {
			flat = append(flat, c.args...)
		} else {
			flat = append(flat, v)
		}
	}
	return &combined{kind: kind, args: flat}
}

// And reports whether every validator holds (true on an empty list).
func And(vs ...Validator) Validator { return flatten(kindAnd, vs) }

// Or reports whether at least one validator holds (false on an empty list).
func Or(vs ...Validator) Validator { return flatten(kindOr, vs) }

type notValidator struct {
	inner Validator
}

var _ Validator = &notValidator{}

// Evaluate implements [Validator].
func (n *notValidator) Evaluate(d *Data) bool { return !n.inner.Evaluate(d) }

// Describe implements [Validator].
func (n *notValidator) Describe() string { return "not " + n.inner.Describe() }

// Not negates v. It honors the algebra's inversion laws: not(and(p...)) =
// or(not(p)...), not(or(p...)) = and(not(p)...), and not(not(v)) = v.
func Not(v Validator) Validator {
	switch t := v.(type) {
	case *combined:
		newKind := kindOr
		if t.kind == kindOr {
			newKind = kindAnd
		}
		inverted := make([]Validator, len(t.args))
		for i, a := range t.args {
			inverted[i] = Not(a)
		}
		return flatten(newKind, inverted)
	case *occursValidator:
		return t.invert()
	case *notValidator:
		return t.inner
	default:
		return &notValidator{inner: v}
	}
}

type countKind int

const (
	exactlyOne countKind = iota
	atMostOne
	allOrNone
)

type counted struct {
	kind countKind
	args []Validator
}

var _ Validator = &counted{}

// Evaluate implements [Validator].
func (c *counted) Evaluate(d *Data) bool {
	trues := 0
	for _, a := range c.args {
		if a.Evaluate(d) {
			trues++
		}
	}
	switch c.kind {
	case exactlyOne:
		return trues == 1
	case atMostOne:
		return trues <= 1
	case allOrNone:
		return trues == 0 || trues == len(c.args)
	default:
		panic(fmt.Sprintf("unhandled countKind: %d", c.kind))
	}
}

// Describe implements [Validator].
func (c *counted) Describe() string {
	var verb string
	switch c.kind {
	case exactlyOne:
		verb = "exactly one of"
	case atMostOne:
		verb = "at most one of"
	case allOrNone:
		verb = "all or none of"
	}
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.Describe()
	}
	return fmt.Sprintf("%s (%s)", verb, strings.Join(parts, ", "))
}

// OnlyOneOf reports whether exactly one validator holds.
func OnlyOneOf(vs ...Validator) Validator { return &counted{kind: exactlyOne, args: vs} }

// OneOrNoneOf reports whether at most one validator holds.
func OneOrNoneOf(vs ...Validator) Validator { return &counted{kind: atMostOne, args: vs} }

// AllOrNoneOf reports whether either every validator holds or none does.
func AllOrNoneOf(vs ...Validator) Validator { return &counted{kind: allOrNone, args: vs} }
