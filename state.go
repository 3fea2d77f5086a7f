//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/inc/argum/adaptive-parser.h
//

package optparse

import (
	"fmt"

	"github.com/bassosimone/optparse/internal/partition"
	"github.com/bassosimone/optparse/internal/token"
	"github.com/bassosimone/optparse/validate"
	"github.com/bassosimone/runtimex"
)

// parseState is the per-[*Parser.Parse]-call driver. It owns the
// deferred-option buffer, the positional cursor, the positional-size
// cache, and the occurrence counters; none of it outlives a single run.
type parseState struct {
	px *Parser

	currentOptionIndex  int
	currentOptionName   string
	currentOptionPrefix string
	currentOptionValue  *string

	positionalIndex         int
	positionalSizes         []int
	updateCountAtLastRecalc int

	data validate.Data
	err  *ParseError
}

func newParseState(px *Parser) *parseState {
	return &parseState{
		px:                      px,
		currentOptionIndex:      -1,
		positionalIndex:         -1,
		updateCountAtLastRecalc: -1,
	}
}

func (st *parseState) trace(format string, args ...any) {
	fmt.Fprintf(st.px.debugWriter, format+"\n", args...)
}

// run drives the tokenizer to completion (or to the first error / early
// stop) and returns the unconsumed tail, if any.
func (st *parseState) run(argv []string, stopOnUnknown bool) []string {
	tail := st.px.registry.Tokenize(argv, func(tok token.Token) token.Result {
		return st.handle(tok, argv, stopOnUnknown)
	})
	if st.err != nil {
		return nil
	}

	st.completeDeferred()
	if st.err != nil {
		return nil
	}

	st.validatePositionalOccurs()
	if st.err != nil {
		return nil
	}

	for _, opt := range st.px.options {
		have := st.data.OptionCount(opt.MainName())
		if have < opt.Occurs.Min {
			st.fail(&ParseError{
				Code: ValidationError, Name: opt.MainName(),
				Description: fmt.Sprintf("option %q occurs %d time(s), expected at least %d", opt.MainName(), have, opt.Occurs.Min),
			})
			return nil
		}
	}

	st.runValidators()
	if st.err != nil {
		return nil
	}

	return tail
}

func (st *parseState) handle(tok token.Token, argv []string, stopOnUnknown bool) token.Result {
	switch t := tok.(type) {
	case token.Option:
		st.trace("option token: %s%s", t.Prefix, t.Name)
		st.completeDeferred()
		if st.err != nil {
			return token.StopBefore
		}
		st.deferOption(t)
		return token.Continue

	case token.OptionStop:
		st.trace("option-stop token")
		st.completeDeferred()
		if st.err != nil {
			return token.StopBefore
		}
		return token.Continue

	case token.Argument:
		st.trace("argument token: %q", t.Value)
		if st.currentOptionIndex >= 0 {
			consumed := st.completeDeferredWithArgument(t.Value)
			if st.err != nil {
				return token.StopBefore
			}
			if consumed {
				return token.Continue
			}
		}
		accepted := st.dispatchPositional(t.Value, argv, tok.Index())
		if st.err != nil {
			return token.StopBefore
		}
		if accepted {
			return token.Continue
		}
		if stopOnUnknown {
			return token.StopBefore
		}
		st.fail(&ParseError{Code: ExtraPositional, Value: t.Value, ArgIndex: tok.Index()})
		return token.StopBefore

	case token.Unknown:
		st.trace("unknown option token: %s%s", t.Prefix, t.Name)
		st.completeDeferred()
		if st.err != nil {
			return token.StopBefore
		}
		if stopOnUnknown {
			return token.StopBefore
		}
		st.fail(&ParseError{Code: UnrecognizedOption, Prefix: t.Prefix, Name: t.Name, ArgIndex: tok.Index()})
		return token.StopBefore

	case token.Ambiguous:
		st.trace("ambiguous option token: %s%s candidates=%v", t.Prefix, t.Name, t.Candidates)
		st.completeDeferred()
		if st.err != nil {
			return token.StopBefore
		}
		st.fail(&ParseError{
			Code: AmbiguousOption, Prefix: t.Prefix, Name: t.Name,
			Candidates: t.Candidates, ArgIndex: tok.Index(),
		})
		return token.StopBefore

	default:
		panic(fmt.Sprintf("unhandled token type: %T", tok))
	}
}

func (st *parseState) fail(pe *ParseError) {
	if st.err == nil {
		pe.formatter = st.px.ErrorFormatter
		st.err = pe
	}
}

func (st *parseState) failUser(prefix, name string, err error) {
	st.fail(&ParseError{Code: UserError, Prefix: prefix, Name: name, Err: err})
}

func (st *parseState) deferOption(t token.Option) {
	st.currentOptionIndex = t.OptionIndex
	st.currentOptionName = t.Name
	st.currentOptionPrefix = t.Prefix
	st.currentOptionValue = t.Value
}

func (st *parseState) clearDeferred() {
	st.currentOptionIndex = -1
	st.currentOptionName = ""
	st.currentOptionPrefix = ""
	st.currentOptionValue = nil
}

// bumpOption increments the option's counter and enforces its maximum,
// per core spec 4.4.a: "before invoking the handler, increment the
// option's count and check that the count <= O.max".
func (st *parseState) bumpOption(opt *Option, prefix, name string) {
	count := st.data.IncrementOption(opt.MainName())
	if count > opt.Occurs.Max {
		st.fail(&ParseError{
			Code: ValidationError, Prefix: prefix, Name: name,
			Description: fmt.Sprintf("option %q occurs more than %d time(s)", opt.MainName(), opt.Occurs.Max),
		})
	}
}

// completeDeferred flushes a pending deferred option without a
// following argument available to consume (core spec 4.4.a, "completion
// without a following argument").
func (st *parseState) completeDeferred() {
	if st.currentOptionIndex < 0 {
		return
	}
	idx, name, prefix, value := st.currentOptionIndex, st.currentOptionName, st.currentOptionPrefix, st.currentOptionValue
	st.clearDeferred()
	opt := st.px.options[idx]

	switch opt.Kind {
	case ArgNone:
		if value != nil {
			st.fail(&ParseError{Code: ExtraOptionArgument, Prefix: prefix, Name: name})
			return
		}
		st.bumpOption(opt, prefix, name)
		if st.err != nil || opt.onNone == nil {
			return
		}
		if err := opt.onNone(); err != nil {
			st.failUser(prefix, name, err)
		}

	case ArgOptional:
		st.bumpOption(opt, prefix, name)
		if st.err != nil || opt.onOptional == nil {
			return
		}
		if err := opt.onOptional(value); err != nil {
			st.failUser(prefix, name, err)
		}

	case ArgRequired:
		if value == nil {
			st.fail(&ParseError{Code: MissingOptionArgument, Prefix: prefix, Name: name})
			return
		}
		st.bumpOption(opt, prefix, name)
		if st.err != nil || opt.onRequired == nil {
			return
		}
		if err := opt.onRequired(*value); err != nil {
			st.failUser(prefix, name, err)
		}

	default:
		panic(fmt.Sprintf("unhandled ArgKind: %d", opt.Kind))
	}
}

// completeDeferredWithArgument flushes a pending deferred option when
// the following token is an Argument that might serve as its value
// (core spec 4.4.a). It reports whether it consumed argValue.
func (st *parseState) completeDeferredWithArgument(argValue string) bool {
	idx, name, prefix, value := st.currentOptionIndex, st.currentOptionName, st.currentOptionPrefix, st.currentOptionValue
	st.clearDeferred()
	opt := st.px.options[idx]

	switch opt.Kind {
	case ArgNone:
		if value != nil {
			st.fail(&ParseError{Code: ExtraOptionArgument, Prefix: prefix, Name: name})
			return false
		}
		st.bumpOption(opt, prefix, name)
		if st.err == nil && opt.onNone != nil {
			if err := opt.onNone(); err != nil {
				st.failUser(prefix, name, err)
			}
		}
		return false

	case ArgOptional:
		if value != nil || opt.RequireAttached {
			st.bumpOption(opt, prefix, name)
			if st.err == nil && opt.onOptional != nil {
				if err := opt.onOptional(value); err != nil {
					st.failUser(prefix, name, err)
				}
			}
			return false
		}
		st.bumpOption(opt, prefix, name)
		if st.err == nil && opt.onOptional != nil {
			v := argValue
			if err := opt.onOptional(&v); err != nil {
				st.failUser(prefix, name, err)
			}
		}
		return st.err == nil

	case ArgRequired:
		if value != nil {
			st.bumpOption(opt, prefix, name)
			if st.err == nil && opt.onRequired != nil {
				if err := opt.onRequired(*value); err != nil {
					st.failUser(prefix, name, err)
				}
			}
			return false
		}
		if opt.RequireAttached {
			st.fail(&ParseError{Code: MissingOptionArgument, Prefix: prefix, Name: name})
			return false
		}
		st.bumpOption(opt, prefix, name)
		if st.err == nil && opt.onRequired != nil {
			if err := opt.onRequired(argValue); err != nil {
				st.failUser(prefix, name, err)
			}
		}
		return st.err == nil

	default:
		panic(fmt.Sprintf("unhandled ArgKind: %d", opt.Kind))
	}
}

// dispatchPositional routes value to the current positional slot,
// advancing past slots that are already full, per core spec 4.4.b.
func (st *parseState) dispatchPositional(value string, argv []string, argIdx int) bool {
	if st.updateCountAtLastRecalc != st.px.updateCount {
		st.recomputePositionals(argv, argIdx)
	}

	for {
		if st.positionalIndex < 0 {
			st.positionalIndex = 0
		}
		if st.positionalIndex >= len(st.px.positionals) {
			return false
		}
		p := st.px.positionals[st.positionalIndex]
		have := st.data.PositionalCount(p.Name)
		if have < st.positionalSizes[st.positionalIndex] {
			st.data.IncrementPositional(p.Name)
			st.trace("positional %q <- %q (%d/%d)", p.Name, value, have+1, st.positionalSizes[st.positionalIndex])
			if err := p.handler(value); err != nil {
				st.failUser("", p.Name, err)
			}
			return true
		}
		st.positionalIndex++
	}
}

// recomputePositionals rebuilds positionalSizes by look-ahead counting
// the remaining argv and re-running the greedy partitioner, per core
// spec 4.4.b steps 1-4.
func (st *parseState) recomputePositionals(argv []string, argIdx int) {
	st.updateCountAtLastRecalc = st.px.updateCount
	// The argument being dispatched counts too: it is about to fill a slot.
	remaining := st.countRemainingPositionals(argv, argIdx) + 1

	var part partition.Partitioner
	fillStart := st.positionalIndex + 1
	if st.positionalIndex >= 0 && st.positionalIndex < len(st.px.positionals) {
		cur := st.px.positionals[st.positionalIndex]
		seen := st.data.PositionalCount(cur.Name)
		if seen < cur.Occurs.Max {
			fillStart = st.positionalIndex
			part.AddRange(cur.Occurs.Min, cur.Occurs.Max)
			remaining += seen
		}
	}
	for i := st.positionalIndex + 1; i < len(st.px.positionals); i++ {
		p := st.px.positionals[i]
		part.AddRange(p.Occurs.Min, p.Occurs.Max)
	}

	n := remaining
	if m := part.MinimumSequenceSize(); n < m {
		n = m
	}
	sizes, ok := part.Partition(n)
	runtimex.Assert(ok)

	st.positionalSizes = make([]int, len(st.px.positionals))
	idx := fillStart
	for j := 0; j < len(sizes)-1 && idx < len(st.px.positionals); j++ {
		st.positionalSizes[idx] = sizes[j]
		idx++
	}
}

// countRemainingPositionals runs a throwaway look-ahead tokenize pass
// over the unprocessed argv slice, counting every Argument token not
// already claimed as an option's value (core spec 4.4.b step 1).
func (st *parseState) countRemainingPositionals(argv []string, argIdx int) int {
	rest := argv[argIdx+1:]
	count := 0
	expecting := false
	st.px.registry.Tokenize(rest, func(tok token.Token) token.Result {
		switch t := tok.(type) {
		case token.Option:
			opt := st.px.options[t.OptionIndex]
			expecting = optionExpectsFollowingArgument(opt, t.Value)
		case token.Argument:
			if expecting {
				expecting = false
			} else {
				count++
			}
		default:
			expecting = false
		}
		return token.Continue
	})
	return count
}

func optionExpectsFollowingArgument(opt *Option, attached *string) bool {
	if attached != nil || opt.RequireAttached {
		return false
	}
	return opt.Kind == ArgRequired || opt.Kind == ArgOptional
}

func (st *parseState) validatePositionalOccurs() {
	for _, p := range st.px.positionals {
		have := st.data.PositionalCount(p.Name)
		if have < p.Occurs.Min {
			st.fail(&ParseError{
				Code: ValidationError, Name: p.Name,
				Description: fmt.Sprintf("positional %q occurs %d time(s), expected at least %d", p.Name, have, p.Occurs.Min),
			})
			return
		}
	}
}

func (st *parseState) runValidators() {
	for _, v := range st.px.validators {
		if !v.Evaluate(&st.data) {
			st.fail(&ParseError{Code: ValidationError, Description: v.Describe()})
			return
		}
	}
}
