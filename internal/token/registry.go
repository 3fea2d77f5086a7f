//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/inc/argum/tokenizer.h
//

package token

import (
	"fmt"
	"sort"
	"strings"
)

// PrefixKind is a bitset describing how a registered prefix is used.
type PrefixKind int

const (
	// LongPrefix marks a prefix used for long option names.
	LongPrefix PrefixKind = 1 << iota

	// ShortPrefix marks a prefix used for short option names
	// (single-character, bundlable, or multi-character).
	ShortPrefix

	// StopPrefix marks a prefix that, when it is the entire argument,
	// ends option parsing.
	StopPrefix
)

// ErrPrefixConflict indicates a prefix was registered as both long and short.
type ErrPrefixConflict struct {
	Prefix string
}

func (err ErrPrefixConflict) Error() string {
	return fmt.Sprintf("prefix %q cannot be both a long and a short prefix", err.Prefix)
}

// ErrDuplicateName indicates a name was registered twice under the same prefix.
type ErrDuplicateName struct {
	Prefix string
	Name   string
}

func (err ErrDuplicateName) Error() string {
	return fmt.Sprintf("duplicate option name %q%s", err.Prefix, err.Name)
}

// ErrNoPrefix indicates a declared name does not start with any registered prefix.
type ErrNoPrefix struct {
	Name string
}

func (err ErrNoPrefix) Error() string {
	return fmt.Sprintf("option name %q does not begin with a registered prefix", err.Name)
}

// ErrEmptyTail indicates a declared name is exactly equal to its prefix.
type ErrEmptyTail struct {
	Name string
}

func (err ErrEmptyTail) Error() string {
	return fmt.Sprintf("option name %q is empty after removing its prefix", err.Name)
}

// Registry holds the prefix/name tables the tokenizer consults.
//
// Grounded on original_source/inc/argum/tokenizer.h's Settings/registry
// split: this type merges both roles, since Go has no equivalent need
// for the C++ header's compile-time character type parameterization.
type Registry struct {
	allowAbbreviation bool
	kinds             map[string]PrefixKind
	delimiters        map[byte]bool

	longs        map[string]map[string]int
	singleShorts map[string]map[byte]int
	multiShorts  map[string]map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry(allowAbbreviation bool) *Registry {
	return &Registry{
		allowAbbreviation: allowAbbreviation,
		kinds:             make(map[string]PrefixKind),
		delimiters:        make(map[byte]bool),
		longs:             make(map[string]map[string]int),
		singleShorts:      make(map[string]map[byte]int),
		multiShorts:       make(map[string]map[string]int),
	}
}

// SetAllowAbbreviation toggles long/multi-short prefix abbreviation.
func (r *Registry) SetAllowAbbreviation(v bool) {
	r.allowAbbreviation = v
}

func (r *Registry) addPrefixKind(prefix string, kind PrefixKind) error {
	existing := r.kinds[prefix]
	conflict := (LongPrefix | ShortPrefix)
	if (existing|kind)&conflict == conflict {
		return ErrPrefixConflict{Prefix: prefix}
	}
	r.kinds[prefix] = existing | kind
	return nil
}

// AddLongPrefix registers prefix for long option names.
func (r *Registry) AddLongPrefix(prefix string) error {
	return r.addPrefixKind(prefix, LongPrefix)
}

// AddShortPrefix registers prefix for short option names.
func (r *Registry) AddShortPrefix(prefix string) error {
	return r.addPrefixKind(prefix, ShortPrefix)
}

// AddOptionStop marks prefix as an option-stop marker. It may be combined
// with a prior AddLongPrefix/AddShortPrefix call on the same prefix.
func (r *Registry) AddOptionStop(prefix string) error {
	return r.addPrefixKind(prefix, StopPrefix)
}

// AddValueDelimiter registers a byte that splits an attached value from
// an option name (e.g. `=` in `--name=value`).
func (r *Registry) AddValueDelimiter(c byte) {
	r.delimiters[c] = true
}

// AddName classifies name (e.g. "--output" or "-x") against the registered
// prefixes and records it as pointing to optionIndex. It returns the
// prefix actually matched.
func (r *Registry) AddName(name string, optionIndex int) (string, error) {
	prefix, kind, ok := r.longestPrefix(name)
	if !ok {
		return "", ErrNoPrefix{Name: name}
	}
	tail := name[len(prefix):]
	if tail == "" {
		return "", ErrEmptyTail{Name: name}
	}
	switch {
	case kind&ShortPrefix != 0 && len(tail) == 1:
		table := r.singleShorts[prefix]
		if table == nil {
			table = make(map[byte]int)
			r.singleShorts[prefix] = table
		}
		if _, exists := table[tail[0]]; exists {
			return "", ErrDuplicateName{Prefix: prefix, Name: tail}
		}
		table[tail[0]] = optionIndex
	case kind&ShortPrefix != 0:
		table := r.multiShorts[prefix]
		if table == nil {
			table = make(map[string]int)
			r.multiShorts[prefix] = table
		}
		if _, exists := table[tail]; exists {
			return "", ErrDuplicateName{Prefix: prefix, Name: tail}
		}
		table[tail] = optionIndex
	case kind&LongPrefix != 0:
		table := r.longs[prefix]
		if table == nil {
			table = make(map[string]int)
			r.longs[prefix] = table
		}
		if _, exists := table[tail]; exists {
			return "", ErrDuplicateName{Prefix: prefix, Name: tail}
		}
		table[tail] = optionIndex
	default:
		return "", ErrNoPrefix{Name: name}
	}
	return prefix, nil
}

func (r *Registry) longestPrefix(s string) (prefix string, kind PrefixKind, ok bool) {
	for p, k := range r.kinds {
		if strings.HasPrefix(s, p) && len(p) > len(prefix) {
			prefix, kind, ok = p, k, true
		}
	}
	return
}

func splitDelimited(s string, delimiters map[byte]bool) (name string, value *string) {
	for idx := 0; idx < len(s); idx++ {
		if delimiters[s[idx]] {
			v := s[idx+1:]
			return s[:idx], &v
		}
	}
	return s, nil
}

// matchNames implements original_source's findMatchOrMatchingPrefixRange:
// an exact match always wins outright (even if other keys have name as a
// strict prefix); otherwise it returns every key that has name as a
// strict prefix, sorted for deterministic candidate ordering.
func matchNames(table map[string]int, name string) (exact bool, matches []string) {
	if _, ok := table[name]; ok {
		return true, []string{name}
	}
	for k := range table {
		if strings.HasPrefix(k, name) {
			matches = append(matches, k)
		}
	}
	sort.Strings(matches)
	return false, matches
}

func (r *Registry) emit(tok Token, handle Handler, args []string, i int) (tail []string, stopped bool) {
	switch handle(tok) {
	case StopAfter:
		return append([]string{}, args[i+1:]...), true
	case StopBefore:
		return append([]string{}, args[i:]...), true
	default:
		return nil, false
	}
}

// Tokenize drives handle over args, one token at a time, and returns the
// unconsumed tail once handle signals StopAfter/StopBefore (or nil once
// every argument has been consumed).
func (r *Registry) Tokenize(args []string, handle Handler) []string {
	noMoreOptions := false
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if noMoreOptions {
			if tail, stopped := r.emit(Argument{base{i}, arg}, handle, args, i); stopped {
				return tail
			}
			continue
		}

		prefix, kind, ok := r.longestPrefix(arg)
		if !ok {
			if tail, stopped := r.emit(Argument{base{i}, arg}, handle, args, i); stopped {
				return tail
			}
			continue
		}

		if arg == prefix && kind&StopPrefix != 0 {
			noMoreOptions = true
			if tail, stopped := r.emit(OptionStop{base{i}}, handle, args, i); stopped {
				return tail
			}
			continue
		}

		switch {
		case kind&LongPrefix != 0:
			if tail, stopped := r.tokenizeLong(args, i, prefix, handle); stopped {
				return tail
			}
		case kind&ShortPrefix != 0:
			if tail, stopped := r.tokenizeShort(args, i, prefix, handle); stopped {
				return tail
			}
		default:
			if tail, stopped := r.emit(Argument{base{i}, arg}, handle, args, i); stopped {
				return tail
			}
		}
	}
	return nil
}

func (r *Registry) tokenizeLong(args []string, i int, prefix string, handle Handler) (tail []string, stopped bool) {
	arg := args[i]
	rest := arg[len(prefix):]
	name, value := splitDelimited(rest, r.delimiters)
	if name == "" {
		return r.emit(Argument{base{i}, arg}, handle, args, i)
	}

	if table := r.longs[prefix]; table != nil {
		if r.allowAbbreviation {
			exact, matches := matchNames(table, name)
			switch {
			case exact || len(matches) == 1:
				key := matches[0]
				return r.emit(Option{base{i}, table[key], name, prefix, value}, handle, args, i)
			case len(matches) > 1:
				candidates := make([]string, len(matches))
				for j, m := range matches {
					candidates[j] = prefix + m
				}
				return r.emit(Ambiguous{base{i}, name, prefix, value, candidates}, handle, args, i)
			}
		} else if idx, ok := table[name]; ok {
			return r.emit(Option{base{i}, idx, name, prefix, value}, handle, args, i)
		}
	}

	if looksNumeric(arg) {
		return r.emit(Argument{base{i}, arg}, handle, args, i)
	}
	return r.emit(Unknown{base{i}, name, prefix, value}, handle, args, i)
}

func (r *Registry) tokenizeShort(args []string, i int, prefix string, handle Handler) (tail []string, stopped bool) {
	arg := args[i]
	chars := arg[len(prefix):]
	if chars == "" {
		return r.emit(Argument{base{i}, arg}, handle, args, i)
	}

	singles := r.singleShorts[prefix]
	firstIdx, hasSingle := 0, false
	if singles != nil {
		if idx, ok := singles[chars[0]]; ok {
			firstIdx, hasSingle = idx, true
		}
	}

	if len(chars) > 1 || !hasSingle {
		if t, s, handled := r.tokenizeMultiShort(args, i, prefix, chars, hasSingle, handle); handled {
			return t, s
		}
	}

	if !hasSingle {
		if looksNumeric(arg) {
			return r.emit(Argument{base{i}, arg}, handle, args, i)
		}
		return r.emit(Unknown{base{i}, chars, prefix, nil}, handle, args, i)
	}

	return r.tokenizeBundle(args, i, prefix, chars, firstIdx, singles, handle)
}

func (r *Registry) tokenizeMultiShort(
	args []string, i int, prefix, chars string, mustMatchExact bool, handle Handler) (tail []string, stopped, handled bool) {

	arg := args[i]
	name, value := splitDelimited(chars, r.delimiters)
	if name == "" {
		t, s := r.emit(Argument{base{i}, arg}, handle, args, i)
		return t, s, true
	}

	table := r.multiShorts[prefix]
	if table == nil {
		return nil, false, false
	}

	if !r.allowAbbreviation {
		if idx, ok := table[name]; ok {
			t, s := r.emit(Option{base{i}, idx, name, prefix, value}, handle, args, i)
			return t, s, true
		}
		return nil, false, false
	}

	exact, matches := matchNames(table, name)
	switch {
	case exact:
		t, s := r.emit(Option{base{i}, table[name], name, prefix, value}, handle, args, i)
		return t, s, true

	case len(matches) == 1:
		key := matches[0]
		if !mustMatchExact {
			t, s := r.emit(Option{base{i}, table[key], name, prefix, value}, handle, args, i)
			return t, s, true
		}
		candidates := []string{prefix + string(chars[0]), prefix + key}
		t, s := r.emit(Ambiguous{base{i}, name, prefix, value, candidates}, handle, args, i)
		return t, s, true

	case len(matches) > 1:
		var candidates []string
		if mustMatchExact {
			candidates = append(candidates, prefix+string(chars[0]))
		}
		for _, m := range matches {
			candidates = append(candidates, prefix+m)
		}
		t, s := r.emit(Ambiguous{base{i}, name, prefix, value, candidates}, handle, args, i)
		return t, s, true

	default:
		return nil, false, false
	}
}

func (r *Registry) tokenizeBundle(
	args []string, i int, prefix, chars string, firstIdx int, singles map[byte]int, handle Handler) (tail []string, stopped bool) {

	currentIdx := firstIdx
	for {
		usedName := string(chars[0])
		var value *string
		charsConsumed := 1
		nextIdx := 0

		if len(chars) > 1 {
			if idx, ok := singles[chars[1]]; ok {
				nextIdx = idx
			} else {
				v := chars[1:]
				value = &v
				charsConsumed = len(chars)
			}
		}

		tok := Option{base{i}, currentIdx, usedName, prefix, value}
		switch handle(tok) {
		case StopAfter:
			remainder := prefix + chars[charsConsumed:]
			if remainder != prefix {
				return append([]string{remainder}, args[i+1:]...), true
			}
			return append([]string{}, args[i+1:]...), true
		case StopBefore:
			remainder := prefix + chars
			t := append([]string{remainder}, args[i+1:]...)
			return t, true
		}

		chars = chars[charsConsumed:]
		if len(chars) == 0 {
			break
		}
		currentIdx = nextIdx
	}
	return nil, false
}
