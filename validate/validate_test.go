//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dataWith(options map[string]int, positionals map[string]int) *Data {
	d := &Data{}
	for name, n := range options {
		for i := 0; i < n; i++ {
			d.IncrementOption(name)
		}
	}
	for name, n := range positionals {
		for i := 0; i < n; i++ {
			d.IncrementPositional(name)
		}
	}
	return d
}

func TestOccursAtomic(t *testing.T) {
	d := dataWith(map[string]int{"--verbose": 2}, nil)

	assert.True(t, OptionPresent("--verbose").Evaluate(d))
	assert.False(t, OptionAbsent("--verbose").Evaluate(d))
	assert.True(t, OptionOccursAtLeast("--verbose", 2).Evaluate(d))
	assert.False(t, OptionOccursAtLeast("--verbose", 3).Evaluate(d))
	assert.True(t, OptionOccursAtMost("--verbose", 2).Evaluate(d))
	assert.False(t, OptionOccursAtMost("--verbose", 1).Evaluate(d))
	assert.True(t, OptionOccursMoreThan("--verbose", 1).Evaluate(d))
	assert.True(t, OptionOccursLessThan("--verbose", 3).Evaluate(d))
	assert.True(t, OptionOccursExactly("--verbose", 2).Evaluate(d))
	assert.True(t, OptionDoesntOccurExactly("--verbose", 1).Evaluate(d))

	assert.False(t, OptionPresent("--quiet").Evaluate(d))
	assert.True(t, OptionAbsent("--quiet").Evaluate(d))
}

func TestPositionalAtomic(t *testing.T) {
	d := dataWith(nil, map[string]int{"file": 3})
	assert.True(t, PositionalOccursExactly("file", 3).Evaluate(d))
	assert.True(t, PositionalPresent("file").Evaluate(d))
	assert.False(t, PositionalAbsent("file").Evaluate(d))
}

func TestInversionLawsAtomic(t *testing.T) {
	cases := []Validator{
		OptionOccursAtLeast("--x", 2),
		OptionOccursAtMost("--x", 2),
		OptionOccursMoreThan("--x", 2),
		OptionOccursLessThan("--x", 2),
		OptionOccursExactly("--x", 2),
		OptionDoesntOccurExactly("--x", 2),
		OptionPresent("--x"),
		OptionAbsent("--x"),
	}
	for _, c := range cases {
		inv := Not(c)
		for n := 0; n <= 4; n++ {
			d := dataWith(map[string]int{"--x": n}, nil)
			assert.Equal(t, !c.Evaluate(d), inv.Evaluate(d), "n=%d desc=%s", n, c.Describe())
		}
	}
}

func TestNotNotRecoversOriginal(t *testing.T) {
	v := OptionOccursAtLeast("--x", 3)
	assert.Equal(t, v, Not(Not(v)))

	custom := Describable{Predicate: func(d *Data) bool { return true }, Text: "custom"}
	assert.Equal(t, custom.Text, Not(Not(custom)).(Describable).Text)
}

func TestAndOrDeMorgan(t *testing.T) {
	a := OptionPresent("-a")
	b := OptionPresent("-b")

	for _, an := range []int{0, 1} {
		for _, bn := range []int{0, 1} {
			d := dataWith(map[string]int{"-a": an, "-b": bn}, nil)
			and := And(a, b)
			or := Or(a, b)
			assert.Equal(t, !and.Evaluate(d), Not(and).Evaluate(d))
			assert.Equal(t, Not(and).Evaluate(d), Or(Not(a), Not(b)).Evaluate(d))
			assert.Equal(t, !or.Evaluate(d), Not(or).Evaluate(d))
			assert.Equal(t, Not(or).Evaluate(d), And(Not(a), Not(b)).Evaluate(d))
		}
	}
}

func TestAssociativityFlattening(t *testing.T) {
	a := OptionPresent("-a")
	b := OptionPresent("-b")
	c := OptionPresent("-c")

	nested := And(And(a, b), c)
	flat := And(a, b, c)
	assert.Equal(t, flat.Describe(), nested.Describe())

	nestedOr := Or(a, Or(b, c))
	flatOr := Or(a, b, c)
	assert.Equal(t, flatOr.Describe(), nestedOr.Describe())
}

func TestShortCircuitEvaluation(t *testing.T) {
	calls := 0
	counting := Describable{
		Predicate: func(d *Data) bool { calls++; return true },
		Text:      "counting",
	}
	d := &Data{}

	calls = 0
	And(OptionPresent("never-present"), counting).Evaluate(d)
	assert.Equal(t, 0, calls)

	calls = 0
	Or(OptionPresent("never-present"), counting).Evaluate(&Data{})
	assert.Equal(t, 1, calls)
}

func TestOnlyOneOf(t *testing.T) {
	a := OptionPresent("-a")
	b := OptionPresent("-b")
	v := OnlyOneOf(a, b)

	assert.False(t, v.Evaluate(dataWith(nil, nil)))
	assert.True(t, v.Evaluate(dataWith(map[string]int{"-a": 1}, nil)))
	assert.True(t, v.Evaluate(dataWith(map[string]int{"-b": 1}, nil)))
	assert.False(t, v.Evaluate(dataWith(map[string]int{"-a": 1, "-b": 1}, nil)))
}

func TestOneOrNoneOf(t *testing.T) {
	a := OptionPresent("-a")
	b := OptionPresent("-b")
	v := OneOrNoneOf(a, b)

	assert.True(t, v.Evaluate(dataWith(nil, nil)))
	assert.True(t, v.Evaluate(dataWith(map[string]int{"-a": 1}, nil)))
	assert.False(t, v.Evaluate(dataWith(map[string]int{"-a": 1, "-b": 1}, nil)))
}

func TestAllOrNoneOf(t *testing.T) {
	a := OptionPresent("-a")
	b := OptionPresent("-b")
	v := AllOrNoneOf(a, b)

	assert.True(t, v.Evaluate(dataWith(nil, nil)))
	assert.True(t, v.Evaluate(dataWith(map[string]int{"-a": 1, "-b": 1}, nil)))
	assert.False(t, v.Evaluate(dataWith(map[string]int{"-a": 1}, nil)))
}

func TestDescribeReadable(t *testing.T) {
	v := And(OptionPresent("-a"), Or(OptionPresent("-b"), OptionAbsent("-c")))
	assert.Equal(t, `(option "-a" is present and (option "-b" is present or option "-c" is absent))`, v.Describe())
}
