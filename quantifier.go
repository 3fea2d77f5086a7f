//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/single-file/argum.h (class Quantifier)
//

package optparse

import "math"

// Unbounded marks a [Quantifier] maximum as unlimited.
const Unbounded = math.MaxInt

// Quantifier is an occurrence range [Min, Max]. Max may be [Unbounded].
type Quantifier struct {
	Min int
	Max int
}

// Canonical quantifiers used by most declared options and positionals.
var (
	ZeroOrOne  = Quantifier{Min: 0, Max: 1}
	Once       = Quantifier{Min: 1, Max: 1}
	ZeroOrMore = Quantifier{Min: 0, Max: Unbounded}
	OnceOrMore = Quantifier{Min: 1, Max: Unbounded}
)
