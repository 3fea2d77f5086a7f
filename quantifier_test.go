//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package optparse_test

import (
	"testing"

	"github.com/bassosimone/optparse"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalQuantifiers(t *testing.T) {
	assert.Equal(t, optparse.Quantifier{Min: 0, Max: 1}, optparse.ZeroOrOne)
	assert.Equal(t, optparse.Quantifier{Min: 1, Max: 1}, optparse.Once)
	assert.Equal(t, optparse.Quantifier{Min: 0, Max: optparse.Unbounded}, optparse.ZeroOrMore)
	assert.Equal(t, optparse.Quantifier{Min: 1, Max: optparse.Unbounded}, optparse.OnceOrMore)
}
