//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package optparse_test

import (
	"testing"

	"github.com/bassosimone/optparse"
	"github.com/stretchr/testify/assert"
)

func TestNewPositionalDefaults(t *testing.T) {
	var got string
	p := optparse.NewPositional("file", func(value string) error { got = value; return nil })
	assert.Equal(t, "file", p.Name)
	assert.Equal(t, optparse.Once, p.Occurs)
	_ = got
}

func TestPositionalWithOccurs(t *testing.T) {
	p := optparse.NewPositional("file", func(string) error { return nil }).WithOccurs(optparse.ZeroOrMore)
	assert.Equal(t, optparse.ZeroOrMore, p.Occurs)
}
