//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionBasic(t *testing.T) {
	var p Partitioner
	p.AddRange(1, 1) // foo: once
	p.AddRange(0, Unbounded) // bar: zero-or-more
	p.AddRange(1, 1) // baz: once

	result, ok := p.Partition(4)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 1, 0}, result)

	_, ok = p.Partition(1)
	assert.False(t, ok)
}

func TestPartitionMinimumSequenceSize(t *testing.T) {
	var p Partitioner
	p.AddRange(1, 1)
	p.AddRange(2, 5)
	assert.Equal(t, 3, p.MinimumSequenceSize())
	assert.Equal(t, 3, p.PartitionsCount())
}

func TestPartitionRangesSatisfied(t *testing.T) {
	var p Partitioner
	p.AddRange(0, 2)
	p.AddRange(1, 3)
	p.AddRange(0, Unbounded)

	for n := p.MinimumSequenceSize(); n < 20; n++ {
		result, ok := p.Partition(n)
		assert.True(t, ok)
		sum := 0
		for _, v := range result {
			sum += v
		}
		assert.Equal(t, n, sum)
		assert.True(t, result[0] <= 2)
		assert.True(t, result[1] >= 1 && result[1] <= 3)
	}
}
