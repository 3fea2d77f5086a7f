//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/inc/argum/partitioner.h
//

// Package partition implements the greedy range partitioner that backs
// adaptive positional dispatch: given M ranges [aᵢ,bᵢ] and a sequence
// length N, it computes N₁..Nₘ plus a remainder such that Σ=N and
// aᵢ≤Nᵢ≤bᵢ, assigning left to right, maximal-munch.
package partition

import "math"

// Unbounded represents an unbounded maximum.
const Unbounded = math.MaxInt

type rng struct {
	min, length int
}

// Partitioner accumulates ranges and partitions a sequence length against them.
type Partitioner struct {
	ranges  []rng
	minimum int
}

// AddRange appends a range [a,b] (b may be Unbounded).
func (p *Partitioner) AddRange(a, b int) {
	length := Unbounded
	if b != Unbounded {
		length = b - a
	}
	p.ranges = append(p.ranges, rng{min: a, length: length})
	p.minimum += a
}

// PartitionsCount returns the number of ranges plus one (for the remainder).
func (p *Partitioner) PartitionsCount() int {
	return len(p.ranges) + 1
}

// MinimumSequenceSize returns the sum of all minima added so far.
func (p *Partitioner) MinimumSequenceSize() int {
	return p.minimum
}

// Partition computes (N₁,...,Nₘ,remainder) for a sequence of length n. It
// returns ok=false if n is less than MinimumSequenceSize.
func (p *Partitioner) Partition(n int) (result []int, ok bool) {
	if n < p.minimum {
		return nil, false
	}
	remaining := n - p.minimum

	result = make([]int, p.PartitionsCount())
	for i, r := range p.ranges {
		length := r.length
		take := remaining
		if length < take {
			take = length
		}
		remaining -= take
		result[i] = r.min + take
	}
	result[len(result)-1] = remaining
	return result, true
}
