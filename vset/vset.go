// SPDX-License-Identifier: MIT

// Package vset holds the helpers minfill uses around *bitset.BitSet, the
// vertex-set representation shared by graph, bounds, blocksieve and
// decomposer.
//
// Every set is allocated with the graph order n as its length so that the
// in-place binary operations of bitset never reallocate mid-search.
package vset

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
)

// New returns an empty set sized for n vertices.
func New(n int) *bitset.BitSet {
	return bitset.New(uint(n))
}

// Of returns a set sized for n vertices that contains vs.
func Of(n int, vs ...int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, v := range vs {
		b.Set(uint(v))
	}

	return b
}

// Full returns {0, ..., n-1}.
func Full(n int) *bitset.BitSet {
	b := bitset.New(uint(n))
	if n > 0 {
		b.FlipRange(0, uint(n))
	}

	return b
}

// Slice lists the members of b ascending.
func Slice(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Min returns the smallest member of b, or -1 when b is empty.
func Min(b *bitset.BitSet) int {
	if i, ok := b.NextSet(0); ok {
		return int(i)
	}

	return -1
}

// Key returns a canonical map key for b: the little-endian bytes of its
// words with trailing zero words trimmed, so sets of different capacity with
// the same members share a key.
func Key(b *bitset.BitSet) string {
	words := b.Words()
	last := len(words)
	for last > 0 && words[last-1] == 0 {
		last--
	}
	buf := make([]byte, 8*last)
	for i := 0; i < last; i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], words[i])
	}

	return string(buf)
}

// Word returns the i-th 64-bit word of b, or 0 past its end.
func Word(b *bitset.BitSet, i int) uint64 {
	words := b.Words()
	if i < 0 || i >= len(words) {
		return 0
	}

	return words[i]
}

// Compare orders sets lexicographically by membership from the lowest
// vertex up: the set whose first differing vertex is present sorts first.
// It returns -1, 0 or 1.
func Compare(a, b *bitset.BitSet) int {
	aw, bw := a.Words(), b.Words()
	n := len(aw)
	if len(bw) > n {
		n = len(bw)
	}
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(aw) {
			x = aw[i]
		}
		if i < len(bw) {
			y = bw[i]
		}
		if x == y {
			continue
		}
		d := x ^ y
		low := d & -d
		if x&low != 0 {
			return -1
		}

		return 1
	}

	return 0
}
