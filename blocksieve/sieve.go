// SPDX-License-Identifier: MIT
//
// File: sieve.go
// Role: Sieve type, Put and the superset/subset queries.

package blocksieve

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// MaxNodeLabels is the number of labels above which a node is split.
const MaxNodeLabels = 512

// Sieve maps vertex sets over n vertices to values of type V.
type Sieve[V any] struct {
	root *node[V]
	last int // index of the last word a key can occupy
	size int
}

// New returns an empty Sieve for subsets of {0..n-1}.
func New[V any](n int) *Sieve[V] {
	return &Sieve[V]{
		root: newNode[V](0, 64, 0),
		last: (n - 1) / 64,
	}
}

// Size returns the number of stored keys.
func (s *Sieve[V]) Size() int { return s.size }

// Put stores value under key unless key is already present. It returns the
// value stored first and true when key was present, or the zero value and
// false after a fresh insertion.
//
// Steps:
//  1. Follow matching labels word by word until a label is missing.
//  2. Add the missing label: a leaf takes the value, otherwise a chain of
//     full-word nodes is grown for the remaining words.
//  3. Split the touched node if it now holds too many labels.
func (s *Sieve[V]) Put(key *bitset.BitSet, value V) (V, bool) {
	words := key.Words()
	n := s.root
	var parent *node[V]
	i, slot := 0, 0
	var label uint64
	for {
		label = word(words, i)
		j, found := n.indexOf(label)
		if !found {
			break
		}
		if n.isLeaf(s.last) {
			return n.values[j], true
		}
		parent, slot = n, j
		n = n.children[j]
		i = n.index
	}

	switch {
	case n.isLeaf(s.last):
		n.addValue(label, value)
	case n.lastInWord():
		n.addChild(label, s.newPath(i+1, words, value))
	default:
		rest := newNode[V](i, 64-(n.ntz+n.width), n.ntz+n.width)
		if rest.isLeaf(s.last) {
			rest.addValue(label, value)
		} else {
			rest.addChild(label, s.newPath(i+1, words, value))
		}
		n.addChild(label, rest)
	}
	s.size++

	if parent != nil {
		parent.children[slot] = s.split(n)
	} else {
		s.root = s.split(n)
	}

	var zero V

	return zero, false
}

// CollectSuperblocks appends to out the values of all stored keys K with
// query ⊆ K and returns the extended slice. Containment is the only filter;
// no graph structure is consulted.
func (s *Sieve[V]) CollectSuperblocks(query *bitset.BitSet, out []V) []V {
	return s.root.collect(query.Words(), s.last, true, out)
}

// CollectSubblocks appends to out the values of all stored keys K with
// K ⊆ query and returns the extended slice.
func (s *Sieve[V]) CollectSubblocks(query *bitset.BitSet, out []V) []V {
	return s.root.collect(query.Words(), s.last, false, out)
}

func (s *Sieve[V]) newPath(index int, words []uint64, value V) *node[V] {
	n := newNode[V](index, 64, 0)
	if index == s.last {
		n.addValue(word(words, index), value)
	} else {
		n.addChild(word(words, index), s.newPath(index+1, words, value))
	}

	return n
}

// split replaces an overfull node by a node over a narrower low run whose
// children hold the high part, recursing into children that are still
// overfull.
func (s *Sieve[V]) split(n *node[V]) *node[V] {
	if n.size() <= MaxNodeLabels {
		return n
	}
	leaf := n.isLeaf(s.last)
	ntz := n.ntz
	hi := ntz + n.width
	var low []uint64
	var lowMask uint64
	for len(low) == 0 || len(low) > MaxNodeLabels {
		hi = (ntz + hi) / 2
		lowMask = runMask(ntz, hi-ntz)
		low = low[:0]
		for i := 0; i < n.size(); i++ {
			x := (n.labelAt(i) & lowMask) >> ntz
			if j, found := searchUint64(low, x); !found {
				low = insertAt(low, j, x)
			}
		}
	}

	highMask := n.mask() &^ lowMask
	kids := make([]*node[V], len(low))
	for j := range kids {
		kids[j] = newNode[V](n.index, bits.OnesCount64(highMask), bits.TrailingZeros64(highMask))
	}
	for i := 0; i < n.size(); i++ {
		l := n.labelAt(i)
		j, _ := searchUint64(low, (l&lowMask)>>ntz)
		if leaf {
			kids[j].addValue(l, n.values[i])
		} else {
			kids[j].addChild(l, n.children[i])
		}
	}

	top := newNode[V](n.index, hi-ntz, ntz)
	for j, x := range low {
		top.addChild(x<<ntz, s.split(kids[j]))
	}

	return top
}

func word(words []uint64, i int) uint64 {
	if i < len(words) {
		return words[i]
	}

	return 0
}

func runMask(ntz, width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1)<<width - 1) << ntz
}
