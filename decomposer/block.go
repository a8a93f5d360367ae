// SPDX-License-Identifier: MIT
//
// File: block.go
// Role: block derivation, block lookup for a separator, and the PMC test.

package decomposer

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// block is a component C together with S = N(C).
type block struct {
	component *bitset.BitSet
	separator *bitset.BitSet

	// minimal is set when another full component of G − S exists, i.e. S is
	// a minimal separator.
	minimal bool

	// outbound is set when C is the full component of S with the smallest
	// vertex, the side a decomposition grows away from.
	outbound bool
}

// newBlock derives the block of component.
//
// Vertices outside C ∪ S are scanned ascending and grown into closures
// D ∪ N(D). The first closure covering S is a full sibling: if it was found
// below min(C) the sibling is outbound, otherwise C is.
func (d *Decomposer) newBlock(component *bitset.BitSet) *block {
	g := d.g
	b := &block{component: component, separator: g.NeighborSetOf(component)}
	rest := g.All()
	rest.InPlaceDifference(component)
	rest.InPlaceDifference(b.separator)
	minCompo := vset.Min(component)

	for v, ok := rest.NextSet(0); ok; v, ok = rest.NextSet(v + 1) {
		closure := d.closure(int(v), b.separator)
		if closure.IsSuperSet(b.separator) {
			b.minimal = true
			b.outbound = int(v) > minCompo

			return b
		}
		rest.InPlaceDifference(closure)
	}

	return b
}

// closure returns D ∪ N(D) for the component D of G − separator holding v.
func (d *Decomposer) closure(v int, separator *bitset.BitSet) *bitset.BitSet {
	c := d.g.ClosedNeighborSet(v)
	scan := c.Difference(separator)
	for scan.Any() {
		save := c.Clone()
		for w, ok := scan.NextSet(0); ok; w, ok = scan.NextSet(w + 1) {
			c.InPlaceUnion(d.g.Neighbors(int(w)))
		}
		scan = c.Difference(save)
		scan.InPlaceDifference(separator)
	}

	return c
}

// blockOf returns the memoized block of component.
func (d *Decomposer) blockOf(component *bitset.BitSet) *block {
	key := vset.Key(component)
	if b, ok := d.blocks[key]; ok {
		return b
	}
	b := d.newBlock(component)
	d.blocks[key] = b

	return b
}

// blocksOf returns the blocks of the components of G − separator, ordered
// by smallest vertex.
func (d *Decomposer) blocksOf(separator *bitset.BitSet) []*block {
	comps := d.g.Components(separator)
	out := make([]*block, len(comps))
	for i, c := range comps {
		out[i] = d.blockOf(c)
	}

	return out
}

// isPMC reports whether s is a potential maximal clique: no component of
// G − s is full, and every non-adjacent pair in s lies in the separator of
// some component.
func (d *Decomposer) isPMC(s *bitset.BitSet) bool {
	blocks := d.blocksOf(s)
	size := s.Count()
	for _, b := range blocks {
		if b.separator.Count() == size {
			return false
		}
	}
	for v, ok := s.NextSet(0); ok; v, ok = s.NextSet(v + 1) {
		rest := s.Difference(d.g.Neighbors(int(v)))
		for w, ok := rest.NextSet(v + 1); ok; w, ok = rest.NextSet(w + 1) {
			if !covered(blocks, v, w) {
				return false
			}
		}
	}

	return true
}

func covered(blocks []*block, v, w uint) bool {
	for _, b := range blocks {
		if b.separator.Test(v) && b.separator.Test(w) {
			return true
		}
	}

	return false
}
