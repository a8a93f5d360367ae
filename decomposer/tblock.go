// SPDX-License-Identifier: MIT
//
// File: tblock.go
// Role: solved blocks (M-blocks), partial separators (T-blocks) and the
// operations that combine them into new PMCs.

package decomposer

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// mBlock is a block whose optimal fill is known. inbound is the solved
// vertex set, separator its boundary and outbound the component beyond it.
type mBlock struct {
	inbound   *bitset.BitSet
	separator *bitset.BitSet
	outbound  *bitset.BitSet
	endorser  *pmc
	cost      int
}

// tBlock is a partial separator with the part of the graph still open on
// one side of it.
type tBlock struct {
	separator *bitset.BitSet
	open      *bitset.BitSet
	blocks    []*block
}

func (s *search) newTBlock(separator, open *bitset.BitSet) *tBlock {
	return &tBlock{
		separator: separator,
		open:      open,
		blocks:    s.d.blocksOf(separator.Union(open)),
	}
}

// processMBlock registers the T-block of a fresh M-block and plugs the
// M-block into every indexed T-block whose open side contains it.
func (s *search) processMBlock(m *mBlock) {
	s.makeSimpleTBlock(m)
	for _, t := range s.sieve.CollectSuperblocks(m.inbound, nil) {
		s.plugin(t, m)
	}
}

func (s *search) makeSimpleTBlock(m *mBlock) {
	key := vset.Key(m.separator)
	if _, ok := s.tBlocks[key]; ok {
		return
	}
	t := s.newTBlock(m.separator, m.outbound)
	s.tBlocks[key] = t
	if s.relevant(t) {
		s.sieve.Put(m.outbound, t)
		s.crown(t)
	}
}

// relevant reports whether t can still lead to a solution within the trial
// upper bound: the separator fill plus the (known or provisional) cost of
// the closed side, plus a lower bound for the open side.
func (s *search) relevant(t *tBlock) bool {
	g := s.d.g
	cost := g.CountFill(t.separator)
	if cost > s.tentativeUB {
		return false
	}
	for _, b := range t.blocks {
		if b.outbound {
			continue
		}
		if m, ok := s.mBlocks[vset.Key(b.component)]; ok {
			cost += m.cost
		} else {
			cost += s.targetCost
		}
	}
	if cost > s.tentativeUB {
		return false
	}
	if cost+s.d.lowerbound <= s.tentativeUB {
		return true
	}

	return cost+s.d.bounds.LowerboundOf(t.open, t.separator) <= s.tentativeUB
}

// plugin extends t by the separator of m.
//
// Steps:
//  1. Reject when the joint separator already needs too much fill.
//  2. Look at the blocks of everything outside t's open side plus m's
//     separator. A second full block, or a non-full block whose separator
//     is not minimal, ends the attempt.
//  3. With exactly one full block, the joint separator becomes a T-block
//     open towards it; with none, it is tried as a PMC.
func (s *search) plugin(t *tBlock, m *mBlock) {
	g := s.d.g
	newSep := t.separator.Union(m.separator)
	if g.CountFill(newSep) > s.tentativeUB {
		return
	}
	extended := g.All()
	extended.InPlaceDifference(t.open)
	extended.InPlaceUnion(m.separator)

	var full *block
	size := newSep.Count()
	for _, b := range s.d.blocksOf(extended) {
		if b.separator.Count() == size {
			if full != nil {
				return
			}
			full = b
		} else if !b.minimal {
			return
		}
	}

	if full == nil {
		if p := s.pmcFor(newSep); p != nil {
			s.process(p)
		}

		return
	}
	key := vset.Key(newSep)
	if _, ok := s.tBlocks[key]; ok {
		return
	}
	nt := s.newTBlock(newSep, full.component)
	s.tBlocks[key] = nt
	if s.relevant(nt) {
		s.sieve.Put(full.component, nt)
		s.crown(nt)
	}
}

// crown grows t by the open neighbors of each separator vertex in turn and
// tries every result that leaves part of the open side as a PMC.
func (s *search) crown(t *tBlock) {
	g := s.d.g
	for v, ok := t.separator.NextSet(0); ok; v, ok = t.separator.NextSet(v + 1) {
		addition := g.Neighbors(int(v)).Intersection(t.open)
		if t.open.Difference(addition).None() {
			continue
		}
		newSep := t.separator.Union(addition)
		if g.CountFill(newSep) > s.tentativeUB {
			continue
		}
		if p := s.pmcFor(newSep); p != nil {
			s.process(p)
		}
	}
}
