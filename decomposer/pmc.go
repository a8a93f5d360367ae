// SPDX-License-Identifier: MIT
//
// File: pmc.go
// Role: potential maximal cliques: classification, evaluation, endorsement
// and the priority queue ordering them.

package decomposer

import (
	"container/heap"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/vset"
)

// pmc is a candidate bag with its inbound blocks and at most one outbound
// block.
type pmc struct {
	separator *bitset.BitSet
	outbound  *block
	inbounds  []*block

	ready      bool
	lowerBound int
	index      int // position in the queue, -1 when not queued
}

// newPMC classifies the blocks of separator and registers the PMC. The
// outbound block is the outbound-flagged block with the largest separator;
// blocks whose separators it contains are neither outbound nor inbound.
func (s *search) newPMC(separator *bitset.BitSet) *pmc {
	p := &pmc{separator: separator, index: -1}
	s.pmcs[vset.Key(separator)] = p
	if separator.None() {
		return p
	}
	blocks := s.d.blocksOf(separator)
	for _, b := range blocks {
		if b.outbound && (p.outbound == nil || b.separator.IsSuperSet(p.outbound.separator)) {
			p.outbound = b
		}
	}
	if p.outbound == nil {
		p.inbounds = blocks

		return p
	}
	for _, b := range blocks {
		if !p.outbound.separator.IsSuperSet(b.separator) {
			p.inbounds = append(p.inbounds, b)
		}
	}

	return p
}

// pmcFor returns the registered PMC for separator, registering it first if
// separator is a PMC. It returns nil otherwise.
func (s *search) pmcFor(separator *bitset.BitSet) *pmc {
	if p, ok := s.pmcs[vset.Key(separator)]; ok {
		return p
	}
	if !s.d.isPMCCached(separator) {
		return nil
	}

	return s.newPMC(separator)
}

// evaluate refreshes the lower bound of a PMC that is not ready yet. An
// inbound block without a solved M-block counts as the current target
// cost, which no unsolved block can undercut.
func (s *search) evaluate(p *pmc) {
	if p.ready {
		return
	}
	g := s.d.g
	lb := g.CountFill(p.separator)
	if p.outbound != nil {
		lb -= g.CountFill(p.outbound.separator)
	}
	p.ready = true
	for _, b := range p.inbounds {
		m, ok := s.mBlocks[vset.Key(b.component)]
		if !ok || m.cost > s.targetCost {
			p.ready = false
			lb += s.targetCost
		} else {
			lb += m.cost
		}
	}
	p.lowerBound = lb
}

// process endorses p when it is ready within the target cost and queues it
// otherwise.
func (s *search) process(p *pmc) {
	s.evaluate(p)
	if p.ready && p.lowerBound <= s.targetCost {
		if p.index >= 0 {
			heap.Remove(&s.queue, p.index)
		}
		s.endorse(p)

		return
	}
	s.enqueue(p)
}

func (s *search) enqueue(p *pmc) {
	if p.index >= 0 {
		heap.Fix(&s.queue, p.index)

		return
	}
	heap.Push(&s.queue, p)
}

// endorse turns a ready PMC into the solution or into a solved M-block.
// A cost below the target means the same block was already solved earlier.
func (s *search) endorse(p *pmc) {
	cost := s.cost(p)
	if cost != p.lowerBound {
		s.fail("endorse: cost %d differs from lower bound %d for bag %v", cost, p.lowerBound, vset.Slice(p.separator))

		return
	}
	if cost < s.targetCost {
		return
	}
	if p.outbound == nil {
		if s.solution == nil {
			s.solution = p
		}

		return
	}
	target := p.target()
	key := vset.Key(target)
	if _, ok := s.mBlocks[key]; ok {
		return
	}
	m := &mBlock{
		inbound:   target,
		separator: p.outbound.separator,
		outbound:  p.outbound.component,
		endorser:  p,
		cost:      cost,
	}
	s.mBlocks[key] = m
	s.ready = append(s.ready, m)
}

// cost is the fill of the bag plus that of its solved inbound blocks, minus
// the fill inside the outbound separator, which the outbound side pays.
func (s *search) cost(p *pmc) int {
	fill := 0
	for _, b := range p.inbounds {
		if m, ok := s.mBlocks[vset.Key(b.component)]; ok {
			fill += m.cost
		}
	}
	fill += s.d.g.CountFill(p.separator)
	if p.outbound != nil {
		fill -= s.d.g.CountFill(p.outbound.separator)
	}

	return fill
}

// target is (separator \ outbound separator) ∪ inbound components, the
// vertex set an endorsed PMC solves.
func (p *pmc) target() *bitset.BitSet {
	t := p.separator.Difference(p.outbound.separator)
	for _, b := range p.inbounds {
		t.InPlaceUnion(b.component)
	}

	return t
}

// pmcQueue orders PMCs by lower bound, ties broken by vertex order of the
// separators.
type pmcQueue []*pmc

func (q pmcQueue) Len() int { return len(q) }

func (q pmcQueue) Less(i, j int) bool {
	if q[i].lowerBound != q[j].lowerBound {
		return q[i].lowerBound < q[j].lowerBound
	}

	return vset.Compare(q[i].separator, q[j].separator) < 0
}

func (q pmcQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *pmcQueue) Push(x any) {
	p := x.(*pmc)
	p.index = len(*q)
	*q = append(*q, p)
}

func (q *pmcQueue) Pop() any {
	old := *q
	p := old[len(old)-1]
	old[len(old)-1] = nil
	p.index = -1
	*q = old[:len(old)-1]

	return p
}
