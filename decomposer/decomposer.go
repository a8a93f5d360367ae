// SPDX-License-Identifier: MIT
//
// File: decomposer.go
// Role: Decomposer, the upper-bound rounds and the per-round search state.

package decomposer

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/blocksieve"
	"github.com/katalvlaran/minfill/bounds"
	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/logging"
	"github.com/katalvlaran/minfill/treedecomp"
	"github.com/katalvlaran/minfill/vset"
)

var (
	// ErrInfeasible is returned by Decompose(b) when no decomposition has
	// fill at most b.
	ErrInfeasible = errors.New("decomposer: no decomposition within upper bound")

	// ErrInvariant reports broken internal bookkeeping. The search result
	// is discarded.
	ErrInvariant = errors.New("decomposer: internal invariant violated")
)

// Decomposer finds minimum fill-in tree decompositions of one graph.
type Decomposer struct {
	g         *graph.Graph
	growth    Growth
	log       *logging.Logger
	boundOpts []bounds.Option

	bounds     *bounds.Bounds
	lowerbound int

	// Per Decompose call, shared by all rounds.
	blocks  map[string]*block
	pmcTest map[string]bool

	opt int
}

// New returns a Decomposer for g. The graph must not change while Decompose
// runs.
func New(g *graph.Graph, opts ...Option) *Decomposer {
	d := &Decomposer{
		g:      g,
		growth: GrowthAdditive,
		log:    logging.NoopLogger(),
		opt:    -1,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// OptimalCost returns the fill of the last decomposition Decompose
// returned, or -1 before any success.
func (d *Decomposer) OptimalCost() int { return d.opt }

// Decompose returns a tree decomposition of minimum fill. With
// upperBound < 0 it searches for the optimum; with upperBound >= 0 it
// returns ErrInfeasible when the minimum fill exceeds upperBound.
//
// Steps:
//  1. Compute the global lower bound lb and the trivial bound (all non-edges).
//  2. Run a round with the trial bound; stop on success.
//  3. With a fixed bound, fail with ErrInfeasible; otherwise raise the
//     trial bound by the growth policy and repeat. Reaching the trivial
//     bound without success is an ErrInvariant.
func (d *Decomposer) Decompose(upperBound int) (*treedecomp.TreeDecomposition, error) {
	d.opt = -1
	n := d.g.N()
	if n == 0 {
		d.opt = 0

		return treedecomp.New(0), nil
	}
	d.blocks = make(map[string]*block)
	d.pmcTest = make(map[string]bool)
	d.bounds = bounds.New(d.g, d.boundOpts...)
	d.lowerbound = d.bounds.Lowerbound()
	trivial := d.bounds.Upperbound()

	ub := upperBound
	if upperBound < 0 {
		ub = d.firstBound()
	}
	d.log.Debug("decompose",
		"n", n,
		"lb", d.lowerbound,
		"ub", upperBound,
		"growth", d.growth.String(),
	)

	for {
		s := d.newSearch(ub)
		td, found, err := s.run()
		if err != nil {
			return nil, err
		}
		if found {
			d.opt = s.targetCost

			return td, nil
		}
		if upperBound >= 0 {
			return nil, fmt.Errorf("decomposer: Decompose(%d): %w", upperBound, ErrInfeasible)
		}
		if ub >= trivial {
			return nil, fmt.Errorf("decomposer: Decompose: nothing found up to %d: %w", trivial, ErrInvariant)
		}
		ub = d.nextBound(ub)
	}
}

func (d *Decomposer) firstBound() int {
	if d.growth == GrowthDoubling {
		return max(1, d.lowerbound)
	}

	return d.lowerbound + 1 + d.lowerbound/2
}

func (d *Decomposer) nextBound(ub int) int {
	if d.growth == GrowthDoubling {
		return 2 * ub
	}

	return ub + 1 + d.lowerbound/2
}

// isPMCCached memoizes isPMC for the current Decompose call.
func (d *Decomposer) isPMCCached(s *bitset.BitSet) bool {
	key := vset.Key(s)
	ok, seen := d.pmcTest[key]
	if !seen {
		ok = d.isPMC(s)
		d.pmcTest[key] = ok
	}

	return ok
}

// search is the state of one round with a fixed trial upper bound.
type search struct {
	d           *Decomposer
	tentativeUB int
	targetCost  int

	mBlocks map[string]*mBlock
	tBlocks map[string]*tBlock
	pmcs    map[string]*pmc
	queue   pmcQueue
	ready   []*mBlock
	sieve   *blocksieve.Sieve[*tBlock]

	solution *pmc
	err      error
}

func (d *Decomposer) newSearch(ub int) *search {
	return &search{
		d:           d,
		tentativeUB: ub,
		mBlocks:     make(map[string]*mBlock),
		tBlocks:     make(map[string]*tBlock),
		pmcs:        make(map[string]*pmc),
		sieve:       blocksieve.New[*tBlock](d.g.N()),
	}
}

// run raises the target cost from 0 to the trial bound. At each target the
// PMC queue and the ready queue are drained alternately until no M-block is
// pending.
func (s *search) run() (*treedecomp.TreeDecomposition, bool, error) {
	g := s.d.g
	for v := 0; v < g.N(); v++ {
		cnb := g.ClosedNeighborSet(v)
		if _, seen := s.pmcs[vset.Key(cnb)]; seen || !s.d.isPMCCached(cnb) {
			continue
		}
		s.enqueue(s.newPMC(cnb))
	}

	for s.targetCost = 0; s.targetCost <= s.tentativeUB; s.targetCost++ {
		s.logProgress()
		for {
			var batch []*pmc
			for s.queue.Len() > 0 && s.queue[0].lowerBound <= s.targetCost {
				batch = append(batch, heap.Pop(&s.queue).(*pmc))
			}
			for _, p := range batch {
				s.process(p)
			}
			if len(s.ready) == 0 {
				break
			}
			for len(s.ready) > 0 {
				m := s.ready[0]
				s.ready[0] = nil
				s.ready = s.ready[1:]
				s.processMBlock(m)
			}
		}
		if s.err != nil {
			return nil, false, s.err
		}
		if s.solution != nil {
			td, err := s.reconstruct()

			return td, err == nil, err
		}
	}

	return nil, false, nil
}

// reconstruct walks from the solution through the endorsers of inbound
// blocks, one bag per PMC.
func (s *search) reconstruct() (*treedecomp.TreeDecomposition, error) {
	td := treedecomp.New(s.d.g.N())
	if _, err := s.addBags(td, s.solution); err != nil {
		return nil, err
	}

	return td, nil
}

func (s *search) addBags(td *treedecomp.TreeDecomposition, p *pmc) (int, error) {
	j := td.AddBag(p.separator)
	for _, b := range p.inbounds {
		m, ok := s.mBlocks[vset.Key(b.component)]
		if !ok || m.endorser == nil {
			return 0, fmt.Errorf("decomposer: reconstruct: component %v has no endorser: %w",
				vset.Slice(b.component), ErrInvariant)
		}
		k, err := s.addBags(td, m.endorser)
		if err != nil {
			return 0, err
		}
		td.AddEdge(j, k)
	}

	return j, nil
}

func (s *search) fail(format string, args ...any) {
	if s.err == nil {
		s.err = fmt.Errorf("decomposer: "+format+": %w", append(args, ErrInvariant)...)
	}
}

func (s *search) logProgress() {
	if !s.d.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.d.log.Debug("target cost",
		"n", s.d.g.N(),
		"cost", s.targetCost,
		"ub", s.tentativeUB,
		"tblocks", len(s.tBlocks),
		"sieve", s.sieve.Size(),
		"ready", len(s.ready),
		"endorsed", len(s.mBlocks),
		"pending", s.queue.Len(),
		"blocks", len(s.d.blocks),
	)
}
