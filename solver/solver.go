// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Solver, Result and the recursive split into independent pieces.

package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/minfill/core"
	"github.com/katalvlaran/minfill/decomposer"
	"github.com/katalvlaran/minfill/flow"
	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/logging"
	"github.com/katalvlaran/minfill/treedecomp"
	"github.com/katalvlaran/minfill/vset"
)

// ErrInfeasible is returned when the minimum fill exceeds the bound set by
// WithUpperBound.
var ErrInfeasible = errors.New("solver: minimum fill exceeds upper bound")

// Result is a minimum fill-in of a graph.
type Result struct {
	// Fill lists the added edges by label, sorted by (U, V).
	Fill []treedecomp.FillEdge

	// Cost is len(Fill).
	Cost int

	// Safe counts the edges of Fill added by safe separators.
	Safe int

	// Pieces counts the non-chordal pieces handed to the decomposer.
	Pieces int
}

// Solver computes minimum fill-ins. A Solver holds only configuration and
// may be reused; Solve calls must not run concurrently on the same graph.
type Solver struct {
	log                *logging.Logger
	decOpts            []decomposer.Option
	upperBound         int
	triangulationBound bool
}

// New returns a Solver with a silent logger and no upper bound.
func New(opts ...Option) *Solver {
	s := &Solver{log: logging.NoopLogger(), upperBound: -1}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// run is the state of one Solve call.
type run struct {
	*Solver
	ctx    context.Context
	fill   map[treedecomp.FillEdge]struct{}
	safe   int
	pieces int
	flow   flow.FlowOptions
}

// Solve returns a minimum fill-in of g. g is not modified.
//
// Errors: ErrInfeasible under WithUpperBound, the context error, or a
// wrapped decomposer.ErrInvariant.
func (s *Solver) Solve(ctx context.Context, g *graph.Graph) (*Result, error) {
	r := &run{
		Solver: s,
		ctx:    ctx,
		fill:   make(map[treedecomp.FillEdge]struct{}),
		flow:   flow.FlowOptions{Ctx: ctx},
	}
	log := s.log.WithGraph(g.N(), g.EdgeCount())
	log.DebugContext(ctx, "solve")

	for _, c := range g.Components(vset.New(g.N())) {
		if err := r.solveConnected(piece(g, c)); err != nil {
			return nil, err
		}
	}

	res := &Result{Safe: r.safe, Pieces: r.pieces}
	res.Fill = make([]treedecomp.FillEdge, 0, len(r.fill))
	for e := range r.fill {
		res.Fill = append(res.Fill, e)
	}
	treedecomp.SortFill(res.Fill)
	res.Cost = len(res.Fill)
	if s.upperBound >= 0 && res.Cost > s.upperBound {
		return nil, fmt.Errorf("solver: cost %d: %w", res.Cost, ErrInfeasible)
	}
	log.InfoContext(ctx, "solved",
		"cost", res.Cost,
		"safe", res.Safe,
		"pieces", res.Pieces,
	)

	return res, nil
}

// SolveCore converts an undirected core.Graph and solves it.
func (s *Solver) SolveCore(ctx context.Context, cg *core.Graph) (*Result, error) {
	g, err := graph.FromCore(cg)
	if err != nil {
		return nil, fmt.Errorf("solver: SolveCore: %w", err)
	}

	return s.Solve(ctx, g)
}

func (r *run) solveConnected(g *graph.Graph) error {
	if g.N() <= 3 {
		return nil
	}
	for _, b := range g.BiconnectedComponents() {
		if err := r.solveBiconnected(piece(g, b)); err != nil {
			return err
		}
	}

	return nil
}

// solveBiconnected splits g along one safe separator and recurses on every
// component with the separator, now a clique, attached.
func (r *run) solveBiconnected(g *graph.Graph) error {
	if g.N() <= 3 {
		return nil
	}
	if err := r.ctx.Err(); err != nil {
		return err
	}
	sep, err := r.safeSeparator(g)
	if err != nil {
		return err
	}
	if sep == nil {
		return r.solveComponent(g)
	}
	comps := g.Components(sep)
	if len(comps) == 1 {
		return r.solveComponent(g)
	}
	for _, c := range comps {
		if err := r.solveBiconnected(piece(g, c.Union(sep))); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) solveComponent(g *graph.Graph) error {
	if g.N() <= 3 {
		return nil
	}
	atoms := g.CliqueSeparatorComponents()
	if len(atoms) == 1 {
		return r.solveReduced(g)
	}
	for _, a := range atoms {
		if err := r.solveReduced(piece(g, a)); err != nil {
			return err
		}
	}

	return nil
}

// solveReduced hands a non-chordal piece to the decomposer.
func (r *run) solveReduced(g *graph.Graph) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if g.IsChordal() {
		return nil
	}
	r.pieces++
	log := r.log.WithComponent(g.Label(0)).WithGraph(g.N(), g.EdgeCount())

	ub := -1
	if r.triangulationBound {
		ub = triangulationFill(g)
	}
	if r.upperBound >= 0 {
		remaining := r.upperBound - len(r.fill)
		if remaining < 0 {
			return fmt.Errorf("solver: %w", ErrInfeasible)
		}
		if ub < 0 || remaining < ub {
			ub = remaining
		}
	}

	opts := append([]decomposer.Option{decomposer.WithLogger(log)}, r.decOpts...)
	d := decomposer.New(g, opts...)
	td, err := d.Decompose(ub)
	if errors.Is(err, decomposer.ErrInfeasible) {
		err = fmt.Errorf("solver: piece %s: %w", g.Label(0), ErrInfeasible)
	}
	log.LogSolved(r.ctx, "decompose", d.OptimalCost(), err)
	if err != nil {
		return err
	}
	for _, e := range td.ComputeFill(g) {
		r.fill[e] = struct{}{}
	}

	return nil
}

// triangulationFill counts the edges MCS-M adds to g.
func triangulationFill(g *graph.Graph) int {
	_, filled := g.MinimalTriangulation()
	total := 0
	for _, row := range filled {
		total += int(row.Count())
	}

	return total/2 - g.EdgeCount()
}

// piece returns G[s] without its simplicial vertices.
func piece(g *graph.Graph, s *bitset.BitSet) *graph.Graph {
	h, _ := g.Induced(reduceSimplicial(g, s))

	return h
}

// reduceSimplicial drops every vertex of s whose neighborhood inside s is a
// clique, until none is left. Removing a simplicial vertex never changes
// the minimum fill.
func reduceSimplicial(g *graph.Graph, s *bitset.BitSet) *bitset.BitSet {
	res := s.Clone()
	for {
		removed := false
		cur := res.Clone()
		for v, ok := cur.NextSet(0); ok; v, ok = cur.NextSet(v + 1) {
			if g.IsClique(g.Neighbors(int(v)).Intersection(cur)) {
				res.Clear(v)
				removed = true
			}
		}
		if !removed {
			return res
		}
	}
}
