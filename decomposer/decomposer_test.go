// SPDX-License-Identifier: MIT

package decomposer_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minfill/decomposer"
	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/internal/fillcheck"
	"github.com/katalvlaran/minfill/logging"
)

func TestDecompose_Square(t *testing.T) {
	g := cycle(4)
	d := decomposer.New(g)
	td, err := d.Decompose(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, d.OptimalCost())
	require.Equal(t, 2, td.Len())
	require.NoError(t, td.Validate(g))

	bags := td.Bags()
	chordA := [][]int{{0, 1, 2}, {0, 2, 3}}
	chordB := [][]int{{0, 1, 3}, {1, 2, 3}}
	assert.True(t,
		assert.ObjectsAreEqual(chordA, bags) || assert.ObjectsAreEqual(chordB, bags) ||
			assert.ObjectsAreEqual([][]int{chordA[1], chordA[0]}, bags) ||
			assert.ObjectsAreEqual([][]int{chordB[1], chordB[0]}, bags),
		"unexpected bags %v", bags)
	assert.Len(t, td.ComputeFill(g), 1)
}

func TestDecompose_ChordalGraphsCostNothing(t *testing.T) {
	tree := fromEdges(7, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {5, 6}})
	fan := fromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 2}, {0, 3}, {0, 4}, {0, 5}})
	complete := graph.New(5)
	for u := 0; u < 5; u++ {
		for w := u + 1; w < 5; w++ {
			complete.AddEdge(u, w)
		}
	}
	for name, g := range map[string]*graph.Graph{"tree": tree, "fan": fan, "complete": complete, "single": graph.New(1)} {
		t.Run(name, func(t *testing.T) {
			d := decomposer.New(g)
			td, err := d.Decompose(-1)
			require.NoError(t, err)
			assert.Equal(t, 0, d.OptimalCost())
			assert.Empty(t, td.ComputeFill(g))
			require.NoError(t, td.Validate(g))
		})
	}
}

func TestDecompose_EmptyGraph(t *testing.T) {
	d := decomposer.New(graph.New(0))
	td, err := d.Decompose(-1)
	require.NoError(t, err)
	assert.Equal(t, 0, td.Len())
	assert.Equal(t, 0, d.OptimalCost())
}

func TestDecompose_FixedBound(t *testing.T) {
	g := cycle(6)
	d := decomposer.New(g)
	assert.Equal(t, -1, d.OptimalCost())

	_, err := d.Decompose(2)
	require.ErrorIs(t, err, decomposer.ErrInfeasible)
	assert.Equal(t, -1, d.OptimalCost())

	for _, ub := range []int{3, 4, 7} {
		td, err := d.Decompose(ub)
		require.NoError(t, err, "ub=%d", ub)
		assert.Equal(t, 3, d.OptimalCost(), "ub=%d", ub)
		require.NoError(t, td.Validate(g))
	}
}

func TestDecompose_Growth(t *testing.T) {
	g := fromEdges(8, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 2},
	})
	for _, growth := range []decomposer.Growth{decomposer.GrowthAdditive, decomposer.GrowthDoubling} {
		d := decomposer.New(g, decomposer.WithGrowth(growth))
		_, err := d.Decompose(-1)
		require.NoError(t, err, growth.String())
		assert.Equal(t, 3, d.OptimalCost(), growth.String())
	}
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { decomposer.WithGrowth(decomposer.Growth(9)) })
	require.Panics(t, func() { decomposer.WithLogger(nil) })
	require.Panics(t, func() { decomposer.WithMaxCycleLength(2) })
	assert.Equal(t, "unknown", decomposer.Growth(9).String())
}

func TestDecompose_LogsProgress(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "text", slog.LevelDebug)
	require.NoError(t, err)
	d := decomposer.New(cycle(5), decomposer.WithLogger(l), decomposer.WithMaxCycleLength(6))
	_, err = d.Decompose(-1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=\"target cost\"")
	assert.Contains(t, buf.String(), "endorsed=")
}

// OptimalitySuite cross-checks the engine against the exhaustive minimum.
type OptimalitySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *OptimalitySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(11))
}

func (s *OptimalitySuite) check(g *graph.Graph) {
	want := fillcheck.MinFill(g)
	d := decomposer.New(g)
	td, err := d.Decompose(-1)
	s.Require().NoError(err)
	s.Require().Equal(want, d.OptimalCost())
	s.Require().NoError(td.Validate(g))

	fill := td.ComputeFill(g)
	s.Require().Len(fill, want, "the fill of the bags is the optimum")
	s.Require().True(completed(g, td).IsChordal())
}

func (s *OptimalitySuite) TestRandomGraphs() {
	for trial := 0; trial < 120; trial++ {
		n := 2 + s.rng.Intn(10)
		p := []float64{0.2, 0.3, 0.45, 0.6}[trial%4]
		s.check(randomGraph(s.rng, n, p))
	}
}

func (s *OptimalitySuite) TestCycles() {
	for n := 4; n <= 10; n++ {
		s.check(cycle(n))
	}
}

func (s *OptimalitySuite) TestGrid() {
	g := graph.New(12)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			v := 4*r + c
			if c < 3 {
				g.AddEdge(v, v+1)
			}
			if r < 2 {
				g.AddEdge(v, v+4)
			}
		}
	}
	s.check(g)
}

func (s *OptimalitySuite) TestMonotoneInUpperBound() {
	for trial := 0; trial < 25; trial++ {
		g := randomGraph(s.rng, 5+s.rng.Intn(5), 0.35)
		opt := fillcheck.MinFill(g)
		for ub := 0; ub <= opt+2; ub++ {
			d := decomposer.New(g)
			td, err := d.Decompose(ub)
			if ub < opt {
				s.Require().ErrorIs(err, decomposer.ErrInfeasible)
				s.Require().Nil(td)
				continue
			}
			s.Require().NoError(err)
			s.Require().Equal(opt, d.OptimalCost(), "ub=%d", ub)
		}
	}
}

func TestOptimalitySuite(t *testing.T) {
	suite.Run(t, new(OptimalitySuite))
}

func TestDecompose_GraphChangesBetweenCalls(t *testing.T) {
	g := cycle(5)
	d := decomposer.New(g)
	_, err := d.Decompose(-1)
	require.NoError(t, err)
	assert.Equal(t, 2, d.OptimalCost())

	g.AddEdge(0, 2)
	td, err := d.Decompose(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, d.OptimalCost())
	require.NoError(t, td.Validate(g))
}

func TestDecompose_LargerSeparatorGraph(t *testing.T) {
	// Two 5-cycles sharing the vertex 0, plus a pendant path.
	g := fromEdges(11, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 0},
		{8, 9}, {9, 10},
	})
	d := decomposer.New(g)
	td, err := d.Decompose(-1)
	require.NoError(t, err)
	assert.Equal(t, 4, d.OptimalCost())
	require.NoError(t, td.Validate(g))
	assert.Len(t, td.ComputeFill(g), 4)
	for _, bag := range td.Bags() {
		assert.LessOrEqual(t, len(bag), 3, "bag %v", bag)
	}
}
