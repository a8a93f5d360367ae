// SPDX-License-Identifier: MIT

package flow_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minfill/core"
	"github.com/katalvlaran/minfill/flow"
	"github.com/katalvlaran/minfill/logging"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

func network() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	g := network()
	_, _ = g.AddEdge("A", "B", 7)

	mf, res, err := flow.Dinic(g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
	require.False(s.T(), res.HasEdge("A", "B"), "forward edge should be saturated")
	require.True(s.T(), res.HasEdge("B", "A"), "reverse edge should carry the flow")
}

// TestMultiPath verifies max flow on two paths.
func (s *DinicSuite) TestMultiPath() {
	g := network()
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("C", "B", 3)

	mf, _, err := flow.Dinic(g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf)
}

// TestUndirected checks that undirected edges carry capacity both ways.
func (s *DinicSuite) TestUndirected() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("t", "a", 2)
	_, _ = g.AddEdge("a", "s", 3)
	_, _ = g.AddEdge("s", "t", 1)

	mf, _, err := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *DinicSuite) TestZeroCapacity() {
	g := network()
	_, _ = g.AddEdge("X", "Y", 0)

	mf, _, err := flow.Dinic(g, "X", "Y", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
}

// TestNegativeCapacity reports an EdgeError.
func (s *DinicSuite) TestNegativeCapacity() {
	g := network()
	_, _ = g.AddEdge("X", "Y", -2)

	_, _, err := flow.Dinic(g, "X", "Y", flow.DefaultOptions())
	var ee flow.EdgeError
	require.ErrorAs(s.T(), err, &ee)
	require.Equal(s.T(), int64(-2), ee.Cap)
}

// TestLevelRebuildInterval ensures forced rebuilds do not change the result.
func (s *DinicSuite) TestLevelRebuildInterval() {
	g := network()
	_, _ = g.AddEdge("S", "A", 2)
	_, _ = g.AddEdge("S", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "T", 2)

	opts1 := flow.DefaultOptions()
	opts1.LevelRebuildInterval = 1
	mf1, _, err1 := flow.Dinic(g, "S", "T", opts1)
	require.NoError(s.T(), err1)

	mf2, _, err2 := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(s.T(), err2)

	require.Equal(s.T(), mf1, mf2)
	require.Equal(s.T(), int64(2), mf1)
}

// TestNeedsReverseArc needs to cancel flow on an arc to reach the optimum.
func (s *DinicSuite) TestNeedsReverseArc() {
	g := network()
	_, _ = g.AddEdge("s", "a", 1)
	_, _ = g.AddEdge("s", "b", 1)
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("a", "t", 1)
	_, _ = g.AddEdge("b", "t", 1)

	mf, _, err := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)
}

// TestContextCancelled ensures an expired context aborts the run.
func (s *DinicSuite) TestContextCancelled() {
	g := network()
	prev := "V0"
	for i := 1; i < 100; i++ {
		cur := fmt.Sprintf("V%d", i)
		_, _ = g.AddEdge(prev, cur, 1)
		prev = cur
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	_, _, err := flow.Dinic(g, "V0", prev, opts)
	require.True(s.T(), errors.Is(err, context.DeadlineExceeded))
}

// TestResidualIntegrity checks that forward and reverse residuals add up to
// the original capacities.
func (s *DinicSuite) TestResidualIntegrity() {
	g := network()
	_, _ = g.AddEdge("A", "B", 8)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("C", "D", 2)
	_, _ = g.AddEdge("A", "D", 1)

	mf, res, err := flow.Dinic(g, "A", "D", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)

	residual := func(u, v string) int64 {
		edges, err := res.Neighbors(u)
		require.NoError(s.T(), err)
		for _, e := range edges {
			if e.To == v {
				return e.Weight
			}
		}
		return 0
	}
	for _, e := range g.Edges() {
		require.Equal(s.T(), e.Weight, residual(e.From, e.To)+residual(e.To, e.From),
			"edge %s→%s", e.From, e.To)
	}
	require.Equal(s.T(), int64(6), residual("A", "B"))
}

// TestSourceSinkErrors covers missing or identical endpoints.
func (s *DinicSuite) TestSourceSinkErrors() {
	g := network()
	_ = g.AddVertex("A")

	_, _, err := flow.Dinic(g, "X", "A", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, _, err = flow.Dinic(g, "A", "Z", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, _, err = flow.Dinic(g, "A", "A", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSameEndpoints)
}

// TestZeroOptions runs with a zero FlowOptions and a debug logger.
func (s *DinicSuite) TestZeroOptions() {
	g := network()
	_, _ = g.AddEdge("A", "B", 3)

	_, _, err := flow.Dinic(g, "A", "B", flow.FlowOptions{})
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	log, err := logging.New(&buf, "text", slog.LevelDebug)
	require.NoError(s.T(), err)
	_, _, err = flow.Dinic(g, "A", "B", flow.FlowOptions{Logger: log})
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "augment")
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
