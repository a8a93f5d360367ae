// SPDX-License-Identifier: MIT
//
// File: dinic.go
// Role: Dinic's maximum flow (level graph + blocking flows).

package flow

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/minfill/core"
)

// Dinic computes the maximum flow from source to sink in g using Dinic's
// algorithm. Edge weights are capacities; undirected edges carry their
// capacity both ways.
//
// It returns the flow value and a directed residual graph of the remaining
// capacities. Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// EdgeError, or the context error.
//
// Steps:
//  1. Build the capacity map.
//  2. BFS from source to label levels; stop when sink is unreachable.
//  3. Push blocking flow along strictly increasing levels with a DFS that
//     remembers, per vertex, the next untried arc.
//  4. Export the residual graph.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (int64, *core.Graph, error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil, ErrSameEndpoints
	}

	capMap, err := buildCapMap(ctx, g)
	if err != nil {
		return 0, nil, err
	}

	var maxFlow int64
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, c := range capMap[u] {
				if c > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for v, c := range nbrs {
				if c > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make(map[string]int, len(next))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := push(ctx, capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Logger.Enabled(ctx, slog.LevelDebug) {
				opts.Logger.DebugContext(ctx, "augment",
					slog.Int64("pushed", pushed),
					slog.Int64("total", maxFlow))
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	residual, err := buildResidual(capMap, g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// push sends at most available units from u to sink along the level graph
// and returns the amount sent. capMap is updated in place.
func push(
	ctx context.Context,
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		v := next[u][i]
		c := capMap[u][v]
		if c > 0 {
			pushed := push(ctx, capMap, next, iter, v, sink, min(available, c))
			if pushed > 0 {
				capMap[u][v] -= pushed
				capMap[v][u] += pushed

				return pushed
			}
		}
		iter[u] = i + 1
	}

	return 0
}
