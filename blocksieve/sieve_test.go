// SPDX-License-Identifier: MIT

package blocksieve_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minfill/blocksieve"
	"github.com/katalvlaran/minfill/vset"
)

func TestPut_Idempotent(t *testing.T) {
	s := blocksieve.New[string](10)
	_, ok := s.Put(vset.Of(10, 1, 3), "first")
	require.False(t, ok)
	prev, ok := s.Put(vset.Of(10, 1, 3), "second")
	require.True(t, ok)
	assert.Equal(t, "first", prev)
	assert.Equal(t, 1, s.Size())

	_, ok = s.Put(vset.New(10), "empty")
	require.False(t, ok)
	assert.Equal(t, 2, s.Size())
}

func TestCollect_Small(t *testing.T) {
	s := blocksieve.New[int](8)
	keys := [][]int{{0, 1, 2}, {1, 2}, {2}, {3, 4}, {0, 1, 2, 3, 4}}
	for i, k := range keys {
		s.Put(vset.Of(8, k...), i)
	}
	got := s.CollectSuperblocks(vset.Of(8, 1, 2), nil)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 4}, got)

	got = s.CollectSubblocks(vset.Of(8, 0, 1, 2, 5), nil)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2}, got)

	assert.Len(t, s.CollectSuperblocks(vset.New(8), nil), len(keys))
	assert.Empty(t, s.CollectSuperblocks(vset.Of(8, 7), nil))
}

func TestCollectSuperblocks_ContainmentOnly(t *testing.T) {
	s := blocksieve.New[int](64)
	extras := []int{0, 3, 7, 31, 32, 63}
	for i, x := range extras {
		s.Put(vset.Of(64, 1, 2, x), i)
	}
	s.Put(vset.Of(64, 1, 5), 100)

	got := s.CollectSuperblocks(vset.Of(64, 1, 2), nil)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got, "every superset, wherever its extra vertex lies")
}

func TestCollect_AppendsToOut(t *testing.T) {
	s := blocksieve.New[int](4)
	s.Put(vset.Of(4, 0), 1)
	out := s.CollectSuperblocks(vset.Of(4, 0), []int{42})
	assert.Equal(t, []int{42, 1}, out)
}

type sieveCase struct {
	n, count       int
	density, query float64
}

func randomSet(rng *rand.Rand, n int, p float64) *bitset.BitSet {
	b := vset.New(n)
	for v := 0; v < n; v++ {
		if rng.Float64() < p {
			b.Set(uint(v))
		}
	}

	return b
}

// TestCollect_MatchesBruteForce fills sieves large enough to split nodes
// and checks both queries against a linear scan.
func TestCollect_MatchesBruteForce(t *testing.T) {
	cases := []sieveCase{
		{n: 10, count: 300, density: 0.5, query: 0.3},
		{n: 70, count: 3000, density: 0.5, query: 0.2},
		{n: 130, count: 4000, density: 0.3, query: 0.1},
		{n: 200, count: 2000, density: 0.85, query: 0.6},
		{n: 64, count: 2000, density: 0.5, query: 0.2},
	}
	rng := rand.New(rand.NewSource(1))
	for _, tc := range cases {
		s := blocksieve.New[int](tc.n)
		var stored []*bitset.BitSet
		byKey := map[string]int{}
		for i := 0; i < tc.count; i++ {
			k := randomSet(rng, tc.n, tc.density)
			prev, ok := s.Put(k, len(stored))
			if first, seen := byKey[vset.Key(k)]; seen {
				require.True(t, ok)
				require.Equal(t, first, prev)
				continue
			}
			require.False(t, ok)
			byKey[vset.Key(k)] = len(stored)
			stored = append(stored, k)
		}
		require.Equal(t, len(stored), s.Size())

		for q := 0; q < 100; q++ {
			p := tc.query
			if q%2 == 1 {
				p = 1 - tc.query
			}
			query := randomSet(rng, tc.n, p)

			var wantSuper, wantSub []int
			for i, k := range stored {
				if k.IsSuperSet(query) {
					wantSuper = append(wantSuper, i)
				}
				if query.IsSuperSet(k) {
					wantSub = append(wantSub, i)
				}
			}
			gotSuper := s.CollectSuperblocks(query, nil)
			gotSub := s.CollectSubblocks(query, nil)
			sort.Ints(gotSuper)
			sort.Ints(gotSub)
			assert.Equal(t, wantSuper, gotSuper, "n=%d superset", tc.n)
			assert.Equal(t, wantSub, gotSub, "n=%d subset", tc.n)
		}
	}
}

func BenchmarkCollectSuperblocks(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	const n = 150
	s := blocksieve.New[int](n)
	for i := 0; i < 5000; i++ {
		s.Put(randomSet(rng, n, 0.6), i)
	}
	queries := make([]*bitset.BitSet, 64)
	for i := range queries {
		queries[i] = randomSet(rng, n, 0.2)
	}
	b.ResetTimer()
	var out []int
	for i := 0; i < b.N; i++ {
		out = s.CollectSuperblocks(queries[i%len(queries)], out[:0])
	}
}
