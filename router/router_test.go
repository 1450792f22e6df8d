// SPDX-License-Identifier: MIT

package router_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transport-catalogue/graph"
	"github.com/katalvlaran/transport-catalogue/router"
)

var strategies = []router.Strategy{router.StrategyFloydWarshall, router.StrategyDijkstra}

// mustGraph builds a graph with n vertices and the given edges (ids follow order).
func mustGraph(t testing.TB, n int, edges ...graph.Edge) *graph.Graph {
	t.Helper()

	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e)
		require.NoError(t, err)
	}

	return g
}

// requireValidPath checks that res is a connected from→to walk of matching weight.
func requireValidPath(t *testing.T, g *graph.Graph, from, to graph.VertexID, res router.PathResult) {
	t.Helper()

	cur := from
	sum := 0.0
	for _, id := range res.Edges {
		e, err := g.Edge(id)
		require.NoError(t, err)
		require.Equal(t, cur, e.From, "path is not connected at edge %d", id)
		sum += e.Weight
		cur = e.To
	}
	require.Equal(t, to, cur, "path must end at destination")
	require.InDelta(t, res.Weight, sum, 1e-9)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestBuild_NilGraph(t *testing.T) {
	_, err := router.Build(nil)
	require.ErrorIs(t, err, router.ErrNilGraph)
}

func TestBuild_UnknownStrategy(t *testing.T) {
	_, err := router.Build(mustGraph(t, 1), router.WithStrategy(router.Strategy(42)))
	require.ErrorIs(t, err, router.ErrUnknownStrategy)
}

func TestBuild_NegativeWeight(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g := mustGraph(t, 2, graph.Edge{From: 0, To: 1, Weight: 1}, graph.Edge{From: 1, To: 0, Weight: -0.5})
			r, err := router.Build(g, router.WithStrategy(s))
			require.ErrorIs(t, err, router.ErrNegativeWeight)
			require.Contains(t, err.Error(), "edge 1")
			require.Nil(t, r)
		})
	}
}

func TestBuild_InvalidWeight(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		g := mustGraph(t, 2, graph.Edge{From: 0, To: 1, Weight: w})
		_, err := router.Build(g)
		require.ErrorIs(t, err, router.ErrInvalidWeight, "weight %v", w)
	}
}

// ------------------------------------------------------------------------
// 2. Queries
// ------------------------------------------------------------------------

func TestRoute_Triangle(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g := mustGraph(t, 3,
				graph.Edge{From: 0, To: 1, Weight: 1}, // e0
				graph.Edge{From: 1, To: 2, Weight: 2}, // e1
				graph.Edge{From: 0, To: 2, Weight: 5}, // e2
			)
			r, err := router.Build(g, router.WithStrategy(s))
			require.NoError(t, err)

			res, ok := r.Route(0, 2)
			require.True(t, ok)
			assert.Equal(t, 3.0, res.Weight)
			assert.Equal(t, []graph.EdgeID{0, 1}, res.Edges)

			// directed: no way back
			_, ok = r.Route(2, 0)
			assert.False(t, ok)

			w, ok := r.Weight(0, 1)
			require.True(t, ok)
			assert.Equal(t, 1.0, w)
		})
	}
}

func TestRoute_SelfIsTrivial(t *testing.T) {
	for _, s := range strategies {
		g := mustGraph(t, 2, graph.Edge{From: 0, To: 1, Weight: 3}, graph.Edge{From: 1, To: 0, Weight: 3})
		r, err := router.Build(g, router.WithStrategy(s))
		require.NoError(t, err)

		res, ok := r.Route(0, 0)
		require.True(t, ok, s.String())
		assert.Zero(t, res.Weight)
		assert.Empty(t, res.Edges)
	}
}

func TestRoute_UnreachableAndOutOfRange(t *testing.T) {
	r, err := router.Build(mustGraph(t, 3, graph.Edge{From: 0, To: 1, Weight: 1}))
	require.NoError(t, err)
	require.Equal(t, 3, r.VertexCount())

	_, ok := r.Route(0, 2)
	assert.False(t, ok)
	_, ok = r.Route(-1, 0)
	assert.False(t, ok)
	_, ok = r.Route(0, 3)
	assert.False(t, ok)
	_, ok = r.Weight(3, 3)
	assert.False(t, ok)
}

func TestRoute_EmptyGraph(t *testing.T) {
	r, err := router.Build(mustGraph(t, 0))
	require.NoError(t, err)

	_, ok := r.Route(0, 0)
	require.False(t, ok)
}

func TestRoute_ParallelEdgesCheapestWins(t *testing.T) {
	g := mustGraph(t, 2,
		graph.Edge{From: 0, To: 1, Weight: 4}, // e0
		graph.Edge{From: 0, To: 1, Weight: 2}, // e1
		graph.Edge{From: 0, To: 1, Weight: 2}, // e2, tie: e1 keeps the cell
	)
	r, err := router.Build(g)
	require.NoError(t, err)

	res, ok := r.Route(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, res.Weight)
	assert.Equal(t, []graph.EdgeID{1}, res.Edges)
}

func TestRoute_ZeroWeightChain(t *testing.T) {
	for _, s := range strategies {
		g := mustGraph(t, 4,
			graph.Edge{From: 0, To: 1, Weight: 0},
			graph.Edge{From: 1, To: 2, Weight: 0},
			graph.Edge{From: 2, To: 1, Weight: 0}, // zero-weight cycle
			graph.Edge{From: 2, To: 3, Weight: 1},
		)
		r, err := router.Build(g, router.WithStrategy(s))
		require.NoError(t, err)

		res, ok := r.Route(0, 3)
		require.True(t, ok, s.String())
		assert.Equal(t, 1.0, res.Weight)
		requireValidPath(t, g, 0, 3, res)
	}
}

func TestRoute_LongerPathBeatsDirectEdge(t *testing.T) {
	// 0→1→2→3 costs 3, direct 0→3 costs 10.
	g := mustGraph(t, 4,
		graph.Edge{From: 0, To: 3, Weight: 10},
		graph.Edge{From: 0, To: 1, Weight: 1},
		graph.Edge{From: 1, To: 2, Weight: 1},
		graph.Edge{From: 2, To: 3, Weight: 1},
	)
	for _, s := range strategies {
		r, err := router.Build(g, router.WithStrategy(s))
		require.NoError(t, err)

		res, ok := r.Route(0, 3)
		require.True(t, ok)
		assert.Equal(t, []graph.EdgeID{1, 2, 3}, res.Edges, s.String())
	}
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// randomGraph builds a directed graph with roughly p·n² edges, integer weights in [1, 9].
func randomGraph(t testing.TB, n int, p float64, seed int64) *graph.Graph {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	g := mustGraph(t, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if rng.Float64() < p {
				_, err := g.AddEdge(graph.Edge{From: graph.VertexID(u), To: graph.VertexID(v), Weight: 1 + math.Floor(rng.Float64()*9)})
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestStrategies_AgreeOnWeightsAndPathsAreValid(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, 25, 0.12, seed)

		fw, err := router.Build(g)
		require.NoError(t, err)
		dj, err := router.Build(g, router.WithStrategy(router.StrategyDijkstra))
		require.NoError(t, err)

		for u := 0; u < g.VertexCount(); u++ {
			for v := 0; v < g.VertexCount(); v++ {
				from, to := graph.VertexID(u), graph.VertexID(v)
				a, okA := fw.Route(from, to)
				b, okB := dj.Route(from, to)
				require.Equal(t, okA, okB, "reachability %d→%d (seed %d)", u, v, seed)
				if !okA {
					continue
				}
				require.InDelta(t, a.Weight, b.Weight, 1e-9, "weight %d→%d (seed %d)", u, v, seed)
				requireValidPath(t, g, from, to, a)
				requireValidPath(t, g, from, to, b)
			}
		}
	}
}

func TestRoute_Deterministic(t *testing.T) {
	g := randomGraph(t, 20, 0.2, 7)

	r1, err := router.Build(g)
	require.NoError(t, err)
	r2, err := router.Build(g)
	require.NoError(t, err)

	for u := 0; u < 20; u++ {
		for v := 0; v < 20; v++ {
			a, okA := r1.Route(graph.VertexID(u), graph.VertexID(v))
			b, okB := r1.Route(graph.VertexID(u), graph.VertexID(v))
			c, okC := r2.Route(graph.VertexID(u), graph.VertexID(v))
			require.Equal(t, okA, okB)
			require.Equal(t, okA, okC)
			require.Equal(t, a, b)
			require.Equal(t, a, c)
		}
	}
}

func TestRoute_ConcurrentReaders(t *testing.T) {
	g := randomGraph(t, 30, 0.1, 3)
	r, err := router.Build(g)
	require.NoError(t, err)

	want := make(map[[2]int]router.PathResult)
	for u := 0; u < 30; u++ {
		for v := 0; v < 30; v++ {
			if res, ok := r.Route(graph.VertexID(u), graph.VertexID(v)); ok {
				want[[2]int{u, v}] = res
			}
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key, exp := range want {
				got, ok := r.Route(graph.VertexID(key[0]), graph.VertexID(key[1]))
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			}
		}()
	}
	wg.Wait()
}
