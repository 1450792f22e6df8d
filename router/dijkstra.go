// SPDX-License-Identifier: MIT

package router

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/transport-catalogue/graph"
)

// solveDijkstra fills the route table with one single-source run per vertex.
// Vertices never settled from a source stay unknown in that source's row.
//
// Steps:
//  1. Snapshot the outgoing edge ids of every vertex.
//  2. For each source s, run a lazy-deletion Dijkstra over the shared runner.
//  3. Copy settled distances and predecessor edges into row s.
//
// Complexity:
//
//	Time:   O(V · (V + E) · log V).
//	Memory: O(V + E) beyond the V² route table; the runner is reused.
func (r *Router) solveDijkstra(g *graph.Graph) {
	// 1) Adjacency by edge id.
	adj := make([][]graph.EdgeID, r.n)
	for v := 0; v < r.n; v++ {
		adj[v], _ = g.IncidentEdges(graph.VertexID(v)) // v is in range by construction
	}

	run := &runner{
		edges:   r.edges,
		adj:     adj,
		dist:    make([]float64, r.n),
		prev:    make([]graph.EdgeID, r.n),
		visited: make([]bool, r.n),
		pq:      make(nodePQ, 0, r.n),
	}

	for s := 0; s < r.n; s++ {
		// 2) Single-source search from s.
		run.process(graph.VertexID(s))

		// 3) Unsettled vertices stay unknown.
		row := r.routes[s*r.n : (s+1)*r.n]
		for v := 0; v < r.n; v++ {
			if !run.visited[v] {
				continue
			}
			row[v] = routeData{weight: run.dist[v], known: true}
			if v != s {
				row[v].last, row[v].hasLast = run.prev[v], true
			}
		}
	}
}

// runner holds the reusable state of a single-source search.
type runner struct {
	edges   []graph.Edge
	adj     [][]graph.EdgeID
	dist    []float64
	prev    []graph.EdgeID // edge that settled the vertex
	visited []bool
	pq      nodePQ
}

// process runs Dijkstra from source, resetting all per-run state first.
// Complexity: O((V + E) · log V) per call.
func (s *runner) process(source graph.VertexID) {
	// 1) Reset per-run state.
	for v := range s.dist {
		s.dist[v] = math.Inf(1)
		s.prev[v] = -1
		s.visited[v] = false
	}
	s.pq = s.pq[:0]

	// 2) Seed the queue with the source.
	s.dist[source] = 0
	heap.Push(&s.pq, nodeItem{id: source, dist: 0})

	// 3) Settle the closest vertex, then relax its outgoing edges.
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		u := item.id
		if s.visited[u] { // stale entry
			continue
		}
		s.visited[u] = true

		for _, eid := range s.adj[u] {
			e := s.edges[eid]
			if s.visited[e.To] {
				continue
			}
			newDist := s.dist[u] + e.Weight
			// strict improvement only: first settled predecessor keeps ties
			if newDist >= s.dist[e.To] {
				continue
			}
			s.dist[e.To] = newDist
			s.prev[e.To] = eid
			heap.Push(&s.pq, nodeItem{id: e.To, dist: newDist})
		}
	}
}

// nodeItem is a heap entry.
type nodeItem struct {
	id   graph.VertexID
	dist float64
}

// nodePQ is a min-heap ordered by dist, then by vertex id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
