// SPDX-License-Identifier: MIT

package router

// solveFloydWarshall relaxes every (i, j) through every intermediate k.
//
// Loop order is fixed (k → i → j) and only strict improvements are stored,
// so the table is deterministic for a given graph.
// Time: O(n³); no allocations inside the loops.
func (r *Router) solveFloydWarshall() {
	n := r.n
	data := r.routes

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       routeData
		ij           *routeData
		cand         float64
	)

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if !ik.known { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if !kj.known { // k cannot reach j
					continue
				}

				cand = ik.weight + kj.weight
				ij = &data[baseI+j]
				if ij.known && cand >= ij.weight {
					continue
				}

				ij.weight = cand
				ij.known = true
				// The last edge comes from the k→j half unless that half is empty.
				if kj.hasLast {
					ij.last, ij.hasLast = kj.last, true
				} else {
					ij.last, ij.hasLast = ik.last, ik.hasLast
				}
			}
		}
	}
}
