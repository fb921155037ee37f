// Package dijkstra implements a brute-force single-source shortest-path
// search over a dense, implicitly-defined vertex set.
//
// It exists as an independent oracle for lattice's property tests: a
// lattice's Viterbi forward pass computes the same BOS→EOS minimum cost
// incrementally and far more efficiently, but on the small synthetic
// lattices built by internal/testdict, recomputing the answer from scratch
// with a completely different algorithm is a cheap way to catch a Viterbi
// bug that a handwritten expected value would not.
package dijkstra

// ShortestPath finds the minimum-cost path from vertex 0 to vertex n in a
// dense graph on vertices 0..n with non-negative edge weights, where
// cost(i, j) gives the edge weight from i to j for any 0 <= i < j <= n. It
// returns the total cost and the sequence of vertices visited, starting at
// 0 and ending at n.
func ShortestPath(cost func(i, j int) int, n int) (int, []int) {
	dist := make([]int, n)
	to := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = cost(i, n)
		to[i] = n
	}

	done := make([]bool, n)
	pos := n
	for pos > 0 {
		bestNode, bestDist := -1, 0
		for i := 0; i < n; i++ {
			if !done[i] && (bestNode < 0 || dist[i] < bestDist) {
				bestNode = i
				bestDist = dist[i]
			}
		}
		pos = bestNode
		done[pos] = true

		for i := 0; i < pos; i++ {
			alt := bestDist + cost(i, pos)
			if alt < dist[i] {
				dist[i] = alt
				to[i] = pos
			}
		}
	}

	res := []int{0}
	pos = 0
	for pos < n {
		pos = to[pos]
		res = append(res, pos)
	}
	return dist[0], res
}
