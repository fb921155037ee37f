package lattice

import "container/heap"

// pathState is one partial backward path explored by BackwardAStar: the
// arena index of the node currently at its head, the cost accumulated so
// far walking backward from EOS, and the nodes visited along the way
// (sentinels excluded), stored in visiting order (EOS-ward first).
type pathState struct {
	nodeIdx     int
	accumulated int32
	path        []Node
}

// priority is the path's f-score: cost accumulated from EOS, plus
// nodes[nodeIdx].MinCost as an admissible estimate of the remaining cost
// back to BOS. MinCost is the true optimal BOS-to-node cost computed
// during the forward pass, so it never overestimates any real path
// through this node — the A* search explores states in non-decreasing
// total-path-cost order.
func (l *Lattice) priority(s pathState) int32 {
	return s.accumulated + l.nodes[s.nodeIdx].MinCost
}

type stateHeap struct {
	l      *Lattice
	states []pathState
}

func (h *stateHeap) Len() int { return len(h.states) }
func (h *stateHeap) Less(i, j int) bool {
	return h.l.priority(h.states[i]) < h.l.priority(h.states[j])
}
func (h *stateHeap) Swap(i, j int) { h.states[i], h.states[j] = h.states[j], h.states[i] }
func (h *stateHeap) Push(x any)    { h.states = append(h.states, x.(pathState)) }
func (h *stateHeap) Pop() any {
	old := h.states
	n := len(old)
	v := old[n-1]
	h.states = old[:n-1]
	return v
}

// BackwardAStar extracts up to n complete BOS-to-EOS paths in increasing
// order of total cost, using an A* search anchored on the admissible
// MinCost estimates left behind by the forward Viterbi pass (Add/End).
// The first returned path is identical to Backward's result.
func (l *Lattice) BackwardAStar(n int) [][]Node {
	if n <= 0 {
		return nil
	}

	h := &stateHeap{l: l}
	heap.Init(h)
	heap.Push(h, pathState{nodeIdx: l.eosIndex})

	var results [][]Node
	for h.Len() > 0 && len(results) < n {
		s := heap.Pop(h).(pathState)
		cur := &l.nodes[s.nodeIdx]

		if cur.IsBOS() {
			path := make([]Node, len(s.path))
			copy(path, s.path)
			results = append(results, path)
			continue
		}

		nextPath := s.path
		if !cur.IsEOS() {
			nextPath = make([]Node, len(s.path)+1)
			copy(nextPath, s.path)
			nextPath[len(s.path)] = *cur
		}

		for _, predIdx := range l.predecessorsAt(cur.Pos) {
			pred := &l.nodes[predIdx]
			edgeCost := l.matrix.TransCost(uint16(pred.RightID), uint16(cur.LeftID)) + cur.Cost
			heap.Push(h, pathState{
				nodeIdx:     predIdx,
				accumulated: s.accumulated + edgeCost,
				path:        nextPath,
			})
		}
	}

	for i, path := range results {
		rev := make([]Node, len(path))
		for j, node := range path {
			rev[len(path)-1-j] = node
		}
		results[i] = rev
	}
	return results
}
