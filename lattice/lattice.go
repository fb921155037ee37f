package lattice

import "yomu.dev/go/morph/dic"

// Lattice is an arena of Nodes plus, for every byte position reachable in
// the input, the indices of nodes that start there and the indices of
// nodes that end there. Nodes are never shared by pointer or reference
// count: every edge in the DAG is expressed purely through (pos, index)
// coordinates back into the arena, so the whole structure is just two
// position-keyed maps of int slices over one flat []Node.
type Lattice struct {
	nodes []Node

	startsAt map[int][]int // pos -> arena indices of nodes beginning at pos
	endsAt   map[int][]int // pos -> arena indices of nodes ending at pos

	matrix *dic.Matrix

	eosPos   int // set by End
	eosIndex int
}

// New creates an empty lattice seeded with the BOS sentinel at position 0.
func New(matrix *dic.Matrix) *Lattice {
	l := &Lattice{
		startsAt: make(map[int][]int),
		endsAt:   make(map[int][]int),
		matrix:   matrix,
	}
	bos := bosNode()
	l.nodes = append(l.nodes, bos)
	// BOS must be addressable as a back-trace target (startsAt) as well as
	// a relaxation predecessor (endsAt): every other node's (Pos, Index)
	// coordinate is only ever resolved through startsAt, and BOS is no
	// exception once something's back-pointer names it.
	l.startsAt[bos.Pos] = append(l.startsAt[bos.Pos], 0)
	l.endsAt[bos.EPos] = append(l.endsAt[bos.EPos], 0)
	return l
}

// Add inserts a candidate node spanning [pos, pos+length(node)) into the
// lattice and relaxes it against every node already ending at pos,
// recording the cheapest predecessor found. A node whose Skip flag is set
// is itself never chosen as a predecessor for later relaxation: Add
// bridges straight through it to the nodes ending where it began, so that
// e.g. a SPACE-category unknown-word match does not break a compound word
// around it.
func (l *Lattice) Add(pos int, node Node) {
	node.Pos = pos
	node.EPos = pos + node.length()
	node.MinCost = maxCost

	for _, predIdx := range l.predecessorsAt(pos) {
		pred := &l.nodes[predIdx]
		cost := pred.MinCost + l.matrix.TransCost(uint16(pred.RightID), uint16(node.LeftID)) + node.Cost
		if cost < node.MinCost {
			node.MinCost = cost
			node.BackPos = pred.Pos
			node.BackIndex = pred.Index
		}
	}

	node.Index = len(l.startsAt[pos])
	idx := len(l.nodes)
	l.nodes = append(l.nodes, node)
	l.startsAt[pos] = append(l.startsAt[pos], idx)
	l.endsAt[node.EPos] = append(l.endsAt[node.EPos], idx)
}

// predecessorsAt returns the arena indices of every node usable as a
// predecessor for a new node starting at pos: the nodes ending at pos,
// with any Skip node there replaced — recursively — by the nodes ending
// where it began.
func (l *Lattice) predecessorsAt(pos int) []int {
	var out []int
	for _, idx := range l.endsAt[pos] {
		n := &l.nodes[idx]
		if !n.Skip {
			out = append(out, idx)
			continue
		}
		out = append(out, l.predecessorsAt(n.Pos)...)
	}
	return out
}

// Forward reports how far the caller should advance its byte cursor past
// pos: one past pos, then further still while no node added so far ends
// exactly there. The caller is expected to have added at least one node
// starting at pos before calling Forward, guaranteeing termination.
func (l *Lattice) Forward(pos int) int {
	p := pos + 1
	for len(l.endsAt[p]) == 0 {
		p++
	}
	return p - pos
}

// End appends the EOS sentinel at pos (the total byte length of the
// tokenized input) and relaxes it against the lattice's final column,
// completing the forward Viterbi pass. It must be called exactly once,
// after every Add call for the input is done.
func (l *Lattice) End(pos int) {
	eos := eosNode(pos)
	for _, predIdx := range l.predecessorsAt(pos) {
		pred := &l.nodes[predIdx]
		cost := pred.MinCost + l.matrix.TransCost(uint16(pred.RightID), uint16(eos.LeftID))
		if cost < eos.MinCost {
			eos.MinCost = cost
			eos.BackPos = pred.Pos
			eos.BackIndex = pred.Index
		}
	}
	eos.Index = len(l.startsAt[pos])
	idx := len(l.nodes)
	l.nodes = append(l.nodes, eos)
	l.startsAt[pos] = append(l.startsAt[pos], idx)
	l.endsAt[eos.EPos] = append(l.endsAt[eos.EPos], idx)
	l.eosPos = pos
	l.eosIndex = idx
}

// nodeAt looks up the arena index of the node with the given (pos, index)
// coordinates.
func (l *Lattice) nodeAt(pos, index int) int {
	return l.startsAt[pos][index]
}

// Backward follows the MinCost back-pointers from EOS to BOS and returns
// the single best path, BOS and EOS sentinels excluded, in left-to-right
// order.
func (l *Lattice) Backward() []Node {
	var rev []Node
	cur := &l.nodes[l.eosIndex]
	for !cur.IsBOS() {
		if !cur.IsEOS() {
			rev = append(rev, *cur)
		}
		cur = &l.nodes[l.nodeAt(cur.BackPos, cur.BackIndex)]
	}
	out := make([]Node, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

// MinCost returns EOS's min_cost, the total cost of the optimal
// BOS-to-EOS path. Valid only after End has been called.
func (l *Lattice) MinCost() int32 {
	return l.nodes[l.eosIndex].MinCost
}

// Snapshot returns every node currently held in the lattice's arena, in
// insertion order (BOS first; EOS last once End has run). It exists for
// property tests that need to recompute min_cost independently, without
// exposing the arena as part of the normal build/search API.
func (l *Lattice) Snapshot() []Node {
	out := make([]Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}
