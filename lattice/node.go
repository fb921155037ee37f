package lattice

import (
	"fmt"
	"math"

	"yomu.dev/go/morph/dic"
)

// maxCost is the sentinel minimum-cost value a freshly constructed node
// carries before Add's Viterbi relaxation assigns it a real cost. It plays
// the role of "infinity" in the forward DP.
const maxCost = math.MaxInt32

// Node is a lattice vertex: either a candidate morpheme backed by a
// dic.DictEntry, or one of the two sentinels (BOS, EOS) that bracket every
// lattice path.
type Node struct {
	Entry *dic.DictEntry // nil for BOS/EOS

	Pos   int // start position, inclusive, in the lattice's own coordinates
	EPos  int // end position, exclusive
	Index int // ordinal within this node's starts_at bucket

	LeftID  int32
	RightID int32

	Cost    int32 // the entry's word cost; 0 for BOS/EOS
	MinCost int32 // best cumulative cost from BOS to this node

	BackPos   int // predecessor's Pos, for back-trace
	BackIndex int // predecessor's Index, for back-trace

	Skip bool // true for SPACE-category unknown entries; bridged over in Add
}

func bosNode() Node {
	return Node{
		Pos: 0, EPos: 0,
		LeftID: -1, RightID: 0,
		BackPos: -1, BackIndex: -1,
	}
}

func eosNode(pos int) Node {
	return Node{
		Pos: pos, EPos: pos + 1,
		LeftID: 0, RightID: -1,
		MinCost:   maxCost,
		BackPos:   -1, BackIndex: -1,
	}
}

// NewNode wraps a dictionary entry as an unpositioned lattice node, ready
// to be passed to Lattice.Add. Index is set to the entry's PosID as a
// placeholder; Add overwrites it with the node's true ordinal once its
// final bucket is known — this mirrors the entry's own posid field having
// nothing to do with lattice bookkeeping until Add runs.
func NewNode(e *dic.DictEntry) Node {
	return Node{
		Entry:     e,
		Index:     int(e.PosID),
		LeftID:    int32(e.LeftID),
		RightID:   int32(e.RightID),
		Cost:      int32(e.WordCost),
		MinCost:   maxCost,
		BackPos:   -1,
		BackIndex: -1,
		Skip:      e.Skip,
	}
}

// IsBOS reports whether n is the begin-of-sentence sentinel.
func (n *Node) IsBOS() bool {
	return n.Entry == nil && n.Pos == 0
}

// IsEOS reports whether n is the end-of-sentence sentinel.
func (n *Node) IsEOS() bool {
	return n.Entry == nil && n.Pos != 0
}

// length is the byte span of the node's surface form: 1 for the BOS/EOS
// sentinels, otherwise the matched entry's surface length.
func (n *Node) length() int {
	if n.Entry == nil {
		return 1
	}
	return len(n.Entry.Surface)
}

// String renders a node for diagnostics (test failure messages); it is
// not used by the CLI's normal output path.
func (n *Node) String() string {
	switch {
	case n.IsBOS():
		return "BOS"
	case n.IsEOS():
		return "EOS"
	default:
		return fmt.Sprintf("%s\t%s", n.Entry.Surface, n.Entry.Feature)
	}
}
