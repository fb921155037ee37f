package lattice_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"yomu.dev/go/morph/dic"
	"yomu.dev/go/morph/dijkstra"
	"yomu.dev/go/morph/internal/testdict"
	"yomu.dev/go/morph/lattice"
)

func openMatrix(t *testing.T, lsize, rsize uint16, set func(b *testdict.MatrixBuilder)) *dic.Matrix {
	t.Helper()
	b := testdict.NewMatrixBuilder(lsize, rsize)
	set(b)
	path := testdict.WriteTemp(t, "matrix-*.bin", b.Build())
	m, err := dic.OpenMatrix(path)
	if err != nil {
		t.Fatalf("dic.OpenMatrix: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

// TestAddBridgesOverSkipNodes builds a three-node lattice A - SPACE - B,
// where SPACE is marked Skip, and checks that B's Viterbi relaxation
// treats A (not SPACE) as its predecessor, and that the extracted best
// path excludes SPACE entirely.
func TestAddBridgesOverSkipNodes(t *testing.T) {
	m := openMatrix(t, 128, 128, func(b *testdict.MatrixBuilder) {
		b.SetCost(0, 1, 7)     // BOS -> A
		b.SetCost(2, 99, 9999) // A -> SPACE (should never be used downstream)
		b.SetCost(99, 3, 9999) // SPACE -> B (should never be used)
		b.SetCost(2, 3, 15)    // A -> B, bridging directly over SPACE
		b.SetCost(4, 0, 3)     // B -> EOS
	})

	l := lattice.New(m)

	a := lattice.NewNode(&dic.DictEntry{Surface: []byte("A"), LeftID: 1, RightID: 2, WordCost: 10})
	space := lattice.NewNode(&dic.DictEntry{Surface: []byte(" "), LeftID: 99, RightID: 99, WordCost: 5, Skip: true})
	b := lattice.NewNode(&dic.DictEntry{Surface: []byte("B"), LeftID: 3, RightID: 4, WordCost: 20})

	l.Add(0, a)
	l.Add(1, space)
	l.Add(2, b)
	l.End(3)

	path := l.Backward()
	if len(path) != 2 {
		t.Fatalf("Backward() = %d nodes, want 2 (SPACE excluded): %v", len(path), path)
	}
	if string(path[0].Entry.Surface) != "A" || string(path[1].Entry.Surface) != "B" {
		t.Errorf("Backward() = [%s %s], want [A B]", path[0].Entry.Surface, path[1].Entry.Surface)
	}
	if path[1].MinCost != 52 {
		t.Errorf("B.MinCost = %d, want 52 (17 from BOS->A, plus 15+20 bridging A->B)", path[1].MinCost)
	}
}

// TestBackwardPicksCheaperAlternative builds two competing single-character
// candidates at the same position and checks Backward follows the
// cheaper one.
func TestBackwardPicksCheaperAlternative(t *testing.T) {
	m := openMatrix(t, 16, 16, func(b *testdict.MatrixBuilder) {
		b.SetCost(0, 1, 0) // BOS -> cheap
		b.SetCost(0, 2, 0) // BOS -> expensive
		b.SetCost(1, 0, 0) // cheap -> EOS
		b.SetCost(2, 0, 0) // expensive -> EOS
	})

	l := lattice.New(m)
	cheap := lattice.NewNode(&dic.DictEntry{Surface: []byte("x"), LeftID: 1, RightID: 1, WordCost: 5})
	expensive := lattice.NewNode(&dic.DictEntry{Surface: []byte("x"), LeftID: 2, RightID: 2, WordCost: 50})

	l.Add(0, cheap)
	l.Add(0, expensive)
	l.End(1)

	path := l.Backward()
	if len(path) != 1 || path[0].Cost != 5 {
		t.Fatalf("Backward() = %+v, want the cost=5 candidate", path)
	}
}

// TestBackwardAStarOrdersByIncreasingCost checks that BackwardAStar's
// first result matches Backward's single-best path and that every
// subsequent result is at least as expensive as the one before it.
func TestBackwardAStarOrdersByIncreasingCost(t *testing.T) {
	m := openMatrix(t, 16, 16, func(b *testdict.MatrixBuilder) {
		b.SetCost(0, 1, 0)
		b.SetCost(0, 2, 0)
		b.SetCost(0, 3, 0)
		b.SetCost(1, 0, 0)
		b.SetCost(2, 0, 0)
		b.SetCost(3, 0, 0)
	})

	l := lattice.New(m)
	l.Add(0, lattice.NewNode(&dic.DictEntry{Surface: []byte("x"), LeftID: 1, RightID: 1, WordCost: 5}))
	l.Add(0, lattice.NewNode(&dic.DictEntry{Surface: []byte("x"), LeftID: 2, RightID: 2, WordCost: 8}))
	l.Add(0, lattice.NewNode(&dic.DictEntry{Surface: []byte("x"), LeftID: 3, RightID: 3, WordCost: 20}))
	l.End(1)

	single := l.Backward()
	paths := l.BackwardAStar(3)
	if len(paths) != 3 {
		t.Fatalf("BackwardAStar(3) = %d paths, want 3", len(paths))
	}
	if paths[0][0].Cost != single[0].Cost {
		t.Errorf("BackwardAStar best path cost = %d, want %d (match Backward)", paths[0][0].Cost, single[0].Cost)
	}

	totals := make([]int32, len(paths))
	for i, p := range paths {
		for _, n := range p {
			totals[i] += n.Cost
		}
	}
	if !slices.IsSortedFunc(totals, func(a, b int32) int { return int(a - b) }) {
		t.Errorf("path costs %v are not non-decreasing", totals)
	}
}

// TestBackwardCostInvariant checks spec's central Viterbi invariant: the
// sum of per-node costs and bigram transition costs along the path
// Backward returns equals EOS's min_cost exactly.
func TestBackwardCostInvariant(t *testing.T) {
	m := openMatrix(t, 16, 16, func(b *testdict.MatrixBuilder) {
		b.SetCost(0, 1, 2) // BOS -> p
		b.SetCost(1, 3, 1) // p -> r
		b.SetCost(3, 0, 2) // r -> EOS
	})

	l := lattice.New(m)
	p := lattice.NewNode(&dic.DictEntry{Surface: []byte("p"), LeftID: 1, RightID: 1, WordCost: 3})
	r := lattice.NewNode(&dic.DictEntry{Surface: []byte("r"), LeftID: 3, RightID: 3, WordCost: 4})
	l.Add(0, p)
	l.Add(1, r)
	l.End(2)

	path := l.Backward()
	var total int32
	var prevRight int32 = 0 // BOS.RightID
	for _, n := range path {
		total += m.TransCost(uint16(prevRight), uint16(n.LeftID))
		total += n.Cost
		prevRight = n.RightID
	}
	total += m.TransCost(uint16(prevRight), 0) // last node -> EOS, EOS.LeftID == 0

	if total != l.MinCost() {
		t.Errorf("recomputed path cost %d != MinCost() %d", total, l.MinCost())
	}
}

// TestMinCostMatchesIndependentOracle builds a small two-position lattice
// with two competing candidates at each position and checks the
// Viterbi-computed MinCost against dijkstra's brute-force oracle.
func TestMinCostMatchesIndependentOracle(t *testing.T) {
	m := openMatrix(t, 16, 16, func(b *testdict.MatrixBuilder) {
		b.SetCost(0, 1, 2) // BOS -> p
		b.SetCost(0, 2, 0) // BOS -> q
		b.SetCost(1, 3, 1) // p -> r
		b.SetCost(1, 4, 5) // p -> s
		b.SetCost(2, 3, 0) // q -> r
		b.SetCost(2, 4, 10) // q -> s
		b.SetCost(3, 0, 2) // r -> EOS
		b.SetCost(4, 0, 0) // s -> EOS
	})

	l := lattice.New(m)
	l.Add(0, lattice.NewNode(&dic.DictEntry{Surface: []byte("p"), LeftID: 1, RightID: 1, WordCost: 3}))
	l.Add(0, lattice.NewNode(&dic.DictEntry{Surface: []byte("q"), LeftID: 2, RightID: 2, WordCost: 9}))
	l.Add(1, lattice.NewNode(&dic.DictEntry{Surface: []byte("r"), LeftID: 3, RightID: 3, WordCost: 4}))
	l.Add(1, lattice.NewNode(&dic.DictEntry{Surface: []byte("s"), LeftID: 4, RightID: 4, WordCost: 1}))
	l.End(2)

	nodes := l.Snapshot()
	n := len(nodes) - 1 // EOS's arena index; dijkstra searches vertices 0..n
	const unreachable = 1 << 30
	cost := func(i, j int) int {
		if nodes[i].EPos != nodes[j].Pos {
			return unreachable
		}
		return int(m.TransCost(uint16(nodes[i].RightID), uint16(nodes[j].LeftID))) + int(nodes[j].Cost)
	}

	want, _ := dijkstra.ShortestPath(cost, n)
	if int32(want) != l.MinCost() {
		t.Errorf("dijkstra oracle cost = %d, Lattice.MinCost() = %d", want, l.MinCost())
	}
}
