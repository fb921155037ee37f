package testdict

// MatrixBuilder assembles a matrix.bin-format binary: an (lsize, rsize)
// header followed by a dense lsize*rsize array of signed 16-bit bigram
// costs, indexed the same way dic.Matrix.TransCost reads them.
type MatrixBuilder struct {
	lsize, rsize uint16
	cost         map[uint32]int16
}

func NewMatrixBuilder(lsize, rsize uint16) *MatrixBuilder {
	return &MatrixBuilder{lsize: lsize, rsize: rsize, cost: map[uint32]int16{}}
}

// SetCost records the bigram cost of transitioning from a predecessor
// with right-context id rightID to a successor with left-context id
// leftID, mirroring dic.Matrix.TransCost's parameter order.
func (b *MatrixBuilder) SetCost(rightID, leftID uint16, cost int16) {
	key := uint32(leftID)*uint32(b.lsize) + uint32(rightID)
	b.cost[key] = cost
}

// Build assembles the complete matrix.bin image. Every cell the test
// never set defaults to 0.
func (b *MatrixBuilder) Build() []byte {
	n := int(b.lsize) * int(b.rsize)
	out := make([]byte, 4+n*2)
	putU16(out, 0, b.lsize)
	putU16(out, 2, b.rsize)
	for key, cost := range b.cost {
		off := 4 + int(key)*2
		putU16(out, off, uint16(cost))
	}
	return out
}
