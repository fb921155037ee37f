package dic

// Matrix is the memory-mapped matrix.bin connection-cost table: a dense
// rsize x lsize array of signed 16-bit bigram costs, indexed by
// (predecessor right-context id, successor left-context id).
type Matrix struct {
	file  mappedFile
	lsize int
}

// OpenMatrix memory-maps the matrix.bin file at path.
func OpenMatrix(path string) (*Matrix, error) {
	f, err := openMappedFile(path)
	if err != nil {
		return nil, err
	}
	if f.Len() < 4 {
		f.Close()
		return nil, &HeaderError{Path: path, Reason: "file shorter than lsize/rsize header"}
	}

	lsize := int(f.u16(0))

	return &Matrix{file: f, lsize: lsize}, nil
}

// Close releases the memory mapping.
func (m *Matrix) Close() error {
	return m.file.Close()
}

// TransCost returns the bigram cost of transitioning from a predecessor
// with right-context id rightID to a successor with left-context id
// leftID. The matrix is asymmetric: the row index is the successor's left
// context, the column index the predecessor's right context.
func (m *Matrix) TransCost(rightID, leftID uint16) int32 {
	off := 4 + 2*(int(leftID)*m.lsize+int(rightID))
	return int32(m.file.i16(off))
}
