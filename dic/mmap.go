package dic

import (
	"encoding/binary"

	"golang.org/x/exp/mmap"
)

// mappedFile is a thin wrapper around a read-only memory-mapped file that
// centralizes the little-endian integer and NUL-terminated string
// extraction every dictionary reader needs. It never copies the whole file
// into memory; each accessor reads only the bytes a given field occupies.
type mappedFile struct {
	r *mmap.ReaderAt
}

func openMappedFile(path string) (mappedFile, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return mappedFile{}, &OpenError{Path: path, Err: err}
	}
	return mappedFile{r: r}, nil
}

func (f mappedFile) Close() error {
	return f.r.Close()
}

func (f mappedFile) Len() int {
	return f.r.Len()
}

func (f mappedFile) byteAt(off int) byte {
	return f.r.At(off)
}

func (f mappedFile) readAt(off, n int) []byte {
	buf := make([]byte, n)
	if _, err := f.r.ReadAt(buf, int64(off)); err != nil {
		panic(err)
	}
	return buf
}

func (f mappedFile) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(f.readAt(off, 4))
}

func (f mappedFile) i32(off int) int32 {
	return int32(f.u32(off))
}

func (f mappedFile) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(f.readAt(off, 2))
}

func (f mappedFile) i16(off int) int16 {
	return int16(f.u16(off))
}

// cString reads a NUL-terminated UTF-8 string starting at off.
func (f mappedFile) cString(off int) string {
	end := off
	for f.byteAt(end) != 0 {
		end++
	}
	return string(f.readAt(off, end-off))
}

// fixedString reads an n-byte, NUL-padded ASCII field and trims the
// trailing zero bytes.
func (f mappedFile) fixedString(off, n int) string {
	b := f.readAt(off, n)
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[:i])
}
