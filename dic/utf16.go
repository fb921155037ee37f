package dic

import "unicode/utf16"

// decodeCodeUnit decodes the UTF-8 scalar starting at b[index] and returns
// a single 16-bit code unit used to index CharProperty, plus the number of
// bytes consumed (1..=4).
//
// Scalars in the Basic Multilingual Plane map directly to their code
// point. Supplementary-plane scalars (U+10000 and above) are folded into
// one 16-bit value by shifting the UTF-16 high surrogate left eight bits,
// adding the UTF-16 low surrogate, and truncating the sum to 16 bits — this loses information
// and is not a real UTF-16 code unit, but it is the mapping the upstream
// dictionary format and its tests were built against, so it is preserved
// exactly.
//
// A malformed leading byte yields (0, 0): the caller must treat this as
// "no progress possible" rather than advance past it.
func decodeCodeUnit(b []byte, index int) (uint16, int) {
	lead := b[index]
	var n int
	switch {
	case lead&0b1000_0000 == 0b0000_0000:
		n = 1
	case lead&0b1110_0000 == 0b1100_0000:
		n = 2
	case lead&0b1111_0000 == 0b1110_0000:
		n = 3
	case lead&0b1111_1000 == 0b1111_0000:
		n = 4
	default:
		return 0, 0
	}

	var scalar uint32
	switch n {
	case 1:
		scalar = uint32(b[index])
	case 2:
		scalar = uint32(b[index]&0x1F) << 6
		scalar |= uint32(b[index+1] & 0x3F)
	case 3:
		scalar = uint32(b[index]&0x0F) << 12
		scalar |= uint32(b[index+1]&0x3F) << 6
		scalar |= uint32(b[index+2] & 0x3F)
	case 4:
		scalar = uint32(b[index]&0x07) << 18
		scalar |= uint32(b[index+1]&0x3F) << 12
		scalar |= uint32(b[index+2]&0x3F) << 6
		scalar |= uint32(b[index+3] & 0x3F)
	}

	if scalar < 0x10000 {
		return uint16(scalar), n
	}

	hi, lo := utf16.EncodeRune(rune(scalar))
	composite := (uint32(hi) << 8) + uint32(lo)
	return uint16(composite), n
}
