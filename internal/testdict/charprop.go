package testdict

import "yomu.dev/go/morph/dic"

// CharPropBuilder assembles a char.bin-format binary: a category name
// table followed by a dense CharInfo array indexed by 16-bit code unit.
type CharPropBuilder struct {
	categories []string
	info       map[uint16]dic.CharInfo
}

func NewCharPropBuilder() *CharPropBuilder {
	return &CharPropBuilder{info: map[uint16]dic.CharInfo{}}
}

// AddCategory registers a character category (e.g. "KANJI", "SPACE",
// "DEFAULT") and returns its index, for use as a CharInfo.DefaultType or
// HasCategory bit position.
func (b *CharPropBuilder) AddCategory(name string) uint32 {
	b.categories = append(b.categories, name)
	return uint32(len(b.categories) - 1)
}

// Set assigns the packed descriptor for a single 16-bit code unit.
func (b *CharPropBuilder) Set(code uint16, info dic.CharInfo) {
	b.info[code] = info
}

// SetRange assigns the same descriptor to every code unit in [lo, hi].
func (b *CharPropBuilder) SetRange(lo, hi uint16, info dic.CharInfo) {
	for c := uint32(lo); c <= uint32(hi); c++ {
		b.info[uint16(c)] = info
	}
}

func encodeCharInfo(info dic.CharInfo) uint32 {
	v := info.TypeMask & 0x3FFFF
	v |= (info.DefaultType & 0xFF) << 18
	v |= (info.Length & 0xF) << 26
	if info.Group {
		v |= 1 << 30
	}
	if info.Invoke {
		v |= 1 << 31
	}
	return v
}

// Build assembles the complete char.bin image: every one of the 0x10000
// code-unit slots is written, defaulting to an all-zero CharInfo for
// code units the test never registered.
func (b *CharPropBuilder) Build() []byte {
	nameTable := make([]byte, len(b.categories)*32)
	for i, name := range b.categories {
		copy(nameTable[i*32:i*32+32], name)
	}

	const slots = 0x10000
	table := make([]byte, slots*4)
	for code := 0; code < slots; code++ {
		info := b.info[uint16(code)]
		putU32(table, code*4, encodeCharInfo(info))
	}

	out := make([]byte, 0, 4+len(nameTable)+len(table))
	header := make([]byte, 4)
	putU32(header, 0, uint32(len(b.categories)))
	out = append(out, header...)
	out = append(out, nameTable...)
	out = append(out, table...)
	return out
}
