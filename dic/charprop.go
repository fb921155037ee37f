package dic

import "golang.org/x/exp/slices"

// maxGroupingSize bounds CharProperty.GroupLength: more than this many
// code units of the same category in a row is reported as invalid rather
// than accepted unbounded, per spec.
const maxGroupingSize = 24

// invalidLength is returned by GroupLength and CountLength when the walk
// fails (mismatched category or premature end of input).
const invalidLength = -1

// CharInfo is the packed per-code-unit descriptor read from char.bin.
//
// Bit layout within the 32-bit record (low to high):
//
//	bits [0:18)  TypeMask    category bitset this code unit belongs to
//	bits [18:26) DefaultType category index used for unknown-word grouping
//	bits [26:30) Length      preferred count-length cap (0..15)
//	bit  30      Group       aggregate consecutive same-category units
//	bit  31      Invoke      force unknown-word generation at this unit
type CharInfo struct {
	DefaultType uint32
	TypeMask    uint32
	Length      uint32
	Group       bool
	Invoke      bool
}

// HasCategory reports whether category index cat is set in TypeMask.
func (c CharInfo) HasCategory(cat uint32) bool {
	return c.TypeMask&(1<<cat) != 0
}

func decodeCharInfo(v uint32) CharInfo {
	return CharInfo{
		DefaultType: (v >> 18) & 0xFF,
		TypeMask:    v & 0x3FFFF,
		Length:      (v >> 26) & 0xF,
		Group:       (v>>30)&1 != 0,
		Invoke:      (v>>31)&1 != 0,
	}
}

// CharProperty is the memory-mapped char.bin character-property table:
// a list of category names followed by a dense CharInfo array indexed by
// 16-bit code unit.
type CharProperty struct {
	file          mappedFile
	CategoryNames []string
	tableOffset   int
}

// OpenCharProperty memory-maps the char.bin file at path.
func OpenCharProperty(path string) (*CharProperty, error) {
	f, err := openMappedFile(path)
	if err != nil {
		return nil, err
	}
	if f.Len() < 4 {
		f.Close()
		return nil, &HeaderError{Path: path, Reason: "file shorter than category count header"}
	}

	numCategories := f.u32(0)
	names := make([]string, numCategories)
	for i := range names {
		names[i] = f.fixedString(4+i*32, 32)
	}

	return &CharProperty{
		file:          f,
		CategoryNames: names,
		tableOffset:   4 + int(numCategories)*32,
	}, nil
}

// Close releases the memory mapping.
func (cp *CharProperty) Close() error {
	return cp.file.Close()
}

// CharInfo returns the packed descriptor for code unit code.
func (cp *CharProperty) CharInfo(code uint16) CharInfo {
	v := cp.file.u32(cp.tableOffset + int(code)*4)
	return decodeCharInfo(v)
}

// CategoryIndex returns the position of name in the category table
// char.bin declared, for use as a CharInfo.DefaultType or HasCategory bit
// index. Reports false if name is not one of the declared categories.
func (cp *CharProperty) CategoryIndex(name string) (uint32, bool) {
	i := slices.Index(cp.CategoryNames, name)
	if i < 0 {
		return 0, false
	}
	return uint32(i), true
}

// GroupLength walks the UTF-8 stream in s while each successive code
// unit's category bitset contains defaultType, stopping at the first
// mismatch, at end of input, or after more than maxGroupingSize+1 code
// units have matched (in which case it returns invalidLength). The
// returned length is a byte count.
func (cp *CharProperty) GroupLength(s []byte, defaultType uint32) int {
	i := 0
	count := 0
	for i < len(s) {
		code, n := decodeCodeUnit(s, i)
		if n == 0 {
			break
		}
		info := cp.CharInfo(code)
		if !info.HasCategory(defaultType) {
			break
		}
		i += n
		count++
		if count > maxGroupingSize+1 {
			return invalidLength
		}
	}
	return i
}

// CountLength walks exactly k code units of s, verifying each belongs to
// defaultType; it returns invalidLength on mismatch or premature end,
// otherwise the byte length consumed.
func (cp *CharProperty) CountLength(s []byte, defaultType uint32, k uint32) int {
	i := 0
	for n := uint32(0); n < k; n++ {
		if i >= len(s) {
			return invalidLength
		}
		code, consumed := decodeCodeUnit(s, i)
		if consumed == 0 {
			return invalidLength
		}
		info := cp.CharInfo(code)
		if !info.HasCategory(defaultType) {
			return invalidLength
		}
		i += consumed
	}
	return i
}

// UnknownLengths computes the candidate unknown-word byte lengths for the
// input starting at s[0], along with the category index to use and
// whether unknown-word generation should always be invoked at this
// position regardless of whether a dictionary matched.
func (cp *CharProperty) UnknownLengths(s []byte) (defaultType uint32, lengths []int, invoke bool) {
	code, firstLen := decodeCodeUnit(s, 0)
	info := cp.CharInfo(code)
	defaultType = info.DefaultType

	if info.Group {
		if ln := cp.GroupLength(s, defaultType); ln > 0 {
			lengths = append(lengths, ln)
		}
	}
	if info.Length > 0 {
		for k := uint32(1); k <= info.Length; k++ {
			ln := cp.CountLength(s, defaultType, k)
			if ln < 0 {
				break
			}
			lengths = append(lengths, ln)
		}
	}
	if len(lengths) == 0 {
		lengths = append(lengths, firstLen)
	}

	return defaultType, lengths, info.Invoke
}
