package dic

// baseCheck reads the (base, check) pair at the given double-array index.
func (d *Dictionary) baseCheck(idx uint32) (int32, uint32) {
	off := d.trieOffset + int(idx)*8
	return d.file.i32(off), d.file.u32(off + 4)
}

// ExactMatch walks the double-array trie over key and returns the packed
// (index<<8)|count token-run descriptor for an exact match, or -1 if key
// is not a key in the trie.
func (d *Dictionary) ExactMatch(key []byte) int32 {
	b, _ := d.baseCheck(0)

	for _, c := range key {
		p := uint32(b+int32(c)) + 1
		base, check := d.baseCheck(p)
		if uint32(b) != check {
			return -1
		}
		b = base
	}

	p := uint32(b)
	n, check := d.baseCheck(p)
	if uint32(b) == check && n < 0 {
		return -n - 1
	}
	return -1
}

// PrefixMatch is one common-prefix-search hit: Result is the packed
// (index<<8)|count token-run descriptor, MatchLen is the number of bytes
// of the search key it matched.
type PrefixMatch struct {
	Result   int32
	MatchLen int
}

// CommonPrefixSearch walks the double-array trie over key, returning every
// prefix of key that is itself a key in the trie, shortest first.
func (d *Dictionary) CommonPrefixSearch(key []byte) []PrefixMatch {
	var results []PrefixMatch
	b, _ := d.baseCheck(0)

	for i, c := range key {
		p := uint32(b)
		n, check := d.baseCheck(p)
		if uint32(b) == check && n < 0 {
			results = append(results, PrefixMatch{Result: -n - 1, MatchLen: i})
		}

		p = uint32(b+int32(c)) + 1
		base, check := d.baseCheck(p)
		if uint32(b) != check {
			return results
		}
		b = base
	}

	p := uint32(b)
	n, check := d.baseCheck(p)
	if uint32(b) == check && n < 0 {
		results = append(results, PrefixMatch{Result: -n - 1, MatchLen: len(key)})
	}

	return results
}
