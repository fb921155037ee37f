package dic

// headerSize is the fixed size, in bytes, of a MeCab dictionary header.
// Only the first 40 bytes are consulted (the XOR-obfuscated overall size
// is informational and never read back); the remainder is reserved
// padding before the double-array section begins.
const headerSize = 72

// dicSizeXOR is applied to header offset 0 to recover the original file
// size. The value is never used for anything but documentation purposes
// here: dictionaries are trusted, memory-mapped, read-only inputs.
const dicSizeXOR = 0xef718f77

// Dictionary is a memory-mapped MeCab-format binary dictionary: a
// double-array trie over byte keys, a run of fixed-size token records the
// trie's terminal cells point into, and a blob of NUL-terminated feature
// strings the token records reference by offset.
//
// The same format and reader serve sys.dic, unk.dic, and any user
// dictionary: all three are opened with Open and looked up with Lookup (or
// LookupUnknowns for the character-category keyed unk.dic).
type Dictionary struct {
	file mappedFile

	trieOffset    int
	tokenOffset   int
	featureOffset int
}

// Open memory-maps the dictionary file at path.
func Open(path string) (*Dictionary, error) {
	f, err := openMappedFile(path)
	if err != nil {
		return nil, err
	}
	if f.Len() < headerSize {
		f.Close()
		return nil, &HeaderError{Path: path, Reason: "file shorter than 72-byte header"}
	}

	dsize := f.u32(24)
	tsize := f.u32(28)

	return &Dictionary{
		file:          f,
		trieOffset:    headerSize,
		tokenOffset:   headerSize + int(dsize),
		featureOffset: headerSize + int(dsize) + int(tsize),
	}, nil
}

// Close releases the memory mapping.
func (d *Dictionary) Close() error {
	return d.file.Close()
}

// DictEntry is a candidate morpheme: a reference to the surface bytes
// (always a slice of the caller's original input, since the dictionary
// itself stores no surface text), the connection-matrix context ids, a
// word cost, the decoded feature string, and the SPACE-bridging Skip
// flag.
type DictEntry struct {
	Surface  []byte
	LeftID   uint16
	RightID  uint16
	PosID    uint16
	WordCost int16
	Feature  string
	Skip     bool
}

const tokenSize = 16

func (d *Dictionary) decodeToken(index uint32, surface []byte, skip bool) DictEntry {
	off := d.tokenOffset + int(index)*tokenSize
	leftID := d.file.u16(off)
	rightID := d.file.u16(off + 2)
	posID := d.file.u16(off + 4)
	wcost := d.file.i16(off + 6)
	featureOff := d.file.u32(off + 8)

	return DictEntry{
		Surface:  surface,
		LeftID:   leftID,
		RightID:  rightID,
		PosID:    posID,
		WordCost: wcost,
		Feature:  d.file.cString(d.featureOffset + int(featureOff)),
		Skip:     skip,
	}
}

// entriesForResult decodes the run of tokens a packed (index<<8)|count
// descriptor points to.
func (d *Dictionary) entriesForResult(result int32, surface []byte, skip bool) []DictEntry {
	index := uint32(result) >> 8
	count := uint32(result) & 0xFF
	entries := make([]DictEntry, count)
	for i := uint32(0); i < count; i++ {
		entries[i] = d.decodeToken(index+i, surface, skip)
	}
	return entries
}

// Lookup returns every dictionary entry reachable as a common prefix of s,
// with each entry's Surface set to the matched prefix of s.
func (d *Dictionary) Lookup(s []byte) []DictEntry {
	var entries []DictEntry
	for _, m := range d.CommonPrefixSearch(s) {
		entries = append(entries, d.entriesForResult(m.Result, s[:m.MatchLen], false)...)
	}
	return entries
}

// LookupUnknowns consults cp to determine how many bytes of s an
// unknown-word candidate should cover, then decodes one entry run per
// candidate length from the token run registered under the matching
// character category name (d is expected to be the unk.dic dictionary).
// invoke reports whether unknown-word generation should fire at this
// position regardless of whether another dictionary already matched.
func (d *Dictionary) LookupUnknowns(s []byte, cp *CharProperty) (entries []DictEntry, invoke bool) {
	defaultType, lengths, invoke := cp.UnknownLengths(s)
	categoryName := cp.CategoryNames[defaultType]
	result := d.ExactMatch([]byte(categoryName))
	skip := categoryName == "SPACE"

	for _, ln := range lengths {
		entries = append(entries, d.entriesForResult(result, s[:ln], skip)...)
	}
	return entries, invoke
}
