package testdict

// Token is one dictionary entry to be registered under a trie key.
type Token struct {
	LeftID   uint16
	RightID  uint16
	PosID    uint16
	WordCost int16
	Feature  string
}

// DictBuilder assembles a sys.dic/unk.dic/user.dic-format binary: a
// double-array trie over byte keys, a run of fixed-size token records,
// and a blob of NUL-terminated feature strings.
type DictBuilder struct {
	trie     *trie
	tokens   []byte
	features []byte
	ntokens  uint32
}

func NewDictBuilder() *DictBuilder {
	return &DictBuilder{trie: newTrie()}
}

// Add registers key in the trie with the given tokens as its token run,
// returning nothing: a key may only be added once.
func (b *DictBuilder) Add(key string, tokens ...Token) {
	index := b.ntokens
	for _, tok := range tokens {
		featureOff := uint32(len(b.features))
		b.features = append(b.features, []byte(tok.Feature)...)
		b.features = append(b.features, 0)

		rec := make([]byte, 16)
		putU16(rec, 0, tok.LeftID)
		putU16(rec, 2, tok.RightID)
		putU16(rec, 4, tok.PosID)
		putU16(rec, 6, uint16(tok.WordCost))
		putU32(rec, 8, featureOff)
		putU32(rec, 12, 0)
		b.tokens = append(b.tokens, rec...)
		b.ntokens++
	}
	packed := int32(index)<<8 | int32(len(tokens))
	b.trie.insert([]byte(key), packed)
}

// Build assembles the complete binary dictionary image.
func (b *DictBuilder) Build() []byte {
	trieBytes := b.trie.encode()

	header := make([]byte, headerSize)
	putU32(header, 24, uint32(len(trieBytes)))
	putU32(header, 28, uint32(len(b.tokens)))

	out := make([]byte, 0, headerSize+len(trieBytes)+len(b.tokens)+len(b.features))
	out = append(out, header...)
	out = append(out, trieBytes...)
	out = append(out, b.tokens...)
	out = append(out, b.features...)
	return out
}

const headerSize = 72
