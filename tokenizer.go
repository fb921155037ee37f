package morph

import (
	"path/filepath"

	"yomu.dev/go/morph/dic"
	"yomu.dev/go/morph/lattice"
	"yomu.dev/go/morph/mecabrc"
)

// Token is one morpheme of a tokenized input: its surface form and its
// dictionary feature string (comma-separated part-of-speech and
// inflection fields, verbatim from the dictionary).
type Token struct {
	Surface string
	Feature string
}

// Tokenizer analyzes Japanese text using a system dictionary, an
// optional user dictionary, an unknown-word dictionary, a
// character-property table, and a connection matrix. It is read-only
// after construction and safe for concurrent use by multiple goroutines.
type Tokenizer struct {
	sysDic  *dic.Dictionary
	userDic *dic.Dictionary // nil if none configured
	unkDic  *dic.Dictionary
	chars   *dic.CharProperty
	matrix  *dic.Matrix
}

// Open constructs a Tokenizer from a mecabrc configuration file. If
// rcPath is empty, Find searches the standard locations (honoring the
// MECABRC environment variable first).
func Open(rcPath string) (*Tokenizer, error) {
	if rcPath == "" {
		found, err := mecabrc.Find()
		if err != nil {
			return nil, &OpenError{Stage: "config", Err: err}
		}
		rcPath = found
	}

	rc, err := mecabrc.Parse(rcPath)
	if err != nil {
		return nil, &OpenError{Stage: "config", Err: err}
	}

	dicDir, err := mecabrc.DicDir(rc)
	if err != nil {
		return nil, &OpenError{Stage: "config", Err: err}
	}

	userDicPath, hasUserDic := mecabrc.UserDic(rc)
	return openDicDir(dicDir, userDicPath, hasUserDic)
}

// OpenWithDicDir constructs a Tokenizer directly from a dictionary
// directory, bypassing mecabrc entirely. userDicPath may be empty to
// skip the user dictionary.
func OpenWithDicDir(dicDir, userDicPath string) (*Tokenizer, error) {
	return openDicDir(dicDir, userDicPath, userDicPath != "")
}

func openDicDir(dicDir, userDicPath string, hasUserDic bool) (*Tokenizer, error) {
	sysDic, err := dic.Open(filepath.Join(dicDir, "sys.dic"))
	if err != nil {
		return nil, &OpenError{Stage: "sys.dic", Err: err}
	}
	unkDic, err := dic.Open(filepath.Join(dicDir, "unk.dic"))
	if err != nil {
		sysDic.Close()
		return nil, &OpenError{Stage: "unk.dic", Err: err}
	}
	chars, err := dic.OpenCharProperty(filepath.Join(dicDir, "char.bin"))
	if err != nil {
		sysDic.Close()
		unkDic.Close()
		return nil, &OpenError{Stage: "char.bin", Err: err}
	}
	matrix, err := dic.OpenMatrix(filepath.Join(dicDir, "matrix.bin"))
	if err != nil {
		sysDic.Close()
		unkDic.Close()
		chars.Close()
		return nil, &OpenError{Stage: "matrix.bin", Err: err}
	}

	t := &Tokenizer{sysDic: sysDic, unkDic: unkDic, chars: chars, matrix: matrix}

	if hasUserDic {
		userDic, err := dic.Open(userDicPath)
		if err != nil {
			t.Close()
			return nil, &OpenError{Stage: "user.dic", Err: err}
		}
		t.userDic = userDic
	}

	return t, nil
}

// Close releases every memory-mapped dictionary file the Tokenizer
// holds open.
func (t *Tokenizer) Close() error {
	var firstErr error
	for _, c := range []interface{ Close() error }{t.sysDic, t.unkDic, t.chars, t.matrix} {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if t.userDic != nil {
		if err := t.userDic.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// buildLattice runs the tokenizer orchestrator of spec.md §4.8: walk s
// byte by byte, at each position looking up the user dictionary (highest
// priority, but not exclusive), the system dictionary, and unknown-word
// candidates, adding every match to the lattice, then advancing by
// lattice.Forward's reported step.
func (t *Tokenizer) buildLattice(s []byte) *lattice.Lattice {
	l := lattice.New(t.matrix)

	pos := 0
	for pos < len(s) {
		matched := false
		rest := s[pos:]

		if t.userDic != nil {
			entries := t.userDic.Lookup(rest)
			for _, e := range entries {
				l.Add(pos, lattice.NewNode(&e))
			}
			matched = matched || len(entries) > 0
		}

		sysEntries := t.sysDic.Lookup(rest)
		for _, e := range sysEntries {
			l.Add(pos, lattice.NewNode(&e))
		}
		matched = matched || len(sysEntries) > 0

		unkEntries, invoke := t.unkDic.LookupUnknowns(rest, t.chars)
		if invoke || !matched {
			for _, e := range unkEntries {
				l.Add(pos, lattice.NewNode(&e))
			}
		}

		pos += l.Forward(pos)
	}

	l.End(pos)
	return l
}

// Tokenize splits s into its single best-cost sequence of morphemes.
func (t *Tokenizer) Tokenize(s string) []Token {
	l := t.buildLattice([]byte(s))
	return nodesToTokens(l.Backward())
}

// TokenizeNBest returns up to n candidate segmentations of s, in
// increasing order of total cost.
func (t *Tokenizer) TokenizeNBest(s string, n int) [][]Token {
	l := t.buildLattice([]byte(s))
	paths := l.BackwardAStar(n)
	out := make([][]Token, len(paths))
	for i, p := range paths {
		out[i] = nodesToTokens(p)
	}
	return out
}

func nodesToTokens(nodes []lattice.Node) []Token {
	tokens := make([]Token, len(nodes))
	for i, n := range nodes {
		tokens[i] = Token{Surface: string(n.Entry.Surface), Feature: n.Entry.Feature}
	}
	return tokens
}
