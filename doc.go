// Package morph provides Japanese morphological analysis driven by
// MeCab/IPADIC-compatible binary dictionaries.
//
// An input string is partitioned into morphemes (surface forms); each
// morpheme carries a feature string describing its part of speech and
// inflection. The analyzer consumes read-only, memory-mapped dictionary
// files: a system dictionary, an optional user dictionary, an unknown-word
// dictionary, a character-property table, and a connection-cost matrix.
//
// # Basic usage
//
//	tok, err := morph.Open("")  // "" searches the standard mecabrc locations
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tok.Close()
//
//	for _, tk := range tok.Tokenize("すもももももももものうち") {
//	    fmt.Println(tk.Surface, tk.Feature)
//	}
//
// # N-best analysis
//
//	for _, path := range tok.TokenizeNBest("祖父は１９０１年生まれです。", 3) {
//	    for _, tk := range path {
//	        fmt.Println(tk.Surface, tk.Feature)
//	    }
//	}
//
// Tokenizer is read-only once constructed: all per-call state (the
// lattice, the A* priority queue) is allocated fresh by each Tokenize call
// and shares nothing mutable, so a single Tokenizer can be shared by
// reference across goroutines.
//
// See package dic for the dictionary binary layout and package lattice for
// the path-search algorithms.
package morph
