// Package dic implements read-only access to MeCab/IPADIC-compatible
// binary dictionary files: the double-array trie used for common-prefix
// and exact-match lookup, the packed token and feature-string records the
// trie points into, the character-property table driving unknown-word
// generation, and the dense bigram connection-cost matrix.
//
// All three dictionary-file readers (Dictionary, CharProperty, Matrix) map
// their backing file read-only via golang.org/x/exp/mmap and never write
// to it; a well-formed MeCab dictionary is a documented precondition, not
// something this package verifies byte-for-byte (see OpenError and
// HeaderError for the failures that are detected).
package dic
