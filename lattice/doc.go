// Package lattice builds and searches the morpheme lattice: a DAG whose
// vertices are candidate DictEntry matches anchored at byte positions in
// the input, and whose edges carry bigram costs from a connection matrix.
//
// A Lattice is filled position by position via Add, which performs an
// incremental Viterbi relaxation against every node already ending at the
// current cursor. Once the whole input has been consumed, End appends the
// EOS sentinel and Backward (single best) or BackwardAStar (N best)
// extract complete BOS→EOS paths.
package lattice
