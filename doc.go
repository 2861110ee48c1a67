// Package qcbor implements a streaming CBOR (RFC 8949) encoder and
// decoder: constant-memory Add/Open/Close operations on the write side,
// and a single preorder traversal operation, get_next, on the read
// side. Both sides share a nesting tracker and an IEEE-754 minimizer
// for lossless float shrinking.
//
// The codec performs no heap allocation on its own, with one narrow
// exception: reassembling an indefinite-length string requires a
// caller-supplied Allocator (see the pool subpackage).
package qcbor
