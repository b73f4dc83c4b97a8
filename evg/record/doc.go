// Package record holds the generated particle record and the
// post-generation corrections that run over it.
//
// The record is an arena: a growable indexed sequence of particles
// whose mother relation is a plain integer index into that sequence,
// never a pointer. Traversal is bounds-checked (index >= 0 and < Len)
// and the whole structure serializes trivially.
package record
