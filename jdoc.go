// Package jdoc is a codec for a JSON-like document language: a tagged-union
// tree value, a byte-at-a-time lexer, a recursive descent parser and an
// append-style serializer.
//
// The document tree lives in jdoc.mleku.dev/json, the reader in
// jdoc.mleku.dev/lexer and jdoc.mleku.dev/parser, and the generic ordered
// sequence the tree is built on in jdoc.mleku.dev/seq.
package jdoc

// Version is the current release tag of this module.
const Version = "v0.1.2"
