// Package scan provides the text scanning core for the clen CLI tool.
//
// This package implements the per-argument counting scanners: byte length,
// letters, digits, special signs, uppercase/lowercase distribution, sentences,
// words, quoted segments, and model tokens (using OpenAI's tiktoken with the
// cl100k_base encoding). Every scanner is a single forward pass over the
// input with at most a small transition state, so no scanner can fail.
//
// Classification is deliberately byte-oriented and ASCII-only: bytes at or
// above 0x80 match no character class. That keeps every count well defined
// for arbitrary binary input.
package scan
