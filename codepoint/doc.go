// Package codepoint converts between UTF-8 bytes and Unicode scalar values.
//
// Decompose implements the WHATWG streaming UTF-8 decoder: it tracks how
// many continuation bytes the current sequence still needs and a per-sequence
// lower/upper boundary for the next byte, tightened for the non-shortest-form
// exclusion ranges of 3- and 4-byte sequences. Each ill-formed unit becomes
// a single U+FFFD; a continuation byte outside the boundary is reprocessed
// as a fresh sequence start rather than consumed. Decompose never fails, so
// overlong encodings like [0xC0 0x80] produce two replacement characters.
//
// Append is the inverse direction for a single scalar value, emitting the
// 1-4 byte UTF-8 form.
//
// The package exists so the Punycode transcoder can operate on codepoint
// sequences; it is not a general-purpose UTF-8 library.
package codepoint
