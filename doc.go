// Package punycode implements the Bootstring transcoding of RFC 3492,
// the transformation underlying Internationalized Domain Names.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	punycode/            Root package: the transcoder (Encode/Decode),
//	│                    bias adaptation, digit tables, Options
//	├── codepoint/       UTF-8 decomposition and recomposition
//	├── errors/          Structured error types for debugging
//	└── cmd/punyconv/    CLI and interactive TUI converter
//
// # Encoding Flow
//
//	UTF-8 bytes → codepoint.Decompose → []rune → Encode → ASCII string
//
// # Decoding Flow
//
//	ASCII string → Decode → []rune → codepoint.AppendAll → UTF-8 bytes
//
// EncodeString and DecodeString wire the two stages together.
//
// # Quick Start
//
//	ascii, err := punycode.EncodeString("bücher", nil)
//	// ascii == "bcher-kva"
//
//	text, err := punycode.DecodeString("bcher-kva", nil)
//	// text == "bücher"
//
// # Options
//
// Options carries a per-call output length cap (MaxLength, NoLimit to
// disable) and the case-flag side channel (CaseFlags). Case flags record
// the original uppercase-ness of each position across the transformation;
// DecodeFlags returns the captured flags alongside the codepoints.
//
// # Integer Bounds
//
// All transcoder state is bounded by the 32-bit signed range. Any
// arithmetic step that would exceed it fails with an overflow error
// instead of wrapping, so pathological inputs cannot produce silently
// wrong labels.
//
// # Scope
//
// The package transcodes single labels. IDNA label processing, the ACE
// "xn--" prefix, normalization, and validation of decoded text are the
// caller's responsibility.
//
// # Thread Safety
//
// Each call is self-contained and purely computational; calls are safe to
// run concurrently as long as each uses its own buffers.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] invalid_input at offset 7: byte 0x21 is not a base-36 digit
//	[encode] overflow: delta accumulator exceeds the 32-bit bound
package punycode
