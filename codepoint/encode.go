package codepoint

// Append appends the UTF-8 encoding of r to dst and returns the extended
// buffer. Values outside the 0..MaxScalar range are encoded as U+FFFD.
// In-range non-scalar values such as surrogates are serialized as-is;
// validating decoded text is the caller's concern.
func Append(dst []byte, r rune) []byte {
	if r < 0 || r > MaxScalar {
		r = Replacement
	}
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst,
			0xC0|byte(r>>6),
			0x80|byte(r&0x3F))
	case r < 0x10000:
		return append(dst,
			0xE0|byte(r>>12),
			0x80|byte((r>>6)&0x3F),
			0x80|byte(r&0x3F))
	default:
		return append(dst,
			0xF0|byte(r>>18),
			0x80|byte((r>>12)&0x3F),
			0x80|byte((r>>6)&0x3F),
			0x80|byte(r&0x3F))
	}
}

// AppendAll appends the UTF-8 encoding of each codepoint in rs to dst.
func AppendAll(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		dst = Append(dst, r)
	}
	return dst
}
