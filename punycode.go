package punycode

// Bootstring parameters for Punycode, RFC 3492 section 5.
const (
	base        int32 = 36
	tmin        int32 = 1
	tmax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 128

	delimiter byte = '-'

	maxInt32 int32 = 1<<31 - 1
)

// decodeDigit maps an extended code point to its value 0..35, case
// insensitively. It returns base for anything that is not a digit.
func decodeDigit(b byte) int32 {
	switch {
	case b >= '0' && b <= '9':
		return int32(b - '0' + 26)
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A')
	case b >= 'a' && b <= 'z':
		return int32(b - 'a')
	}
	return base
}

// encodeDigit maps a value 0..35 to its extended code point. Values below
// 26 are letters and carry the case flag in the ASCII case bit; 26..35 are
// the digits '0'..'9', which have no uppercase form.
func encodeDigit(d int32, upper bool) byte {
	if d < 26 {
		c := byte(d) + 'a'
		if upper {
			c &^= 0x20
		}
		return c
	}
	return byte(d-26) + '0'
}

// encodeBasic forces a basic code point to the case the flag asks for,
// leaving caseless code points alone. Byte subtraction wraps, so the range
// checks behave like unsigned comparisons.
func encodeBasic(cp rune, upper bool) byte {
	b := byte(cp)
	if b-'a' < 26 {
		b &^= 0x20
	}
	if !upper && b-'A' < 26 {
		b |= 0x20
	}
	return b
}

// flagged reports whether a basic code point counts as uppercase for the
// case-flag channel.
func flagged(b byte) bool {
	return b-'A' < 26
}

// threshold computes the digit threshold t(k) for the current bias.
func threshold(k, bias int32) int32 {
	switch {
	case k <= bias:
		return tmin
	case k >= bias+tmax:
		return tmax
	}
	return k - bias
}

// adapt is the bias adaptation function of RFC 3492 section 3.4. All
// division truncates.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + ((base-tmin+1)*delta)/(delta+skew)
}
