package codepoint

// Replacement is substituted for each ill-formed unit in the input.
const Replacement = '�'

// MaxScalar is the largest Unicode scalar value.
const MaxScalar = '\U0010FFFF'

// decomposer holds the streaming decoder state for one multi-byte sequence.
// lower and upper bound the next continuation byte; they are tightened on
// the 0xE0/0xED/0xF0/0xF4 lead bytes to exclude non-shortest forms and
// surrogates, then relax back to the generic 0x80..0xBF range.
type decomposer struct {
	cp     rune
	needed int
	seen   int
	lower  byte
	upper  byte
}

func (d *decomposer) reset() {
	d.cp = 0
	d.needed = 0
	d.seen = 0
	d.lower = 0x80
	d.upper = 0xBF
}

// step consumes one byte. emit reports whether r carries a decoded
// codepoint (possibly a replacement). consumed is false when b was rejected
// as a continuation byte and must be reprocessed as a fresh sequence start.
func (d *decomposer) step(b byte) (r rune, emit, consumed bool) {
	if d.needed == 0 {
		switch {
		case b <= 0x7F:
			return rune(b), true, true
		case b >= 0xC2 && b <= 0xDF:
			d.needed = 1
			d.cp = rune(b & 0x1F)
		case b >= 0xE0 && b <= 0xEF:
			if b == 0xE0 {
				d.lower = 0xA0
			}
			if b == 0xED {
				d.upper = 0x9F
			}
			d.needed = 2
			d.cp = rune(b & 0x0F)
		case b >= 0xF0 && b <= 0xF4:
			if b == 0xF0 {
				d.lower = 0x90
			}
			if b == 0xF4 {
				d.upper = 0x8F
			}
			d.needed = 3
			d.cp = rune(b & 0x07)
		default:
			return Replacement, true, true
		}
		return 0, false, true
	}

	if b < d.lower || b > d.upper {
		d.reset()
		return Replacement, true, false
	}

	d.lower = 0x80
	d.upper = 0xBF
	d.cp = d.cp<<6 | rune(b&0x3F)
	d.seen++
	if d.seen == d.needed {
		r = d.cp
		d.reset()
		return r, true, true
	}
	return 0, false, true
}

// Decompose converts a UTF-8 byte sequence into Unicode scalar values.
// Ill-formed units are replaced with U+FFFD following the WHATWG decoder
// algorithm; it never fails. Output order equals input byte order.
func Decompose(b []byte) []rune {
	out := make([]rune, 0, len(b))
	var d decomposer
	d.reset()

	for i := 0; i < len(b); {
		r, emit, consumed := d.step(b[i])
		if emit {
			out = append(out, r)
		}
		if consumed {
			i++
		}
	}
	if d.needed != 0 {
		// input ended mid-sequence
		out = append(out, Replacement)
	}
	return out
}

// DecomposeString is Decompose over the bytes of s.
func DecomposeString(s string) []rune {
	return Decompose([]byte(s))
}
