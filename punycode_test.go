package punycode

import "testing"

// Official sample strings from RFC 3492 section 7.1, plus the bücher label.
// Used by both the encoder and decoder tests.
var rfcVectors = []struct {
	name    string
	text    string
	encoded string
}{
	{"chinese simplified", "他们为什么不说中文", "ihqwcrb4cv8a8dqg056pqjye"},
	{"chinese traditional", "他們爲什麽不說中文", "ihqwctvzc91f659drss3x8bo0yb"},
	{"czech", "Pročprostěnemluvíčesky", "Proprostnemluvesky-uyb24dma41a"},
	{"japanese sono speed", "そのスピードで", "d9juau41awczczp"},
	{"japanese maji koi", "MajiでKoiする5秒前", "MajiKoi5-783gue6qz075azm5e"},
	{"japanese 3 nen b gumi", "3年B組金八先生", "3B-ww4c5e180e575a65lsy2b"},
	{"japanese hitotsu yane", "ひとつ屋根の下2", "2-u9tlzr9756bt3uc0v"},
	{"mixed hello another way", "Hello-Another-Way-それぞれの場所", "Hello-Another-Way--fc4qua05auwb3674vfr0b"},
	{"pure ascii with symbols", "-> $1.00 <-", "-> $1.00 <--"},
	{"bucher", "bücher", "bcher-kva"},
}

func TestDecodeDigit(t *testing.T) {
	tests := []struct {
		b    byte
		want int32
	}{
		{'a', 0},
		{'z', 25},
		{'A', 0},
		{'Z', 25},
		{'0', 26},
		{'9', 35},
		{'-', base},
		{'!', base},
		{' ', base},
		{0x80, base},
		{0xFF, base},
	}

	for _, tt := range tests {
		if got := decodeDigit(tt.b); got != tt.want {
			t.Errorf("decodeDigit(%#02x) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestEncodeDigit(t *testing.T) {
	tests := []struct {
		d     int32
		upper bool
		want  byte
	}{
		{0, false, 'a'},
		{25, false, 'z'},
		{0, true, 'A'},
		{25, true, 'Z'},
		{26, false, '0'},
		{35, false, '9'},
	}

	for _, tt := range tests {
		if got := encodeDigit(tt.d, tt.upper); got != tt.want {
			t.Errorf("encodeDigit(%d, %v) = %q, want %q", tt.d, tt.upper, got, tt.want)
		}
	}
}

func TestEncodeDigit_RoundTrip(t *testing.T) {
	for d := int32(0); d < base; d++ {
		for _, upper := range []bool{false, true} {
			if d >= 26 && upper {
				// digits have no uppercase form
				continue
			}
			if got := decodeDigit(encodeDigit(d, upper)); got != d {
				t.Errorf("decodeDigit(encodeDigit(%d, %v)) = %d", d, upper, got)
			}
		}
	}
}

func TestEncodeBasic(t *testing.T) {
	tests := []struct {
		cp    rune
		upper bool
		want  byte
	}{
		{'a', true, 'A'},
		{'a', false, 'a'},
		{'A', true, 'A'},
		{'A', false, 'a'},
		{'z', true, 'Z'},
		{'0', true, '0'},
		{'-', false, '-'},
		{'$', true, '$'},
	}

	for _, tt := range tests {
		if got := encodeBasic(tt.cp, tt.upper); got != tt.want {
			t.Errorf("encodeBasic(%q, %v) = %q, want %q", tt.cp, tt.upper, got, tt.want)
		}
	}
}

func TestFlagged(t *testing.T) {
	for b := byte('A'); b <= 'Z'; b++ {
		if !flagged(b) {
			t.Errorf("flagged(%q) = false", b)
		}
	}
	for _, b := range []byte{'a', 'z', '0', '9', '-', ' ', 0x00, 0x7F} {
		if flagged(b) {
			t.Errorf("flagged(%#02x) = true", b)
		}
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		k, bias, want int32
	}{
		{36, 72, tmin},  // k <= bias
		{72, 72, tmin},  // boundary
		{98, 72, tmax},  // k >= bias+tmax
		{108, 72, tmax}, // well past
		{80, 72, 8},     // in between
		{36, 0, tmax},   // zero bias clamps high
	}

	for _, tt := range tests {
		if got := threshold(tt.k, tt.bias); got != tt.want {
			t.Errorf("threshold(%d, %d) = %d, want %d", tt.k, tt.bias, got, tt.want)
		}
	}
}

func TestAdapt(t *testing.T) {
	// First adaptation of a single-codepoint delta, as in encoding "ü"
	// after an empty basic prefix.
	if got := adapt(0, 1, true); got != 0 {
		t.Errorf("adapt(0, 1, true) = %d, want 0", got)
	}
	// adapt must never return a negative bias
	deltas := []int32{0, 1, 26, 700, 1000000, maxInt32}
	points := []int32{1, 2, 10, 1000}
	for _, d := range deltas {
		for _, np := range points {
			for _, first := range []bool{true, false} {
				if got := adapt(d, np, first); got < 0 {
					t.Errorf("adapt(%d, %d, %v) = %d, negative", d, np, first, got)
				}
			}
		}
	}
}
