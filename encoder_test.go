package punycode

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/punycode/errors"
)

func TestEncode_RFCVectors(t *testing.T) {
	for _, tt := range rfcVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode([]rune(tt.text), nil)
			if err != nil {
				t.Fatalf("Encode(%q) failed: %v", tt.text, err)
			}
			if got != tt.encoded {
				t.Errorf("Encode(%q) = %q, want %q", tt.text, got, tt.encoded)
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	got, err := Encode(nil, nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}
	if got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}

func TestEncode_PureASCII(t *testing.T) {
	// All-basic input passes through verbatim plus the trailing delimiter.
	tests := []struct {
		input string
		want  string
	}{
		{"london", "london-"},
		{"ABC", "ABC-"},
		{"a-b", "a-b-"},
		{"0", "0-"},
	}

	for _, tt := range tests {
		got, err := Encode([]rune(tt.input), nil)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncode_NoBasicNoDelimiter(t *testing.T) {
	got, err := Encode([]rune("ü"), nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != "tda" {
		t.Errorf("Encode(\"ü\") = %q, want %q", got, "tda")
	}
}

func TestEncode_CaseFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags []bool
		want  string
	}{
		{
			name:  "uppercase first basic",
			input: "hello",
			flags: []bool{true, false, false, false, false},
			want:  "Hello-",
		},
		{
			name:  "flags lowercase existing uppercase",
			input: "HELLO",
			flags: []bool{true, false, false, false, false},
			want:  "Hello-",
		},
		{
			name:  "flag on non-basic flips final digit",
			input: "bücher",
			flags: []bool{false, true, false, false, false, false},
			want:  "bcher-kvA",
		},
		{
			name:  "short flags leave the tail unflagged",
			input: "hello",
			flags: []bool{true},
			want:  "Hello-",
		},
		{
			name:  "caseless positions unaffected",
			input: "a-1",
			flags: []bool{true, true, true},
			want:  "A-1-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode([]rune(tt.input), &Options{MaxLength: NoLimit, CaseFlags: tt.flags})
			if err != nil {
				t.Fatalf("Encode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode_MaxLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		wantErr bool
	}{
		{"zero cap nonempty", "a", 0, true},
		{"zero cap empty", "", 0, false},
		{"exact fit", "ab", 3, false}, // "ab-"
		{"one short", "ab", 2, true},
		{"cap hits digits", "bücher", 7, true}, // needs 9 bytes
		{"uncapped", "bücher", NoLimit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode([]rune(tt.input), &Options{MaxLength: tt.max})
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrOutputSizeExceeded) {
					t.Fatalf("Encode(%q, max=%d) err = %v, want output size error", tt.input, tt.max, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode(%q, max=%d) failed: %v", tt.input, tt.max, err)
			}
		})
	}
}

func TestEncode_Overflow(t *testing.T) {
	// A large basic prefix multiplies into the first delta: with h+1 well
	// past 2^31 / (0x10FFFF - 0x80), delta must blow the 32-bit bound.
	input := make([]rune, 0, 4001)
	for i := 0; i < 4000; i++ {
		input = append(input, 'a')
	}
	input = append(input, 0x10FFFF)

	_, err := Encode(input, nil)
	if !stderrors.Is(err, errors.ErrOverflow) {
		t.Fatalf("Encode err = %v, want overflow", err)
	}
}

func TestEncode_InvalidCodepoint(t *testing.T) {
	for _, bad := range []rune{-1, 0x110000, 1 << 30} {
		_, err := Encode([]rune{'a', bad}, nil)
		var perr *errors.Error
		if !stderrors.As(err, &perr) || perr.Kind != errors.KindInvalidCodepoint {
			t.Errorf("Encode with %#x: err = %v, want invalid_codepoint", bad, err)
		}
	}
}
