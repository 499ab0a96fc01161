package punycode

import (
	"go.uber.org/zap"

	"github.com/wippyai/punycode/errors"
)

// Decode converts a Punycode string back to its codepoint sequence.
// Fails with KindNotBasic on a non-ASCII byte before the last delimiter,
// KindInvalidInput on a malformed digit or a chain cut off by the end of
// input, KindOverflow when the integer state would exceed the 32-bit
// bound, and KindOutputSize when opts.MaxLength would be exceeded.
func Decode(input string, opts *Options) ([]rune, error) {
	out, _, err := decode(input, opts, false)
	return out, err
}

// DecodeFlags is Decode with the case side channel enabled: the second
// result holds one flag per output codepoint, true where the encoded form
// asked for uppercase.
func DecodeFlags(input string, opts *Options) ([]rune, []bool, error) {
	return decode(input, opts, true)
}

func decode(input string, opts *Options, wantFlags bool) ([]rune, []bool, error) {
	maxLen := opts.maxLength()

	// Everything before the last delimiter is the literal basic prefix.
	b := 0
	for j := 0; j < len(input); j++ {
		if input[j] == delimiter {
			b = j
		}
	}

	output := make([]rune, 0, len(input))
	var flags []bool
	if wantFlags {
		flags = make([]bool, 0, len(input))
	}

	for j := 0; j < b; j++ {
		c := input[j]
		if c >= 0x80 {
			return nil, nil, errors.NotBasic(errors.PhaseDecode, j, c)
		}
		if maxLen >= 0 && len(output)+1 > maxLen {
			return nil, nil, errors.OutputSize(errors.PhaseDecode, len(output)+1, maxLen)
		}
		output = append(output, rune(c))
		if wantFlags {
			flags = append(flags, flagged(c))
		}
	}

	in := 0
	if b > 0 {
		in = b + 1
	}

	n := initialN
	bias := initialBias
	i := int32(0)

	for in < len(input) {
		// Decode one generalized variable-length integer into i.
		oldi := i
		w := int32(1)
		for k := base; ; k += base {
			if in >= len(input) {
				return nil, nil, errors.Truncated(errors.PhaseDecode, in)
			}
			c := input[in]
			digit := decodeDigit(c)
			if digit >= base {
				return nil, nil, errors.InvalidDigit(errors.PhaseDecode, in, c)
			}
			in++
			if digit > (maxInt32-i)/w {
				return nil, nil, errors.Overflow(errors.PhaseDecode, "decoded value")
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return nil, nil, errors.Overflow(errors.PhaseDecode, "digit weight")
			}
			w *= base - t
		}

		outPlusOne := int32(len(output)) + 1
		bias = adapt(i-oldi, outPlusOne, oldi == 0)

		if i/outPlusOne > maxInt32-n {
			return nil, nil, errors.Overflow(errors.PhaseDecode, "codepoint value")
		}
		n += i / outPlusOne
		i %= outPlusOne

		if maxLen >= 0 && len(output)+1 > maxLen {
			return nil, nil, errors.OutputSize(errors.PhaseDecode, len(output)+1, maxLen)
		}

		// Insert n at position i.
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		if wantFlags {
			// The chain's final digit carries the case flag.
			flags = append(flags, false)
			copy(flags[i+1:], flags[i:])
			flags[i] = flagged(input[in-1])
		}
		i++
	}

	Logger().Debug("decode complete",
		zap.Int("bytes", len(input)),
		zap.Int("codepoints", len(output)),
		zap.Int("basic", b),
		zap.Int32("n", n),
		zap.Int32("bias", bias))
	return output, flags, nil
}
