package punycode

import (
	"go.uber.org/zap"

	"github.com/wippyai/punycode/codepoint"
	"github.com/wippyai/punycode/errors"
)

// Encode converts a codepoint sequence to its Punycode representation.
// Input is typically the output of codepoint.Decompose; EncodeString wires
// the two together. Fails with KindOverflow when the delta accumulator
// would exceed the 32-bit bound, with KindOutputSize when opts.MaxLength
// would be exceeded, and with KindInvalidCodepoint when the input contains
// a value outside the Unicode scalar range.
func Encode(input []rune, opts *Options) (string, error) {
	maxLen := opts.maxLength()
	caseFlags := opts.caseFlags()

	for j, cp := range input {
		if cp < 0 || cp > codepoint.MaxScalar {
			return "", errors.New(errors.PhaseEncode, errors.KindInvalidCodepoint).
				Offset(j).
				Value(int64(cp)).
				Detail("value %#x is not a Unicode scalar value", int64(cp)).
				Build()
		}
	}

	out := make([]byte, 0, len(input))
	emit := func(c byte) error {
		if maxLen >= 0 && len(out)+1 > maxLen {
			return errors.OutputSize(errors.PhaseEncode, len(out)+1, maxLen)
		}
		out = append(out, c)
		return nil
	}

	// First pass: basic code points are copied through, re-cased when the
	// caller supplied flags.
	for j, cp := range input {
		if cp >= initialN {
			continue
		}
		c := byte(cp)
		if caseFlags != nil {
			upper := j < len(caseFlags) && caseFlags[j]
			c = encodeBasic(cp, upper)
		}
		if err := emit(c); err != nil {
			return "", err
		}
	}

	b := int32(len(out))
	h := b
	if b > 0 {
		if err := emit(delimiter); err != nil {
			return "", err
		}
	}

	n := initialN
	delta := int32(0)
	bias := initialBias

	for h < int32(len(input)) {
		// Minimum codepoint not yet handled.
		m := maxInt32
		for _, cp := range input {
			if c := int32(cp); c >= n && c < m {
				m = c
			}
		}

		if m-n > (maxInt32-delta)/(h+1) {
			return "", errors.Overflow(errors.PhaseEncode, "delta accumulator")
		}
		delta += (m - n) * (h + 1)
		n = m

		for j, cp := range input {
			c := int32(cp)
			if c < n {
				if delta == maxInt32 {
					return "", errors.Overflow(errors.PhaseEncode, "delta accumulator")
				}
				delta++
			}
			if c != n {
				continue
			}

			// Serialize delta as a variable-length integer. The final
			// digit carries the codepoint's case flag.
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				if err := emit(encodeDigit(t+(q-t)%(base-t), false)); err != nil {
					return "", err
				}
				q = (q - t) / (base - t)
			}
			upper := caseFlags != nil && j < len(caseFlags) && caseFlags[j]
			if err := emit(encodeDigit(q, upper)); err != nil {
				return "", err
			}

			bias = adapt(delta, h+1, h == b)
			delta = 0
			h++
		}

		if delta == maxInt32 {
			return "", errors.Overflow(errors.PhaseEncode, "delta accumulator")
		}
		delta++
		n++
	}

	Logger().Debug("encode complete",
		zap.Int("codepoints", len(input)),
		zap.Int32("basic", b),
		zap.Int("bytes", len(out)),
		zap.Int32("bias", bias))
	return string(out), nil
}
