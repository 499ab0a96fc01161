package punycode

import (
	"github.com/wippyai/punycode/codepoint"
)

// EncodeString converts UTF-8 text to its Punycode representation. The
// text is decomposed into codepoints first, so ill-formed UTF-8 is carried
// through as U+FFFD rather than rejected.
func EncodeString(s string, opts *Options) (string, error) {
	return Encode(codepoint.DecomposeString(s), opts)
}

// DecodeString converts a Punycode string back to UTF-8 text.
func DecodeString(s string, opts *Options) (string, error) {
	rs, err := Decode(s, opts)
	if err != nil {
		return "", err
	}
	return string(codepoint.AppendAll(nil, rs)), nil
}
