package punycode

// NoLimit disables the output length cap. Any negative MaxLength behaves
// the same; zero is a real cap of zero.
const NoLimit = -1

// Options carries the optional knobs of one encode or decode call. A nil
// *Options is equivalent to NewOptions(): no length cap and no case flags.
type Options struct {
	// MaxLength caps the output length: codepoints for Decode, bytes for
	// Encode. Exceeding it fails with KindOutputSize.
	MaxLength int

	// CaseFlags enables the case side channel when non-nil. For Encode,
	// index j flags the desired uppercase-ness of input position j; basic
	// code points are re-cased accordingly and each encoded value's final
	// digit carries the flag of its codepoint. Positions beyond the slice
	// are treated as unflagged. Decode ignores this field; use DecodeFlags
	// to capture flags.
	CaseFlags []bool
}

// NewOptions returns Options with no length cap and no case flags.
func NewOptions() *Options {
	return &Options{MaxLength: NoLimit}
}

func (o *Options) maxLength() int {
	if o == nil {
		return NoLimit
	}
	return o.MaxLength
}

func (o *Options) caseFlags() []bool {
	if o == nil {
		return nil
	}
	return o.CaseFlags
}
