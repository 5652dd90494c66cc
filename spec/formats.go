package spec

import "io"

// BinaryFloatFormat selects an IEEE 754 binary interchange format.
type BinaryFloatFormat uint8

const (
	Half BinaryFloatFormat = iota
	Single
	Double
	Quadruple
	Octuple
)

// String returns the format name.
func (f BinaryFloatFormat) String() string {
	switch f {
	case Half:
		return "half"
	case Single:
		return "single"
	case Double:
		return "double"
	case Quadruple:
		return "quadruple"
	case Octuple:
		return "octuple"
	default:
		return "unknown"
	}
}

// SignificandBits returns the significand width, including the implicit bit.
func (f BinaryFloatFormat) SignificandBits() uint64 {
	switch f {
	case Half:
		return 11
	case Single:
		return 24
	case Double:
		return 53
	case Quadruple:
		return 113
	case Octuple:
		return 237
	default:
		return 0
	}
}

// ExponentBits returns the exponent field width.
func (f BinaryFloatFormat) ExponentBits() uint64 {
	switch f {
	case Half:
		return 5
	case Single:
		return 8
	case Double:
		return 11
	case Quadruple:
		return 15
	case Octuple:
		return 19
	default:
		return 0
	}
}

func (f BinaryFloatFormat) encode(w io.Writer) (int, error) {
	return w.Write([]byte{byte(f)})
}

func decodeBinaryFloatFormat(r io.Reader) (BinaryFloatFormat, error) {
	b, err := nextByte(r)
	if err != nil {
		return 0, err
	}
	if b > byte(Octuple) {
		return 0, &UnknownBinaryFormatFlagError{Flag: b}
	}
	return BinaryFloatFormat(b), nil
}

// DecimalFloatFormat selects an IEEE 754 decimal interchange format.
type DecimalFloatFormat uint8

const (
	Dec32 DecimalFloatFormat = iota
	Dec64
	Dec128
)

// String returns the format name.
func (f DecimalFloatFormat) String() string {
	switch f {
	case Dec32:
		return "dec32"
	case Dec64:
		return "dec64"
	case Dec128:
		return "dec128"
	default:
		return "unknown"
	}
}

// SignificandBits returns the significand precision in digits of the
// densely packed representation.
func (f DecimalFloatFormat) SignificandBits() uint64 {
	switch f {
	case Dec32:
		return 7
	case Dec64:
		return 16
	case Dec128:
		return 34
	default:
		return 0
	}
}

// DecimalDigits returns the number of decimal digits the format preserves.
func (f DecimalFloatFormat) DecimalDigits() uint64 {
	switch f {
	case Dec32:
		return 7
	case Dec64:
		return 16
	case Dec128:
		return 34
	default:
		return 0
	}
}

// MinimumBytes returns the smallest byte footprint able to carry a value of
// the format.
func (f DecimalFloatFormat) MinimumBytes() int {
	switch f {
	case Dec32:
		return 2
	case Dec64:
		return 4
	case Dec128:
		return 8
	default:
		return 0
	}
}

func (f DecimalFloatFormat) encode(w io.Writer) (int, error) {
	return w.Write([]byte{byte(f)})
}

func decodeDecimalFloatFormat(r io.Reader) (DecimalFloatFormat, error) {
	b, err := nextByte(r)
	if err != nil {
		return 0, err
	}
	if b > byte(Dec128) {
		return 0, &UnknownDecimalFormatFlagError{Flag: b}
	}
	return DecimalFloatFormat(b), nil
}

// StringEncoding selects the character encoding of a string payload.
type StringEncoding uint8

const (
	Utf8 StringEncoding = iota
	Utf16
	Ascii
)

// String returns the encoding name.
func (e StringEncoding) String() string {
	switch e {
	case Utf8:
		return "utf8"
	case Utf16:
		return "utf16"
	case Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}

func (e StringEncoding) encode(w io.Writer) (int, error) {
	return w.Write([]byte{byte(e)})
}

func decodeStringEncoding(r io.Reader) (StringEncoding, error) {
	b, err := nextByte(r)
	if err != nil {
		return 0, err
	}
	if b > byte(Ascii) {
		return 0, &UnknownStringFormatFlagError{Flag: b}
	}
	return StringEncoding(b), nil
}
