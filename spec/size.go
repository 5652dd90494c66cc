package spec

import (
	"fmt"
	"io"

	"github.com/shapewire/shapewire/internal/vlq"
)

// Size qualifies a container, string, or byte payload as having a declared
// fixed length or a length carried alongside the data.
//
// The zero value is Variable.
type Size struct {
	fixed bool
	bound uint64
}

// Variable is the size qualifier of payloads without a declared length.
var Variable = Size{}

// Fixed returns the size qualifier of a payload with exactly n elements.
// The semantic upper limit of n is the caller's concern.
func Fixed(n uint64) Size {
	return Size{fixed: true, bound: n}
}

// IsFixed reports whether the size carries a declared bound.
func (s Size) IsFixed() bool { return s.fixed }

// Bound returns the declared length. It is zero for Variable.
func (s Size) Bound() uint64 { return s.bound }

// String returns "variable" or "fixed(n)".
func (s Size) String() string {
	if s.fixed {
		return fmt.Sprintf("fixed(%d)", s.bound)
	}
	return "variable"
}

func (s Size) encode(w io.Writer) (int, error) {
	if !s.fixed {
		return w.Write([]byte{1})
	}
	n, err := w.Write([]byte{0})
	if err != nil {
		return n, err
	}
	m, err := vlq.Encode(w, s.bound)
	return n + m, err
}

func decodeSize(r io.Reader) (Size, error) {
	b, err := nextByte(r)
	if err != nil {
		return Size{}, err
	}
	switch b {
	case 0:
		n, err := decodeU64(r)
		if err != nil {
			return Size{}, err
		}
		return Fixed(n), nil
	case 1:
		return Variable, nil
	default:
		return Size{}, &UnknownSizeFormatFlagError{Flag: b}
	}
}
