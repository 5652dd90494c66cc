// Package vlq implements the variable-length unsigned integer encoding used
// by the shapewire schema codec.
//
// The encoding is the usual base-128 form: each byte carries seven payload
// bits, least significant group first, and the high bit marks continuation.
// A sequence is self-delimiting, so a decoder never needs lookahead.
//
// Decode keeps the three failure modes apart: a cleanly truncated sequence
// (ErrIncomplete), a complete sequence whose value does not fit in a uint64
// (OverflowError, carrying the raw bytes), and any other read failure.
package vlq

import (
	"errors"
	"fmt"
	"io"
)

// MaxLen is the maximum number of bytes a uint64 occupies.
const MaxLen = 10

// ErrIncomplete reports a sequence that ended before its terminating byte.
var ErrIncomplete = errors.New("vlq: incomplete variable-length encoding")

// OverflowError reports a complete sequence encoding a value outside the
// uint64 range. Raw holds every byte of the offending sequence.
type OverflowError struct {
	Raw []byte
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("vlq: value does not fit in uint64 (%d bytes)", len(e.Raw))
}

// Append appends the encoding of x to dst and returns the extended slice.
func Append(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// Encode writes the encoding of x to w and returns the number of bytes
// written.
func Encode(w io.Writer, x uint64) (int, error) {
	var buf [MaxLen]byte
	b := Append(buf[:0], x)
	return w.Write(b)
}

// Decode reads one variable-length integer from r.
//
// On a value too large for uint64 the whole sequence is still consumed, so
// the returned *OverflowError carries every byte of it and the reader is
// left positioned after the sequence.
func Decode(r io.Reader) (uint64, error) {
	var (
		x        uint64
		shift    uint
		raw      []byte
		overflow bool
	)
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		raw = append(raw, b)
		if !overflow {
			switch {
			case shift >= 64, shift == 63 && b&0x7f > 1:
				overflow = true
			default:
				x |= uint64(b&0x7f) << shift
				shift += 7
			}
		}
		if b < 0x80 {
			if overflow {
				return 0, &OverflowError{Raw: raw}
			}
			return x, nil
		}
	}
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrIncomplete
			}
			return 0, err
		}
	}
}
