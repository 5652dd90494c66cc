package spec

import (
	"errors"
	"fmt"
	"io"

	"github.com/shapewire/shapewire/internal/vlq"
)

// ErrUnexpectedEndOfBytes reports input that ran out before a complete
// schema node could be decoded. Every decode of a strict prefix of a valid
// encoding fails with this error, at whatever depth the bytes run dry.
var ErrUnexpectedEndOfBytes = errors.New("spec: unexpected end of bytes")

// ReadError wraps a byte-source failure other than clean end-of-input.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "spec: read error: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// UnknownSpecFlagError reports a top-level tag byte outside the general and
// alias tag sets.
type UnknownSpecFlagError struct {
	Flag byte
}

func (e *UnknownSpecFlagError) Error() string {
	return fmt.Sprintf("spec: unknown spec flag 0x%02x", e.Flag)
}

// UnknownBinaryFormatFlagError reports an unrecognized binary
// floating-point format byte.
type UnknownBinaryFormatFlagError struct {
	Flag byte
}

func (e *UnknownBinaryFormatFlagError) Error() string {
	return fmt.Sprintf("spec: unknown binary floating-point format flag 0x%02x", e.Flag)
}

// UnknownDecimalFormatFlagError reports an unrecognized decimal
// floating-point format byte.
type UnknownDecimalFormatFlagError struct {
	Flag byte
}

func (e *UnknownDecimalFormatFlagError) Error() string {
	return fmt.Sprintf("spec: unknown decimal floating-point format flag 0x%02x", e.Flag)
}

// UnknownStringFormatFlagError reports an unrecognized string encoding byte.
type UnknownStringFormatFlagError struct {
	Flag byte
}

func (e *UnknownStringFormatFlagError) Error() string {
	return fmt.Sprintf("spec: unknown string encoding flag 0x%02x", e.Flag)
}

// UnknownSizeFormatFlagError reports an unrecognized size qualifier byte.
type UnknownSizeFormatFlagError struct {
	Flag byte
}

func (e *UnknownSizeFormatFlagError) Error() string {
	return fmt.Sprintf("spec: unknown size qualifier flag 0x%02x", e.Flag)
}

// IntegerOverflowError reports a variable-length integer whose value does
// not fit in a uint64. Raw preserves the undecodable bytes for diagnostics.
type IntegerOverflowError struct {
	Raw []byte
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("spec: variable-length integer overflows uint64 (% x)", e.Raw)
}

// NestingTooDeepError reports input whose nesting exceeds a Decoder's
// MaxDepth.
type NestingTooDeepError struct {
	Depth int
}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("spec: nesting exceeds maximum depth %d", e.Depth)
}

// nextByte reads exactly one byte, mapping end-of-input to
// ErrUnexpectedEndOfBytes and any other failure to a ReadError.
func nextByte(r io.Reader) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrUnexpectedEndOfBytes
			}
			return 0, &ReadError{Err: err}
		}
	}
}

// decodeU64 reads a variable-length integer, translating the vlq failure
// modes into the parsing error taxonomy.
func decodeU64(r io.Reader) (uint64, error) {
	n, err := vlq.Decode(r)
	if err != nil {
		var overflow *vlq.OverflowError
		switch {
		case errors.Is(err, vlq.ErrIncomplete):
			return 0, ErrUnexpectedEndOfBytes
		case errors.As(err, &overflow):
			return 0, &IntegerOverflowError{Raw: overflow.Raw}
		default:
			return 0, &ReadError{Err: err}
		}
	}
	return n, nil
}
