package spec

import (
	"bytes"
	"io"
	"math"
	"strings"
)

// ReadFrom decodes one schema from r. It accepts both the compact and the
// longform encodings, since alias bytes and their general forms are exact
// synonyms. Decoding is a single forward pass; no bytes beyond the schema's
// own encoding are consumed.
//
// ReadFrom imposes no nesting limit, matching the wire format's grammar.
// When the input is untrusted, use a Decoder with MaxDepth set.
func ReadFrom(r io.Reader) (*Spec, error) {
	d := Decoder{}
	return d.Decode(r)
}

// FromBytes decodes one schema from a byte slice.
func FromBytes(b []byte) (*Spec, error) {
	return ReadFrom(bytes.NewReader(b))
}

// A Decoder decodes schemas with an optional nesting guard.
type Decoder struct {
	// MaxDepth bounds the nesting depth of accepted input. Zero means
	// unlimited, in which case adversarially deep input is only bounded
	// by the goroutine stack.
	MaxDepth int
}

// Decode reads one schema from r.
func (d *Decoder) Decode(r io.Reader) (*Spec, error) {
	return d.decode(r, 0)
}

func (d *Decoder) decode(r io.Reader, depth int) (*Spec, error) {
	if d.MaxDepth > 0 && depth >= d.MaxDepth {
		return nil, &NestingTooDeepError{Depth: d.MaxDepth}
	}
	flag, err := nextByte(r)
	if err != nil {
		return nil, err
	}
	switch flag {
	case tagBool:
		return Bool(), nil
	case tagVoid:
		return Void(), nil
	case tagUint:
		scale, err := nextByte(r)
		if err != nil {
			return nil, err
		}
		return Uint(scale), nil
	case tagInt:
		scale, err := nextByte(r)
		if err != nil {
			return nil, err
		}
		return Int(scale), nil
	case tagName:
		name, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		inner, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return Named(name, inner), nil
	case tagRef:
		name, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		return Ref(name), nil
	case tagBinaryFloat:
		f, err := decodeBinaryFloatFormat(r)
		if err != nil {
			return nil, err
		}
		return BinaryFloatingPoint(f), nil
	case tagDecimalFloat:
		f, err := decodeDecimalFloatFormat(r)
		if err != nil {
			return nil, err
		}
		return DecimalFloatingPoint(f), nil
	case tagList:
		size, err := decodeSize(r)
		if err != nil {
			return nil, err
		}
		value, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return List(size, value), nil
	case tagMap:
		size, err := decodeSize(r)
		if err != nil {
			return nil, err
		}
		key, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		value, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return Map(size, key, value), nil
	case tagDecimal:
		precision, err := decodeU64(r)
		if err != nil {
			return nil, err
		}
		scale, err := decodeU64(r)
		if err != nil {
			return nil, err
		}
		return Decimal(precision, scale), nil
	case tagBytes:
		size, err := decodeSize(r)
		if err != nil {
			return nil, err
		}
		return Bytes(size), nil
	case tagString:
		size, err := decodeSize(r)
		if err != nil {
			return nil, err
		}
		enc, err := decodeStringEncoding(r)
		if err != nil {
			return nil, err
		}
		return String(size, enc), nil
	case tagOptional:
		inner, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	case tagRecord:
		fields, err := d.decodeFields(r, depth)
		if err != nil {
			return nil, err
		}
		return Record(fields...), nil
	case tagEnum:
		variants, err := d.decodeFields(r, depth)
		if err != nil {
			return nil, err
		}
		return Enum(variants...), nil
	case tagTuple:
		elems, err := d.decodeElems(r, depth)
		if err != nil {
			return nil, err
		}
		return Tuple(elems...), nil
	case tagUnion:
		alts, err := d.decodeElems(r, depth)
		if err != nil {
			return nil, err
		}
		return Union(alts...), nil

	// Alias bytes
	case aliasUint0, aliasUint1, aliasUint2, aliasUint3:
		return Uint(flag - aliasUint0), nil
	case aliasInt0, aliasInt1, aliasInt2, aliasInt3:
		return Int(flag - aliasInt0), nil
	case aliasSingle:
		return BinaryFloatingPoint(Single), nil
	case aliasDouble:
		return BinaryFloatingPoint(Double), nil
	case aliasUtf8String:
		return String(Variable, Utf8), nil

	default:
		return nil, &UnknownSpecFlagError{Flag: flag}
	}
}

func (d *Decoder) decodeFields(r io.Reader, depth int) ([]Field, error) {
	n, err := decodeU64(r)
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, clampCap(n))
	for i := uint64(0); i < n; i++ {
		name, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		s, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Spec: s})
	}
	return fields, nil
}

func (d *Decoder) decodeElems(r io.Reader, depth int) ([]*Spec, error) {
	n, err := decodeU64(r)
	if err != nil {
		return nil, err
	}
	elems := make([]*Spec, 0, clampCap(n))
	for i := uint64(0); i < n; i++ {
		s, err := d.decode(r, depth+1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, s)
	}
	return elems, nil
}

// decodeString reads a length-prefixed UTF-8 byte sequence. The bytes are
// copied as-is; well-formedness of the text is not this layer's concern.
func decodeString(r io.Reader) (string, error) {
	n, err := decodeU64(r)
	if err != nil {
		return "", err
	}
	if n > math.MaxInt64 {
		// No real stream carries 2^63 bytes; the read below could only
		// ever end early.
		return "", ErrUnexpectedEndOfBytes
	}
	var sb strings.Builder
	if _, err := io.CopyN(&sb, r, int64(n)); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", ErrUnexpectedEndOfBytes
		}
		return "", &ReadError{Err: err}
	}
	return sb.String(), nil
}

// clampCap keeps attacker-supplied counts from pre-allocating unbounded
// memory; the slices grow organically past this.
func clampCap(n uint64) int {
	const maxPrealloc = 64
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
