package spec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shapewire/shapewire/internal/vlq"
)

// General tags. The block starts at 32 so it can never collide with the
// alias bytes below.
const (
	tagBool         byte = 32
	tagUint         byte = 33
	tagName         byte = 34
	tagInt          byte = 35
	tagBinaryFloat  byte = 36
	tagDecimalFloat byte = 37
	tagRef          byte = 38
	tagVoid         byte = 39
	tagList         byte = 40
	tagMap          byte = 41
	tagRecord       byte = 42
	tagEnum         byte = 43
	tagUnion        byte = 45
	tagDecimal      byte = 46
	tagTuple        byte = 47
	tagBytes        byte = 48
	tagString       byte = 49
	tagOptional     byte = 63
)

// Alias bytes: single-byte shorthands for the statistically dominant
// encodings. The decoder accepts them as exact synonyms of the general form.
const (
	aliasUint0      byte = 0
	aliasUint1      byte = 1
	aliasUint2      byte = 2
	aliasUint3      byte = 3
	aliasInt0       byte = 4
	aliasInt1       byte = 5
	aliasInt2       byte = 6
	aliasInt3       byte = 7
	aliasSingle     byte = 8
	aliasDouble     byte = 9
	aliasUtf8String byte = 10
)

// ToBytes returns the compact encoding of the schema. Writing to an
// in-memory buffer cannot fail; if it somehow does, that is a programming
// error and ToBytes panics.
func (s *Spec) ToBytes() []byte {
	var buf bytes.Buffer
	buf.Grow(256)
	if _, err := s.WriteBytes(&buf); err != nil {
		panic(fmt.Sprintf("spec: encode to memory buffer failed: %v", err))
	}
	return buf.Bytes()
}

// ToLongformBytes returns the canonical alias-free encoding. Two schemas
// are structurally equal exactly when their longform bytes are identical,
// which makes this form the stable identity key regardless of what aliases
// the compact encoder applies. It is not the smallest encoding.
func (s *Spec) ToLongformBytes() []byte {
	var buf bytes.Buffer
	buf.Grow(256)
	if _, err := s.WriteLongform(&buf); err != nil {
		panic(fmt.Sprintf("spec: encode to memory buffer failed: %v", err))
	}
	return buf.Bytes()
}

// WriteBytes writes the compact encoding to w and returns the exact number
// of bytes written. A sink failure aborts the encode immediately.
func (s *Spec) WriteBytes(w io.Writer) (int, error) {
	e := encoder{w: w}
	return e.encode(s)
}

// WriteLongform writes the canonical encoding to w and returns the exact
// number of bytes written.
func (s *Spec) WriteLongform(w io.Writer) (int, error) {
	e := encoder{w: w, longform: true}
	return e.encode(s)
}

// encoder walks a Spec depth-first. In longform mode every node, at every
// depth, uses its general tag-plus-payload form.
type encoder struct {
	w        io.Writer
	longform bool
}

func (e *encoder) encode(s *Spec) (int, error) {
	switch s.kind {
	case KindBool:
		return e.tag(tagBool)
	case KindVoid:
		return e.tag(tagVoid)
	case KindUint:
		if !e.longform && s.scale <= 3 {
			return e.tag(aliasUint0 + s.scale)
		}
		return e.w.Write([]byte{tagUint, s.scale})
	case KindInt:
		if !e.longform && s.scale <= 3 {
			return e.tag(aliasInt0 + s.scale)
		}
		return e.w.Write([]byte{tagInt, s.scale})
	case KindBinaryFloat:
		if !e.longform {
			switch s.binFmt {
			case Single:
				return e.tag(aliasSingle)
			case Double:
				return e.tag(aliasDouble)
			}
		}
		return e.chain(e.tag(tagBinaryFloat))(s.binFmt.encode(e.w))
	case KindDecimalFloat:
		return e.chain(e.tag(tagDecimalFloat))(s.decFmt.encode(e.w))
	case KindDecimal:
		n, err := e.tag(tagDecimal)
		if err != nil {
			return n, err
		}
		m, err := vlq.Encode(e.w, s.precision)
		n += m
		if err != nil {
			return n, err
		}
		m, err = vlq.Encode(e.w, s.decScale)
		return n + m, err
	case KindMap:
		n, err := e.tagAndSize(tagMap, s.size)
		if err != nil {
			return n, err
		}
		m, err := e.encode(s.key)
		n += m
		if err != nil {
			return n, err
		}
		m, err = e.encode(s.value)
		return n + m, err
	case KindList:
		n, err := e.tagAndSize(tagList, s.size)
		if err != nil {
			return n, err
		}
		m, err := e.encode(s.value)
		return n + m, err
	case KindString:
		if !e.longform && !s.size.IsFixed() && s.strEnc == Utf8 {
			return e.tag(aliasUtf8String)
		}
		n, err := e.tagAndSize(tagString, s.size)
		if err != nil {
			return n, err
		}
		m, err := s.strEnc.encode(e.w)
		return n + m, err
	case KindBytes:
		return e.tagAndSize(tagBytes, s.size)
	case KindOptional:
		n, err := e.tag(tagOptional)
		if err != nil {
			return n, err
		}
		m, err := e.encode(s.inner)
		return n + m, err
	case KindName:
		n, err := e.chain(e.tag(tagName))(e.str(s.name))
		if err != nil {
			return n, err
		}
		m, err := e.encode(s.inner)
		return n + m, err
	case KindRef:
		return e.chain(e.tag(tagRef))(e.str(s.name))
	case KindRecord:
		return e.named(tagRecord, s.fields)
	case KindEnum:
		return e.named(tagEnum, s.fields)
	case KindTuple:
		return e.positional(tagTuple, s.elems)
	case KindUnion:
		return e.positional(tagUnion, s.elems)
	default:
		panic(fmt.Sprintf("spec: encode of invalid kind %d", s.kind))
	}
}

func (e *encoder) tag(b byte) (int, error) {
	return e.w.Write([]byte{b})
}

func (e *encoder) tagAndSize(b byte, size Size) (int, error) {
	n, err := e.tag(b)
	if err != nil {
		return n, err
	}
	m, err := size.encode(e.w)
	return n + m, err
}

// str writes a length-prefixed UTF-8 byte sequence.
func (e *encoder) str(s string) (int, error) {
	n, err := vlq.Encode(e.w, uint64(len(s)))
	if err != nil {
		return n, err
	}
	m, err := io.WriteString(e.w, s)
	return n + m, err
}

// named encodes Record and Enum bodies: element count, then (name, spec)
// pairs in declaration order.
func (e *encoder) named(tag byte, fields []Field) (int, error) {
	n, err := e.chain(e.tag(tag))(vlq.Encode(e.w, uint64(len(fields))))
	if err != nil {
		return n, err
	}
	for _, f := range fields {
		m, err := e.str(f.Name)
		n += m
		if err != nil {
			return n, err
		}
		m, err = e.encode(f.Spec)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// positional encodes Tuple and Union bodies: element count, then bare spec
// elements in declaration order.
func (e *encoder) positional(tag byte, elems []*Spec) (int, error) {
	n, err := e.chain(e.tag(tag))(vlq.Encode(e.w, uint64(len(elems))))
	if err != nil {
		return n, err
	}
	for _, el := range elems {
		m, err := e.encode(el)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// chain folds two sequential write results into one running count, keeping
// the first error.
func (e *encoder) chain(n int, err error) func(int, error) (int, error) {
	return func(m int, err2 error) (int, error) {
		if err != nil {
			return n, err
		}
		return n + m, err2
	}
}
