package spec

// Kind discriminates the variants of a Spec node.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindBinaryFloat
	KindDecimalFloat
	KindDecimal
	KindMap
	KindList
	KindString
	KindBytes
	KindOptional
	KindName
	KindRef
	KindRecord
	KindTuple
	KindEnum
	KindUnion
	KindVoid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBinaryFloat:
		return "binfp"
	case KindDecimalFloat:
		return "decfp"
	case KindDecimal:
		return "decimal"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindOptional:
		return "optional"
	case KindName:
		return "name"
	case KindRef:
		return "ref"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Spec is one node of a recursive schema-shape tree.
//
// A node owns its children outright; Ref nodes are name lookups against
// enclosing Name bindings, never structural back-pointers, so a tree is
// always acyclic in memory even when the schema it describes is recursive.
// Construct nodes with the package constructors and treat them as immutable
// afterwards; a Spec that is never mutated is safe for concurrent reads.
type Spec struct {
	kind Kind

	// Scalar payloads (validity depends on kind)
	scale     uint8
	binFmt    BinaryFloatFormat
	decFmt    DecimalFloatFormat
	precision uint64
	decScale  uint64
	size      Size
	strEnc    StringEncoding
	name      string

	// Child nodes
	inner  *Spec   // Optional, Name
	key    *Spec   // Map key
	value  *Spec   // Map and List value
	fields []Field // Record, Enum
	elems  []*Spec // Tuple, Union
}

// Field is a named child of a Record or Enum node. Declaration order is
// semantically significant; name uniqueness is not enforced here.
type Field struct {
	Name string
	Spec *Spec
}

// ============================================================
// Constructors
// ============================================================

// Bool describes a boolean value.
func Bool() *Spec {
	return &Spec{kind: KindBool}
}

// Uint describes a fixed-width unsigned integer. The scale byte selects the
// width and is not validated here.
func Uint(scale uint8) *Spec {
	return &Spec{kind: KindUint, scale: scale}
}

// Int describes a fixed-width signed integer.
func Int(scale uint8) *Spec {
	return &Spec{kind: KindInt, scale: scale}
}

// BinaryFloatingPoint describes an IEEE 754 binary interchange value.
func BinaryFloatingPoint(f BinaryFloatFormat) *Spec {
	return &Spec{kind: KindBinaryFloat, binFmt: f}
}

// DecimalFloatingPoint describes an IEEE 754 decimal interchange value.
func DecimalFloatingPoint(f DecimalFloatFormat) *Spec {
	return &Spec{kind: KindDecimalFloat, decFmt: f}
}

// Decimal describes an arbitrary-precision decimal with the given precision
// and scale.
func Decimal(precision, scale uint64) *Spec {
	return &Spec{kind: KindDecimal, precision: precision, decScale: scale}
}

// Map describes an associative container.
func Map(size Size, key, value *Spec) *Spec {
	return &Spec{kind: KindMap, size: size, key: key, value: value}
}

// List describes an ordered container.
func List(size Size, value *Spec) *Spec {
	return &Spec{kind: KindList, size: size, value: value}
}

// String describes a text payload.
func String(size Size, enc StringEncoding) *Spec {
	return &Spec{kind: KindString, size: size, strEnc: enc}
}

// Bytes describes a raw byte payload.
func Bytes(size Size) *Spec {
	return &Spec{kind: KindBytes, size: size}
}

// Optional wraps a schema in a presence-or-absence marker.
func Optional(inner *Spec) *Spec {
	return &Spec{kind: KindOptional, inner: inner}
}

// Named binds a name to a sub-schema, establishing a target for Ref nodes.
func Named(name string, inner *Spec) *Spec {
	return &Spec{kind: KindName, name: name, inner: inner}
}

// Ref refers to an enclosing Named binding. Resolution happens at the
// compile boundary, not here.
func Ref(name string) *Spec {
	return &Spec{kind: KindRef, name: name}
}

// Record describes a named-field aggregate. Field order is significant.
func Record(fields ...Field) *Spec {
	return &Spec{kind: KindRecord, fields: fields}
}

// Tuple describes a positional aggregate.
func Tuple(elems ...*Spec) *Spec {
	return &Spec{kind: KindTuple, elems: elems}
}

// Enum describes a set of named variants, each carrying a payload schema.
func Enum(variants ...Field) *Spec {
	return &Spec{kind: KindEnum, fields: variants}
}

// Union describes an untagged set of alternative schemas.
func Union(alts ...*Spec) *Spec {
	return &Spec{kind: KindUnion, elems: alts}
}

// Void describes the absence of any value.
func Void() *Spec {
	return &Spec{kind: KindVoid}
}

// FieldOf builds a Field for Record and Enum construction.
func FieldOf(name string, s *Spec) Field {
	return Field{Name: name, Spec: s}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the node's variant.
func (s *Spec) Kind() Kind {
	return s.kind
}

// Scale returns the width selector of a Uint or Int node.
func (s *Spec) Scale() uint8 {
	return s.scale
}

// BinaryFormat returns the format of a BinaryFloatingPoint node.
func (s *Spec) BinaryFormat() BinaryFloatFormat {
	return s.binFmt
}

// DecimalFormat returns the format of a DecimalFloatingPoint node.
func (s *Spec) DecimalFormat() DecimalFloatFormat {
	return s.decFmt
}

// DecimalPrecision returns the precision and scale of a Decimal node.
func (s *Spec) DecimalPrecision() (precision, scale uint64) {
	return s.precision, s.decScale
}

// Size returns the size qualifier of a Map, List, String, or Bytes node.
func (s *Spec) Size() Size {
	return s.size
}

// Encoding returns the character encoding of a String node.
func (s *Spec) Encoding() StringEncoding {
	return s.strEnc
}

// Name returns the binding name of a Name or Ref node.
func (s *Spec) Name() string {
	return s.name
}

// Inner returns the wrapped schema of an Optional or Name node.
func (s *Spec) Inner() *Spec {
	return s.inner
}

// Key returns the key schema of a Map node.
func (s *Spec) Key() *Spec {
	return s.key
}

// Value returns the value schema of a Map or List node.
func (s *Spec) Value() *Spec {
	return s.value
}

// Fields returns the fields of a Record node or the variants of an Enum
// node, in declaration order.
func (s *Spec) Fields() []Field {
	return s.fields
}

// Elems returns the elements of a Tuple node or the alternatives of a Union
// node, in declaration order.
func (s *Spec) Elems() []*Spec {
	return s.elems
}

// Len returns the child count of an aggregate node.
func (s *Spec) Len() int {
	switch s.kind {
	case KindRecord, KindEnum:
		return len(s.fields)
	case KindTuple, KindUnion:
		return len(s.elems)
	default:
		return 0
	}
}

// Equal reports structural equality. Two Specs are equal exactly when their
// longform encodings are byte-identical.
func (s *Spec) Equal(o *Spec) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindBool, KindVoid:
		return true
	case KindUint, KindInt:
		return s.scale == o.scale
	case KindBinaryFloat:
		return s.binFmt == o.binFmt
	case KindDecimalFloat:
		return s.decFmt == o.decFmt
	case KindDecimal:
		return s.precision == o.precision && s.decScale == o.decScale
	case KindMap:
		return s.size == o.size && s.key.Equal(o.key) && s.value.Equal(o.value)
	case KindList:
		return s.size == o.size && s.value.Equal(o.value)
	case KindString:
		return s.size == o.size && s.strEnc == o.strEnc
	case KindBytes:
		return s.size == o.size
	case KindOptional:
		return s.inner.Equal(o.inner)
	case KindName:
		return s.name == o.name && s.inner.Equal(o.inner)
	case KindRef:
		return s.name == o.name
	case KindRecord, KindEnum:
		if len(s.fields) != len(o.fields) {
			return false
		}
		for i := range s.fields {
			if s.fields[i].Name != o.fields[i].Name || !s.fields[i].Spec.Equal(o.fields[i].Spec) {
				return false
			}
		}
		return true
	case KindTuple, KindUnion:
		if len(s.elems) != len(o.elems) {
			return false
		}
		for i := range s.elems {
			if !s.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
