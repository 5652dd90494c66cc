package spec

import "testing"

// allKindsSpecs returns at least one representative schema per variant,
// including boundary cases: zero-length aggregates, maximum single-byte
// scales, both size qualifiers, and nested name bindings.
func allKindsSpecs() []*Spec {
	return []*Spec{
		Bool(),
		Void(),
		Uint(0),
		Uint(3),
		Uint(4),
		Uint(255),
		Int(0),
		Int(3),
		Int(4),
		Int(255),
		BinaryFloatingPoint(Half),
		BinaryFloatingPoint(Single),
		BinaryFloatingPoint(Double),
		BinaryFloatingPoint(Quadruple),
		BinaryFloatingPoint(Octuple),
		DecimalFloatingPoint(Dec32),
		DecimalFloatingPoint(Dec64),
		DecimalFloatingPoint(Dec128),
		Decimal(0, 0),
		Decimal(38, 10),
		Decimal(1<<40, 1<<20),
		Map(Variable, String(Variable, Utf8), Uint(8)),
		Map(Fixed(16), Bytes(Fixed(4)), Optional(Bool())),
		List(Variable, Bool()),
		List(Fixed(0), Void()),
		List(Fixed(300), Int(2)),
		String(Variable, Utf8),
		String(Variable, Utf16),
		String(Variable, Ascii),
		String(Fixed(10), Utf8),
		String(Fixed(0), Ascii),
		Bytes(Variable),
		Bytes(Fixed(128)),
		Optional(Bool()),
		Optional(Optional(String(Variable, Utf8))),
		Named("point", Record(FieldOf("x", Int(4)), FieldOf("y", Int(4)))),
		Ref("point"),
		Named("tree", Record(
			FieldOf("value", Uint(8)),
			FieldOf("children", List(Variable, Ref("tree"))),
		)),
		Record(),
		Record(FieldOf("a", Bool()), FieldOf("b", Int(4))),
		Tuple(),
		Tuple(Bool(), Uint(1), String(Variable, Utf8)),
		Enum(),
		Enum(FieldOf("none", Void()), FieldOf("some", Uint(8))),
		Union(),
		Union(Uint(0), Int(0), Void()),
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, s := range allKindsSpecs() {
		if !s.Equal(s) {
			t.Errorf("%v not equal to itself", s)
		}
	}
}

func TestEqualDistinct(t *testing.T) {
	specs := allKindsSpecs()
	for i, a := range specs {
		for j, b := range specs {
			if i == j {
				continue
			}
			if a.Equal(b) {
				t.Errorf("distinct specs compare equal: %v / %v", a, b)
			}
		}
	}
}

func TestEqualIndependentTrees(t *testing.T) {
	a := Record(FieldOf("a", Bool()), FieldOf("b", List(Variable, Uint(2))))
	b := Record(FieldOf("a", Bool()), FieldOf("b", List(Variable, Uint(2))))
	if !a.Equal(b) {
		t.Error("independently built identical trees not equal")
	}

	c := Record(FieldOf("a", Bool()), FieldOf("b", List(Variable, Uint(3))))
	if a.Equal(c) {
		t.Error("trees differing in a leaf compare equal")
	}
}

func TestEqualFieldOrderSignificant(t *testing.T) {
	a := Record(FieldOf("a", Bool()), FieldOf("b", Void()))
	b := Record(FieldOf("b", Void()), FieldOf("a", Bool()))
	if a.Equal(b) {
		t.Error("field order ignored by Equal")
	}
}

func TestAccessors(t *testing.T) {
	m := Map(Fixed(7), String(Variable, Utf16), Bytes(Variable))
	if m.Kind() != KindMap {
		t.Errorf("Kind = %v", m.Kind())
	}
	if !m.Size().IsFixed() || m.Size().Bound() != 7 {
		t.Errorf("Size = %v", m.Size())
	}
	if m.Key().Encoding() != Utf16 {
		t.Errorf("key encoding = %v", m.Key().Encoding())
	}
	if m.Value().Kind() != KindBytes {
		t.Errorf("value kind = %v", m.Value().Kind())
	}

	n := Named("id", Uint(16))
	if n.Name() != "id" || n.Inner().Scale() != 16 {
		t.Errorf("Named accessors: name=%q scale=%d", n.Name(), n.Inner().Scale())
	}

	d := Decimal(38, 9)
	p, s := d.DecimalPrecision()
	if p != 38 || s != 9 {
		t.Errorf("DecimalPrecision = %d, %d", p, s)
	}

	e := Enum(FieldOf("l", Bool()), FieldOf("r", Void()))
	if e.Len() != 2 || len(e.Fields()) != 2 {
		t.Errorf("Enum Len = %d", e.Len())
	}
	u := Union(Bool(), Void(), Uint(0))
	if u.Len() != 3 || len(u.Elems()) != 3 {
		t.Errorf("Union Len = %d", u.Len())
	}
	if Bool().Len() != 0 {
		t.Errorf("scalar Len = %d", Bool().Len())
	}
}

func TestFormatMetadata(t *testing.T) {
	binTests := []struct {
		fmt          BinaryFloatFormat
		significand  uint64
		exponentBits uint64
	}{
		{Half, 11, 5},
		{Single, 24, 8},
		{Double, 53, 11},
		{Quadruple, 113, 15},
		{Octuple, 237, 19},
	}
	for _, tt := range binTests {
		if got := tt.fmt.SignificandBits(); got != tt.significand {
			t.Errorf("%v.SignificandBits() = %d, want %d", tt.fmt, got, tt.significand)
		}
		if got := tt.fmt.ExponentBits(); got != tt.exponentBits {
			t.Errorf("%v.ExponentBits() = %d, want %d", tt.fmt, got, tt.exponentBits)
		}
	}

	decTests := []struct {
		fmt      DecimalFloatFormat
		digits   uint64
		minBytes int
	}{
		{Dec32, 7, 2},
		{Dec64, 16, 4},
		{Dec128, 34, 8},
	}
	for _, tt := range decTests {
		if got := tt.fmt.DecimalDigits(); got != tt.digits {
			t.Errorf("%v.DecimalDigits() = %d, want %d", tt.fmt, got, tt.digits)
		}
		if got := tt.fmt.MinimumBytes(); got != tt.minBytes {
			t.Errorf("%v.MinimumBytes() = %d, want %d", tt.fmt, got, tt.minBytes)
		}
	}
}
