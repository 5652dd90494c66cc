package spec

import (
	"errors"
	"testing"
)

func TestCompileResolvesRefs(t *testing.T) {
	s := Named("tree", Record(
		FieldOf("value", Uint(8)),
		FieldOf("children", List(Variable, Ref("tree"))),
	))

	compiled, err := s.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if compiled.Root() != s {
		t.Error("compiled root is not the input tree")
	}
	if compiled.Fingerprint() != s.Fingerprint() {
		t.Error("compiled fingerprint mismatch")
	}

	ref := s.Inner().Fields()[1].Spec.Value()
	target, ok := compiled.Target(ref)
	if !ok {
		t.Fatal("ref has no resolved target")
	}
	if target != s {
		t.Error("ref resolved to the wrong binding")
	}
}

func TestCompileUnresolvedRef(t *testing.T) {
	s := Record(FieldOf("next", Ref("missing")))

	_, err := s.Compile()
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("err = %v, want *CompileError", err)
	}
	if compileErr.Name != "missing" {
		t.Errorf("error names %q, want %q", compileErr.Name, "missing")
	}
}

func TestCompileRefOutsideScope(t *testing.T) {
	// The binding closes over its own subtree only; a sibling cannot see it.
	s := Tuple(
		Named("a", Bool()),
		Ref("a"),
	)

	_, err := s.Compile()
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("err = %v, want *CompileError", err)
	}
}

func TestCompileShadowing(t *testing.T) {
	innerBinding := Named("t", Record(FieldOf("self", Ref("t"))))
	s := Named("t", Tuple(Bool(), innerBinding))

	compiled, err := s.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	ref := innerBinding.Inner().Fields()[0].Spec
	target, ok := compiled.Target(ref)
	if !ok {
		t.Fatal("ref has no resolved target")
	}
	if target != innerBinding {
		t.Error("inner binding did not shadow the outer one")
	}
}

func TestCompileNoRefs(t *testing.T) {
	s := Map(Variable, String(Variable, Utf8), List(Fixed(3), Optional(Bool())))
	compiled, err := s.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if compiled.Fingerprint() != s.Fingerprint() {
		t.Error("fingerprint mismatch")
	}
}
