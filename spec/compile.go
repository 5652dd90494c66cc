package spec

import "fmt"

// CompiledSpec is a schema whose Ref nodes have all been resolved against
// their enclosing Name bindings. It owns the tree it was compiled from.
type CompiledSpec struct {
	root        *Spec
	fingerprint Fingerprint
	targets     map[*Spec]*Spec
}

// CompileError reports a schema that cannot be compiled.
type CompileError struct {
	Name   string
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("spec: cannot compile: %s %q", e.Reason, e.Name)
}

// Compile resolves every Ref in the schema against the Name bindings in
// scope at its position and returns the compiled artifact. The Spec is
// handed over; callers must not mutate it afterwards.
//
// Bindings scope lexically: a Name shadows an identically named binding
// further out, and a Ref resolves to the nearest enclosing binding. A Ref
// with no binding in scope is a compile error. Cyclic schemas (a Ref
// reaching back to an enclosing Name) are legal; termination of any value
// conforming to them is the data layer's concern, not the shape's.
func (s *Spec) Compile() (*CompiledSpec, error) {
	c := &CompiledSpec{
		root:    s,
		targets: make(map[*Spec]*Spec),
	}
	if err := c.resolve(s, nil); err != nil {
		return nil, err
	}
	c.fingerprint = s.Fingerprint()
	return c, nil
}

type binding struct {
	name   string
	target *Spec
	next   *binding
}

func (c *CompiledSpec) resolve(s *Spec, scope *binding) error {
	switch s.kind {
	case KindRef:
		for b := scope; b != nil; b = b.next {
			if b.name == s.name {
				c.targets[s] = b.target
				return nil
			}
		}
		return &CompileError{Name: s.name, Reason: "unresolved ref"}
	case KindName:
		return c.resolve(s.inner, &binding{name: s.name, target: s, next: scope})
	case KindOptional:
		return c.resolve(s.inner, scope)
	case KindList:
		return c.resolve(s.value, scope)
	case KindMap:
		if err := c.resolve(s.key, scope); err != nil {
			return err
		}
		return c.resolve(s.value, scope)
	case KindRecord, KindEnum:
		for _, f := range s.fields {
			if err := c.resolve(f.Spec, scope); err != nil {
				return err
			}
		}
		return nil
	case KindTuple, KindUnion:
		for _, el := range s.elems {
			if err := c.resolve(el, scope); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// Root returns the compiled schema tree. Treat it as read-only.
func (c *CompiledSpec) Root() *Spec {
	return c.root
}

// Fingerprint returns the content identity of the compiled schema.
func (c *CompiledSpec) Fingerprint() Fingerprint {
	return c.fingerprint
}

// Target returns the Name node a Ref resolved to.
func (c *CompiledSpec) Target(ref *Spec) (*Spec, bool) {
	t, ok := c.targets[ref]
	return t, ok
}
