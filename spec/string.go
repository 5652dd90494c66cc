package spec

import (
	"fmt"
	"strings"
)

// String returns a one-line diagnostic rendering of the schema. It is for
// debugging and error messages; it is not a schema syntax and nothing
// parses it.
func (s *Spec) String() string {
	var sb strings.Builder
	s.describe(&sb)
	return sb.String()
}

func (s *Spec) describe(sb *strings.Builder) {
	if s == nil {
		sb.WriteString("<nil>")
		return
	}
	switch s.kind {
	case KindBool, KindVoid:
		sb.WriteString(s.kind.String())
	case KindUint, KindInt:
		fmt.Fprintf(sb, "%s(%d)", s.kind, s.scale)
	case KindBinaryFloat:
		fmt.Fprintf(sb, "binfp(%s)", s.binFmt)
	case KindDecimalFloat:
		fmt.Fprintf(sb, "decfp(%s)", s.decFmt)
	case KindDecimal:
		fmt.Fprintf(sb, "decimal(%d,%d)", s.precision, s.decScale)
	case KindMap:
		fmt.Fprintf(sb, "map[%s](", s.size)
		s.key.describe(sb)
		sb.WriteString(" -> ")
		s.value.describe(sb)
		sb.WriteString(")")
	case KindList:
		fmt.Fprintf(sb, "list[%s](", s.size)
		s.value.describe(sb)
		sb.WriteString(")")
	case KindString:
		fmt.Fprintf(sb, "string[%s](%s)", s.size, s.strEnc)
	case KindBytes:
		fmt.Fprintf(sb, "bytes[%s]", s.size)
	case KindOptional:
		sb.WriteString("optional(")
		s.inner.describe(sb)
		sb.WriteString(")")
	case KindName:
		fmt.Fprintf(sb, "name(%q ", s.name)
		s.inner.describe(sb)
		sb.WriteString(")")
	case KindRef:
		fmt.Fprintf(sb, "ref(%q)", s.name)
	case KindRecord, KindEnum:
		sb.WriteString(s.kind.String())
		sb.WriteString("{")
		for i, f := range s.fields {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(f.Name)
			sb.WriteString("=")
			f.Spec.describe(sb)
		}
		sb.WriteString("}")
	case KindTuple, KindUnion:
		sb.WriteString(s.kind.String())
		sb.WriteString("{")
		for i, el := range s.elems {
			if i > 0 {
				sb.WriteString(" ")
			}
			el.describe(sb)
		}
		sb.WriteString("}")
	default:
		sb.WriteString("unknown")
	}
}
