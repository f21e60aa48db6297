package generator

import (
	"go/types"
	"strings"

	"github.com/m4gshm/fieldset/model/fieldset"
)

type fieldKind int

const (
	kindComparable fieldKind = iota
	kindSlice
	kindMap
	kindOther
)

// kindOf prefers the checked type, falls back to the type expression.
// Values held by interfaces may be incomparable at runtime, so such fields are not kindComparable.
func kindOf(f fieldset.Field) fieldKind {
	if typ := f.Type; typ != nil {
		switch typ.Underlying().(type) {
		case *types.Slice:
			return kindSlice
		case *types.Map:
			return kindMap
		}
		if types.Comparable(typ) && !holdsInterface(typ, map[types.Type]struct{}{}) {
			return kindComparable
		}
		return kindOther
	}
	expr := f.TypeExpr
	switch {
	case strings.HasPrefix(expr, "[]"):
		return kindSlice
	case strings.HasPrefix(expr, "map["):
		return kindMap
	case strings.HasPrefix(expr, "func"), strings.HasPrefix(expr, "interface"), expr == "any", expr == "error":
		return kindOther
	case strings.HasPrefix(expr, "[") && strings.Contains(expr, "]["), strings.Contains(expr, "]map["):
		return kindOther
	default:
		return kindComparable
	}
}

// holdsInterface reports whether == on the type may compare dynamic values.
func holdsInterface(typ types.Type, seen map[types.Type]struct{}) bool {
	if _, ok := seen[typ]; ok {
		return false
	}
	seen[typ] = struct{}{}
	switch t := typ.Underlying().(type) {
	case *types.Interface:
		return true
	case *types.Array:
		return holdsInterface(t.Elem(), seen)
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			if holdsInterface(t.Field(i).Type(), seen) {
				return true
			}
		}
	}
	return false
}
