package fieldset

import (
	"go/token"
	"slices"
	"strings"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
)

const (
	AttrDebug AttrName = "Debug"
	AttrClone AttrName = "Clone"
	AttrEqual AttrName = "Equal"
	AttrNew   AttrName = "New"
)

// Attrs lists the supported attributes in the order of their generated methods.
var Attrs = []AttrName{AttrDebug, AttrClone, AttrEqual, AttrNew}

var (
	ErrMalformed   = errors.New("malformed generation request")
	ErrCollision   = errors.New("field name collision")
	ErrUnknownAttr = errors.New("unsupported attribute")
)

func malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformed, format, args...)
}

// Compose builds a declaration from the base field set and the request.
// Recognized request shapes:
//
//	{}                      - the base type itself
//	{Attrs}                 - the base type with attributes
//	{Name, Fields[, Attrs]} - a derived type with additional fields
//	{Name[, Attrs]}         - a bare derived type
func Compose(base *Base, request Request) (*Declaration, error) {
	if base == nil {
		return nil, malformed("no base")
	}
	name := request.Name
	if len(name) == 0 {
		if len(request.Fields) > 0 {
			return nil, malformed("additional fields of base %s require a new type name", base.name)
		}
		name = base.name
	} else if !token.IsIdentifier(name) {
		return nil, malformed("invalid type name '%s'", name)
	}

	if err := checkAttrs(request.Attrs); err != nil {
		return nil, err
	}
	if err := checkCollisions(name, base.fields, request.Fields); err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(base.fields)+len(request.Fields))
	fields = append(fields, base.fields...)
	fields = append(fields, request.Fields...)

	decl := &Declaration{
		Name:      name,
		Base:      base.name,
		Fields:    fields,
		Inherited: len(base.fields),
		Imports:   base.Imports(),
	}
	if len(request.Attrs) > 0 {
		decl.Attrs = append([]AttrName{}, request.Attrs...)
	}
	if len(request.Tags) > 0 {
		decl.Tags = append([]TagTemplate{}, request.Tags...)
		if err := applyTags(decl); err != nil {
			return nil, err
		}
	}
	logger.Debugw("composed", "type", decl.Name, "base", decl.Base, "fields", decl.FieldNames(), "attrs", decl.Attrs)
	return decl, nil
}

func checkAttrs(attrs []AttrName) error {
	used := mutable.NewSet[AttrName]()
	for _, attr := range attrs {
		if !slices.Contains(Attrs, attr) {
			return errors.Wrapf(ErrUnknownAttr, "'%s', expected one of %s", attr, strings.Join(Attrs, ", "))
		} else if !used.AddNew(attr) {
			return malformed("duplicated attribute '%s'", attr)
		}
	}
	return nil
}

func checkCollisions(typeName string, base, additional []Field) error {
	names := mutable.NewSet[FieldName]()
	for _, f := range base {
		names.AddNew(f.Name)
	}
	for _, f := range additional {
		if len(f.Name) == 0 || !token.IsIdentifier(f.Name) {
			return malformed("invalid field name '%s' of %s", f.Name, typeName)
		} else if len(f.TypeExpr) == 0 {
			return malformed("field %s.%s has no type", typeName, f.Name)
		} else if !names.AddNew(f.Name) {
			return errors.Wrapf(ErrCollision, "field '%s' declared twice in %s", f.Name, typeName)
		}
	}
	return nil
}
