package fieldset

import (
	"go/token"
	"go/types"
	"slices"
	"strings"
)

type (
	FieldName = string
	AttrName  = string

	// Field is one element of a field set.
	// Visibility is encoded in the case of the Name and is never changed.
	Field struct {
		Name     FieldName
		TypeExpr string
		// Type is the checked type of the field, nil when the type was not resolved.
		Type     types.Type
		Tag      string
		Embedded bool
	}

	// Base is an immutable named field set declared once and reused by derived declarations.
	Base struct {
		name    string
		fields  []Field
		imports Imports
	}

	// Request describes one derived declaration.
	Request struct {
		Name   string
		Fields []Field
		Attrs  []AttrName
		Tags   []TagTemplate
	}

	// Declaration is the composed struct type.
	Declaration struct {
		Name string
		Base string
		// Fields holds the base fields in declared order followed by the request fields.
		Fields    []Field
		Inherited int
		Attrs     []AttrName
		Tags      []TagTemplate
		Imports   Imports
	}

	// Imports maps a package name as used in type expressions to the package path.
	Imports map[string]string
)

func NewBase(name string, fields []Field, imports Imports) (*Base, error) {
	if len(name) == 0 {
		return nil, malformed("empty base name")
	} else if len(fields) == 0 {
		return nil, malformed("base %s has no fields", name)
	}
	if err := checkCollisions(name, nil, fields); err != nil {
		return nil, err
	}
	return &Base{name: name, fields: slices.Clone(fields), imports: cloneImports(imports)}, nil
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Fields() []Field {
	return slices.Clone(b.fields)
}

func (b *Base) Imports() Imports {
	return cloneImports(b.imports)
}

func (b *Base) FieldNames() []FieldName {
	return fieldNames(b.fields)
}

func (d *Declaration) FieldNames() []FieldName {
	return fieldNames(d.Fields)
}

func (d *Declaration) InheritedFields() []Field {
	return d.Fields[:d.Inherited]
}

func (d *Declaration) OwnFields() []Field {
	return d.Fields[d.Inherited:]
}

func (d *Declaration) HasAttr(attr AttrName) bool {
	return slices.Contains(d.Attrs, attr)
}

// IsExported reports whether the field is visible outside of its package.
func (f Field) IsExported() bool {
	return token.IsExported(f.Name)
}

// String returns the field as written in a struct declaration.
func (f Field) String() string {
	decl := f.TypeExpr
	if !f.Embedded {
		decl = f.Name + " " + decl
	}
	if len(f.Tag) > 0 {
		decl += " `" + f.Tag + "`"
	}
	return decl
}

func fieldNames(fields []Field) []FieldName {
	names := make([]FieldName, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func cloneImports(imports Imports) Imports {
	result := make(Imports, len(imports))
	for name, path := range imports {
		result[name] = path
	}
	return result
}

// embeddedName returns the implicit field name of an embedded type expression.
func embeddedName(typeExpr string) string {
	name := strings.TrimPrefix(typeExpr, "*")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
