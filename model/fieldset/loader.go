package fieldset

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"strconv"

	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
	"github.com/m4gshm/fieldset/model/util"
)

// Source is a type-checked package the base field sets are declared in.
type Source struct {
	FileSet *token.FileSet
	Files   []*ast.File
	Pkg     *types.Package
	Info    *types.Info
}

// Base returns the field set of the struct type declared in the source.
func (s *Source) Base(typeName string) (*Base, *ast.File, error) {
	typeSpec, structType, file := util.FindStructSpec(typeName, s.Files)
	if typeSpec == nil {
		return nil, nil, errors.Errorf("type not found, %s", typeName)
	} else if structType == nil {
		return nil, nil, errors.Errorf("'%s' is not a struct type", typeName)
	} else if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		return nil, nil, errors.Errorf("generic base type %s is not supported", typeName)
	}

	fields := []Field{}
	for _, astField := range structType.Fields.List {
		typeExpr, err := s.exprString(astField.Type)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "field type of %s", typeName)
		}
		var typ types.Type
		if s.Info != nil {
			typ = s.Info.TypeOf(astField.Type)
		}
		tag, err := tagValue(astField.Tag)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "field tag of %s", typeName)
		}
		if len(astField.Names) == 0 {
			fields = append(fields, Field{Name: embeddedName(typeExpr), TypeExpr: typeExpr, Type: typ, Tag: tag, Embedded: true})
		}
		for _, name := range astField.Names {
			fields = append(fields, Field{Name: name.Name, TypeExpr: typeExpr, Type: typ, Tag: tag})
		}
	}
	logger.Debugf("base %s fields %v", typeName, fieldNames(fields))

	base, err := NewBase(typeName, fields, s.fileImports(file))
	if err != nil {
		return nil, nil, err
	}
	return base, file, nil
}

// Resolve evaluates the field types in the scope of the file.
// Fields with unresolvable types are kept untyped.
func (s *Source) Resolve(file *ast.File, fields []Field) []Field {
	if s.Pkg == nil || file == nil {
		return fields
	}
	resolved := make([]Field, len(fields))
	for i, f := range fields {
		if f.Type == nil {
			if tv, err := types.Eval(s.FileSet, s.Pkg, file.Name.End(), f.TypeExpr); err != nil {
				logger.Debugf("unresolved type of field %s: %v", f.Name, err)
			} else if tv.IsType() {
				f.Type = tv.Type
			}
		}
		resolved[i] = f
	}
	return resolved
}

// fileImports prefers the checked package names over the names guessed by import paths.
func (s *Source) fileImports(file *ast.File) Imports {
	imports := util.FileImports(file)
	if s.Info == nil {
		return imports
	}
	for _, spec := range file.Imports {
		if spec.Name != nil {
			continue
		} else if pkgName := s.Info.PkgNameOf(spec); pkgName != nil {
			path := pkgName.Imported().Path()
			delete(imports, util.GetPackageName(path))
			imports[pkgName.Name()] = path
		}
	}
	return imports
}

func (s *Source) exprString(expr ast.Expr) (string, error) {
	return exprString(s.FileSet, expr)
}

// ParseField parses a field declaration as it is written in a struct body: "Name Type `tag`".
func ParseField(decl string) (Field, error) {
	fileSet := token.NewFileSet()
	file, err := parser.ParseFile(fileSet, "", "package p\ntype _ struct {\n"+decl+"\n}\n", 0)
	if err != nil {
		return Field{}, malformed("field '%s'", decl)
	}
	list := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec).Type.(*ast.StructType).Fields.List
	if len(list) != 1 || len(list[0].Names) > 1 {
		return Field{}, malformed("single field expected, got '%s'", decl)
	}
	astField := list[0]
	typeExpr, err := exprString(fileSet, astField.Type)
	if err != nil {
		return Field{}, err
	}
	tag, err := tagValue(astField.Tag)
	if err != nil {
		return Field{}, err
	}
	if len(astField.Names) == 0 {
		return Field{Name: embeddedName(typeExpr), TypeExpr: typeExpr, Tag: tag, Embedded: true}, nil
	}
	return Field{Name: astField.Names[0].Name, TypeExpr: typeExpr, Tag: tag}, nil
}

func ParseFields(decls []string) ([]Field, error) {
	fields := make([]Field, 0, len(decls))
	for _, decl := range decls {
		f, err := ParseField(decl)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func exprString(fileSet *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fileSet, expr); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func tagValue(tag *ast.BasicLit) (string, error) {
	if tag == nil {
		return "", nil
	}
	return strconv.Unquote(tag.Value)
}
