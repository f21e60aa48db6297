package generator

import (
	"go/ast"
	"go/parser"

	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/model/fieldset"
)

type fieldImport struct {
	name, path string
}

// fieldImports returns the packages referenced by the field type expressions in order of appearance.
func fieldImports(decl *fieldset.Declaration) ([]fieldImport, error) {
	result := []fieldImport{}
	seen := map[string]struct{}{}
	for _, f := range decl.Fields {
		expr, err := parser.ParseExpr(f.TypeExpr)
		if err != nil {
			return nil, errors.Wrapf(fieldset.ErrMalformed, "type '%s' of field %s.%s", f.TypeExpr, decl.Name, f.Name)
		}
		var unknown string
		ast.Inspect(expr, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || len(unknown) > 0 {
				return len(unknown) == 0
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			name := ident.Name
			if _, ok := seen[name]; ok {
				return false
			}
			path, ok := decl.Imports[name]
			if !ok {
				unknown = name
				return false
			}
			seen[name] = struct{}{}
			result = append(result, fieldImport{name: name, path: path})
			return false
		})
		if len(unknown) > 0 {
			return nil, errors.Errorf("unknown package '%s' of field %s.%s, import it in the file of %s", unknown, decl.Name, f.Name, decl.Base)
		}
	}
	return result, nil
}
