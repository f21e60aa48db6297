package util

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"unicode"

	"github.com/m4gshm/gollections/slice"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/fieldset/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedName | packages.NeedTypesInfo | packages.NeedTypes | packages.NeedModule

func LoadPackage(fileSet *token.FileSet, buildTags []string, dir string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Dir:        dir,
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Logf:       func(format string, args ...any) { logger.Debugf("packagesLoad: "+format, args...) },
	}, ".")
	if err != nil {
		return nil, err
	} else if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found in %s", len(pkgs), dir)
	}
	pkg := pkgs[0]
	if errs := pkg.Errors; len(errs) > 0 {
		// template files usually break the type check of the rest of the package
		logger.Debugf("package error; %v", errs[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("no type info of package %s", pkg.PkgPath)
	}
	return pkg, nil
}

func buildTagsArg(buildTags []string) []string {
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, ","))}
}

// FindStructSpec looks up the struct type declaration by the type name among the package files.
func FindStructSpec(typeName string, files []*ast.File) (*ast.TypeSpec, *ast.StructType, *ast.File) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				if typeSpec, ok := spec.(*ast.TypeSpec); ok && typeSpec.Name.Name == typeName {
					structType, _ := typeSpec.Type.(*ast.StructType)
					return typeSpec, structType, file
				}
			}
		}
	}
	return nil, nil, nil
}

// FileImports returns the imports of the file keyed by the name used in the file.
func FileImports(file *ast.File) map[string]string {
	imports := map[string]string{}
	for _, spec := range file.Imports {
		path := strings.Trim(spec.Path.Value, "\"`")
		name := GetPackageName(path)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = path
	}
	return imports
}

func GetPackageName(pkgPath string) string {
	j := len(pkgPath)
	i := j - 1
	for ; i >= 0; i-- {
		if pkgPath[i] == '/' {
			part := pkgPath[i+1 : j]
			if !isVersionElement(part) {
				return part
			}
			j = i
		}
	}
	return pkgPath[i+1 : j]
}

// isVersionElement reports whether s is a well-formed path version element:
// v2, v3, v10, etc, but not v0, v05, v1.
func isVersionElement(pkgName string) bool {
	if len(pkgName) < 2 || pkgName[0] != 'v' || pkgName[1] == '0' || pkgName[1] == '1' && len(pkgName) == 2 {
		return false
	}
	for i := 1; i < len(pkgName); i++ {
		if pkgName[i] < '0' || '9' < pkgName[i] {
			return false
		}
	}
	return true
}

// ToSnakeCase converts camel case identifiers, AuthorID -> author_id.
func ToSnakeCase(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prev != '_' && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)) {
				out = append(out, '_')
			}
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// ToCamelCase converts snake case identifiers, author_id -> authorId.
func ToCamelCase(s string) string {
	parts := slice.Filter(strings.Split(s, "_"), func(p string) bool { return len(p) > 0 })
	for i := 1; i < len(parts); i++ {
		r := []rune(parts[i])
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, "")
}
