package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
	"github.com/m4gshm/fieldset/model/fieldset"
)

// DeriveDirective marks the forwarded attributes in the doc comment of a generated type.
const DeriveDirective = "fieldset:derive"

// Generator accumulates declarations of one output file.
type Generator struct {
	Command     string
	PkgName     string
	BuildTag    string
	Nolint      bool
	imports     map[string]string
	importNames []string
	typeNames   *mutable.Set[string]
	body        bytes.Buffer
}

func New(command, pkgName, buildTag string) *Generator {
	return &Generator{
		Command:   command,
		PkgName:   pkgName,
		BuildTag:  buildTag,
		imports:   map[string]string{},
		typeNames: mutable.NewSet[string](),
	}
}

// Add renders the declaration with the methods of its attributes.
func (g *Generator) Add(decl *fieldset.Declaration) error {
	if !g.typeNames.AddNew(decl.Name) {
		return errors.Wrapf(fieldset.ErrCollision, "type %s is generated twice", decl.Name)
	} else if err := checkMethodNames(decl); err != nil {
		return err
	}

	imports, err := fieldImports(decl)
	if err != nil {
		return err
	}
	for _, imp := range imports {
		if err := g.AddImport(imp.path, imp.name); err != nil {
			return err
		}
	}

	g.writeBody("%s", typeDecl(decl))
	for _, attr := range decl.Attrs {
		method, err := g.attrMethod(decl, attr)
		if err != nil {
			return err
		}
		g.writeBody("\n%s", method)
	}
	g.writeBody("\n")
	logger.Debugf("added type %s", decl.Name)
	return nil
}

func (g *Generator) attrMethod(decl *fieldset.Declaration, attr fieldset.AttrName) (string, error) {
	switch attr {
	case fieldset.AttrDebug:
		return g.GenerateString(decl)
	case fieldset.AttrClone:
		return g.GenerateClone(decl)
	case fieldset.AttrEqual:
		return g.GenerateEqual(decl)
	case fieldset.AttrNew:
		return g.GenerateConstructor(decl)
	default:
		return "", errors.Wrapf(fieldset.ErrUnknownAttr, "'%s'", attr)
	}
}

// AddImport registers the package; the name must not be used by another package in the file.
func (g *Generator) AddImport(path, name string) error {
	if existed, ok := g.imports[name]; ok {
		if existed != path {
			return errors.Errorf("import name conflict '%s': '%s' and '%s'", name, existed, path)
		}
		return nil
	}
	g.imports[name] = path
	g.importNames = append(g.importNames, name)
	return nil
}

func (g *Generator) writeBody(format string, args ...interface{}) {
	fmt.Fprintf(&g.body, format, args...)
}

func (g *Generator) IsEmpty() bool {
	return g.body.Len() == 0
}

func (g *Generator) FormatSrc() ([]byte, error) {
	src := g.Src()
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, err
	}
	return fmtSrc, nil
}

func (g *Generator) Src() []byte {
	out := bytes.Buffer{}
	writer := newWriter(&out)
	writer("// Code generated by '%s'; DO NOT EDIT.\n\n", g.Command)
	if len(g.BuildTag) > 0 {
		writer("//go:build !%s\n\n", g.BuildTag)
	}
	writer("package %s\n\n", g.PkgName)
	if len(g.importNames) > 0 {
		names := append([]string{}, g.importNames...)
		sort.Slice(names, func(i, j int) bool { return g.imports[names[i]] < g.imports[names[j]] })
		writer("import (\n")
		for _, name := range names {
			path := g.imports[name]
			if name == packagePathToName(path) {
				writer("%q\n", path)
			} else {
				writer("%s %q\n", name, path)
			}
		}
		writer(")\n\n")
	}
	out.Write(g.body.Bytes())
	return out.Bytes()
}

func newWriter(buffer *bytes.Buffer) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		fmt.Fprintf(buffer, format, args...)
	}
}

func typeDecl(decl *fieldset.Declaration) string {
	doc := "// " + decl.Name + " is composed of the " + decl.Base + " fields.\n"
	if decl.Name == decl.Base {
		doc = "// " + decl.Name + " is the " + decl.Base + " field set.\n"
	}
	if len(decl.Attrs) > 0 {
		doc += "//\n//" + DeriveDirective + " " + strings.Join(decl.Attrs, ",") + "\n"
	}
	body := "type " + decl.Name + " struct {\n"
	for _, f := range decl.InheritedFields() {
		body += f.String() + "\n"
	}
	if own := decl.OwnFields(); len(own) > 0 {
		if decl.Inherited > 0 {
			body += "\n"
		}
		for _, f := range own {
			body += f.String() + "\n"
		}
	}
	return doc + body + "}\n"
}
