package generator

import (
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/model/fieldset"
	"github.com/m4gshm/fieldset/unique"
)

const (
	StringMethod = "String"
	CloneMethod  = "Clone"
	EqualMethod  = "Equal"
)

var attrMethods = map[fieldset.AttrName]string{
	fieldset.AttrDebug: StringMethod,
	fieldset.AttrClone: CloneMethod,
	fieldset.AttrEqual: EqualMethod,
}

// checkMethodNames rejects fields named like the methods of the attributes.
func checkMethodNames(decl *fieldset.Declaration) error {
	for _, attr := range fieldset.Attrs {
		method, ok := attrMethods[attr]
		if !ok || !decl.HasAttr(attr) {
			continue
		}
		for _, f := range decl.Fields {
			if f.Name == method {
				return errors.Wrapf(fieldset.ErrCollision, "field %s.%s clashes with the %s method", decl.Name, f.Name, attr)
			}
		}
	}
	return nil
}

// GenerateString renders the Debug attribute.
func (g *Generator) GenerateString(decl *fieldset.Declaration) (string, error) {
	if err := g.AddImport("fmt", "fmt"); err != nil {
		return "", err
	}
	recv := TypeReceiverVar(decl.Name)
	format := make([]string, len(decl.Fields))
	args := make([]string, len(decl.Fields))
	for i, f := range decl.Fields {
		format[i] = f.Name + ": %#v"
		args[i] = recv + "." + f.Name
	}
	return "func (" + recv + " " + decl.Name + ") " + StringMethod + "() string {" + NoLint(g.Nolint) + "\n" +
		"return fmt.Sprintf(\"" + decl.Name + "{" + strings.Join(format, ", ") + "}\", " + strings.Join(args, ", ") + ")\n" +
		"}\n", nil
}

// GenerateClone renders the Clone attribute as a shallow copy: slice and map fields are copied,
// other fields are assigned, so the elements and nested structs keep sharing memory.
func (g *Generator) GenerateClone(decl *fieldset.Declaration) (string, error) {
	names := unique.NewNamesWith()
	recv := names.Get(TypeReceiverVar(decl.Name))
	clone := names.Get("c")

	copies := ""
	for _, f := range decl.Fields {
		switch kindOf(f) {
		case kindSlice:
			if err := g.AddImport("slices", "slices"); err != nil {
				return "", err
			}
			copies += clone + "." + f.Name + " = slices.Clone(" + recv + "." + f.Name + ")\n"
		case kindMap:
			if err := g.AddImport("maps", "maps"); err != nil {
				return "", err
			}
			copies += clone + "." + f.Name + " = maps.Clone(" + recv + "." + f.Name + ")\n"
		}
	}

	body := op.IfElse(len(copies) == 0, "return "+recv+"\n", clone+" := "+recv+"\n"+copies+"return "+clone+"\n")
	return "func (" + recv + " " + decl.Name + ") " + CloneMethod + "() " + decl.Name + " {" + NoLint(g.Nolint) + "\n" +
		body + "}\n", nil
}

// GenerateEqual renders the Equal attribute.
func (g *Generator) GenerateEqual(decl *fieldset.Declaration) (string, error) {
	names := unique.NewNamesWith()
	recv := names.Get(TypeReceiverVar(decl.Name))
	other := names.Get("o")

	conditions := make([]string, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		if kindOf(f) == kindComparable {
			conditions = append(conditions, recv+"."+f.Name+" == "+other+"."+f.Name)
		} else {
			if err := g.AddImport("reflect", "reflect"); err != nil {
				return "", err
			}
			conditions = append(conditions, "reflect.DeepEqual("+recv+"."+f.Name+", "+other+"."+f.Name+")")
		}
	}
	return "func (" + recv + " " + decl.Name + ") " + EqualMethod + "(" + other + " " + decl.Name + ") bool {" + NoLint(g.Nolint) + "\n" +
		"return " + strings.Join(conditions, " &&\n") + "\n" +
		"}\n", nil
}

// GenerateConstructor renders the New attribute, a function with an argument per field.
// Arguments do not shadow the imported packages.
func (g *Generator) GenerateConstructor(decl *fieldset.Declaration) (string, error) {
	names := unique.NewNamesWith(unique.PreInit(g.importNames...), unique.DistinctBySuffix("_"))
	constructorName := IdentName("New"+IdentName(decl.Name, true), fieldset.Field{Name: decl.Name}.IsExported())

	args, init := "", ""
	for _, f := range decl.Fields {
		arg := names.Get(LegalIdentName(ArgName(f.Name)))
		args += arg + " " + f.TypeExpr + ",\n"
		init += f.Name + ": " + arg + ",\n"
	}
	return "func " + constructorName + "(\n" + args + ") *" + decl.Name + " {" + NoLint(g.Nolint) + "\n" +
		"return &" + decl.Name + "{\n" + init + "}\n" +
		"}\n", nil
}
