package command

import (
	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/fieldset/model/fieldset"
	"github.com/m4gshm/fieldset/params"
)

const DeriveName = "derive"

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

func NewDerive() *Command {
	const (
		name      = DeriveName
		flagField = "field"
		flagName  = "name"
	)
	var (
		flagSet   = newFlagSet(name)
		typeName  = flagSet.String(flagName, "", "derived type name; the base type is generated when omitted")
		fieldDecl = params.MultiVal(flagSet, flagField, nil, "additional field declaration 'Name Type [`tag`]'")
		tags      = params.MultiVal(flagSet, "tag", nil, "struct tag template 'key=expression' applied to every field")
		out       = params.Output(flagSet)
	)
	attrs, err := flagenum.Multiple(flagSet, "derive", slice.Of[fieldset.AttrName](), fieldset.Attrs, fromString[fieldset.AttrName], toString[fieldset.AttrName], "forwarded attribute")
	if err != nil {
		panic(err)
	}

	c := New(
		name, "generates a struct type composed of the base fields followed by additional ones",
		flagSet,
		func(context *Context) error {
			base, file, err := context.Base()
			if err != nil {
				return err
			}
			fields, err := fieldset.ParseFields(*fieldDecl)
			if err != nil {
				return err
			}
			templates := make([]fieldset.TagTemplate, 0, len(*tags))
			for _, tag := range *tags {
				template, err := fieldset.ParseTagTemplate(tag)
				if err != nil {
					return err
				}
				templates = append(templates, template)
			}
			decl, err := fieldset.Compose(base, fieldset.Request{
				Name:   *typeName,
				Fields: context.Source.Resolve(file, fields),
				Attrs:  *attrs,
				Tags:   templates,
			})
			if err != nil {
				return err
			}
			return context.Output(*out).Add(decl)
		},
	)
	c.manual = `Examples:
	` + name + ` -` + flagName + ` Message -` + flagField + ` "Read bool" -derive Debug -derive Equal - the base fields followed by the field Read, methods String and Equal
	` + name + ` -` + flagName + ` MessageUpdateRequest - the base fields only under a new name
	` + name + ` -derive Clone - the base type itself with the Clone method
	` + name + ` -tag 'json=snake(name)' - adds json tags to the fields without one
Attributes:
	Debug - String method
	Clone - Clone method, a shallow copy: top level slices and maps are copied, nested values are shared
	Equal - Equal method
	New - constructor function
Tag expression variables:
	name, typ - field name and type
	base, struct - base and generated type names
	inherited, embedded - field flags
	snake, camel - case conversion functions`
	return c
}
