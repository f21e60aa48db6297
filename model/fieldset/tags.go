package fieldset

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
	"github.com/m4gshm/fieldset/model/util"
)

const tagTemplateSeparator = "="

// TagTemplate computes a struct tag value for every field of a declaration.
type TagTemplate struct {
	Key    string
	Source string
	prg    *vm.Program
}

type tagEnv struct {
	Name      string `expr:"name"`
	Type      string `expr:"typ"`
	Base      string `expr:"base"`
	Struct    string `expr:"struct"`
	Inherited bool   `expr:"inherited"`
	Embedded  bool   `expr:"embedded"`

	Snake func(string) string `expr:"snake"`
	Camel func(string) string `expr:"camel"`
}

func newTagEnv() tagEnv {
	return tagEnv{Snake: util.ToSnakeCase, Camel: util.ToCamelCase}
}

// ParseTagTemplate parses the "key=expression" form.
func ParseTagTemplate(s string) (TagTemplate, error) {
	key, source, ok := strings.Cut(s, tagTemplateSeparator)
	key, source = strings.TrimSpace(key), strings.TrimSpace(source)
	if !ok || len(key) == 0 || len(source) == 0 {
		return TagTemplate{}, malformed("tag template '%s', expected format key%sexpression", s, tagTemplateSeparator)
	} else if strings.ContainsAny(key, " :\"`") {
		return TagTemplate{}, malformed("invalid tag key '%s'", key)
	}
	prg, err := expr.Compile(source, expr.Env(newTagEnv()), expr.AsKind(reflect.String))
	if err != nil {
		return TagTemplate{}, errors.Wrapf(err, "compile tag template '%s'", s)
	}
	return TagTemplate{Key: key, Source: source, prg: prg}, nil
}

// Eval returns the tag value for the field.
func (t TagTemplate) Eval(decl *Declaration, index int) (string, error) {
	if t.prg == nil {
		return "", errors.Errorf("tag template '%s' is not compiled", t.Key)
	}
	f := decl.Fields[index]
	env := newTagEnv()
	env.Name, env.Type, env.Base, env.Struct = f.Name, f.TypeExpr, decl.Base, decl.Name
	env.Inherited, env.Embedded = index < decl.Inherited, f.Embedded

	out, err := expr.Run(t.prg, env)
	if err != nil {
		return "", errors.Wrapf(err, "evaluate tag '%s' for field %s.%s", t.Key, decl.Name, f.Name)
	}
	value, _ := out.(string)
	return value, nil
}

func applyTags(decl *Declaration) error {
	for i := range decl.Fields {
		f := decl.Fields[i]
		tag := reflect.StructTag(f.Tag)
		for _, t := range decl.Tags {
			if _, ok := tag.Lookup(t.Key); ok {
				logger.Debugf("field %s.%s already has tag %s", decl.Name, f.Name, t.Key)
				continue
			}
			value, err := t.Eval(decl, i)
			if err != nil {
				return err
			} else if len(value) == 0 {
				continue
			}
			tag = reflect.StructTag(strings.TrimSpace(string(tag) + " " + t.Key + ":" + strconv.Quote(value)))
		}
		decl.Fields[i].Tag = string(tag)
	}
	return nil
}
