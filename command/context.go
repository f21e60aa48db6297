package command

import (
	"go/ast"
	"path/filepath"

	"github.com/m4gshm/fieldset/generator"
	"github.com/m4gshm/fieldset/model/fieldset"
	"github.com/m4gshm/fieldset/params"
	"github.com/m4gshm/fieldset/use"
)

type baseEntry struct {
	base *fieldset.Base
	file *ast.File
}

// Context is shared by the commands of a run.
type Context struct {
	Config  *params.Config
	Source  *fieldset.Source
	Dir     string
	Outputs *generator.Files
	bases   map[string]baseEntry
}

func NewContext(config *params.Config, source *fieldset.Source, dir string, outputs *generator.Files) *Context {
	return &Context{Config: config, Source: source, Dir: dir, Outputs: outputs, bases: map[string]baseEntry{}}
}

// WithConfig returns a context of another directive sharing the loaded bases and outputs.
func (c *Context) WithConfig(config *params.Config) *Context {
	return &Context{Config: config, Source: c.Source, Dir: c.Dir, Outputs: c.Outputs, bases: c.bases}
}

// Base returns the field set of the configured type.
func (c *Context) Base() (*fieldset.Base, *ast.File, error) {
	typ := *c.Config.Type
	if len(typ) == 0 {
		return nil, nil, use.Err("no type arg")
	}
	if e, ok := c.bases[typ]; ok {
		return e.base, e.file, nil
	}
	base, file, err := c.Source.Base(typ)
	if err != nil {
		return nil, nil, err
	}
	c.bases[typ] = baseEntry{base: base, file: file}
	return base, file, nil
}

// Output returns the generator of the file; the command flag takes precedence over the config.
func (c *Context) Output(out string) *generator.Generator {
	fileName := c.OutputName(out)
	g := c.Outputs.Get(fileName)
	g.Nolint = g.Nolint || *c.Config.Nolint
	return g
}

func (c *Context) OutputName(out string) string {
	if len(out) == 0 {
		out = *c.Config.Output
	}
	if len(out) == 0 {
		out = params.DefaultOutput(*c.Config.Type)
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(c.Dir, out)
}
