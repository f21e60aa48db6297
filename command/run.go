package command

import (
	"flag"
	"fmt"
	"go/ast"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/logger"
	"github.com/m4gshm/fieldset/params"
	"github.com/m4gshm/fieldset/use"
)

// Directive is a //go:fieldset comment with its arguments.
type Directive struct {
	File    *ast.File
	Comment *ast.Comment
	Args    []string
}

// Directives collects the directive comments of the files in order of appearance.
func Directives(files []*ast.File) ([]Directive, error) {
	prefix := "//" + params.CommentConfigPrefix
	result := []Directive{}
	for _, file := range files {
		for _, group := range file.Comments {
			for _, comment := range group.List {
				text, ok := strings.CutPrefix(comment.Text, prefix)
				if !ok || (len(text) > 0 && text[0] != ' ' && text[0] != '\t') {
					continue
				}
				args, err := shlex.Split(text)
				if err != nil {
					return nil, use.FileCommentErr("bad directive", file, comment).Wrap(err)
				} else if len(args) == 0 {
					return nil, use.FileCommentErr("empty directive", file, comment)
				}
				result = append(result, Directive{File: file, Comment: comment, Args: args})
			}
		}
	}
	return result, nil
}

// RunArgs executes a chain of commands; an empty chain generates the base type itself.
func RunArgs(context *Context, args []string) error {
	if len(args) == 0 {
		return NewDerive().Run(context)
	}
	for len(args) > 0 {
		name := args[0]
		cmd := Get(name)
		if cmd == nil {
			return use.Err(fmt.Sprintf("unknown command '%s', expected one of %s", name, strings.Join(Supported(), ", ")))
		}
		rest, err := cmd.Parse(args[1:])
		if err != nil {
			return err
		}
		logger.Debugw("run command", "name", name, "type", *context.Config.Type)
		if err := cmd.Run(context); err != nil {
			return err
		}
		args = rest
	}
	return nil
}

// RunDirectives executes every directive with its own config falling back to the context one.
func RunDirectives(context *Context, directives []Directive) error {
	for _, d := range directives {
		flagSet := newFlagSet(params.CommentConfigPrefix)
		config := params.NewConfig(flagSet)
		if err := flagSet.Parse(d.Args); err != nil {
			return directiveErr(context, d, err)
		} else if isSet(flagSet, params.BuildTagFlag) {
			return directiveErr(context, d, errors.Errorf("-%s is not supported in directives, pass it on the command line", params.BuildTagFlag))
		}
		if err := RunArgs(context.WithConfig(config.MergeWith(context.Config)), flagSet.Args()); err != nil {
			return directiveErr(context, d, err)
		}
	}
	return nil
}

func directiveErr(context *Context, d Directive, err error) error {
	return use.FileCommentErr("bad directive", d.File, d.Comment).Wrap(err).WithPosition(context.Source.FileSet)
}

func isSet(flagSet *flag.FlagSet, name string) bool {
	set := false
	flagSet.Visit(func(f *flag.Flag) { set = set || f.Name == name })
	return set
}
