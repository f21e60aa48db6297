package command

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m4gshm/gollections/slice"
)

func New(name, description string, flagSet *flag.FlagSet, op func(context *Context) error) *Command {
	c := &Command{
		name:        name,
		description: description,
		flag:        flagSet,
		op:          op,
	}
	flagSet.Usage = c.PrintUsage
	return c
}

type Command struct {
	name, description, manual string
	op                        func(context *Context) error
	flag                      *flag.FlagSet
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) PrintUsage() {
	out := c.flag.Output()
	_, _ = fmt.Fprintln(out, c.description)
	_, _ = fmt.Fprintln(out, "Flags:")
	c.flag.PrintDefaults()
	if len(c.manual) > 0 {
		_, _ = fmt.Fprintln(out, c.manual)
	}
}

func (c *Command) Run(context *Context) error {
	return c.op(context)
}

func (c *Command) Parse(arguments []string) ([]string, error) {
	if err := c.flag.Parse(arguments); err != nil {
		return nil, fmt.Errorf("parse args '%s': %w", c.name, err)
	}
	return c.flag.Args(), nil
}

func Get(name string) *Command {
	if c, ok := index[name]; ok {
		return c()
	}
	return nil
}

func Supported() []string {
	return slice.Convert(commands, func(cmd func() *Command) string { return cmd().name })
}

func PrintUsage() {
	printUsage(os.Stderr)
}

func printUsage(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		c := cmd()
		_, _ = fmt.Fprintln(out, "  "+c.name+"\n    \t"+strings.ReplaceAll(c.description, "\n", "\n    \t"))
	}
}

var commands = []func() *Command{
	NewDerive,
}

var index = toMap(commands)

func toMap(commands []func() *Command) map[string]func() *Command {
	index := map[string]func() *Command{}
	for _, c := range commands {
		index[c().name] = c
	}
	return index
}

func newFlagSet(name string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	return flagSet
}
