package params

import (
	"flag"
	"strings"

	"github.com/m4gshm/fieldset/logger"
)

const (
	Name                = "fieldset"
	DefaultFileSuffix   = "_" + Name + ".go"
	CommentConfigPrefix = "go:" + Name
	// BuildTag guards template files with base field sets.
	BuildTag = Name
	// BuildTagFlag is accepted only on the command line; the package is already loaded when directives run.
	BuildTagFlag = "buildTag"
)

type Config struct {
	Type      *string
	Output    *string
	BuildTags *[]string
	Nolint    *bool
}

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Type:      flagSet.String("type", "", "base field set type name; must be set"),
		Output:    Output(flagSet),
		BuildTags: MultiVal(flagSet, BuildTagFlag, []string{BuildTag}, "include build tag, the first one marks template files"),
		Nolint:    Nolint(flagSet),
	}
}

func Output(flagSet *flag.FlagSet) *string {
	return flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix)
}

func Nolint(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("nolint", false, "add //nolint comment")
}

// DefaultOutput returns the output file name of the base type.
func DefaultOutput(typeName string) string {
	return strings.ToLower(typeName + DefaultFileSuffix)
}

// TemplateTag returns the build tag that marks template files.
func (c *Config) TemplateTag() string {
	if tags := *c.BuildTags; len(tags) > 0 {
		return tags[0]
	}
	return BuildTag
}

// MergeWith fills unset values by the src ones.
func (c *Config) MergeWith(src *Config) *Config {
	logger.Debugw("config merging", "dest", c, "src", src)
	if src == nil {
		return c
	}
	if len(*c.Type) == 0 {
		c.Type = src.Type
	}
	if len(*c.Output) == 0 {
		c.Output = src.Output
	}
	if !*c.Nolint {
		c.Nolint = src.Nolint
	}
	return c
}
