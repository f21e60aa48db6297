package params

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	return flagSet
}

func Test_MultiVal(t *testing.T) {
	flagSet := newFlagSet()
	fields := MultiVal(flagSet, "field", nil, "field")
	tags := MultiVal(flagSet, "buildTag", []string{BuildTag}, "tag")

	require.NoError(t, flagSet.Parse([]string{"-field", "Read bool", "-field", "Seen int"}))
	assert.Equal(t, []string{"Read bool", "Seen int"}, *fields)
	assert.Equal(t, []string{BuildTag}, *tags)
}

func Test_MultiVal_ReplaceDefaults(t *testing.T) {
	flagSet := newFlagSet()
	tags := MultiVal(flagSet, "buildTag", []string{BuildTag}, "tag")

	require.NoError(t, flagSet.Parse([]string{"-buildTag", "tmpl", "-buildTag", "extra"}))
	assert.Equal(t, []string{"tmpl", "extra"}, *tags)
}

func Test_MultiVal_Duplicated(t *testing.T) {
	flagSet := newFlagSet()
	MultiVal(flagSet, "field", nil, "field")

	assert.Error(t, flagSet.Parse([]string{"-field", "Read bool", "-field", "Read bool"}))
}

func Test_Config(t *testing.T) {
	flagSet := newFlagSet()
	config := NewConfig(flagSet)
	require.NoError(t, flagSet.Parse([]string{"-type", "MessageBase", "derive"}))

	assert.Equal(t, "MessageBase", *config.Type)
	assert.Equal(t, BuildTag, config.TemplateTag())
	assert.Equal(t, []string{"derive"}, flagSet.Args())
	assert.Equal(t, "messagebase_fieldset.go", DefaultOutput(*config.Type))
}

func Test_Config_MergeWith(t *testing.T) {
	cli := NewConfig(newFlagSet())
	commentFlags := newFlagSet()
	comment := NewConfig(commentFlags)
	require.NoError(t, commentFlags.Parse([]string{"-type", "UserBase", "-out", "users.go", "-nolint"}))

	merged := cli.MergeWith(comment)
	assert.Equal(t, "UserBase", *merged.Type)
	assert.Equal(t, "users.go", *merged.Output)
	assert.True(t, *merged.Nolint)
	assert.Same(t, cli, cli.MergeWith(nil))
}
