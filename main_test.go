package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/fieldset/params"
)

func Test_CommandLine(t *testing.T) {
	assert.Equal(t, "fieldset", commandLine(nil))
	assert.Equal(t, "fieldset -type MessageBase derive", commandLine([]string{"-type", "MessageBase", "derive"}))
}

func Test_OutDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, outDir([]string{"derive", dir}))
	assert.Empty(t, outDir([]string{"derive"}))
	assert.Empty(t, outDir(nil))
}

// Regenerates the messages example into a copy and compares with the committed files.
func Test_Run_Example(t *testing.T) {
	src := filepath.Join("examples", "messages")
	dir := filepath.Join(t.TempDir(), "messages")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"doc.go", "base.go", "profile.go", "message.go"} {
		content, err := os.ReadFile(filepath.Join(src, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example/messages\n\ngo 1.24\n"), 0o644))

	config := params.NewConfig(newFlagSet())
	require.NoError(t, run(config, []string{dir}, params.Name))

	for _, name := range []string{"userbase_fieldset.go", "messagebase_fieldset.go"} {
		expected, err := os.ReadFile(filepath.Join(src, name))
		require.NoError(t, err)
		generated, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, string(expected), string(generated), name)
	}
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}
