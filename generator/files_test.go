package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/fieldset/model/fieldset"
)

func Test_Files_Write(t *testing.T) {
	dir := t.TempDir()
	messages := filepath.Join(dir, "messages_fieldset.go")
	requests := filepath.Join(dir, "requests_fieldset.go")

	files := NewFiles("fieldset", "messages", "fieldset")
	assert.True(t, files.IsEmpty())
	require.NoError(t, files.Get(messages).Add(compose(t, messageBase(t), fieldset.Request{Name: "Message"})))
	require.NoError(t, files.Get(requests).Add(compose(t, messageBase(t), fieldset.Request{Name: "MessageUpdateRequest"})))
	files.Get(filepath.Join(dir, "empty_fieldset.go"))

	assert.Same(t, files.Get(messages), files.Get(messages))
	assert.Len(t, files.Names(), 3)
	require.NoError(t, files.Write())

	src, err := os.ReadFile(messages)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Message struct {")
	_, err = os.Stat(requests)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "empty_fieldset.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Files_NothingWrittenOnError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good_fieldset.go")

	files := NewFiles("fieldset", "messages", "fieldset")
	require.NoError(t, files.Get(good).Add(compose(t, messageBase(t), fieldset.Request{Name: "Message"})))
	broken := files.Get(filepath.Join(dir, "broken_fieldset.go"))
	require.NoError(t, broken.Add(compose(t, messageBase(t), fieldset.Request{
		Name:   "Broken",
		Fields: []fieldset.Field{{Name: "Bad", TypeExpr: "int", Tag: "a`b"}},
	})))

	assert.Error(t, files.Write())
	_, err := os.Stat(good)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
