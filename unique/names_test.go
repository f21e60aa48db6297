package unique

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Names_Increment(t *testing.T) {
	names := NewNamesWith()
	assert.Equal(t, "o", names.Get("o"))
	assert.Equal(t, "o1", names.Get("o"))
	assert.Equal(t, "o2", names.Get("o"))
	assert.Equal(t, "c", names.Get("c"))
}

func Test_Names_Suffix(t *testing.T) {
	names := NewNamesWith(DistinctBySuffix("_"), PreInit("r"))
	assert.Equal(t, "r_", names.Get("r"))
	assert.Equal(t, "r__", names.Get("r"))
	assert.Equal(t, "text", names.Get("text"))
}

func Test_Names_Nil(t *testing.T) {
	var names *Names
	assert.Equal(t, "a", names.Get("a"))
}
