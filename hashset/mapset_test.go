package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSet(t *testing.T) {
	s := NewMapSet[string](4)

	ok, err := s.Add("one")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, _ = s.Add("one")
	assert.False(t, ok, "Key 'one' should already exist")

	assert.True(t, s.Contains("one"))
	assert.False(t, s.Contains("two"))
	assert.Equal(t, 1, s.Size())

	assert.True(t, s.Remove("one"))
	assert.False(t, s.Remove("one"))
	assert.Equal(t, 0, s.Size())
}
