package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapBytes(t *testing.T) {
	in := []byte("foo")
	out := WrapBytes(in)
	assert.Equal(t, `"foo"`, string(out))

	out[1] = 'x'
	assert.Equal(t, "foo", string(in), "WrapBytes must copy")
}

func TestWrapString(t *testing.T) {
	assert.Equal(t, `"foo"`, WrapString("foo"))
	assert.Equal(t, `""`, WrapString(""))
}
