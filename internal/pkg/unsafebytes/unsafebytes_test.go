package unsafebytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "foo", BytesToString([]byte("foo")))
	assert.Equal(t, "", BytesToString(nil))
}

func TestStringToBytes(t *testing.T) {
	assert.Equal(t, []byte("foo"), StringToBytes("foo"))
}

func TestStringToInt32(t *testing.T) {
	assert.Equal(t, int32(0), StringToInt32("0"))
	assert.Equal(t, int32(-123), StringToInt32("-123"))
	assert.Equal(t, int32(2147483647), StringToInt32("2147483647"))
	assert.Equal(t, int32(-2147483648), StringToInt32("-2147483648"))
}

func TestStringToFloat64(t *testing.T) {
	assert.Equal(t, 0.0, StringToFloat64("0"))
	assert.Equal(t, -1.5, StringToFloat64("-1.5"))
	assert.Equal(t, 100.0, StringToFloat64("1e2"))
	assert.Equal(t, 0.123, StringToFloat64("12.3e-2"))
}
