package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	run := func(in, expected string) {
		t.Helper()
		assert.Equal(t, expected, String(in))
	}

	run("plain", "plain")
	run("", "")
	run(`say "hi"`, `say \"hi\"`)
	run("back\\slash", `back\\slash`)
	run("line\nbreak", `line\nbreak`)
	run("tab\tand\rreturn", `tab\tand\rreturn`)
	run("\b\f", `\b\f`)
	run("\x01\x1f", `\u0001\u001f`)
	run("café", "café")
}

func TestBytesAppends(t *testing.T) {
	out := []byte("prefix:")
	out = Bytes([]byte("a\nb"), out)
	assert.Equal(t, `prefix:a\nb`, string(out))
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, `"a\"b"`, Quoted(`a"b`))
}
