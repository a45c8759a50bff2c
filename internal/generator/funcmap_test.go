package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0,1,255,", FormatBytes([]byte{0, 1, 255}))
	assert.Equal(t, "", FormatBytes(nil))
	assert.Equal(t, "10,100,", FormatBytes([]byte{10, 100}))

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	out := FormatBytes(all)
	assert.Equal(t, "0,1,2,", out[:6])
	assert.Equal(t, "254,255,", out[len(out)-8:])
}

func TestAppendBytes(t *testing.T) {
	dst := []byte("{ ")
	assert.Equal(t, "{ 7,42,", string(AppendBytes(dst, []byte{7, 42})))
}

func TestEscapeString(t *testing.T) {
	tests := map[string]string{
		"blob":        "blob",
		`a"b`:         `a\"b`,
		`a\b`:         `a\\b`,
		"line\nbreak": `line\nbreak`,
		"tab\there":   `tab\there`,
		"bell\x07":    `bell\007`,
		"del\x7f":     `del\177`,
		"héllo":       "héllo",
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeString(in), in)
	}
}
