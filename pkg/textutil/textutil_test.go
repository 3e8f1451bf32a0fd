package textutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary_EmptyData(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary(nil))
	assert.False(t, IsBinary([]byte{}))
}

func TestIsBinary_SVGText(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary([]byte(`<svg viewBox="0 0 24 24"><path d="M0 0"/></svg>`)))
}

func TestIsBinary_NullByte(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBinary([]byte("<svg>\x00</svg>")))
}

func TestIsBinary_NullBeyondSniffLength(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("a"), BinarySniffLength+10)
	data[BinarySniffLength] = 0

	assert.False(t, IsBinary(data))

	data[BinarySniffLength-1] = 0
	assert.True(t, IsBinary(data))
}

func TestTrimBOM(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte(`{"a":1}`), TrimBOM([]byte("\ufeff{\"a\":1}")))
	assert.Equal(t, []byte(`{"a":1}`), TrimBOM([]byte(`{"a":1}`)))
	assert.Empty(t, TrimBOM(nil))
}
