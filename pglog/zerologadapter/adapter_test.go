package zerologadapter

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWarnWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.New(&buf))

	logger.Warn("malformed array header", map[string]any{"column": 2})

	out := buf.String()
	assert.Contains(t, out, "malformed array header")
	assert.Contains(t, out, `"module":"pgwirecodec"`)
	assert.Contains(t, out, `"column":2`)
}
