package zapadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarnRecordsMessageAndFields(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := NewLogger(zap.New(core))

	logger.Warn("element of wrong size", map[string]any{"index": 4})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "element of wrong size", entries[0].Message)
}
