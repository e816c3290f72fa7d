package pglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	msgs   []string
	fields []map[string]any
}

func (r *recordingLogger) Warn(msg string, fields map[string]any) {
	r.msgs = append(r.msgs, msg)
	r.fields = append(r.fields, fields)
}

func TestSetLoggerRoutesWarnings(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Warn("something went sideways", map[string]any{"column": 3})

	assert.Equal(t, []string{"something went sideways"}, rec.msgs)
	assert.Equal(t, 3, rec.fields[0]["column"])
}

func TestDiscardLoggerIsDefault(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() {
		Warn("nobody is listening", nil)
	})
}
