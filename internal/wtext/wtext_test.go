package wtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	const s = "インターネット"
	units, err := FromUTF8(s)
	assert.NoError(t, err)
	assert.NotEmpty(t, units)

	back, err := ToUTF8(units)
	assert.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestEmptyString(t *testing.T) {
	units, err := FromUTF8("")
	assert.NoError(t, err)
	assert.Empty(t, units)

	back, err := ToUTF8(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", back)
}

func TestASCIIRoundTrip(t *testing.T) {
	const s = "This is a test!!34234"
	units, err := FromUTF8(s)
	assert.NoError(t, err)

	back, err := ToUTF8(units)
	assert.NoError(t, err)
	assert.Equal(t, s, back)
}
