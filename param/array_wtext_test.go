package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadyrov/pgwirecodec/pgwireconfig"
)

func TestWTextArrayRoundTrip(t *testing.T) {
	katakana := []uint16{0x30A4, 0x30F3, 0x30BF, 0x30FC, 0x30CD, 0x30C3, 0x30C8}
	a, err := NewWTextArray([][]uint16{katakana, {'h', 'i'}})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	got0, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, katakana, got0)

	got1, err := a.At(1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{'h', 'i'}, got1)
}

func TestWTextArrayWarnsAndAbandonsRemainingElementsOnBadElement(t *testing.T) {
	pgwireconfig.Apply(pgwireconfig.Config{StrictWText: false})
	defer pgwireconfig.Apply(pgwireconfig.Config{})

	a, err := NewWTextArray([][]uint16{{'o', 'k'}, {0xD800}, {'h', 'i'}})
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())
	assert.Equal(t, "ok", a.TextArray.At(0))
}

func TestWTextArrayStrictAbortsOnBadElement(t *testing.T) {
	pgwireconfig.Apply(pgwireconfig.Config{StrictWText: true})
	defer pgwireconfig.Apply(pgwireconfig.Config{})

	_, err := NewWTextArray([][]uint16{{0xD800}})
	assert.Error(t, err)
}
