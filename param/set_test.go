package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadyrov/pgwirecodec/pgtype"
)

func TestSetBuildParallelArrays(t *testing.T) {
	s := NewSet(NewSmallint(-1413), NewInteger(123342945), NewText("hi"))
	s.Build()

	require.Equal(t, 3, s.Size())
	assert.Equal(t, []uint32{
		pgtype.OIDOf[pgtype.KindSmallint],
		pgtype.OIDOf[pgtype.KindInteger],
		pgtype.OIDOf[pgtype.KindText],
	}, s.OIDs())
	assert.Equal(t, []int16{1, 1, 1}, s.Formats())
	assert.Equal(t, []int32{2, 4, 2}, s.Sizes())
	assert.Equal(t, []byte{0xFA, 0x7B}, s.Raws()[0])
	assert.Equal(t, []byte("hi"), s.Raws()[2])
}

func TestSetNullProjection(t *testing.T) {
	s := NewSet(NewInteger(1), NewText("x"))
	s.SetNull(1)
	s.Build()

	assert.False(t, s.IsNull(0))
	assert.True(t, s.IsNull(1))
	assert.NotNil(t, s.Raws()[0])
	assert.Nil(t, s.Raws()[1])

	s.ClearNull(1)
	s.Build()
	assert.False(t, s.IsNull(1))
	assert.Equal(t, []byte("x"), s.Raws()[1])
}

func TestSetFourteenColumnNullProjection(t *testing.T) {
	s := NewSet(
		NewSmallint(1), NewInteger(2), NewBigint(3), NewReal(4), NewDouble(5),
		NewText("six"), NewBytea([]byte{7}), NewBool(true), NewInteger(9),
		NewInteger(10), NewInteger(11), NewInteger(12),
		NewInteger(13), NewInteger(14),
	)
	s.SetNull(11)
	s.Build()

	require.Equal(t, 14, s.Size())
	for i := 0; i < 14; i++ {
		if i == 11 {
			assert.True(t, s.IsNull(i), "column %d", i)
			assert.Nil(t, s.Raws()[i], "column %d", i)
			continue
		}
		assert.False(t, s.IsNull(i), "column %d", i)
		require.NotNil(t, s.Raws()[i], "column %d", i)
		require.NotEmpty(t, s.Raws()[i], "column %d", i)
	}
	assert.Equal(t, byte(0x00), s.Raws()[0][0]) // Smallint(1) high byte
}

func TestSetEmpty(t *testing.T) {
	s := NewSet()
	s.Build()
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.OIDs())
}
