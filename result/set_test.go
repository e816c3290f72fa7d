package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

func TestSetNoResultOnNilHandle(t *testing.T) {
	s := NewSet(nil)
	assert.Equal(t, NoResult, s.Status())
	assert.Equal(t, 0, s.Rows())
	assert.Equal(t, -1, s.Verify())
}

func TestSetRowDecodesInSchemaOrder(t *testing.T) {
	h := &fakeHandle{
		rows:   [][][]byte{{wire.EncodeInt32(123342945), []byte("hi")}},
		oids:   []uint32{pgtype.OIDOf[pgtype.KindInteger], pgtype.OIDOf[pgtype.KindText]},
		sizes:  []int32{4, -1},
		status: 2,
	}
	s := NewSet(h, IntegerColumn(), TextColumn())
	assert.Equal(t, RowsOK, s.Status())
	assert.Equal(t, -1, s.Verify())

	row, err := s.Row(0)
	require.NoError(t, err)
	assert.Equal(t, int32(123342945), row[0])
	assert.Equal(t, "hi", row[1])
}

func TestSetNullCellSkipsDecode(t *testing.T) {
	h := &fakeHandle{
		rows:  [][][]byte{{nil}},
		nulls: [][]bool{{true}},
		oids:  []uint32{pgtype.OIDOf[pgtype.KindText]},
		sizes: []int32{-1},
	}
	s := NewSet(h, TextColumn())
	row, err := s.Row(0)
	require.NoError(t, err)
	assert.Nil(t, row[0])
}

func TestSetVerifyReportsFirstMismatch(t *testing.T) {
	h := &fakeHandle{
		oids:  []uint32{pgtype.OIDOf[pgtype.KindText], pgtype.OIDOf[pgtype.KindText]},
		sizes: []int32{-1, -1},
	}
	s := NewSet(h, TextColumn(), IntegerColumn())
	assert.Equal(t, 1, s.Verify())
}

func TestSetVerifyColumnCountMismatch(t *testing.T) {
	h := &fakeHandle{oids: []uint32{pgtype.OIDOf[pgtype.KindText]}, sizes: []int32{-1}}
	s := NewSet(h, TextColumn(), IntegerColumn())
	assert.Equal(t, 0, s.Verify())
}

func TestSetCloseClearsHandle(t *testing.T) {
	h := &fakeHandle{}
	s := NewSet(h)
	s.Close()
	assert.True(t, h.cleared)
	assert.Equal(t, NoResult, s.Status())
}

func TestSetAffectedRows(t *testing.T) {
	h := &fakeHandle{cmdTup: "42"}
	s := NewSet(h)
	assert.Equal(t, 42, s.AffectedRows())
}
