package param

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

func TestTimestamptzAtEpoch(t *testing.T) {
	ts := NewTimestamptz(pgEpoch)
	assert.Equal(t, int64(0), wire.DecodeInt64(ts.Data()))
	assert.Equal(t, pgtype.OIDOf[pgtype.KindTimestamptz], ts.OID())
}

func TestTimestamptzOneSecondAfterEpoch(t *testing.T) {
	ts := NewTimestamptz(pgEpoch.Add(time.Second))
	assert.Equal(t, int64(1_000_000), wire.DecodeInt64(ts.Data()))
}

func TestDateAtEpoch(t *testing.T) {
	d := NewDate(pgEpoch)
	assert.Equal(t, int32(0), wire.DecodeInt32(d.Data()))
	assert.Equal(t, pgtype.OIDOf[pgtype.KindDate], d.OID())
}

func TestDateOneDayAfterEpoch(t *testing.T) {
	d := NewCivilDate(2000, time.January, 2)
	assert.Equal(t, int32(1), wire.DecodeInt32(d.Data()))
}

func TestDateIgnoresTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(2000, time.January, 2, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, int32(1), wire.DecodeInt32(d.Data()))
}
