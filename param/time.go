package param

import (
	"time"

	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// pgEpoch is PostgreSQL's internal zero instant, 2000-01-01T00:00:00 UTC.
var pgEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Timestamptz is the TIMESTAMPTZ parameter encoder: signed 64-bit
// microseconds since pgEpoch, big-endian.
type Timestamptz struct {
	data []byte
}

// NewTimestamptz returns a Timestamptz encoding v.
func NewTimestamptz(v time.Time) *Timestamptz {
	t := &Timestamptz{}
	t.Set(v)
	return t
}

// Set re-encodes the parameter from v.
func (t *Timestamptz) Set(v time.Time) {
	micros := v.UTC().Sub(pgEpoch).Microseconds()
	t.data = wire.EncodeInt64(micros)
}

func (t *Timestamptz) OID() uint32  { return pgtype.OIDOf[pgtype.KindTimestamptz] }
func (t *Timestamptz) Data() []byte { return t.data }
func (t *Timestamptz) Size() int32  { return int32(len(t.data)) }

// Date is the DATE parameter encoder: signed 32-bit days since pgEpoch's
// calendar date, big-endian.
type Date struct {
	data []byte
}

// NewDate returns a Date encoding the UTC calendar date of v (the time of
// day, if any, is discarded).
func NewDate(v time.Time) *Date {
	d := &Date{}
	d.Set(v)
	return d
}

// NewCivilDate returns a Date encoding the given year/month/day directly,
// for callers who want to avoid any time.Time time-of-day truncation
// surprises (see SPEC_FULL.md §9, Open Question: DATE input type).
func NewCivilDate(year int, month time.Month, day int) *Date {
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Set re-encodes the parameter from the UTC calendar date of v.
func (d *Date) Set(v time.Time) {
	v = v.UTC()
	civil := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	days := int32(civil.Sub(pgEpoch).Hours() / 24)
	d.data = wire.EncodeInt32(days)
}

func (d *Date) OID() uint32  { return pgtype.OIDOf[pgtype.KindDate] }
func (d *Date) Data() []byte { return d.data }
func (d *Date) Size() int32  { return int32(len(d.data)) }
