package param

import (
	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// Smallint is the SMALLINT (int2) parameter encoder.
type Smallint struct {
	data []byte
}

// NewSmallint returns a Smallint encoding v.
func NewSmallint(v int16) *Smallint {
	s := &Smallint{}
	s.Set(v)
	return s
}

// Set re-encodes the parameter from v.
func (s *Smallint) Set(v int16) { s.data = wire.EncodeInt16(v) }

func (s *Smallint) OID() uint32 { return pgtype.OIDOf[pgtype.KindSmallint] }
func (s *Smallint) Data() []byte { return s.data }
func (s *Smallint) Size() int32  { return int32(len(s.data)) }

// Integer is the INTEGER (int4) parameter encoder.
type Integer struct {
	data []byte
}

// NewInteger returns an Integer encoding v.
func NewInteger(v int32) *Integer {
	i := &Integer{}
	i.Set(v)
	return i
}

// Set re-encodes the parameter from v.
func (i *Integer) Set(v int32) { i.data = wire.EncodeInt32(v) }

func (i *Integer) OID() uint32  { return pgtype.OIDOf[pgtype.KindInteger] }
func (i *Integer) Data() []byte { return i.data }
func (i *Integer) Size() int32  { return int32(len(i.data)) }

// Bigint is the BIGINT (int8) parameter encoder.
type Bigint struct {
	data []byte
}

// NewBigint returns a Bigint encoding v.
func NewBigint(v int64) *Bigint {
	b := &Bigint{}
	b.Set(v)
	return b
}

// Set re-encodes the parameter from v.
func (b *Bigint) Set(v int64) { b.data = wire.EncodeInt64(v) }

func (b *Bigint) OID() uint32  { return pgtype.OIDOf[pgtype.KindBigint] }
func (b *Bigint) Data() []byte { return b.data }
func (b *Bigint) Size() int32  { return int32(len(b.data)) }
