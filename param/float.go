package param

import (
	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// Real is the REAL (float4) parameter encoder.
type Real struct {
	data []byte
}

// NewReal returns a Real encoding v.
func NewReal(v float32) *Real {
	r := &Real{}
	r.Set(v)
	return r
}

// Set re-encodes the parameter from v.
func (r *Real) Set(v float32) { r.data = wire.EncodeFloat32(v) }

func (r *Real) OID() uint32  { return pgtype.OIDOf[pgtype.KindReal] }
func (r *Real) Data() []byte { return r.data }
func (r *Real) Size() int32  { return int32(len(r.data)) }

// Double is the DOUBLE (float8) parameter encoder.
type Double struct {
	data []byte
}

// NewDouble returns a Double encoding v.
func NewDouble(v float64) *Double {
	d := &Double{}
	d.Set(v)
	return d
}

// Set re-encodes the parameter from v.
func (d *Double) Set(v float64) { d.data = wire.EncodeFloat64(v) }

func (d *Double) OID() uint32  { return pgtype.OIDOf[pgtype.KindDouble] }
func (d *Double) Data() []byte { return d.data }
func (d *Double) Size() int32  { return int32(len(d.data)) }
