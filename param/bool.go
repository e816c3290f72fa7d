package param

import "github.com/sadyrov/pgwirecodec/pgtype"

// Bool is the BOOL parameter encoder: one byte, 0x00 or 0x01.
type Bool struct {
	data [1]byte
}

// NewBool returns a Bool encoding v.
func NewBool(v bool) *Bool {
	b := &Bool{}
	b.Set(v)
	return b
}

// Set re-encodes the parameter from v.
func (b *Bool) Set(v bool) {
	if v {
		b.data[0] = 1
	} else {
		b.data[0] = 0
	}
}

func (b *Bool) OID() uint32   { return pgtype.OIDOf[pgtype.KindBool] }
func (b *Bool) Data() []byte  { return b.data[:] }
func (b *Bool) Size() int32   { return 1 }
