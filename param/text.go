package param

import "github.com/sadyrov/pgwirecodec/pgtype"

// Text is the TEXT parameter encoder: the source string's bytes verbatim,
// with no trailing NUL in the length.
type Text struct {
	data []byte
}

// NewText returns a Text encoding v.
func NewText(v string) *Text {
	t := &Text{}
	t.Set(v)
	return t
}

// Set re-encodes the parameter from v.
func (t *Text) Set(v string) { t.data = []byte(v) }

func (t *Text) OID() uint32  { return pgtype.OIDOf[pgtype.KindText] }
func (t *Text) Data() []byte { return t.data }
func (t *Text) Size() int32  { return int32(len(t.data)) }

// Bytea is the BYTEA parameter encoder: raw bytes, verbatim.
type Bytea struct {
	data []byte
}

// NewBytea returns a Bytea encoding v.
func NewBytea(v []byte) *Bytea {
	b := &Bytea{}
	b.Set(v)
	return b
}

// Set re-encodes the parameter from v.
func (b *Bytea) Set(v []byte) {
	b.data = make([]byte, len(v))
	copy(b.data, v)
}

func (b *Bytea) OID() uint32  { return pgtype.OIDOf[pgtype.KindBytea] }
func (b *Bytea) Data() []byte { return b.data }
func (b *Bytea) Size() int32  { return int32(len(b.data)) }
