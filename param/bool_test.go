package param

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadyrov/pgwirecodec/pgtype"
)

func TestBoolEncoding(t *testing.T) {
	f := NewBool(false)
	assert.Equal(t, []byte{0x00}, f.Data())
	assert.Equal(t, int32(1), f.Size())
	assert.Equal(t, pgtype.OIDOf[pgtype.KindBool], f.OID())

	tr := NewBool(true)
	assert.Equal(t, []byte{0x01}, tr.Data())
}

func TestBoolSetMutatesInPlace(t *testing.T) {
	b := NewBool(true)
	b.Set(false)
	assert.Equal(t, []byte{0x00}, b.Data())
}
