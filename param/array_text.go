package param

import (
	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// TextArray is the one-dimensional ARRAY<TEXT> parameter encoder. Header as
// NumericArray, with elementOid=TEXT, followed by N repetitions of
// (length, bytes[length]) — no per-element terminator.
type TextArray struct {
	data []byte
	n    int
}

// NewTextArray returns a TextArray encoding v.
func NewTextArray(v []string) *TextArray {
	a := &TextArray{}
	a.Set(v)
	return a
}

// Set re-encodes the parameter from v.
func (a *TextArray) Set(v []string) {
	a.n = len(v)
	dataSize := 0
	for _, s := range v {
		dataSize += len(s)
	}

	a.data = make([]byte, 0, arrayHeaderFields*4+len(v)*4+dataSize)
	a.data = append(a.data, wire.EncodeHeaderField(1)...)                                   // ndim
	a.data = append(a.data, wire.EncodeHeaderField(0)...)                                   // hasNull
	a.data = append(a.data, wire.EncodeHeaderField(int32(pgtype.OIDOf[pgtype.KindText]))...) // elementOid
	a.data = append(a.data, wire.EncodeHeaderField(int32(len(v)))...)                        // dim
	a.data = append(a.data, wire.EncodeHeaderField(1)...)                                    // lBound

	for _, s := range v {
		a.data = append(a.data, wire.EncodeHeaderField(int32(len(s)))...)
		a.data = append(a.data, s...)
	}
}

// At returns the i-th string.
func (a *TextArray) At(i int) string {
	ptr := a.data[arrayHeaderFields*4:]
	for j := 0; ; j++ {
		length := wire.DecodeHeaderField(ptr)
		ptr = ptr[4:]
		if j == i {
			return string(ptr[:length])
		}
		ptr = ptr[length:]
	}
}

// Len returns the number of elements in the array.
func (a *TextArray) Len() int { return a.n }

func (a *TextArray) OID() uint32  { return pgtype.OIDOf[pgtype.KindTextArray] }
func (a *TextArray) Data() []byte { return a.data }
func (a *TextArray) Size() int32  { return int32(len(a.data)) }
