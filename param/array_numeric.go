package param

import (
	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// Numeric is the set of Go types NumericArray can hold: the fixed-width
// scalar kinds allowed inside ARRAY<numeric>.
type Numeric interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

const arrayHeaderFields = 5 // ndim, hasNull, elementOid, dim, lBound

// NumericArray is the one-dimensional ARRAY<SMALLINT|INTEGER|BIGINT|REAL|
// DOUBLE> parameter encoder. The header is ndim=1, hasNull=0, elementOid,
// dim=N, lBound=1, followed by N repetitions of (length=sizeof(T), value).
type NumericArray[T Numeric] struct {
	data []byte
	n    int
}

// NewNumericArray returns a NumericArray encoding v.
func NewNumericArray[T Numeric](v []T) *NumericArray[T] {
	a := &NumericArray[T]{}
	a.Set(v)
	return a
}

func elementWidth[T Numeric]() int32 {
	var zero T
	switch any(zero).(type) {
	case int16:
		return 2
	case int32, float32:
		return 4
	case int64, float64:
		return 8
	}
	panic("param: unsupported numeric array element type")
}

func elementOID[T Numeric]() uint32 {
	var zero T
	switch any(zero).(type) {
	case int16:
		return pgtype.OIDOf[pgtype.KindSmallint]
	case int32:
		return pgtype.OIDOf[pgtype.KindInteger]
	case int64:
		return pgtype.OIDOf[pgtype.KindBigint]
	case float32:
		return pgtype.OIDOf[pgtype.KindReal]
	case float64:
		return pgtype.OIDOf[pgtype.KindDouble]
	}
	panic("param: unsupported numeric array element type")
}

func numericArrayOID[T Numeric]() uint32 {
	var zero T
	switch any(zero).(type) {
	case int16:
		return pgtype.OIDOf[pgtype.KindSmallintArray]
	case int32:
		return pgtype.OIDOf[pgtype.KindIntegerArray]
	case int64:
		return pgtype.OIDOf[pgtype.KindBigintArray]
	case float32:
		return pgtype.OIDOf[pgtype.KindRealArray]
	case float64:
		return pgtype.OIDOf[pgtype.KindDoubleArray]
	}
	panic("param: unsupported numeric array element type")
}

func encodeElement[T Numeric](v T) []byte {
	switch x := any(v).(type) {
	case int16:
		return wire.EncodeInt16(x)
	case int32:
		return wire.EncodeInt32(x)
	case int64:
		return wire.EncodeInt64(x)
	case float32:
		return wire.EncodeFloat32(x)
	case float64:
		return wire.EncodeFloat64(x)
	}
	panic("param: unsupported numeric array element type")
}

func decodeElement[T Numeric](buf []byte) T {
	var zero T
	switch any(zero).(type) {
	case int16:
		return T(wire.DecodeInt16(buf))
	case int32:
		return T(wire.DecodeInt32(buf))
	case int64:
		return T(wire.DecodeInt64(buf))
	case float32:
		return T(wire.DecodeFloat32(buf))
	case float64:
		return T(wire.DecodeFloat64(buf))
	}
	panic("param: unsupported numeric array element type")
}

// Resize reallocates the owned buffer for n elements and writes the header.
// Individual elements are left zeroed until Set or SetAt populates them.
func (a *NumericArray[T]) Resize(n int) {
	width := elementWidth[T]()
	a.n = n
	a.data = make([]byte, 0, int(arrayHeaderFields+n)*4+n*int(width))

	a.data = append(a.data, wire.EncodeHeaderField(1)...)               // ndim
	a.data = append(a.data, wire.EncodeHeaderField(0)...)               // hasNull
	a.data = append(a.data, wire.EncodeHeaderField(int32(elementOID[T]()))...) // elementOid
	a.data = append(a.data, wire.EncodeHeaderField(int32(n))...)        // dim
	a.data = append(a.data, wire.EncodeHeaderField(1)...)               // lBound

	for i := 0; i < n; i++ {
		a.data = append(a.data, wire.EncodeHeaderField(width)...)
		a.data = append(a.data, make([]byte, width)...)
	}
}

// Set re-encodes the parameter from v.
func (a *NumericArray[T]) Set(v []T) {
	a.Resize(len(v))
	for i, x := range v {
		a.SetAt(i, x)
	}
}

func (a *NumericArray[T]) elementOffset(i int) int {
	width := int(elementWidth[T]())
	return arrayHeaderFields*4 + i*(4+width)
}

// At returns the i-th element's decoded value.
func (a *NumericArray[T]) At(i int) T {
	width := int(elementWidth[T]())
	off := a.elementOffset(i) + 4
	return decodeElement[T](a.data[off : off+width])
}

// SetAt overwrites the i-th element in place.
func (a *NumericArray[T]) SetAt(i int, v T) {
	width := int(elementWidth[T]())
	off := a.elementOffset(i) + 4
	copy(a.data[off:off+width], encodeElement(v))
}

// Len returns the number of elements in the array.
func (a *NumericArray[T]) Len() int { return a.n }

func (a *NumericArray[T]) OID() uint32  { return numericArrayOID[T]() }
func (a *NumericArray[T]) Data() []byte { return a.data }
func (a *NumericArray[T]) Size() int32  { return int32(len(a.data)) }
