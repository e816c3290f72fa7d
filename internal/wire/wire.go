// Package wire provides the fixed-width, network-byte-order primitives that
// every scalar field on the PostgreSQL binary wire format is built from. It
// is a thin layer over github.com/jackc/pgio, adding IEEE-754 bit-pattern
// handling for the two floating point widths pgio itself does not cover.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/jackc/pgio"
)

// EncodeInt16 returns the two-byte big-endian encoding of v.
func EncodeInt16(v int16) []byte {
	return pgio.AppendInt16(nil, v)
}

// DecodeInt16 reads a two-byte big-endian integer from the front of buf.
func DecodeInt16(buf []byte) int16 {
	return int16(binary.BigEndian.Uint16(buf))
}

// EncodeInt32 returns the four-byte big-endian encoding of v.
func EncodeInt32(v int32) []byte {
	return pgio.AppendInt32(nil, v)
}

// DecodeInt32 reads a four-byte big-endian integer from the front of buf.
func DecodeInt32(buf []byte) int32 {
	return int32(binary.BigEndian.Uint32(buf))
}

// EncodeInt64 returns the eight-byte big-endian encoding of v.
func EncodeInt64(v int64) []byte {
	return pgio.AppendInt64(nil, v)
}

// DecodeInt64 reads an eight-byte big-endian integer from the front of buf.
func DecodeInt64(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf))
}

// EncodeFloat32 returns the big-endian IEEE-754 binary32 encoding of v.
func EncodeFloat32(v float32) []byte {
	return pgio.AppendUint32(nil, math.Float32bits(v))
}

// DecodeFloat32 reads a big-endian IEEE-754 binary32 value from the front of buf.
func DecodeFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(buf))
}

// EncodeFloat64 returns the big-endian IEEE-754 binary64 encoding of v.
func EncodeFloat64(v float64) []byte {
	return pgio.AppendUint64(nil, math.Float64bits(v))
}

// DecodeFloat64 reads a big-endian IEEE-754 binary64 value from the front of buf.
func DecodeFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}

// EncodeHeaderField encodes one of the int32 fields of a PostgreSQL array
// header (ndim, hasNull, elementOid, dim, lBound). It is just EncodeInt32
// under a name that reads better at array-header call sites.
func EncodeHeaderField(v int32) []byte {
	return EncodeInt32(v)
}

// DecodeHeaderField decodes one of the int32 fields of a PostgreSQL array
// header.
func DecodeHeaderField(buf []byte) int32 {
	return DecodeInt32(buf)
}
