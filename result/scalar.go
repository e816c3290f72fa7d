package result

import "github.com/sadyrov/pgwirecodec/internal/wire"

// DecodeBool reads a one-byte BOOL column; any non-zero byte is true.
func DecodeBool(h ResultHandle, row, col int) bool {
	v := h.GetValue(row, col)
	return len(v) > 0 && v[0] != 0
}

// DecodeSmallint reads a two-byte big-endian SMALLINT column.
func DecodeSmallint(h ResultHandle, row, col int) int16 {
	return wire.DecodeInt16(h.GetValue(row, col))
}

// DecodeInteger reads a four-byte big-endian INTEGER column.
func DecodeInteger(h ResultHandle, row, col int) int32 {
	return wire.DecodeInt32(h.GetValue(row, col))
}

// DecodeBigint reads an eight-byte big-endian BIGINT column.
func DecodeBigint(h ResultHandle, row, col int) int64 {
	return wire.DecodeInt64(h.GetValue(row, col))
}

// DecodeReal reads a four-byte big-endian IEEE-754 binary32 REAL column.
func DecodeReal(h ResultHandle, row, col int) float32 {
	return wire.DecodeFloat32(h.GetValue(row, col))
}

// DecodeDouble reads an eight-byte big-endian IEEE-754 binary64 DOUBLE
// column.
func DecodeDouble(h ResultHandle, row, col int) float64 {
	return wire.DecodeFloat64(h.GetValue(row, col))
}

// DecodeText returns a TEXT column's bytes as a string, verbatim.
func DecodeText(h ResultHandle, row, col int) string {
	return string(h.GetValue(row, col))
}

// DecodeBytea returns a BYTEA column's bytes, copied out of the handle's
// buffer so callers may retain the result past the handle's lifetime.
func DecodeBytea(h ResultHandle, row, col int) []byte {
	v := h.GetValue(row, col)
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// DecodeByteArray is an alias of DecodeBytea: there is exactly one encoding
// path for BYTEA-shaped bytes, whether the column is declared BYTEA or a
// decode-only ARRAY<byte>.
func DecodeByteArray(h ResultHandle, row, col int) []byte {
	return DecodeBytea(h, row, col)
}
