package result

import (
	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/pglog"
	"github.com/sadyrov/pgwirecodec/pgtype"
)

// Numeric mirrors param.Numeric: the fixed-width scalar kinds an array can
// hold.
type Numeric interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func elementWidthOf[T Numeric]() int {
	var zero T
	switch any(zero).(type) {
	case int16:
		return 2
	case int32, float32:
		return 4
	case int64, float64:
		return 8
	}
	panic("result: unsupported numeric array element type")
}

func elementOIDOf[T Numeric]() uint32 {
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
	panic("result: unsupported numeric array element type")
}

func decodeNumericElement[T Numeric](buf []byte) T {
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
	panic("result: unsupported numeric array element type")
}

// DecodeNumericArray reads a one-dimensional ARRAY<SMALLINT|INTEGER|BIGINT|
// REAL|DOUBLE> column into a []T. A malformed header (ndim != 1, hasNull !=
// 0, or an element OID mismatch) logs a warning and returns an empty slice.
// A malformed element (length != sizeof(T)) logs a warning and is skipped.
func DecodeNumericArray[T Numeric](h ResultHandle, row, col int) []T {
	buf := h.GetValue(row, col)
	if len(buf) < arrayHeaderBytes {
		pglog.Warn("array header too short", map[string]any{"length": len(buf)})
		return nil
	}

	ndim := wire.DecodeHeaderField(buf[0:4])
	hasNull := wire.DecodeHeaderField(buf[4:8])
	elementOid := wire.DecodeHeaderField(buf[8:12])
	dim := wire.DecodeHeaderField(buf[12:16])

	if ndim != 1 {
		pglog.Warn("array has ndim != 1", map[string]any{"ndim": ndim})
		return nil
	}
	if hasNull != 0 {
		pglog.Warn("array has hasNull != 0", map[string]any{"hasNull": hasNull})
		return nil
	}
	if uint32(elementOid) != elementOIDOf[T]() {
		pglog.Warn("array has unexpected elementOid", map[string]any{"elementOid": elementOid})
		return nil
	}

	width := elementWidthOf[T]()
	out := make([]T, 0, dim)
	ptr := buf[arrayHeaderBytes:]
	for i := int32(0); i < dim; i++ {
		if len(ptr) < 4 {
			pglog.Warn("array truncated before element length", map[string]any{"index": i})
			break
		}
		length := wire.DecodeHeaderField(ptr[0:4])
		ptr = ptr[4:]
		if int(length) != width {
			pglog.Warn("array element has unexpected length", map[string]any{"index": i, "length": length, "want": width})
			if length < 0 || int(length) > len(ptr) {
				break
			}
			ptr = ptr[length:]
			continue
		}
		if len(ptr) < width {
			pglog.Warn("array truncated mid-element", map[string]any{"index": i})
			break
		}
		out = append(out, decodeNumericElement[T](ptr[:width]))
		ptr = ptr[width:]
	}
	return out
}
