package result

import (
	"github.com/pkg/errors"

	"github.com/sadyrov/pgwirecodec/internal/wire"
	"github.com/sadyrov/pgwirecodec/internal/wtext"
	"github.com/sadyrov/pgwirecodec/pglog"
	"github.com/sadyrov/pgwirecodec/pgtype"
	"github.com/sadyrov/pgwirecodec/pgwireconfig"
)

// arrayHeaderBytes is the fixed size of the ndim/hasNull/elementOid/dim/
// lBound header every one-dimensional array carries.
const arrayHeaderBytes = 20

// DecodeTextArray reads a one-dimensional ARRAY<TEXT> column. A malformed
// header (ndim != 1, hasNull != 0, or elementOid != TEXT) logs a warning
// and returns an empty slice.
func DecodeTextArray(h ResultHandle, row, col int) []string {
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
	if uint32(elementOid) != pgtype.OIDOf[pgtype.KindText] {
		pglog.Warn("array has unexpected elementOid", map[string]any{"elementOid": elementOid})
		return nil
	}

	out := make([]string, 0, dim)
	ptr := buf[arrayHeaderBytes:]
	for i := int32(0); i < dim; i++ {
		if len(ptr) < 4 {
			pglog.Warn("array truncated before element length", map[string]any{"index": i})
			break
		}
		length := wire.DecodeHeaderField(ptr[0:4])
		ptr = ptr[4:]
		if length < 0 || int(length) > len(ptr) {
			pglog.Warn("array element has invalid length", map[string]any{"index": i, "length": length})
			break
		}
		out = append(out, string(ptr[:length]))
		ptr = ptr[length:]
	}
	return out
}

// DecodeWTextArray reads a one-dimensional ARRAY<WTEXT> column: wire
// identical to ARRAY<TEXT>, converted element-wise to UTF-16. On a
// conversion failure, the error is logged and the remaining elements are
// abandoned rather than substituted one at a time, since partial recovery
// would silently reorder the caller-visible array length.
func DecodeWTextArray(h ResultHandle, row, col int) ([][]uint16, error) {
	strs := DecodeTextArray(h, row, col)
	out := make([][]uint16, 0, len(strs))
	for i, s := range strs {
		units, err := wtext.FromUTF8(s)
		if err != nil {
			if pgwireconfig.StrictWText() {
				return out, errors.Wrap(err, "sql: utf-8 to utf-16 conversion failed for WTEXT array element")
			}
			pglog.Warn("error in array code conversion from utf8 in SQL result", map[string]any{"index": i, "error": err.Error()})
			return out, nil
		}
		out = append(out, units)
	}
	return out, nil
}
