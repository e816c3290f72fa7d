package result

import (
	"github.com/pkg/errors"

	"github.com/sadyrov/pgwirecodec/internal/wtext"
	"github.com/sadyrov/pgwirecodec/pglog"
	"github.com/sadyrov/pgwirecodec/pgwireconfig"
)

// DecodeWText reads a WTEXT column (UTF-8 on the wire) and converts it to
// UTF-16 code units. On a conversion failure: by default logs a warning and
// returns an empty sequence; in strict mode returns a non-nil error.
func DecodeWText(h ResultHandle, row, col int) ([]uint16, error) {
	s := string(h.GetValue(row, col))
	units, err := wtext.FromUTF8(s)
	if err != nil {
		if pgwireconfig.StrictWText() {
			return nil, errors.Wrap(err, "sql: utf-8 to utf-16 conversion failed for WTEXT column")
		}
		pglog.Warn("error in code conversion from utf8 in SQL result", map[string]any{"error": err.Error()})
		return nil, nil
	}
	return units, nil
}
