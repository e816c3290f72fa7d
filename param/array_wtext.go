package param

import (
	"github.com/pkg/errors"

	"github.com/sadyrov/pgwirecodec/internal/wtext"
	"github.com/sadyrov/pgwirecodec/pglog"
	"github.com/sadyrov/pgwirecodec/pgwireconfig"
)

// WTextArray is the ARRAY<WTEXT> parameter encoder. Every element is
// converted UTF-16->UTF-8 up front; thereafter the wire layout is identical
// to TextArray.
type WTextArray struct {
	TextArray
}

// NewWTextArray returns a WTextArray encoding v.
func NewWTextArray(v [][]uint16) (*WTextArray, error) {
	a := &WTextArray{}
	err := a.Set(v)
	return a, err
}

// Set re-encodes the parameter from v, converting each element to UTF-8.
// On the first element that fails to convert: in strict mode returns an
// error immediately; otherwise logs a warning and abandons the remaining
// elements, encoding only what converted successfully so far.
func (a *WTextArray) Set(v [][]uint16) error {
	strings := make([]string, 0, len(v))
	for i, units := range v {
		s, err := wtext.ToUTF8(units)
		if err != nil {
			if pgwireconfig.StrictWText() {
				return errors.Wrap(err, "sql: utf-16 to utf-8 conversion failed for WTEXT array element")
			}
			pglog.Warn("error in array code conversion to utf8 in SQL parameter", map[string]any{"index": i, "error": err.Error()})
			break
		}
		strings = append(strings, s)
	}
	a.TextArray.Set(strings)
	return nil
}

// At returns the i-th element converted back to UTF-16.
func (a *WTextArray) At(i int) ([]uint16, error) {
	units, err := wtext.FromUTF8(a.TextArray.At(i))
	if err != nil {
		pglog.Warn("error in array code conversion from utf8 in SQL parameter", map[string]any{"index": i, "error": err.Error()})
		return nil, err
	}
	return units, nil
}
