package param

import (
	"github.com/pkg/errors"

	"github.com/sadyrov/pgwirecodec/internal/wtext"
	"github.com/sadyrov/pgwirecodec/pglog"
	"github.com/sadyrov/pgwirecodec/pgtype"
	"github.com/sadyrov/pgwirecodec/pgwireconfig"
)

// WText is the WTEXT parameter encoder. On the wire it is indistinguishable
// from TEXT: the UTF-16 input is converted to UTF-8 up front and stored the
// same way Text stores its bytes.
type WText struct {
	data []byte
}

// NewWText returns a WText encoding v. A conversion failure is handled per
// pgwireconfig.Config.StrictWText: logged-and-emptied by default, or
// returned as err when strict mode is enabled.
func NewWText(v []uint16) (*WText, error) {
	w := &WText{}
	err := w.Set(v)
	return w, err
}

// Set re-encodes the parameter from v.
func (w *WText) Set(v []uint16) error {
	s, err := wtext.ToUTF8(v)
	if err != nil {
		if pgwireconfig.StrictWText() {
			w.data = nil
			return errors.Wrap(err, "sql: utf-16 to utf-8 conversion failed for WTEXT parameter")
		}
		pglog.Warn("error in code conversion to utf8 in SQL parameter", map[string]any{"error": err.Error()})
		w.data = nil
		return nil
	}
	w.data = []byte(s)
	return nil
}

func (w *WText) OID() uint32  { return pgtype.OIDOf[pgtype.KindWText] }
func (w *WText) Data() []byte { return w.data }
func (w *WText) Size() int32  { return int32(len(w.data)) }
