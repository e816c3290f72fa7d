package result

import (
	"time"

	"github.com/sadyrov/pgwirecodec/internal/wire"
)

var pgEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeTimestamptz reads a signed 64-bit microsecond offset from pgEpoch.
func DecodeTimestamptz(h ResultHandle, row, col int) time.Time {
	micros := wire.DecodeInt64(h.GetValue(row, col))
	return pgEpoch.Add(time.Duration(micros) * time.Microsecond)
}

// DecodeDate reads a signed 32-bit day offset from pgEpoch's calendar date.
func DecodeDate(h ResultHandle, row, col int) time.Time {
	days := wire.DecodeInt32(h.GetValue(row, col))
	return pgEpoch.AddDate(0, 0, int(days))
}
