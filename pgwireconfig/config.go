// Package pgwireconfig holds the small set of ambient, codec-level settings
// that do not belong to the out-of-scope connection/dispatch engine: which
// logger receives the codec's warnings, and whether WTEXT conversion
// failures should be surfaced as errors instead of silently substituted.
package pgwireconfig

import "github.com/sadyrov/pgwirecodec/pglog"

// Config is applied once, typically at process startup.
type Config struct {
	// Logger receives every warning the codec emits (malformed arrays,
	// WTEXT conversion failures). Nil installs the discard logger.
	Logger pglog.Logger

	// StrictWText, when true, makes a WTEXT conversion failure (encode or
	// decode) return an error instead of logging a warning and
	// substituting an empty value. Defaults to false.
	StrictWText bool
}

var strictWText bool

// Apply installs c as the active configuration.
func Apply(c Config) {
	pglog.SetLogger(c.Logger)
	strictWText = c.StrictWText
}

// StrictWText reports whether strict WTEXT conversion mode is active.
func StrictWText() bool {
	return strictWText
}
