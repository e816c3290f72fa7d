// Package param implements the encode half of the codec: one type per
// supported logical type, each owning its encoded on-wire buffer, plus Set,
// the heterogeneous tuple that turns a slice of them into the four parallel
// arrays a Bind message needs.
package param

// Param is satisfied by every parameter encoder. Data returns nil to mean
// "this parameter has no sensible non-null encoding" (used internally by a
// couple of zero-value constructors); Set additionally layers a per-column
// null override on top that is independent of any single Param's own idea
// of nullability.
type Param interface {
	// OID is the PostgreSQL type this parameter is bound to.
	OID() uint32
	// Data returns the encoded on-wire bytes.
	Data() []byte
	// Size returns len(Data()) as an int32, matching the width field the
	// wire protocol expects.
	Size() int32
}
