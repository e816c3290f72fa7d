package param

// Set is a heterogeneous tuple of Params: it owns the parameters and the
// four parallel arrays (oids, raws, sizes, formats) a Bind message
// consumes, plus a per-column null override independent of any Param's own
// encoding.
type Set struct {
	params  []Param
	oids    []uint32
	formats []int16
	raws    [][]byte
	sizes   []int32
	nulls   []bool
}

// NewSet constructs a Set over params. oids and formats are computed once,
// here, from each Param's OID(); formats is always all-1s since this codec
// only speaks the binary wire format.
func NewSet(params ...Param) *Set {
	s := &Set{
		params:  params,
		oids:    make([]uint32, len(params)),
		formats: make([]int16, len(params)),
		raws:    make([][]byte, len(params)),
		sizes:   make([]int32, len(params)),
		nulls:   make([]bool, len(params)),
	}
	for i, p := range params {
		s.oids[i] = p.OID()
		s.formats[i] = 1
	}
	return s
}

// Build populates Raws()/Sizes() from the current state of each contained
// Param. It is idempotent and must be called again after mutating a
// parameter through its typed Set method, or after calling SetNull/
// ClearNull — any previously returned Raws() slice is invalidated at that
// point.
func (s *Set) Build() {
	for i, p := range s.params {
		s.sizes[i] = p.Size()
		if s.nulls[i] {
			s.raws[i] = nil
		} else {
			s.raws[i] = p.Data()
		}
	}
}

// OIDs returns the parameter type OIDs, one per column.
func (s *Set) OIDs() []uint32 { return s.oids }

// Raws returns the encoded parameter bytes, one per column; a nil entry
// means SQL NULL. Only valid after Build.
func (s *Set) Raws() [][]byte { return s.raws }

// Sizes returns the encoded parameter lengths, one per column. Only valid
// after Build.
func (s *Set) Sizes() []int32 { return s.sizes }

// Formats returns the wire format code for each column; always all 1s.
func (s *Set) Formats() []int16 { return s.formats }

// Size returns the number of parameters in the tuple.
func (s *Set) Size() int { return len(s.params) }

// SetNull marks column as SQL NULL. Build must be called again before the
// set is handed to the dispatch boundary.
func (s *Set) SetNull(column int) { s.nulls[column] = true }

// ClearNull un-marks column as SQL NULL.
func (s *Set) ClearNull(column int) { s.nulls[column] = false }

// IsNull reports whether column is currently marked SQL NULL.
func (s *Set) IsNull(column int) bool { return s.nulls[column] }
