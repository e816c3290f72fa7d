package result

import "strconv"

// Set binds a ResultHandle to a static column schema. It has two states:
// empty (handle nil) and bound (handle non-nil, owned). Binding happens
// once at construction; Close releases the handle and returns Set to the
// empty state.
type Set struct {
	handle ResultHandle
	schema []Column
}

// NewSet binds handle to schema. A nil handle produces an empty Set whose
// Status is NoResult.
func NewSet(handle ResultHandle, schema ...Column) *Set {
	return &Set{handle: handle, schema: schema}
}

// Status maps the handle's raw status code into the codec's Status enum.
// NoResult iff the handle is nil.
func (s *Set) Status() Status {
	if s.handle == nil {
		return NoResult
	}
	return statusOf(s.handle.ResultStatus())
}

// Rows returns the number of result rows, or 0 if empty.
func (s *Set) Rows() int {
	if s.handle == nil {
		return 0
	}
	return s.handle.NTuples()
}

// Columns returns the number of result columns, or 0 if empty.
func (s *Set) Columns() int {
	if s.handle == nil {
		return 0
	}
	return s.handle.NFields()
}

// AffectedRows parses the handle's command-tuples string. A non-numeric or
// empty string (e.g. for a SELECT, where CmdTuples is the row count anyway)
// yields 0.
func (s *Set) AffectedRows() int {
	if s.handle == nil {
		return 0
	}
	n, err := strconv.Atoi(s.handle.CmdTuples())
	if err != nil {
		return 0
	}
	return n
}

// Null reports whether the cell at (row, col) is SQL NULL.
func (s *Set) Null(row, col int) bool {
	if s.handle == nil {
		return true
	}
	return s.handle.GetIsNull(row, col)
}

// ErrorMessage returns the handle's error text, or "" if empty or
// unset.
func (s *Set) ErrorMessage() string {
	if s.handle == nil {
		return ""
	}
	return s.handle.ErrorMessage()
}

// Row decodes every schema column of row i, in schema order. A NULL cell
// decodes to a nil interface value rather than invoking the column's
// Decode func. The first decode error, if any, is returned immediately
// with a partially populated slice.
func (s *Set) Row(i int) ([]any, error) {
	out := make([]any, len(s.schema))
	for col, c := range s.schema {
		if s.Null(i, col) {
			continue
		}
		v, err := c.Decode(s.handle, i, col)
		if err != nil {
			return out, err
		}
		out[col] = v
	}
	return out, nil
}

// Verify reports the zero-based index of the first schema column whose
// runtime OID/size disagrees with its declared Kind, or -1 if every column
// verifies (including an empty schema over a result with no columns) or the
// Set is empty. A column count mismatch with the result reports 0.
func (s *Set) Verify() int {
	if s.handle == nil {
		return -1
	}
	if s.handle.NFields() != len(s.schema) {
		return 0
	}
	for col, c := range s.schema {
		if !c.Verify(columnDescriptor{handle: s.handle, col: col}) {
			return col
		}
	}
	return -1
}

// Close releases the bound handle and returns Set to the empty state.
func (s *Set) Close() {
	if s.handle != nil {
		s.handle.Clear()
	}
	s.handle = nil
}

type columnDescriptor struct {
	handle ResultHandle
	col    int
}

func (d columnDescriptor) OID() uint32  { return d.handle.FieldOID(d.col) }
func (d columnDescriptor) Size() int32  { return d.handle.FieldSize(d.col) }
