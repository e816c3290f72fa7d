package result

// fakeHandle is a minimal in-memory ResultHandle for tests: rows is indexed
// [row][col], oids/sizes describe the declared schema the handle reports.
type fakeHandle struct {
	rows    [][][]byte
	nulls   [][]bool
	oids    []uint32
	sizes   []int32
	status  int
	cmdTup  string
	errMsg  string
	cleared bool
}

func (h *fakeHandle) GetValue(row, col int) []byte { return h.rows[row][col] }
func (h *fakeHandle) GetLength(row, col int) int   { return len(h.rows[row][col]) }
func (h *fakeHandle) GetIsNull(row, col int) bool {
	if h.nulls == nil {
		return false
	}
	return h.nulls[row][col]
}
func (h *fakeHandle) FieldOID(col int) uint32  { return h.oids[col] }
func (h *fakeHandle) FieldSize(col int) int32  { return h.sizes[col] }
func (h *fakeHandle) NTuples() int             { return len(h.rows) }
func (h *fakeHandle) NFields() int             { return len(h.oids) }
func (h *fakeHandle) ResultStatus() int        { return h.status }
func (h *fakeHandle) CmdTuples() string        { return h.cmdTup }
func (h *fakeHandle) ErrorMessage() string     { return h.errMsg }
func (h *fakeHandle) Clear()                   { h.cleared = true }
