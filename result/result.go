// Package result implements the decode half of the codec: free functions
// that pull typed values out of a server result's raw column bytes, plus
// Set, the heterogeneous tuple that binds a static column schema to an
// opaque result handle.
package result

// ResultHandle is the opaque boundary to a server query result, modeled on
// libpq's PQgetvalue/PQgetlength/PQgetisnull/PQftype/PQfsize/PQntuples/
// PQnfields/PQresultStatus/PQcmdTuples/PQresultErrorMessage/PQclear family.
// A connection engine owns the concrete implementation; result.Set owns the
// handle once bound.
type ResultHandle interface {
	GetValue(row, col int) []byte
	GetLength(row, col int) int
	GetIsNull(row, col int) bool
	FieldOID(col int) uint32
	FieldSize(col int) int32
	NTuples() int
	NFields() int
	ResultStatus() int
	CmdTuples() string
	ErrorMessage() string
	Clear()
}

// Status is the decoded form of ResultHandle.ResultStatus().
type Status int

const (
	NoResult Status = iota
	EmptyQuery
	CommandOK
	RowsOK
	CopyOut
	CopyIn
	BadResponse
	NonfatalError
	CopyBoth
	SingleTuple
	FatalError
)

// statusCodes mirrors libpq's PGRES_* ordering, which is what
// ResultHandle.ResultStatus() is expected to return.
var statusCodes = map[int]Status{
	0:  EmptyQuery,
	1:  CommandOK,
	2:  RowsOK,
	3:  CopyOut,
	4:  CopyIn,
	5:  BadResponse,
	6:  NonfatalError,
	7:  FatalError,
	8:  CopyBoth,
	9:  SingleTuple,
}

// statusOf maps a handle's raw status code to Status. An unrecognized code
// maps to FatalError.
func statusOf(code int) Status {
	if s, ok := statusCodes[code]; ok {
		return s
	}
	return FatalError
}
