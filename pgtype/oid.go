// Package pgtype is the static type catalog: for every logical type this
// codec supports, the PostgreSQL OID it is bound to, the on-wire size for
// fixed-width scalars, and the predicate used to verify a result column
// against that type.
package pgtype

// PostgreSQL OIDs for the types this codec supports. Values are the
// PostgreSQL-canonical ones found in catalog/pg_type.h.
const (
	BoolOID        uint32 = 16
	ByteaOID       uint32 = 17
	Int8OID        uint32 = 20
	Int2OID        uint32 = 21
	Int4OID        uint32 = 23
	TextOID        uint32 = 25
	Float4OID      uint32 = 700
	Float8OID      uint32 = 701
	InetOID        uint32 = 869
	Int2ArrayOID   uint32 = 1005
	Int4ArrayOID   uint32 = 1007
	TextArrayOID   uint32 = 1009
	Int8ArrayOID   uint32 = 1016
	Float4ArrayOID uint32 = 1021
	Float8ArrayOID uint32 = 1022
	DateOID        uint32 = 1082
	TimestamptzOID uint32 = 1184
)

// AFInet and AFInet6 are PostgreSQL's internal address-family tags used in
// the INET/CIDR binary wire layout. AFInet6 is numerically 3, distinct from
// the POSIX AF_INET6 constant of the same name.
const (
	AFInet  byte = 2
	AFInet6 byte = 3
)

// Kind identifies a supported logical type independently of any particular
// Go representation. Verify dispatches on it, and result.Column records it
// for each schema slot; result.Set.Verify itself reports only the index of a
// mismatched column.
type Kind int

const (
	KindBool Kind = iota
	KindSmallint
	KindInteger
	KindBigint
	KindReal
	KindDouble
	KindText
	KindWText
	KindBytea
	KindTimestamptz
	KindDate
	KindInet
	KindSmallintArray
	KindIntegerArray
	KindBigintArray
	KindRealArray
	KindDoubleArray
	KindTextArray
	KindWTextArray
	KindByteArray
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindSmallint:
		return "SMALLINT"
	case KindInteger:
		return "INTEGER"
	case KindBigint:
		return "BIGINT"
	case KindReal:
		return "REAL"
	case KindDouble:
		return "DOUBLE"
	case KindText:
		return "TEXT"
	case KindWText:
		return "WTEXT"
	case KindBytea:
		return "BYTEA"
	case KindTimestamptz:
		return "TIMESTAMPTZ"
	case KindDate:
		return "DATE"
	case KindInet:
		return "INET"
	case KindSmallintArray:
		return "ARRAY<SMALLINT>"
	case KindIntegerArray:
		return "ARRAY<INTEGER>"
	case KindBigintArray:
		return "ARRAY<BIGINT>"
	case KindRealArray:
		return "ARRAY<REAL>"
	case KindDoubleArray:
		return "ARRAY<DOUBLE>"
	case KindTextArray:
		return "ARRAY<TEXT>"
	case KindWTextArray:
		return "ARRAY<WTEXT>"
	case KindByteArray:
		return "ARRAY<byte>"
	default:
		return "UNKNOWN"
	}
}

// OIDOf is the static Kind -> OID mapping.
var OIDOf = map[Kind]uint32{
	KindBool:          BoolOID,
	KindSmallint:      Int2OID,
	KindInteger:       Int4OID,
	KindBigint:        Int8OID,
	KindReal:          Float4OID,
	KindDouble:        Float8OID,
	KindText:          TextOID,
	KindWText:         TextOID,
	KindBytea:         ByteaOID,
	KindTimestamptz:   TimestamptzOID,
	KindDate:          DateOID,
	KindInet:          InetOID,
	KindSmallintArray: Int2ArrayOID,
	KindIntegerArray:  Int4ArrayOID,
	KindBigintArray:   Int8ArrayOID,
	KindRealArray:     Float4ArrayOID,
	KindDoubleArray:   Float8ArrayOID,
	KindTextArray:     TextArrayOID,
	KindWTextArray:    TextArrayOID,
	KindByteArray:     ByteaOID,
}
