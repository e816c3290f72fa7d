package pgtype

// ColumnDescriptor is the minimal slice of a result column's metadata that
// type verification needs: its declared OID and, for fixed-width scalars,
// its declared field size. result.Set adapts a ResultHandle's FieldOID/
// FieldSize accessors for one column to this interface.
type ColumnDescriptor interface {
	OID() uint32
	Size() int32
}

// Verify reports whether a result column's declared type matches kind. For
// fixed-width scalars both OID and size must match; for variable-width and
// array types (and for the TEXT/WTEXT pair, which share an OID) only the OID
// is checked.
func Verify(kind Kind, d ColumnDescriptor) bool {
	oid, ok := OIDOf[kind]
	if !ok || d.OID() != oid {
		return false
	}

	switch kind {
	case KindBool:
		return d.Size() == 1
	case KindSmallint:
		return d.Size() == 2
	case KindInteger, KindReal, KindDate:
		return d.Size() == 4
	case KindBigint, KindDouble, KindTimestamptz:
		return d.Size() == 8
	default:
		return true
	}
}
