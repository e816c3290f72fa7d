package result

import "github.com/sadyrov/pgwirecodec/pgtype"

// Column binds one schema slot to its decoder and verifier. Building a
// schema from typed constructors (BoolColumn, TextColumn, ...) keeps the
// static type association at the call site even though Set stores the
// schema as a homogeneous []Column.
type Column struct {
	Kind   pgtype.Kind
	Decode func(h ResultHandle, row, col int) (any, error)
	Verify func(d pgtype.ColumnDescriptor) bool
}

func verifierFor(kind pgtype.Kind) func(pgtype.ColumnDescriptor) bool {
	return func(d pgtype.ColumnDescriptor) bool { return pgtype.Verify(kind, d) }
}

func noErr[T any](f func(h ResultHandle, row, col int) T) func(ResultHandle, int, int) (any, error) {
	return func(h ResultHandle, row, col int) (any, error) { return f(h, row, col), nil }
}

func withErr[T any](f func(h ResultHandle, row, col int) (T, error)) func(ResultHandle, int, int) (any, error) {
	return func(h ResultHandle, row, col int) (any, error) {
		v, err := f(h, row, col)
		return v, err
	}
}

// BoolColumn describes a BOOL schema slot.
func BoolColumn() Column {
	return Column{Kind: pgtype.KindBool, Decode: noErr(DecodeBool), Verify: verifierFor(pgtype.KindBool)}
}

// SmallintColumn describes a SMALLINT schema slot.
func SmallintColumn() Column {
	return Column{Kind: pgtype.KindSmallint, Decode: noErr(DecodeSmallint), Verify: verifierFor(pgtype.KindSmallint)}
}

// IntegerColumn describes an INTEGER schema slot.
func IntegerColumn() Column {
	return Column{Kind: pgtype.KindInteger, Decode: noErr(DecodeInteger), Verify: verifierFor(pgtype.KindInteger)}
}

// BigintColumn describes a BIGINT schema slot.
func BigintColumn() Column {
	return Column{Kind: pgtype.KindBigint, Decode: noErr(DecodeBigint), Verify: verifierFor(pgtype.KindBigint)}
}

// RealColumn describes a REAL schema slot.
func RealColumn() Column {
	return Column{Kind: pgtype.KindReal, Decode: noErr(DecodeReal), Verify: verifierFor(pgtype.KindReal)}
}

// DoubleColumn describes a DOUBLE schema slot.
func DoubleColumn() Column {
	return Column{Kind: pgtype.KindDouble, Decode: noErr(DecodeDouble), Verify: verifierFor(pgtype.KindDouble)}
}

// TextColumn describes a TEXT schema slot.
func TextColumn() Column {
	return Column{Kind: pgtype.KindText, Decode: noErr(DecodeText), Verify: verifierFor(pgtype.KindText)}
}

// WTextColumn describes a WTEXT schema slot.
func WTextColumn() Column {
	return Column{Kind: pgtype.KindWText, Decode: withErr(DecodeWText), Verify: verifierFor(pgtype.KindWText)}
}

// ByteaColumn describes a BYTEA schema slot.
func ByteaColumn() Column {
	return Column{Kind: pgtype.KindBytea, Decode: noErr(DecodeBytea), Verify: verifierFor(pgtype.KindBytea)}
}

// ByteArrayColumn describes a decode-only ARRAY<byte> schema slot, an alias
// of BYTEA on the wire.
func ByteArrayColumn() Column {
	return Column{Kind: pgtype.KindByteArray, Decode: noErr(DecodeByteArray), Verify: verifierFor(pgtype.KindByteArray)}
}

// TimestamptzColumn describes a TIMESTAMPTZ schema slot.
func TimestamptzColumn() Column {
	return Column{Kind: pgtype.KindTimestamptz, Decode: noErr(DecodeTimestamptz), Verify: verifierFor(pgtype.KindTimestamptz)}
}

// DateColumn describes a DATE schema slot.
func DateColumn() Column {
	return Column{Kind: pgtype.KindDate, Decode: noErr(DecodeDate), Verify: verifierFor(pgtype.KindDate)}
}

// InetColumn describes an INET schema slot.
func InetColumn() Column {
	return Column{Kind: pgtype.KindInet, Decode: noErr(DecodeInet), Verify: verifierFor(pgtype.KindInet)}
}

// TextArrayColumn describes an ARRAY<TEXT> schema slot.
func TextArrayColumn() Column {
	return Column{Kind: pgtype.KindTextArray, Decode: noErr(DecodeTextArray), Verify: verifierFor(pgtype.KindTextArray)}
}

// WTextArrayColumn describes an ARRAY<WTEXT> schema slot.
func WTextArrayColumn() Column {
	return Column{Kind: pgtype.KindWTextArray, Decode: withErr(DecodeWTextArray), Verify: verifierFor(pgtype.KindWTextArray)}
}

// NumericArrayColumn describes an ARRAY<SMALLINT|INTEGER|BIGINT|REAL|
// DOUBLE> schema slot, parameterized the same way param.NumericArray is.
func NumericArrayColumn[T Numeric]() Column {
	kind := numericArrayKindOf[T]()
	return Column{
		Kind:   kind,
		Decode: noErr(func(h ResultHandle, row, col int) []T { return DecodeNumericArray[T](h, row, col) }),
		Verify: verifierFor(kind),
	}
}

func numericArrayKindOf[T Numeric]() pgtype.Kind {
	var zero T
	switch any(zero).(type) {
	case int16:
		return pgtype.KindSmallintArray
	case int32:
		return pgtype.KindIntegerArray
	case int64:
		return pgtype.KindBigintArray
	case float32:
		return pgtype.KindRealArray
	case float64:
		return pgtype.KindDoubleArray
	}
	panic("result: unsupported numeric array element type")
}
