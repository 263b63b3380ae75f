package cetane

// SQLiteBackend is the SQLite dialect descriptor. SQLite lacks a native
// ALTER COLUMN TYPE, so AlterColumnType is false here and the generator
// falls back to the table-recreation technique (see genctx.go).
type SQLiteBackend struct{}

func (SQLiteBackend) Name() Name { return NameSQLite }

func (SQLiteBackend) Quote(identifier string) string {
	return quoteWith(identifier, '"', '"')
}

func (SQLiteBackend) Capabilities() Capabilities {
	return Capabilities{
		TransactionalDDL: true,
		PartialIndex:     false,
		DropColumn:       true,
		AlterColumnType:  false,
		RenameColumn:     true,
	}
}

func (SQLiteBackend) MapType(t FieldType) string {
	switch t.Kind {
	case KindSerial, KindBigSerial, KindInteger, KindBigInt, KindSmallInt:
		return "INTEGER"
	case KindText:
		return "TEXT"
	case KindVarChar:
		return varcharSQL(t.VarCharLen)
	case KindBoolean:
		return "BOOLEAN"
	case KindTimestamp, KindTimestampTz:
		return "DATETIME"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindUUID:
		return "TEXT"
	case KindJSON, KindJSONB:
		return "TEXT"
	case KindBinary:
		return "BLOB"
	case KindReal, KindDoublePrecision:
		return "REAL"
	case KindDecimal:
		return decimalSQL(t.DecimalPrecision, t.DecimalScale)
	default:
		return "TEXT"
	}
}
