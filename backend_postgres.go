package cetane

// PostgresBackend is the PostgreSQL dialect descriptor: double-quoted
// identifiers, full capability set including partial indexes and
// transactional DDL.
type PostgresBackend struct{}

func (PostgresBackend) Name() Name { return NamePostgres }

func (PostgresBackend) Quote(identifier string) string {
	return quoteWith(identifier, '"', '"')
}

func (PostgresBackend) Capabilities() Capabilities {
	return Capabilities{
		TransactionalDDL: true,
		PartialIndex:     true,
		DropColumn:       true,
		AlterColumnType:  true,
		RenameColumn:     true,
	}
}

func (PostgresBackend) MapType(t FieldType) string {
	switch t.Kind {
	case KindSerial:
		return "SERIAL"
	case KindBigSerial:
		return "BIGSERIAL"
	case KindInteger:
		return "INTEGER"
	case KindBigInt:
		return "BIGINT"
	case KindSmallInt:
		return "SMALLINT"
	case KindText:
		return "TEXT"
	case KindVarChar:
		return varcharSQL(t.VarCharLen)
	case KindBoolean:
		return "BOOLEAN"
	case KindTimestamp:
		return "TIMESTAMP"
	case KindTimestampTz:
		return "TIMESTAMPTZ"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindUUID:
		return "UUID"
	case KindJSON:
		return "JSON"
	case KindJSONB:
		return "JSONB"
	case KindBinary:
		return "BYTEA"
	case KindReal:
		return "REAL"
	case KindDoublePrecision:
		return "DOUBLE PRECISION"
	case KindDecimal:
		return decimalSQL(t.DecimalPrecision, t.DecimalScale)
	default:
		return "TEXT"
	}
}
