package cetane

// MySQLBackend is the MySQL dialect descriptor: backtick-quoted
// identifiers, no transactional DDL (MySQL commits DDL implicitly), no
// partial indexes.
type MySQLBackend struct{}

func (MySQLBackend) Name() Name { return NameMySQL }

func (MySQLBackend) Quote(identifier string) string {
	return quoteWith(identifier, '`', '`')
}

func (MySQLBackend) Capabilities() Capabilities {
	return Capabilities{
		TransactionalDDL: false,
		PartialIndex:     false,
		DropColumn:       true,
		AlterColumnType:  true,
		RenameColumn:     true,
	}
}

func (MySQLBackend) MapType(t FieldType) string {
	switch t.Kind {
	case KindSerial:
		return "INT AUTO_INCREMENT"
	case KindBigSerial:
		return "BIGINT AUTO_INCREMENT"
	case KindInteger:
		return "INT"
	case KindBigInt:
		return "BIGINT"
	case KindSmallInt:
		return "SMALLINT"
	case KindText:
		return "TEXT"
	case KindVarChar:
		return varcharSQL(t.VarCharLen)
	case KindBoolean:
		return "TINYINT(1)"
	case KindTimestamp:
		return "DATETIME"
	case KindTimestampTz:
		return "TIMESTAMP"
	case KindDate:
		return "DATE"
	case KindTime:
		return "TIME"
	case KindUUID:
		return "CHAR(36)"
	case KindJSON:
		return "JSON"
	case KindJSONB:
		return "JSON"
	case KindBinary:
		return "BLOB"
	case KindReal:
		return "FLOAT"
	case KindDoublePrecision:
		return "DOUBLE"
	case KindDecimal:
		return decimalSQL(t.DecimalPrecision, t.DecimalScale)
	default:
		return "TEXT"
	}
}
