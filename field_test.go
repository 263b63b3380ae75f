package cetane

import "testing"

func TestNewFieldSerialImpliesIdentity(t *testing.T) {
	f := NewField("id", Serial)
	if f.Nullable {
		t.Fatalf("Serial field must not be nullable")
	}
	if f.PrimaryKey {
		t.Fatalf("Serial must not imply primary key; it only implies not-null")
	}
}

func TestNewFieldBigSerialImpliesIdentity(t *testing.T) {
	f := NewField("id", BigSerial)
	if f.Nullable {
		t.Fatalf("BigSerial field must be not-null, got %+v", f)
	}
	if f.PrimaryKey {
		t.Fatalf("BigSerial must not imply primary key; it only implies not-null, got %+v", f)
	}
}

func TestNewFieldSerialPrimaryKeyRequiresExplicitFlag(t *testing.T) {
	f := NewField("external_seq", BigSerial)
	if f.PrimaryKey {
		t.Fatalf("a second identity column in a table must not default to primary key")
	}
	f.PrimaryKeyFlag()
	if !f.PrimaryKey {
		t.Fatalf("PrimaryKeyFlag must set PrimaryKey")
	}
}

func TestFieldNullIgnoredForIdentity(t *testing.T) {
	f := NewField("id", Serial).Null()
	if f.Nullable {
		t.Fatalf("Null() must not override the Serial not-null invariant")
	}
}

func TestFieldBuilderChaining(t *testing.T) {
	f := NewField("author_id", BigInt).NotNull().References("users", "id").OnDeleteAction(Cascade)
	if f.Nullable {
		t.Fatalf("expected NotNull to stick")
	}
	if f.FK == nil || f.FK.Table != "users" || f.FK.Column != "id" {
		t.Fatalf("expected FK to users(id), got %+v", f.FK)
	}
	if f.FK.OnDelete != Cascade {
		t.Fatalf("expected OnDelete=Cascade, got %v", f.FK.OnDelete)
	}
}

func TestFieldChangesIsEmpty(t *testing.T) {
	c := NewFieldChanges()
	if !c.IsEmpty() {
		t.Fatalf("fresh FieldChanges must be empty")
	}
	c.SetNullable(true)
	if c.IsEmpty() {
		t.Fatalf("FieldChanges with a setter called must not be empty")
	}
}

func TestCloneFieldsIsDeep(t *testing.T) {
	orig := []Field{*NewField("id", Integer).References("x", "y")}
	cp := cloneFields(orig)
	cp[0].FK.Table = "mutated"
	if orig[0].FK.Table == "mutated" {
		t.Fatalf("cloneFields must deep-copy the FK pointer")
	}
}
