package table

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDropsDuplicateColumns(t *testing.T) {
	tab := New("id", "name", "id", "dept", "name")
	want := []string{"id", "name", "dept"}
	if len(tab.Columns) != len(want) {
		t.Fatalf("got %v columns, want %v", tab.Columns, want)
	}
	for i, c := range want {
		if tab.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, tab.Columns[i], c)
		}
	}
}

func TestValueFallsBackToMissing(t *testing.T) {
	tab := New("id", "dept")
	tab.AppendRow(Row{"id": Number(1)})
	if got := tab.Value(0, "dept"); !got.IsMissing() {
		t.Errorf("unpopulated cell = %v, want missing", got)
	}
	if got := tab.Value(0, "id").String(); got != "1" {
		t.Errorf("populated cell = %q, want %q", got, "1")
	}
}

func TestColumnIndex(t *testing.T) {
	tab := New("a", "b")
	if got := tab.ColumnIndex("b"); got != 1 {
		t.Errorf("ColumnIndex(b) = %d, want 1", got)
	}
	if got := tab.ColumnIndex("z"); got != -1 {
		t.Errorf("ColumnIndex(z) = %d, want -1", got)
	}
}

func TestWriteCSV(t *testing.T) {
	tab := New("id", "name", "dept")
	tab.AppendRow(Row{"id": Number(1), "name": String("Alice"), "dept": String("Eng")})
	tab.AppendRow(Row{"id": Number(2), "name": String("Bob")})
	tab.AppendRow(Row{"id": Number(3), "name": String("Cara, Jr."), "dept": String("Ops")})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "id,name,dept\n" +
		"1,Alice,Eng\n" +
		"2,Bob,\n" +
		"3,\"Cara, Jr.\",Ops\n"
	if buf.String() != want {
		t.Errorf("WriteCSV output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteCSVLargeIntegersStayPlain(t *testing.T) {
	tab := New("id", "name")
	tab.AppendRow(Row{"id": Number(1000000), "name": String("Alice")})
	tab.AppendRow(Row{"id": Number(123456789012), "name": String("Bob")})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "id,name\n1000000,Alice\n123456789012,Bob\n"
	if buf.String() != want {
		t.Errorf("WriteCSV output:\n%q\nwant:\n%q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "e+") {
		t.Errorf("numeric cells rendered in scientific notation: %q", buf.String())
	}
}

func TestWriteCSVEmptyTable(t *testing.T) {
	tab := New("a", "b")
	var buf bytes.Buffer
	if err := WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "a,b\n" {
		t.Errorf("WriteCSV output = %q, want header only", buf.String())
	}
}
