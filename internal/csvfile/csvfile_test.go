package csvfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/scientometry/dataproc/internal/table"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeFile(t, "Year,Cites,Source\n2000,2,Biologia\n2001,3,Nature\n")

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"Year", "Cites", "Source"}; !reflect.DeepEqual(got.Columns(), want) {
		t.Fatalf("expected columns %v, got %v", want, got.Columns())
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if got.Cell(1, "Source") != "Nature" {
		t.Errorf("expected Nature, got %q", got.Cell(1, "Source"))
	}
}

func TestRead_StripsBOM(t *testing.T) {
	path := writeFile(t, "\ufeffYear,Cites\n2000,2\n")

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasColumn("Year") {
		t.Fatalf("BOM not stripped from header: %v", got.Columns())
	}
}

func TestRead_Quoting(t *testing.T) {
	path := writeFile(t, "Source,Year\n\"Ecology, Letters\",2000\n")

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cell(0, "Source") != "Ecology, Letters" {
		t.Errorf("expected quoted comma preserved, got %q", got.Cell(0, "Source"))
	}
}

func TestRead_RaggedRecord(t *testing.T) {
	path := writeFile(t, "Year,Cites\n2000\n")

	if _, err := Read(path); err == nil {
		t.Fatal("expected error for ragged record")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWrite(t *testing.T) {
	tbl, err := table.New([]string{"Year", "Scopus"}, []table.Row{
		{"Year": "2000", "Scopus": "2"},
		{"Year": "2001"},
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(tbl, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Year,Scopus\n2000,2\n2001,\n"; string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}
