package tabular

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeCSV(t *testing.T) {
	csvData := " name ,HTML_SCORE,css_score\n" +
		"Ann Lee,85,70.0\n" +
		",,\n" +
		"Bo Chen,notanumber,\n"

	table, err := Decode("roster.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	wantColumns := []string{"NAME", "HTML_SCORE", "CSS_SCORE"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("columns=%v, want %v", table.Columns, wantColumns)
	}
	for i, c := range wantColumns {
		if table.Columns[i] != c {
			t.Fatalf("columns=%v, want %v", table.Columns, wantColumns)
		}
	}
	if !table.HasColumn("name") || !table.HasColumn(" HTML_score ") {
		t.Fatal("HasColumn must be case- and whitespace-insensitive")
	}

	// The all-empty row is dropped.
	if len(table.Rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(table.Rows))
	}
	if got := table.Rows[0].Get("NAME"); got != "Ann Lee" {
		t.Fatalf("name=%q, want Ann Lee", got)
	}
	if got := table.Rows[0].GetInt("HTML_SCORE", 0); got != 85 {
		t.Fatalf("html score=%d, want 85", got)
	}
	// Float-formatted cells truncate to int.
	if got := table.Rows[0].GetInt("CSS_SCORE", 0); got != 70 {
		t.Fatalf("css score=%d, want 70", got)
	}
	// Non-numeric and empty cells fall back to the default.
	if got := table.Rows[1].GetInt("HTML_SCORE", -1); got != -1 {
		t.Fatalf("fallback=%d, want -1", got)
	}
	if got := table.Rows[1].GetInt("CSS_SCORE", 5); got != 5 {
		t.Fatalf("fallback=%d, want 5", got)
	}
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	cases := []string{"roster.txt", "roster.pdf", "roster"}
	for _, filename := range cases {
		t.Run(filename, func(t *testing.T) {
			if _, err := Decode(filename, strings.NewReader("NAME\nAnn")); !errors.Is(err, ErrUnsupportedType) {
				t.Fatalf("err=%v, want ErrUnsupportedType", err)
			}
		})
	}
}

func TestDecodeCSVHeaderOnly(t *testing.T) {
	table, err := Decode("roster.csv", strings.NewReader("NAME,ROLE_ID\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("rows=%d, want 0", len(table.Rows))
	}
	if !table.HasColumn("NAME") {
		t.Fatal("header columns must survive an empty body")
	}
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	// Rows shorter or longer than the header must not panic; extra cells
	// are ignored.
	csvData := "NAME,HTML_SCORE\nAnn Lee\nBo Chen,50,extra\n"
	table, err := Decode("roster.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(table.Rows))
	}
	if got := table.Rows[0].GetInt("HTML_SCORE", 0); got != 0 {
		t.Fatalf("missing cell=%d, want default 0", got)
	}
	if got := table.Rows[1].GetInt("HTML_SCORE", 0); got != 50 {
		t.Fatalf("score=%d, want 50", got)
	}
}
