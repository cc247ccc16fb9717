package diagfmt_test

import (
	"strings"
	"testing"

	"comet/internal/diag"
	"comet/internal/diagfmt"
	"comet/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.txt", []byte("x = 1  # trailing\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LintTrailingComment,
		Message:  "trailing comment",
		Primary:  source.Span{File: id, Start: 7, End: 17},
	})

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})

	got := out.String()
	if !strings.Contains(got, "demo.txt:1:8: WARNING LNT2005: trailing comment") {
		t.Errorf("missing heading in:\n%s", got)
	}
	if !strings.Contains(got, "x = 1  # trailing") {
		t.Errorf("missing source line in:\n%s", got)
	}
	if !strings.Contains(got, "^~~~~~~~~") {
		t.Errorf("missing underline in:\n%s", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.txt", []byte("a\nb\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "bad byte",
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 2, End: 3}, Msg: "continues here"},
		},
	})

	var out strings.Builder
	diagfmt.Pretty(&out, bag, fs, diagfmt.PrettyOpts{})
	got := out.String()
	if !strings.Contains(got, "note: continues here") {
		t.Errorf("missing note in:\n%s", got)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.txt", []byte("# TODO x\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.LintTodoComment,
		Message:  "comment contains TODO",
		Primary:  source.Span{File: id, Start: 0, End: 8},
	})

	var out strings.Builder
	if err := diagfmt.JSONDiagnostics(&out, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{`"code": "LNT2004"`, `"severity": "INFO"`, `"start_line": 1`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in:\n%s", want, got)
		}
	}
}

func TestJSONDiagnosticsMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.txt", []byte("aa\n"))

	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LintTodoComment,
			Message:  "m",
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	var out strings.Builder
	if err := diagfmt.JSONDiagnostics(&out, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), `"message"`); got != 2 {
		t.Errorf("emitted %d diagnostics, want 2", got)
	}
}
