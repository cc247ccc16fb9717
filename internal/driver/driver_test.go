package driver

import (
	"os"
	"path/filepath"
	"testing"

	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/lexer"
	"comet/internal/token"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeProducesEOFTerminatedStream(t *testing.T) {
	path := writeTempFile(t, "a.cfg", "x = 1 # note\n")

	res, err := Tokenize(path, lexer.DefaultStyles(), 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("expected tokens")
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "missing.cfg"), lexer.DefaultStyles(), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestClassifySeparatesOwnLineComments(t *testing.T) {
	path := writeTempFile(t, "a.cfg", "x = 1 # trailing\n# own line\n")

	res, err := Classify(path, lexer.DefaultStyles(), 0)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	comments := res.Comments.Comments()
	ownLine := res.Comments.OwnLine()
	if len(comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(comments))
	}
	if len(ownLine) != 1 {
		t.Fatalf("own-line comments = %d, want 1", len(ownLine))
	}
	if got := ownLine[0].Text; got != "# own line" {
		t.Fatalf("own-line comment = %q", got)
	}
}

func TestCheckReportsTodoFindings(t *testing.T) {
	path := writeTempFile(t, "a.cfg", "# TODO: fix this\nx = 1\n")

	res, err := Check(path, config.Default(), 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Bag.HasWarnings() {
		t.Fatal("expected a todo warning")
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.LintTodoComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("no LintTodoComment in %v", res.Bag.Items())
	}
	if res.Timing == nil || len(res.Timing.Phases) == 0 {
		t.Fatal("expected timing phases")
	}
}

func TestCheckUnknownRule(t *testing.T) {
	path := writeTempFile(t, "a.cfg", "x = 1\n")
	cfg := config.Default()
	cfg.Lint.Rules = []string{"nonsense"}

	res, err := Check(path, cfg, 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected config error for unknown rule")
	}
	if res.Bag.Items()[0].Code != diag.IOConfigError {
		t.Fatalf("code = %v, want IOConfigError", res.Bag.Items()[0].Code)
	}
}
