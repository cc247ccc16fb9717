package driver

import (
	"path/filepath"
	"testing"

	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/source"
)

func loadOne(t *testing.T, content string) (*source.FileSet, *source.File) {
	t.Helper()
	path := writeTempFile(t, "a.cfg", content)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return fs, fs.Get(fileID)
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	_, file := loadOne(t, "# TODO later\n")

	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LintTodoComment,
		Message:  "comment contains TODO",
		Primary:  source.Span{File: file.ID, Start: 0, End: 12},
		Notes: []diag.Note{
			{Span: source.Span{File: file.ID, Start: 2, End: 6}, Msg: "marker here"},
		},
	})
	if err := cache.Put(file, config.Default(), bag); err != nil {
		t.Fatalf("Put: %v", err)
	}

	payload, ok := cache.Get(file, config.Default())
	if !ok {
		t.Fatal("expected cache hit")
	}

	replayed := diag.NewBag(0)
	payload.replay(file.ID, replayed)
	if replayed.Len() != 1 {
		t.Fatalf("replayed %d diagnostics, want 1", replayed.Len())
	}
	got := replayed.Items()[0]
	if got.Code != diag.LintTodoComment || got.Severity != diag.SevWarning {
		t.Fatalf("replayed diagnostic = %+v", got)
	}
	if got.Primary.Start != 0 || got.Primary.End != 12 {
		t.Fatalf("replayed span = %v", got.Primary)
	}
	if len(got.Notes) != 1 || got.Notes[0].Msg != "marker here" {
		t.Fatalf("replayed notes = %v", got.Notes)
	}
}

func TestCacheMissForDifferentConfig(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	_, file := loadOne(t, "# TODO later\n")

	cfg := config.Default()
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LintTodoComment,
		Message:  "comment contains TODO",
		Primary:  source.Span{File: file.ID, Start: 0, End: 12},
	})
	if err := cache.Put(file, cfg, bag); err != nil {
		t.Fatalf("Put: %v", err)
	}

	changed := cfg
	changed.Lint.Rules = nil
	if _, ok := cache.Get(file, changed); ok {
		t.Fatal("expected miss after rule set change")
	}

	changed = cfg
	changed.Lint.Todo.Markers = []string{"HACK"}
	if _, ok := cache.Get(file, changed); ok {
		t.Fatal("expected miss after marker change")
	}

	changed = cfg
	changed.Lexer.BlockComments = false
	if _, ok := cache.Get(file, changed); ok {
		t.Fatal("expected miss after comment style change")
	}

	if _, ok := cache.Get(file, cfg); !ok {
		t.Fatal("expected hit for the original configuration")
	}
}

func TestCacheMissForDifferentContent(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	_, first := loadOne(t, "x = 1\n")
	if err := cache.Put(first, config.Default(), diag.NewBag(0)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	_, second := loadOne(t, "x = 2\n")
	if _, ok := cache.Get(second, config.Default()); ok {
		t.Fatal("expected miss for different content")
	}
}
