package lint_test

import (
	"testing"

	"comet/internal/comment"
	"comet/internal/diag"
	"comet/internal/lexer"
	"comet/internal/lint"
	"comet/internal/source"
	"comet/internal/token"
)

// checkRule lexes input, classifies it, and runs a single rule.
func checkRule(t *testing.T, input string, rule lint.Rule) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.txt", []byte(input))
	file := fs.Get(id)

	bag := diag.NewBag(32)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter(), Styles: lexer.DefaultStyles()})

	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	ctx := &lint.Context{
		File:     file,
		Tokens:   tokens,
		Comments: comment.ComputeTokens(file, tokens),
		Reporter: &diag.BagReporter{Bag: bag},
	}
	rule.Check(ctx)
	return bag
}

func codes(bag *diag.Bag) []diag.Code {
	out := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestHeaderOK(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme", "All rights reserved."}}
	bag := checkRule(t, "# Copyright 2026 Acme\n# All rights reserved.\n\nx = 1\n", rule)
	if bag.Len() != 0 {
		t.Errorf("expected clean file, got %v", bag.Items())
	}
}

func TestHeaderOKSlashStyle(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme"}}
	bag := checkRule(t, "// Copyright 2026 Acme\nx = 1\n", rule)
	if bag.Len() != 0 {
		t.Errorf("expected clean file, got %v", bag.Items())
	}
}

func TestHeaderAfterLeadingBlankLine(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme"}}
	bag := checkRule(t, "\n# Copyright 2026 Acme\nx = 1\n", rule)
	if bag.Len() != 0 {
		t.Errorf("blank line before header should pass, got %v", bag.Items())
	}
}

func TestHeaderMissing(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme"}}
	bag := checkRule(t, "x = 1\n", rule)
	if got := codes(bag); len(got) != 1 || got[0] != diag.LintMissingHeader {
		t.Errorf("codes = %v", got)
	}
}

func TestHeaderMismatch(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme"}}
	bag := checkRule(t, "# Copyright 2020 Other\nx = 1\n", rule)
	if got := codes(bag); len(got) != 1 || got[0] != diag.LintHeaderMismatch {
		t.Errorf("codes = %v", got)
	}
}

func TestHeaderTooShort(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"line one", "line two"}}
	bag := checkRule(t, "# line one\nx = 1\n", rule)
	if got := codes(bag); len(got) != 1 || got[0] != diag.LintHeaderMismatch {
		t.Errorf("codes = %v", got)
	}
}

func TestHeaderNotOnTop(t *testing.T) {
	rule := &lint.HeaderRule{Lines: []string{"Copyright 2026 Acme"}}
	bag := checkRule(t, "x = 1\n# Copyright 2026 Acme\n", rule)
	if got := codes(bag); len(got) != 1 || got[0] != diag.LintHeaderNotOnTop {
		t.Errorf("codes = %v", got)
	}
}

func TestHeaderEmptyConfigIsNoop(t *testing.T) {
	bag := checkRule(t, "x = 1\n", &lint.HeaderRule{})
	if bag.Len() != 0 {
		t.Errorf("expected no findings, got %v", bag.Items())
	}
}

func TestTodoRule(t *testing.T) {
	bag := checkRule(t, "# TODO: fix this\nx = 1 # FIXME later\n# fine\n", &lint.TodoRule{})
	got := codes(bag)
	if len(got) != 2 {
		t.Fatalf("codes = %v", got)
	}
	for _, c := range got {
		if c != diag.LintTodoComment {
			t.Errorf("unexpected code %v", c)
		}
	}
}

func TestTodoCustomMarkers(t *testing.T) {
	bag := checkRule(t, "# HACK around the bug\n# TODO ignored\n", &lint.TodoRule{Markers: []string{"HACK"}})
	if bag.Len() != 1 {
		t.Errorf("expected one finding, got %v", bag.Items())
	}
}

func TestTrailingRule(t *testing.T) {
	bag := checkRule(t, "x = 1 # trailing\n# own line\n", &lint.TrailingRule{})
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LintTrailingComment {
		t.Fatalf("items = %v", items)
	}
	if items[0].Primary.Start != 6 {
		t.Errorf("span = %v, want the trailing comment", items[0].Primary)
	}
}

func TestRegistry(t *testing.T) {
	reg := lint.DefaultRegistry([]string{"hdr"}, nil)

	names := reg.Names()
	want := []string{"header", "todo", "trailing"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	rules, unknown := reg.Select([]string{"todo", "nope"})
	if len(rules) != 1 || rules[0].Name() != "todo" {
		t.Errorf("Select rules = %v", rules)
	}
	if len(unknown) != 1 || unknown[0] != "nope" {
		t.Errorf("Select unknown = %v", unknown)
	}
}
