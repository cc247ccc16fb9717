package driver

import (
	"comet/internal/comment"
	"comet/internal/config"
	"comet/internal/diag"
	"comet/internal/lexer"
	"comet/internal/lint"
	"comet/internal/observ"
	"comet/internal/source"
	"comet/internal/token"
)

type CheckResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Comments comment.Info
	Bag      *diag.Bag
	Timing   *observ.Report
}

// Check runs the configured lint rules over one file. The returned Bag is
// sorted and holds lexer diagnostics and rule findings together.
func Check(path string, cfg config.Config, maxDiagnostics int) (*CheckResult, error) {
	timer := observ.NewTimer()

	phase := timer.Begin("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	timer.End(phase, "")

	bag := diag.NewBag(maxDiagnostics)
	result := checkFile(file, cfg, bag, timer)
	result.FileSet = fs

	report := timer.Report()
	result.Timing = &report
	return result, nil
}

// checkFile is the per-file pipeline shared by Check and CheckDir:
// lex, classify, lint, sort.
func checkFile(file *source.File, cfg config.Config, bag *diag.Bag, timer *observ.Timer) *CheckResult {
	styles := stylesFromConfig(cfg)

	phase := timer.Begin("lex")
	tokens := lexFile(file, styles, bag)
	timer.End(phase, "")

	phase = timer.Begin("classify")
	info := comment.ComputeTokens(file, tokens)
	timer.End(phase, "")

	phase = timer.Begin("lint")
	runRules(file, tokens, info, cfg, bag)
	timer.End(phase, "")

	bag.Sort()
	return &CheckResult{
		File:     file,
		Tokens:   tokens,
		Comments: info,
		Bag:      bag,
	}
}

func runRules(file *source.File, tokens []token.Token, info comment.Info, cfg config.Config, bag *diag.Bag) {
	registry := lint.DefaultRegistry(cfg.Lint.Header.Lines, cfg.Lint.Todo.Markers)
	rules, unknown := registry.Select(cfg.Lint.Rules)
	for _, name := range unknown {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOConfigError,
			Message:  "unknown lint rule: " + name,
			Primary:  source.Span{File: file.ID},
		})
	}

	ctx := &lint.Context{
		File:     file,
		Tokens:   tokens,
		Comments: info,
		Reporter: &diag.BagReporter{Bag: bag},
	}
	for _, rule := range rules {
		rule.Check(ctx)
	}
}

func stylesFromConfig(cfg config.Config) lexer.Styles {
	hash, slash, block := cfg.Lexer.Styles()
	return lexer.Styles{Hash: hash, Slash: slash, Block: block}
}
