// Package driver orchestrates the load → lex → classify → lint pipeline
// for single files and directory trees.
package driver

import (
	"comet/internal/diag"
	"comet/internal/lexer"
	"comet/internal/source"
	"comet/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and produces its full token stream.
func Tokenize(path string, styles lexer.Styles, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexFile(file, styles, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// lexFile drains a fresh lexer over file into a token slice, EOF included.
func lexFile(file *source.File, styles lexer.Styles, bag *diag.Bag) []token.Token {
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Styles: styles})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}
