package driver

import (
	"comet/internal/comment"
	"comet/internal/diag"
	"comet/internal/lexer"
	"comet/internal/source"
	"comet/internal/token"
)

type ClassifyResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Comments comment.Info
	Bag      *diag.Bag
}

// Classify tokenizes one file and classifies its comments.
func Classify(path string, styles lexer.Styles, maxDiagnostics int) (*ClassifyResult, error) {
	res, err := Tokenize(path, styles, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ClassifyResult{
		FileSet:  res.FileSet,
		File:     res.File,
		Tokens:   res.Tokens,
		Comments: comment.ComputeTokens(res.File, res.Tokens),
		Bag:      res.Bag,
	}, nil
}
