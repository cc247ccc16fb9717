package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value; avoid emitting it.
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// lint
	LintInfo            Code = 2000
	LintMissingHeader   Code = 2001
	LintHeaderMismatch  Code = 2002
	LintHeaderNotOnTop  Code = 2003
	LintTodoComment     Code = 2004
	LintTrailingComment Code = 2005

	// I/O and configuration
	IOError        Code = 4000
	IOFileNotFound Code = 4001
	IOConfigError  Code = 4002
)

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown",
	LexInfo:                     "Lexical info",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LintInfo:                    "Lint info",
	LintMissingHeader:           "Missing license header",
	LintHeaderMismatch:          "License header mismatch",
	LintHeaderNotOnTop:          "License header not at top of file",
	LintTodoComment:             "Task marker in comment",
	LintTrailingComment:         "Trailing comment",
	IOError:                     "I/O error",
	IOFileNotFound:              "File not found",
	IOConfigError:               "Configuration error",
}

// ID returns the stable short identifier, e.g. "LEX1002" or "LNT2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

// Title returns the human-readable short title for the code.
func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return "Unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
