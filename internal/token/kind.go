package token

// Kind represents the category of a source token. comet is language
// agnostic: keywords and operators are not told apart, comments are.
type Kind uint8

const (
	// Invalid indicates an erroneous token (control bytes, broken input).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline represents a run of one or more consecutive line breaks.
	Newline
	// Ident represents an identifier or keyword-like word.
	Ident
	// Number represents a numeric literal.
	Number
	// String represents a string literal, possibly spanning several lines.
	String
	// Comment represents a line or block comment.
	Comment
	// Punct represents a single punctuation or operator byte.
	Punct
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Newline: "Newline",
	Ident:   "Ident",
	Number:  "Number",
	String:  "String",
	Comment: "Comment",
	Punct:   "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
