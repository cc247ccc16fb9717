package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"comet/internal/comment"
	"comet/internal/source"
	"comet/internal/token"
)

// CommentOutput is one classified comment in JSON output.
type CommentOutput struct {
	Text      string      `json:"text"`
	Span      source.Span `json:"span"`
	StartLine uint32      `json:"start_line"`
	StartCol  uint32      `json:"start_col"`
	OwnLine   bool        `json:"own_line"`
}

// ownLineSet walks the own-line subsequence alongside the full list.
// Both slices share document order, so a single index suffices.
type ownLineSet struct {
	own []token.Token
	idx int
}

func (s *ownLineSet) contains(tok token.Token) bool {
	if s.idx < len(s.own) && s.own[s.idx] == tok {
		s.idx++
		return true
	}
	return false
}

// FormatCommentsPretty lists each comment with its position and an
// own-line/trailing tag. With ownLineOnly set, trailing comments are
// skipped.
func FormatCommentsPretty(w io.Writer, info comment.Info, fs *source.FileSet, ownLineOnly bool) error {
	set := &ownLineSet{own: info.OwnLine()}
	for _, tok := range info.Comments() {
		ownLine := set.contains(tok)
		if ownLineOnly && !ownLine {
			continue
		}
		tag := "trailing"
		if ownLine {
			tag = "own-line"
		}
		pos, _ := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%s:%d:%d: [%s] %q\n",
			fs.Get(tok.Span.File).Path, pos.Line, pos.Col, tag, tok.Text)
	}
	return nil
}

// FormatCommentsJSON writes the classification as a JSON array.
func FormatCommentsJSON(w io.Writer, info comment.Info, fs *source.FileSet, ownLineOnly bool) error {
	set := &ownLineSet{own: info.OwnLine()}
	output := make([]CommentOutput, 0, len(info.Comments()))
	for _, tok := range info.Comments() {
		ownLine := set.contains(tok)
		if ownLineOnly && !ownLine {
			continue
		}
		pos, _ := fs.Resolve(tok.Span)
		output = append(output, CommentOutput{
			Text:      tok.Text,
			Span:      tok.Span,
			StartLine: pos.Line,
			StartCol:  pos.Col,
			OwnLine:   ownLine,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
