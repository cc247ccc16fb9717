package lint

import (
	"strings"

	"comet/internal/diag"
)

// TodoRule flags task markers (TODO, FIXME, ...) anywhere in a comment.
type TodoRule struct {
	// Markers defaults to TODO, FIXME, XXX when empty.
	Markers []string
}

func (r *TodoRule) Name() string { return "todo" }

func (r *TodoRule) Check(ctx *Context) {
	markers := r.Markers
	if len(markers) == 0 {
		markers = []string{"TODO", "FIXME", "XXX"}
	}
	for _, tok := range ctx.Comments.Comments() {
		for _, marker := range markers {
			if strings.Contains(tok.Text, marker) {
				diag.ReportInfo(ctx.Reporter, diag.LintTodoComment, tok.Span,
					"comment contains "+marker).
					Emit()
				break
			}
		}
	}
}
