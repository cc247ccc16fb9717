package lint

import (
	"comet/internal/diag"
)

// TrailingRule flags comments that share a line with preceding code. Teams
// that require comments above the code they describe enable this.
type TrailingRule struct{}

func (r *TrailingRule) Name() string { return "trailing" }

func (r *TrailingRule) Check(ctx *Context) {
	own := ctx.Comments.OwnLine()
	j := 0
	for _, tok := range ctx.Comments.Comments() {
		if j < len(own) && own[j] == tok {
			j++
			continue
		}
		diag.ReportWarning(ctx.Reporter, diag.LintTrailingComment, tok.Span,
			"trailing comment; move it above the code it describes").
			Emit()
	}
}
