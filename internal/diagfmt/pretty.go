package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"comet/internal/diag"
	"comet/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() first) and prints for each diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline for the span, optional
// surrounding context lines, and notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, d.Severity, d.Code.ID(), d.Message, d.Primary, opts)
		printSpanContext(w, fs, d.Primary, opts)
		for _, n := range d.Notes {
			printHeading(w, fs, diag.SevInfo, "note", n.Msg, n.Span, opts)
			printSpanContext(w, fs, n.Span, PrettyOpts{Color: opts.Color})
		}
	}
}

func printHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, code, msg string, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	pos, _ := fs.Resolve(span)

	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, pos.Line, pos.Col, sevText, code, msg)
}

func printSpanContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	firstLine := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx > 0 && firstLine > ctx {
		firstLine -= ctx
	} else if ctx > 0 {
		firstLine = 1
	}

	for line := firstLine; line <= start.Line; line++ {
		text := file.GetLine(line)
		fmt.Fprintf(w, "  %4d | %s\n", line, text)

		if line != start.Line {
			continue
		}
		// underline only the portion of the span on its first line
		endCol := end.Col
		if end.Line != start.Line {
			endCol = uint32(len(text)) + 1
		}
		if endCol <= start.Col {
			endCol = start.Col + 1
		}
		pad := displayWidth(text, start.Col-1)
		marks := displayWidth(text[min(int(start.Col)-1, len(text)):], endCol-start.Col)
		if marks < 1 {
			marks = 1
		}
		underline := strings.Repeat(" ", pad) + "^" + strings.Repeat("~", marks-1)
		if opts.Color {
			underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
		}
		fmt.Fprintf(w, "       | %s\n", underline)
	}
}

// displayWidth measures the on-screen width of the first n bytes of text,
// so underlines stay aligned under tabs and wide runes.
func displayWidth(text string, n uint32) int {
	if int(n) < len(text) {
		text = text[:n]
	}
	width := 0
	for _, r := range text {
		if r == '\t' {
			width += 8 - width%8
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
