package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("removeBOM = %q, %v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM on plain content = %q, %v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	// "x = 1\n# c\n\nend"
	//  offsets: x=0 .. \n=5, #=6 .. \n=9, \n=10, e=11
	content := []byte("x = 1\n# c\n\nend")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{5, LineCol{Line: 1, Col: 6}},  // the newline belongs to line 1
		{6, LineCol{Line: 2, Col: 1}},  // first byte after the newline
		{9, LineCol{Line: 2, Col: 4}},
		{10, LineCol{Line: 3, Col: 1}}, // empty line
		{11, LineCol{Line: 4, Col: 1}},
		{13, LineCol{Line: 4, Col: 3}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	idx := buildLineIndex([]byte("single line"))
	if got := toLineCol(idx, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("toLineCol(7) = %+v", got)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a//b/../c"); got != "a/c" {
		t.Errorf("normalizePath = %q, want %q", got, "a/c")
	}
}
