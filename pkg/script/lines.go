package script

import "strings"

// Line is one line of a template split from its terminator.
type Line struct {
	Body string
	EOL  string // "\r\n", "\n" or "" for an unterminated last line
}

// String returns the line with its terminator.
func (l Line) String() string { return l.Body + l.EOL }

// SplitLines splits text into lines, keeping each line's own terminator so
// that mixed CRLF/LF files round-trip unchanged through JoinLines.
func SplitLines(text string) []Line {
	var lines []Line
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, Line{Body: text})
			break
		}
		body, eol := text[:i], "\n"
		if strings.HasSuffix(body, "\r") {
			body, eol = body[:len(body)-1], "\r\n"
		}
		lines = append(lines, Line{Body: body, EOL: eol})
		text = text[i+1:]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Body)
		b.WriteString(l.EOL)
	}
	return b.String()
}

// MapLines applies fn to every line of text and reports how many lines fn
// changed. Lines fn leaves alone are reproduced byte for byte.
func MapLines(text string, fn func(Line) Line) (string, int) {
	lines := SplitLines(text)
	changed := 0
	for i, l := range lines {
		nl := fn(l)
		if nl != l {
			changed++
			lines[i] = nl
		}
	}
	if changed == 0 {
		return text, 0
	}
	return JoinLines(lines), changed
}

// Indent returns the leading whitespace of s.
func Indent(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// Splice replaces span in text with repl.
func Splice(text string, span Span, repl string) string {
	return text[:span.Start] + repl + text[span.End:]
}
