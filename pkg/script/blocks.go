package script

import (
	"regexp"
	"strconv"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

// Span is a half-open byte range [Start, End) of a template.
type Span struct {
	Start int
	End   int
}

// Text returns the spanned text.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// Header is a block declaration of the form Keyword("Name") {.
type Header struct {
	Keyword string
	Name    string
	Start   int // beginning of the header line, before indentation
	Open    int // offset of the opening brace, -1 for a bare call
}

// Headers returns every block header for keyword in document order. A header
// must start its line (only whitespace before it) and its opening brace may
// follow on a later line, separated by whitespace only.
func Headers(text, keyword string) []Header {
	var out []Header
	for _, h := range Declarations(text, keyword) {
		if h.Open >= 0 {
			out = append(out, h)
		}
	}
	return out
}

// Declarations returns every Keyword("Name") call that starts a line, with
// or without a block. Open is -1 when no brace follows. Calls inside
// comments and strings are not reported.
func Declarations(text, keyword string) []Header {
	tokens := Tokenize(text)
	var out []Header

	lineStart := 0
	onlySpace := true
	for i, t := range tokens {
		switch t.Kind {
		case Newline:
			lineStart = t.End
			onlySpace = true
			continue
		case Space:
			continue
		}
		atLineStart := onlySpace
		onlySpace = false
		if !atLineStart || t.Kind != Ident || t.Text(text) != keyword {
			continue
		}
		if h, ok := matchCall(text, tokens, i); ok {
			h.Start = lineStart
			out = append(out, h)
		}
	}
	return out
}

// matchCall checks for Ident ( String ) starting at tokens[i] and records
// the offset of a following {, if any.
func matchCall(text string, tokens []Token, i int) (Header, bool) {
	h := Header{Keyword: tokens[i].Text(text), Open: -1}
	j := i + 1

	skip := func() {
		for j < len(tokens) && (tokens[j].Kind == Space || tokens[j].Kind == Newline) {
			j++
		}
	}
	expect := func(kind Kind, lit string) bool {
		if j >= len(tokens) || tokens[j].Kind != kind {
			return false
		}
		if lit != "" && tokens[j].Text(text) != lit {
			return false
		}
		j++
		return true
	}

	skip()
	if !expect(Punct, "(") {
		return h, false
	}
	skip()
	if j >= len(tokens) || tokens[j].Kind != String {
		return h, false
	}
	name, ok := unquote(tokens[j].Text(text))
	if !ok {
		return h, false
	}
	h.Name = name
	j++
	skip()
	if !expect(Punct, ")") {
		return h, false
	}
	skip()
	if j < len(tokens) && tokens[j].Kind == LBrace {
		h.Open = tokens[j].Start
	}
	return h, true
}

// unquote strips the surrounding quotes from a string token. Names in this
// syntax never use escapes, so the raw body is returned unchanged.
func unquote(lit string) (string, bool) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", false
	}
	return lit[1 : len(lit)-1], true
}

// FindBlock locates the first Keyword("name") { ... } block. A missing header
// is reported through ok=false, not as an error; unbalanced braces are.
func FindBlock(text, keyword, name string) (Span, bool, error) {
	for _, h := range Headers(text, keyword) {
		if h.Name != name {
			continue
		}
		end, err := BlockEnd(text, h)
		if err != nil {
			return Span{}, false, err
		}
		return Span{Start: h.Start, End: end}, true, nil
	}
	return Span{}, false, nil
}

// BlockEnd returns the offset just past the closing brace of h's block.
func BlockEnd(text string, h Header) (int, error) {
	closeAt, err := FindMatchingClose(text, h.Open)
	if err != nil {
		if se, ok := err.(*errors.ScrpatchError); ok {
			se.WithDetail("block", h.Keyword+"(\""+h.Name+"\")")
		}
		return 0, err
	}
	return closeAt + 1, nil
}

// FindPresetSpan locates a Keyword("name"); declaration whose body runs until
// the next Keyword(" declaration or the end of the text.
func FindPresetSpan(text, keyword, name string) (Span, bool) {
	qk := regexp.QuoteMeta(keyword)
	header := regexp.MustCompile(`(?m)^[ \t]*` + qk + `\(` + regexp.QuoteMeta(strconv.Quote(name)) + `\);`)
	loc := header.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	next := regexp.MustCompile(`(?m)^[ \t]*` + qk + `\("`)
	end := len(text)
	if m := next.FindStringIndex(text[loc[1]:]); m != nil {
		end = loc[1] + m[0]
	}
	return Span{Start: loc[0], End: end}, true
}
