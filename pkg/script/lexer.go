// Package script understands just enough of the game's scripting syntax to
// locate constructs safely: C-like calls terminated by ';', named blocks
// delimited by braces, '//' and '/* */' comments, and double-quoted strings
// with backslash escapes.
//
// Text is tokenized into a flat sequence of (kind, span) records. Block and
// header lookups walk that sequence, so braces or headers that appear inside
// strings or comments are never mistaken for structure.
package script

// Kind classifies a token.
type Kind int

const (
	Space Kind = iota // spaces, tabs and lone carriage returns
	Newline
	LineComment
	BlockComment
	String
	Ident
	Number
	LBrace
	RBrace
	Punct
)

var kindNames = map[Kind]string{
	Space:        "space",
	Newline:      "newline",
	LineComment:  "line-comment",
	BlockComment: "block-comment",
	String:       "string",
	Ident:        "ident",
	Number:       "number",
	LBrace:       "lbrace",
	RBrace:       "rbrace",
	Punct:        "punct",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Token is a half-open byte span [Start, End) of the source text.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Text returns the token's source text.
func (t Token) Text(src string) string {
	return src[t.Start:t.End]
}

// Trivia reports whether the token carries no syntax (whitespace or comment).
func (t Token) Trivia() bool {
	switch t.Kind {
	case Space, Newline, LineComment, BlockComment:
		return true
	}
	return false
}

// Tokenize splits text into tokens. Concatenating every token's text
// reproduces the input exactly.
func Tokenize(text string) []Token {
	var tokens []Token
	scan(text, 0, func(t Token) bool {
		tokens = append(tokens, t)
		return true
	})
	return tokens
}

// scan lexes text starting at offset from, which must be in normal mode,
// calling fn for every token until fn returns false or the text ends.
// Unterminated strings and block comments run to the end of the text.
func scan(text string, from int, fn func(Token) bool) {
	i := from
	n := len(text)
	for i < n {
		start := i
		var kind Kind
		c := text[i]
		switch {
		case c == '\n':
			kind, i = Newline, i+1
		case c == '\r' && i+1 < n && text[i+1] == '\n':
			kind, i = Newline, i+2
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			kind = Space
			for i < n && isSpace(text[i]) && !(text[i] == '\r' && i+1 < n && text[i+1] == '\n') {
				i++
			}
		case c == '/' && i+1 < n && text[i+1] == '/':
			kind = LineComment
			for i < n && text[i] != '\n' && !(text[i] == '\r' && i+1 < n && text[i+1] == '\n') {
				i++
			}
		case c == '/' && i+1 < n && text[i+1] == '*':
			kind = BlockComment
			i += 2
			for i < n && !(text[i] == '*' && i+1 < n && text[i+1] == '/') {
				i++
			}
			if i < n {
				i += 2
			}
		case c == '"':
			kind = String
			i = skipString(text, i)
		case c == '{':
			kind, i = LBrace, i+1
		case c == '}':
			kind, i = RBrace, i+1
		case isIdentStart(c):
			kind = Ident
			for i < n && isIdentPart(text[i]) {
				i++
			}
		case isDigit(c) || (c == '.' && i+1 < n && isDigit(text[i+1])):
			kind = Number
			for i < n && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
		default:
			kind = Punct
			i = nextRune(text, i)
		}
		if !fn(Token{Kind: kind, Start: start, End: i}) {
			return
		}
	}
}

// skipString returns the offset just past the string literal opening at i.
func skipString(text string, i int) int {
	i++
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1
		}
		i++
	}
	return len(text)
}

func nextRune(text string, i int) int {
	i++
	for i < len(text) && text[i]&0xC0 == 0x80 {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
