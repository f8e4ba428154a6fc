// Package patch is the template patching library.
//
// Every patch is a Func: a pure text transformation built by a constructor
// that captures its parameters. Constructors return Identity when their
// parameters describe no change, so a no-op configuration never alters a
// single byte. Functions that cannot find the construct they were built
// for fail with PATTERN_NOT_FOUND; destructive ones that match nothing fail
// with NO_ELIGIBLE_MATCH. Functions documented as tolerant return the input
// unchanged instead.
package patch

import (
	"regexp"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// Func transforms template text.
type Func func(text string) (string, error)

// Identity returns text unchanged.
func Identity(text string) (string, error) { return text, nil }

// Apply runs funcs in order, feeding each one's output to the next, and
// stops at the first error.
func Apply(text string, funcs ...Func) (string, error) {
	for i, fn := range funcs {
		if fn == nil {
			return "", errors.Newf(errors.ErrInvalidInput, "patch #%d is nil", i).
				WithDetail("index", i)
		}
		out, err := fn(text)
		if err != nil {
			return "", err
		}
		text = out
	}
	return text, nil
}

// Chain composes funcs into a single Func.
func Chain(funcs ...Func) Func {
	if len(funcs) == 0 {
		return Identity
	}
	return func(text string) (string, error) {
		return Apply(text, funcs...)
	}
}

// rewriteLines calls fn for every line whose body matches re and reports how
// many lines matched. fn returns the replacement body; returning the body
// unchanged keeps the line byte-identical. The text is rebuilt only when a
// line actually changed.
func rewriteLines(text string, re *regexp.Regexp, fn func(body string, sub []string) string) (string, int) {
	lines := script.SplitLines(text)
	matched, changed := 0, 0
	for i, l := range lines {
		sub := re.FindStringSubmatch(l.Body)
		if sub == nil {
			continue
		}
		matched++
		if nb := fn(l.Body, sub); nb != l.Body {
			lines[i].Body = nb
			changed++
		}
	}
	if changed == 0 {
		return text, matched
	}
	return script.JoinLines(lines), matched
}

// replaceFirst replaces the first match of re in text with repl(sub),
// where sub holds the submatches. ok is false when re does not match.
func replaceFirst(text string, re *regexp.Regexp, repl func(sub []string) string) (string, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}
	sub := make([]string, len(loc)/2)
	for i := range sub {
		if loc[2*i] >= 0 {
			sub[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return text[:loc[0]] + repl(sub) + text[loc[1]:], true
}

// withinBlock applies fn to the Keyword("name") block only. A missing block
// leaves the text unchanged.
func withinBlock(text, keyword, name string, fn func(block string) string) (string, error) {
	span, ok, err := script.FindBlock(text, keyword, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return text, nil
	}
	block := span.Text(text)
	nb := fn(block)
	if nb == block {
		return text, nil
	}
	return script.Splice(text, span, nb), nil
}

func quote(s string) string { return regexp.QuoteMeta(s) }
