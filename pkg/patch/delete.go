package patch

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// Selector picks blocks by name. A name qualifies when it is listed in Names
// or starts with one of Prefixes, and is neither listed in ExcludeNames nor
// contains one of ExcludeContains (compared case-insensitively).
type Selector struct {
	Names           []string
	Prefixes        []string
	ExcludeNames    []string
	ExcludeContains []string
}

var fold = cases.Fold()

// Match reports whether name is selected.
func (s Selector) Match(name string) bool {
	for _, ex := range s.ExcludeNames {
		if name == ex {
			return false
		}
	}
	folded := fold.String(name)
	for _, sub := range s.ExcludeContains {
		if sub != "" && strings.Contains(folded, fold.String(sub)) {
			return false
		}
	}
	for _, n := range s.Names {
		if name == n {
			return true
		}
	}
	for _, p := range s.Prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (s Selector) String() string {
	return fmt.Sprintf("names=%v prefixes=%v", s.Names, s.Prefixes)
}

// deleteBlocks removes every selected Keyword("name") { ... } block. Each
// block is cut from the start of its header line through the closing brace
// and one line terminator.
func deleteBlocks(text, keyword string, sel Selector) (string, int, error) {
	deleted := 0
	pos := 0
	for {
		h, ok := nextHeader(text, keyword, pos)
		if !ok {
			return text, deleted, nil
		}
		if !sel.Match(h.Name) {
			pos = h.Open + 1
			continue
		}
		end, err := script.BlockEnd(text, h)
		if err != nil {
			return "", deleted, err
		}
		switch {
		case strings.HasPrefix(text[end:], "\r\n"):
			end += 2
		case strings.HasPrefix(text[end:], "\n"):
			end++
		}
		text = text[:h.Start] + text[end:]
		deleted++
		pos = h.Start
	}
}

func nextHeader(text, keyword string, pos int) (script.Header, bool) {
	for _, h := range script.Headers(text, keyword) {
		if h.Start >= pos {
			return h, true
		}
	}
	return script.Header{}, false
}

// declared reports whether a live Keyword("name") call remains, block or
// not. Commented out copies do not count.
func declared(text, keyword, name string) bool {
	for _, h := range script.Declarations(text, keyword) {
		if h.Name == name {
			return true
		}
	}
	return false
}

// DeleteBlocks removes every Keyword block sel selects. Matching nothing is a
// NO_ELIGIBLE_MATCH error. Afterwards no header of an explicitly named,
// selected block may remain.
func DeleteBlocks(keyword string, sel Selector) Func {
	return func(text string) (string, error) {
		out, deleted, err := deleteBlocks(text, keyword, sel)
		if err != nil {
			return "", err
		}
		if deleted == 0 {
			return "", errors.NoEligible("no %s blocks deleted (%s)", keyword, sel).
				WithDetail("keyword", keyword)
		}
		for _, n := range sel.Names {
			if !sel.Match(n) {
				continue
			}
			if declared(out, keyword, n) {
				return "", errors.Newf(errors.ErrStructuralCorruption, "%s(%q) still present after delete", keyword, n).
					WithDetail("block", n)
			}
		}
		return out, nil
	}
}

// DeletePerceptionProfiles removes selected PerceptionProfile blocks.
func DeletePerceptionProfiles(sel Selector) Func {
	return DeleteBlocks("PerceptionProfile", sel)
}

// DeletePools removes the named Pool blocks. It is tolerant: pools that are
// not present are ignored.
func DeletePools(names ...string) Func {
	if len(names) == 0 {
		return Identity
	}
	sel := Selector{Names: names}
	return func(text string) (string, error) {
		out, _, err := deleteBlocks(text, "Pool", sel)
		if err != nil {
			return "", err
		}
		return out, nil
	}
}
