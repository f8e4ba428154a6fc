// Package keys translates user-facing key names into engine input tokens.
package keys

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

// Input devices a token can belong to.
const (
	Keyboard = "Keyboard"
	Mouse    = "Mouse"
)

const mousePrefix = "EMouse__"

var aliases = map[string]string{
	" ":          "Space",
	"Spacebar":   "Space",
	"comma":      ",",
	"Comma":      ",",
	"Esc":        "Escape",
	"PgUp":       "PageUp",
	"PgDn":       "PageDown",
	"Del":        "Delete",
	"Ins":        "Insert",
	"Caps":       "CapsLock",
	"LShift":     "LeftShift",
	"RShift":     "RightShift",
	"LCtrl":      "LeftControl",
	"RCtrl":      "RightControl",
	"LAlt":       "LeftAlt",
	"RAlt":       "RightAlt",
	"UpArrow":    "Up",
	"DownArrow":  "Down",
	"LeftArrow":  "Left",
	"RightArrow": "Right",
}

var mouseTokens = map[string]string{
	"Mouse1":    "EMouse__BUTTON_1",
	"Mouse2":    "EMouse__BUTTON_2",
	"Mouse3":    "EMouse__BUTTON_3",
	"Mouse4":    "EMouse__BUTTON_4",
	"Mouse5":    "EMouse__BUTTON_5",
	"WheelUp":   "EMouse__WHEEL_UP",
	"WheelDown": "EMouse__WHEEL_DOWN",
}

// Some engine names carry a trailing underscore.
var keyTokens = map[string]string{
	"Up":           "EKey__UP_",
	"Down":         "EKey__DOWN",
	"Left":         "EKey__LEFT",
	"Right":        "EKey__RIGHT",
	"Space":        "EKey__SPACE_",
	"CapsLock":     "EKey__CAPITAL",
	"Tab":          "EKey__TAB",
	"Enter":        "EKey__RETURN",
	"Escape":       "EKey__ESCAPE",
	"Backspace":    "EKey__BACK",
	"Home":         "EKey__HOME",
	"End":          "EKey__END",
	"PageUp":       "EKey__PRIOR",
	"PageDown":     "EKey__NEXT",
	"Insert":       "EKey__INSERT",
	",":            "EKey__COMMA",
	"Delete":       "EKey__DELETE",
	"LeftShift":    "EKey__LSHIFT",
	"RightShift":   "EKey__RSHIFT",
	"LeftControl":  "EKey__LCONTROL",
	"RightControl": "EKey__RCONTROL",
	"LeftAlt":      "EKey__LMENU",
	"RightAlt":     "EKey__RMENU",
}

var fold = cases.Fold()

// Token returns the input token for a key name such as "W", "Space" or
// "Mouse3". Names are matched exactly first, then case-insensitively.
func Token(name string) (string, error) {
	k := name
	if strings.TrimSpace(k) != "" {
		k = strings.TrimSpace(k)
	}
	if tok, ok := lookup(k); ok {
		return tok, nil
	}
	for _, cand := range Names() {
		if fold.String(cand) == fold.String(k) {
			tok, _ := lookup(cand)
			return tok, nil
		}
	}
	err := errors.Newf(errors.ErrInvalidInput, "unknown key %q", name).WithDetail("key", name)
	if s := Suggest(k, 3); len(s) > 0 {
		err.WithDetail("suggestions", s)
		err.Message += "; did you mean " + strings.Join(s, ", ") + "?"
	}
	return "", err
}

func lookup(k string) (string, bool) {
	if a, ok := aliases[k]; ok {
		k = a
	}
	if tok, ok := mouseTokens[k]; ok {
		return tok, true
	}
	if len(k) == 1 {
		r := rune(k[0])
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			return "EKey__" + strings.ToUpper(k), true
		case unicode.IsDigit(r):
			return "EKey__" + k, true
		}
	}
	tok, ok := keyTokens[k]
	return tok, ok
}

// Device returns the input device of a token.
func Device(token string) string {
	if strings.HasPrefix(token, mousePrefix) {
		return Mouse
	}
	return Keyboard
}

// Names lists every named key, alias and mouse button, sorted. Single
// letters and digits are accepted as well but not listed.
func Names() []string {
	seen := map[string]bool{}
	for _, m := range []map[string]string{aliases, mouseTokens, keyTokens} {
		for k := range m {
			if strings.TrimSpace(k) != "" {
				seen[k] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Suggest returns up to n known names closest to name by edit distance.
func Suggest(name string, n int) []string {
	type scored struct {
		name string
		dist int
	}
	target := fold.String(name)
	var all []scored
	for _, cand := range Names() {
		d := levenshtein.ComputeDistance(target, fold.String(cand))
		if d <= 3 {
			all = append(all, scored{cand, d})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].name < all[j].name
	})
	out := make([]string, 0, n)
	for i := 0; i < len(all) && i < n; i++ {
		out = append(out, all[i].name)
	}
	return out
}
