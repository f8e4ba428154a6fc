package patch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// PerceptionMode selects how AI perception profiles are rewritten.
type PerceptionMode int

const (
	// ModeVanilla leaves profiles alone.
	ModeVanilla PerceptionMode = iota
	// ModeHighToLow shifts alert levels down by one: low becomes default and
	// high becomes the old low.
	ModeHighToLow
	// ModeHighToDefault makes both alert levels use the default profile.
	ModeHighToDefault
	// ModeAllToResting puts every level on the resting profile.
	ModeAllToResting
	// ModePacify deletes the profiles instead of rewriting them.
	ModePacify
)

var perceptionModeNames = map[PerceptionMode]string{
	ModeVanilla:       "vanilla",
	ModeHighToLow:     "high_to_low",
	ModeHighToDefault: "high_to_default",
	ModeAllToResting:  "all_to_resting",
	ModePacify:        "pacify",
}

func (m PerceptionMode) String() string {
	if s, ok := perceptionModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("PerceptionMode(%d)", int(m))
}

// ParsePerceptionMode parses a mode name. "none" is accepted as vanilla.
func ParsePerceptionMode(s string) (PerceptionMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "none" || key == "" {
		return ModeVanilla, nil
	}
	for m, name := range perceptionModeNames {
		if name == key {
			return m, nil
		}
	}
	return ModeVanilla, errors.Newf(errors.ErrInvalidInput, "unknown perception mode %q", s).
		WithDetail("mode", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m PerceptionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PerceptionMode) UnmarshalText(b []byte) error {
	v, err := ParsePerceptionMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Perception profile fields.
const (
	fieldDefault = "DefaultProfile"
	fieldLow     = "LowAlertProfile"
	fieldHigh    = "HighAlertProfile"
)

// DefaultRestingProfile is the profile ModeAllToResting switches to.
const DefaultRestingProfile = "volatile_hive_resting"

var profileFieldRe = regexp.MustCompile(`^([ \t]*)(DefaultProfile|LowAlertProfile|HighAlertProfile)\("([^"]+)"\)([ \t]*;[ \t]*)$`)

// Remap describes a perception profile rewrite.
type Remap struct {
	Selector
	Mode    PerceptionMode
	Resting string // profile used by ModeAllToResting; DefaultRestingProfile if empty
}

// RemapPerceptionProfiles rewrites the alert profile fields of selected
// PerceptionProfile blocks. Blocks missing any of the three fields are
// skipped. At least one block must change, otherwise NO_ELIGIBLE_MATCH.
// ModeVanilla is the identity; ModePacify is rejected since it deletes
// blocks, which DeletePerceptionProfiles does.
func RemapPerceptionProfiles(r Remap) Func {
	resting := r.Resting
	if resting == "" {
		resting = DefaultRestingProfile
	}

	var assign func(cur map[string]string) map[string]string
	switch r.Mode {
	case ModeVanilla:
		return Identity
	case ModeHighToLow:
		assign = func(cur map[string]string) map[string]string {
			return map[string]string{fieldLow: cur[fieldDefault], fieldHigh: cur[fieldLow]}
		}
	case ModeHighToDefault:
		assign = func(cur map[string]string) map[string]string {
			return map[string]string{fieldLow: cur[fieldDefault], fieldHigh: cur[fieldDefault]}
		}
	case ModeAllToResting:
		assign = func(map[string]string) map[string]string {
			return map[string]string{fieldDefault: resting, fieldLow: resting, fieldHigh: resting}
		}
	case ModePacify:
		return func(string) (string, error) {
			return "", errors.New(errors.ErrInvalidInput, "pacify deletes profiles and cannot be applied as a remap")
		}
	default:
		return func(string) (string, error) {
			return "", errors.Newf(errors.ErrInvalidInput, "unknown perception mode %s", r.Mode)
		}
	}

	return func(text string) (string, error) {
		headers := script.Headers(text, "PerceptionProfile")
		changed := 0
		// back to front so earlier offsets stay valid
		for i := len(headers) - 1; i >= 0; i-- {
			h := headers[i]
			if !r.Match(h.Name) {
				continue
			}
			end, err := script.BlockEnd(text, h)
			if err != nil {
				return "", err
			}
			body := script.Span{Start: h.Open + 1, End: end - 1}
			nb, ok := remapFields(body.Text(text), assign)
			if !ok {
				continue
			}
			changed++
			text = script.Splice(text, body, nb)
		}
		if changed == 0 {
			return "", errors.NoEligible("no PerceptionProfile blocks changed for prefixes=%v (mode=%s)", r.Prefixes, r.Mode).
				WithDetail("mode", r.Mode.String())
		}
		return text, nil
	}
}

// remapFields applies assign to a block body. ok is false when the body
// lacks a field or nothing changed.
func remapFields(body string, assign func(map[string]string) map[string]string) (string, bool) {
	lines := script.SplitLines(body)
	cur := map[string]string{}
	at := map[string]int{}
	for i, l := range lines {
		if sub := profileFieldRe.FindStringSubmatch(l.Body); sub != nil {
			if _, seen := cur[sub[2]]; !seen {
				cur[sub[2]] = sub[3]
				at[sub[2]] = i
			}
		}
	}
	if len(cur) < 3 {
		return body, false
	}

	changed := false
	for field, value := range assign(cur) {
		if cur[field] == value {
			continue
		}
		i := at[field]
		sub := profileFieldRe.FindStringSubmatch(lines[i].Body)
		lines[i].Body = sub[1] + field + `("` + value + `")` + sub[4]
		changed = true
	}
	if !changed {
		return body, false
	}
	return script.JoinLines(lines), true
}
