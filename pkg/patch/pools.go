package patch

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/numfmt"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// OldTownPrefix qualifies a pool name so that its cap only applies to pools
// restricted to the Old Town map.
const OldTownPrefix = "Old_Town::"

var (
	poolHeaderRe  = regexp.MustCompile(`^Pool\([ \t]*"([^"]+)"[ \t]*\)$`)
	pursuitCapRe  = regexp.MustCompile(`^([ \t]*)MaxNoZombiesInPursuit\([ \t]*(\d+)[ \t]*\)[ \t]*$`)
	oldTownMapRe  = regexp.MustCompile(`AllowedMaps[ \t]*\([ \t]*"Old_Town"[ \t]*\)`)
	poolStartRe   = regexp.MustCompile(`^[ \t]*Pool\([ \t]*"([^"]+)"[ \t]*\)`)
	volatileRowRe = regexp.MustCompile(`^([ \t]*)PresetWeighted\([ \t]*"(Character;Volatile[^"]*)"[ \t]*,[ \t]*(\d+)[ \t]*\)(.*)$`)
)

// NightPursuitCaps sets MaxNoZombiesInPursuit per night pool. Keys are pool
// names; a key prefixed with OldTownPrefix wins for pools whose body
// declares AllowedMaps("Old_Town"). A pool without a cap line gets one
// inserted before its closing brace. Pools are tracked line by line: the
// header must sit alone on its line and the body opens on a later line.
func NightPursuitCaps(caps map[string]int) Func {
	if len(caps) == 0 {
		return Identity
	}
	return func(text string) (string, error) {
		lines := script.SplitLines(text)
		out := make([]script.Line, 0, len(lines)+8)
		changed := false

		var (
			pool     string
			tracking bool
			inBody   bool
			depth    int
			capSeen  bool
			oldTown  bool
		)
		lookup := func() (int, bool) {
			if oldTown {
				if v, ok := caps[OldTownPrefix+pool]; ok {
					return v, true
				}
			}
			v, ok := caps[pool]
			return v, ok
		}

		for _, l := range lines {
			trimmed := strings.TrimSpace(l.Body)
			if m := poolHeaderRe.FindStringSubmatch(trimmed); m != nil {
				pool, tracking, inBody, depth, capSeen, oldTown = m[1], true, false, 0, false, false
				out = append(out, l)
				continue
			}
			if !tracking {
				out = append(out, l)
				continue
			}
			if !inBody {
				if strings.Contains(l.Body, "{") {
					inBody = true
					depth += script.BraceDelta(l.Body)
				}
				out = append(out, l)
				continue
			}

			if oldTownMapRe.MatchString(l.Body) {
				oldTown = true
			}
			depth += script.BraceDelta(l.Body)
			closing := depth <= 0 && strings.HasPrefix(trimmed, "}")

			if want, ok := lookup(); ok {
				if m := pursuitCapRe.FindStringSubmatch(l.Body); m != nil {
					capSeen = true
					if cur, _ := strconv.Atoi(m[2]); cur != want {
						l.Body = m[1] + "MaxNoZombiesInPursuit(" + strconv.Itoa(want) + ")"
						changed = true
					}
					out = append(out, l)
					continue
				}
				if closing && !capSeen {
					eol := l.EOL
					if eol == "" {
						eol = "\n"
					}
					out = append(out, script.Line{
						Body: script.Indent(l.Body) + "    MaxNoZombiesInPursuit(" + strconv.Itoa(want) + ")",
						EOL:  eol,
					})
					changed = true
				}
			}
			if closing {
				tracking = false
			}
			out = append(out, l)
		}

		if !changed {
			return text, nil
		}
		return script.JoinLines(out), nil
	}
}

// ExteriorNightVolatilePools are the aipresetpool pools VolatileWeights
// targets by default.
var ExteriorNightVolatilePools = []string{
	"Night_Exterior_D01", "Night_Exterior_D02", "Night_Exterior_D03",
	"Night_Exterior_D04", "Night_Exterior_D05", "Night_Exterior_D06",
	"Night_Exterior_D07", "Night_Exterior_D08", "Night_Exterior_D09",
	"Night_Exterior_End", "Night_Exterior_Hive", "Night_Exterior_R01",
	"Night_Exterior_R01_playtest_hard", "Night_Exterior_R01_playtest_medium",
	"Night_Exterior_R01_playtest_no_virals", "Night_Exterior_CityCenter_Benchmark",
}

// VolatileWeights scales the PresetWeighted weight of volatile presets in
// the given pools. pct is of vanilla; results round half to even and never
// drop below minWeight. Commented lines are ignored. It is tolerant.
func VolatileWeights(pct int, pools []string, minWeight int) Func {
	if pct == 100 || len(pools) == 0 {
		return Identity
	}
	target := make(map[string]bool, len(pools))
	for _, p := range pools {
		target[p] = true
	}
	factor := vanillaFactor(pct)

	return func(text string) (string, error) {
		current := ""
		out, _ := script.MapLines(text, func(l script.Line) script.Line {
			if strings.HasPrefix(strings.TrimLeft(l.Body, " \t"), "//") {
				return l
			}
			if m := poolStartRe.FindStringSubmatch(l.Body); m != nil {
				current = m[1]
			}
			m := volatileRowRe.FindStringSubmatch(l.Body)
			if m == nil || !target[current] {
				return l
			}
			old, err := strconv.Atoi(m[3])
			if err != nil {
				return l
			}
			next := numfmt.RoundInt(float64(old) * factor)
			if next < minWeight {
				next = minWeight
			}
			if next != old {
				l.Body = m[1] + `PresetWeighted("` + m[2] + `", ` + strconv.Itoa(next) + ")" + m[4]
			}
			return l
		})
		return out, nil
	}
}
