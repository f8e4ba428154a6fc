package patch

import (
	"regexp"
	"strconv"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/numfmt"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// AI density range the density tables are interpolated over.
const (
	DefaultAIDensity = 63
	MaxAIDensity     = 600
)

type minMax [2]int

var (
	dayDensityVanilla   = map[string]minMax{"None": {0, 0}, "Easy": {14, 16}, "Medium": {14, 16}, "VeryHard": {85, 90}}
	dayDensityMax       = map[string]minMax{"None": {50, 100}, "Easy": {100, 200}, "Medium": {100, 200}, "VeryHard": {125, 250}}
	nightDensityVanilla = map[string]minMax{"None": {0, 0}, "Easy": {35, 40}, "Medium": {50, 55}, "Hard": {90, 95}, "VeryHard": {100, 110}}
	nightDensityMax     = map[string]minMax{"None": {50, 100}, "Easy": {100, 200}, "Medium": {100, 200}, "Hard": {100, 200}, "VeryHard": {125, 250}}
)

var (
	commentedDensitiesRe = regexp.MustCompile(`(?s)/\*(Densities\(Day\)\s*\{\s*)(.*?)(\}\s*Densities\(Night\)\s*\{\s*)(.*?)(\}\s*)\*/`)
	densitiesRe          = regexp.MustCompile(`(?s)(Densities\(Day\)\s*\{\s*)(.*?)(\}\s*Densities\(Night\)\s*\{\s*)(.*?)(\})`)
	densityLineRe        = regexp.MustCompile(`^([ \t]*)(\w+)\((\d+)[ \t]*,[ \t]*(\d+)\)(.*)$`)
)

// Densities enables the global Day/Night density tables, interpolating every
// difficulty from vanilla toward the maximum preset as aiDensity grows from
// DefaultAIDensity to MaxAIDensity. The tables ship commented out; they are
// uncommented on first use and rescaled in place afterwards.
func Densities(aiDensity int) Func {
	t := float64(aiDensity-DefaultAIDensity) / float64(MaxAIDensity-DefaultAIDensity)
	if t <= 0 {
		return Identity
	}
	if t > 1 {
		t = 1
	}
	lerp := func(v, m int) int {
		return numfmt.RoundInt(float64(v) + t*float64(m-v))
	}
	scale := func(block string, vanilla, peak map[string]minMax) string {
		out, _ := rewriteLines(block, densityLineRe, func(body string, sub []string) string {
			van, ok := vanilla[sub[2]]
			if !ok {
				return body
			}
			top := peak[sub[2]]
			lo, hi := lerp(van[0], top[0]), lerp(van[1], top[1])
			if hi < lo {
				hi = lo
			}
			curLo, _ := strconv.Atoi(sub[3])
			curHi, _ := strconv.Atoi(sub[4])
			if lo == curLo && hi == curHi {
				return body
			}
			return sub[1] + sub[2] + "(" + strconv.Itoa(lo) + ", " + strconv.Itoa(hi) + ")" + sub[5]
		})
		return out
	}

	return func(text string) (string, error) {
		re := commentedDensitiesRe
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			re = densitiesRe
			loc = re.FindStringSubmatchIndex(text)
		}
		if loc == nil {
			return "", errors.NotFound("Densities(Day)/Densities(Night) block")
		}
		g := func(i int) string { return text[loc[2*i]:loc[2*i+1]] }
		repl := g(1) + scale(g(2), dayDensityVanilla, dayDensityMax) +
			g(3) + scale(g(4), nightDensityVanilla, nightDensityMax) + g(5)
		return script.Splice(text, script.Span{Start: loc[0], End: loc[1]}, repl), nil
	}
}
