package patch

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/numfmt"
)

// Difficulty names used by per-difficulty multiplier lines.
const (
	Easy      = "Easy"
	Normal    = "Normal"
	Hard      = "Hard"
	Nightmare = "Nightmare"
)

// DifficultyPercents holds one percentage per difficulty. Whether 0 or 100
// means vanilla depends on the constructor it is passed to.
type DifficultyPercents struct {
	Easy      int
	Normal    int
	Hard      int
	Nightmare int
}

// Uniform returns DifficultyPercents with every difficulty set to pct.
func Uniform(pct int) DifficultyPercents {
	return DifficultyPercents{pct, pct, pct, pct}
}

func (d DifficultyPercents) factors(conv func(int) float64) map[string]float64 {
	return map[string]float64{
		Easy:      conv(d.Easy),
		Normal:    conv(d.Normal),
		Hard:      conv(d.Hard),
		Nightmare: conv(d.Nightmare),
	}
}

// tagScale rewrites multiplier lines inside Tag("name"). Groups of re:
// 1 indent, 2 difficulty, 3 tier, 4 value, 5 tail.
type tagScale struct {
	tag     string
	re      *regexp.Regexp
	factors map[string]float64
	round   bool
	format  func(float64) string
	render  func(sub []string, value string) string
}

func (ts tagScale) apply(text string) (string, error) {
	return withinBlock(text, "Tag", ts.tag, func(block string) string {
		out, _ := rewriteLines(block, ts.re, func(body string, sub []string) string {
			factor, ok := ts.factors[sub[2]]
			if !ok || numfmt.Equal(factor, 1) {
				return body
			}
			cur, err := numfmt.Parse(sub[4])
			if err != nil {
				return body
			}
			next := cur * factor
			if ts.round {
				next = numfmt.Round(next, numfmt.Multiplier)
			}
			if numfmt.Equal(next, cur) {
				return body
			}
			return ts.render(sub, ts.format(next))
		})
		return out
	})
}

var damageMultiplierRe = regexp.MustCompile(`^([ \t]*)(MeleeDamageMultiplier|RangeDamageMultiplier)[ \t]*\([ \t]*"(Easy|Normal|Hard|Nightmare)"[ \t]*,[ \t]*(\d+)[ \t]*,[ \t]*([\d.]+)[ \t]*\)([ \t]*;.*)$`)

// VolatileDamageBonus raises volatile melee and ranged damage. Percentages
// are bonuses: 0 keeps vanilla. A template without Tag("volatile") is left
// alone.
func VolatileDamageBonus(bonus DifficultyPercents) Func {
	if bonus == (DifficultyPercents{}) {
		return Identity
	}
	factors := bonus.factors(bonusFactor)
	return func(text string) (string, error) {
		return withinBlock(text, "Tag", "volatile", func(block string) string {
			out, _ := rewriteLines(block, damageMultiplierRe, func(body string, sub []string) string {
				// groups: 1 indent, 2 func, 3 difficulty, 4 tier, 5 value, 6 tail
				factor := factors[sub[3]]
				if numfmt.Equal(factor, 1) {
					return body
				}
				cur, err := numfmt.Parse(sub[5])
				if err != nil {
					return body
				}
				next := numfmt.Round(cur*factor, numfmt.Multiplier)
				if numfmt.Equal(next, cur) {
					return body
				}
				return sub[1] + sub[2] + `("` + sub[3] + `", ` + sub[4] + ", " + numfmt.Format3(next) + ")" + sub[6]
			})
			return out
		})
	}
}

var maxHealthRe = regexp.MustCompile(`^([ \t]*)MaxHealthMultiplier[ \t]*\([ \t]*"(Easy|Normal|Hard|Nightmare)"[ \t]*,[ \t]*(\d+)[ \t]*,[ \t]*(-?[\d.]+)[ \t]*\)([ \t]*;.*)$`)

func renderMaxHealth(sub []string, value string) string {
	return sub[1] + `MaxHealthMultiplier("` + sub[2] + `", ` + sub[3] + ", " + value + ")" + sub[5]
}

// HumanHealth scales MaxHealthMultiplier inside Tag("human"). Percentages are
// of vanilla: 100 keeps it, 500 is five times. Values are written with
// exactly three decimals.
func HumanHealth(pct DifficultyPercents) Func {
	if pct == Uniform(100) {
		return Identity
	}
	return tagScale{
		tag:     "human",
		re:      maxHealthRe,
		factors: pct.factors(vanillaFactor),
		round:   true,
		format:  func(x float64) string { return numfmt.FormatFixed(x, numfmt.Multiplier) },
		render:  renderMaxHealth,
	}.apply
}

// EnemyTagHealth scales MaxHealthMultiplier inside Tag(tag). Percentages are
// of vanilla.
func EnemyTagHealth(tag string, pct DifficultyPercents) Func {
	if pct == Uniform(100) {
		return Identity
	}
	return tagScale{
		tag:     tag,
		re:      maxHealthRe,
		factors: pct.factors(vanillaFactor),
		format:  numfmt.Format4,
		render:  renderMaxHealth,
	}.apply
}

// EnemyTags are the special-infected tags of ai_difficulty.scr.
var EnemyTags = []string{
	"Boss", "Freak", "Biter", "Biter_boss", "Spitter_boss", "Viral", "Demolisher",
	"Goon", "Slasher", "Defect", "Karen", "Behemoth", "Nemo", "Matriarch",
	"Daughter", "Hologram", "Superman", "Aiden", "Baron", "Beast",
}

// LookupEnemyTag returns the EnemyTags spelling of name, ignoring case.
func LookupEnemyTag(name string) (string, bool) {
	for _, tag := range EnemyTags {
		if strings.EqualFold(tag, name) {
			return tag, true
		}
	}
	return "", false
}
