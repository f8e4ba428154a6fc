package patch

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/numfmt"
)

// Vanilla legend bonus per difficulty.
const (
	LegendBonusEasyNormal = 1.0
	LegendBonusHard       = 1.05
	LegendBonusNightmare  = 1.15
)

// legendPenaltyVanilla holds the game's own LegendBonus_Penalty values.
var legendPenaltyVanilla = map[string]float64{
	"Easy":      1.05,
	"Normal":    1.10,
	"Hard":      1.20,
	"VeryHard":  1.25,
	"Nightmare": 1.33,
	"Deadly":    0.0,
}

// deathPenaltyLevelCount is the number of DeathPenaltyXpLossPercentageLevelN params.
const deathPenaltyLevelCount = 14

// OpenWorldXP sets the open-world XP modifiers. The vehicle kill multiplier
// follows at a twentieth of the XP multiplier.
func OpenWorldXP(multiplier float64) Func {
	return SetParams(
		ParamValue{"OpenWorldXPModifier", numfmt.Format6(multiplier)},
		ParamValue{"OpenWorldNightXPModifier", numfmt.Format6(multiplier)},
		ParamValue{"VehicleKillXPMultiplier", numfmt.Format6(numfmt.Round(multiplier*0.05, 2))},
	)
}

// LegendBonus scales the per-difficulty legend bonus. Each scale multiplies
// the vanilla bonus; Easy and Normal share one scale. Every occurrence of a
// difficulty's line is rewritten.
func LegendBonus(easyNormal, hard, nightmare float64) Func {
	targets := []struct {
		diff  string
		value float64
	}{
		{"Easy", easyNormal * LegendBonusEasyNormal},
		{"Normal", easyNormal * LegendBonusEasyNormal},
		{"Hard", hard * LegendBonusHard},
		{"Nightmare", nightmare * LegendBonusNightmare},
	}
	return func(text string) (string, error) {
		for _, tgt := range targets {
			re := regexp.MustCompile(`LegendBonus_Difficulty\("` + tgt.diff + `",([ \t]*)([0-9.]+)\);`)
			if !re.MatchString(text) {
				return "", errors.NotFound(fmt.Sprintf(`LegendBonus_Difficulty(%q, ...)`, tgt.diff))
			}
			value := numfmt.Format6(tgt.value)
			text = re.ReplaceAllStringFunc(text, func(m string) string {
				sub := re.FindStringSubmatch(m)
				if cur, err := numfmt.Parse(sub[2]); err == nil && numfmt.Equal(cur, numfmt.Round(tgt.value, numfmt.Physics)) {
					return m
				}
				return `LegendBonus_Difficulty("` + tgt.diff + `",` + sub[1] + value + `);`
			})
		}
		return text, nil
	}
}

var penaltyRe = regexp.MustCompile(`^([ \t]*LegendBonus_Penalty\([ \t]*"([^"]+)"[ \t]*,[ \t]*)([^)]*)(\)[ \t]*;.*)$`)

// LegendPenaltyDefaults restores the game's per-difficulty legend penalties.
// Unknown difficulties are left alone.
func LegendPenaltyDefaults() Func {
	return func(text string) (string, error) {
		out, matched := rewriteLines(text, penaltyRe, func(body string, sub []string) string {
			v, ok := legendPenaltyVanilla[sub[2]]
			if !ok {
				return body
			}
			return setLineValue(body, sub, v, numfmt.Format6)
		})
		if matched == 0 {
			return "", errors.NotFound(`LegendBonus_Penalty(...)`)
		}
		return out, nil
	}
}

// LegendPenaltyUniversal sets every difficulty's legend penalty to value.
func LegendPenaltyUniversal(value float64) Func {
	return func(text string) (string, error) {
		out, matched := rewriteLines(text, penaltyRe, func(body string, sub []string) string {
			return setLineValue(body, sub, value, numfmt.Format3)
		})
		if matched == 0 {
			return "", errors.NotFound(`LegendBonus_Penalty(...)`)
		}
		return out, nil
	}
}

var coopRe = regexp.MustCompile(`^([ \t]*LegendBonus_Coop\([ \t]*(2|3|4)[ \t]*,[ \t]*)([^)]*)(\)[ \t]*;.*)$`)

// CoopMultiplier sets the legend bonus for 2, 3 and 4 player co-op.
func CoopMultiplier(value float64) Func {
	return func(text string) (string, error) {
		out, matched := rewriteLines(text, coopRe, func(body string, sub []string) string {
			return setLineValue(body, sub, value, numfmt.Format3)
		})
		if matched == 0 {
			return "", errors.NotFound(`LegendBonus_Coop(2/3/4, ...)`)
		}
		return out, nil
	}
}

// setLineValue rebuilds a line matched as (head)(key)(value)(tail), keeping
// it untouched when the value already equals v.
func setLineValue(body string, sub []string, v float64, format func(float64) string) string {
	s := format(v)
	if cur, err := numfmt.Parse(sub[3]); err == nil && numfmt.Equal(cur, mustParse(s)) {
		return body
	}
	return sub[1] + s + sub[4]
}

func mustParse(s string) float64 {
	v, _ := numfmt.Parse(s)
	return v
}

var ngPlusRe = regexp.MustCompile(`(?m)^([ \t]*LegendBonus_NGPlus\()([0-9]*\.?[0-9]+)(\);)`)

// NGPlusMultiplier sets the New Game+ legend multiplier.
func NGPlusMultiplier(value float64) Func {
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, ngPlusRe, func(sub []string) string {
			return setCall(sub, value)
		})
		if !ok {
			return "", errors.NotFound(`LegendBonus_NGPlus(...)`)
		}
		return out, nil
	}
}

var (
	questRe         = regexp.MustCompile(`(?m)^([ \t]*LegendPoints_Quest\()([0-9]*\.?[0-9]+)(\);)`)
	questCategoryRe = regexp.MustCompile(`(?m)^([ \t]*LegendPoint_Quest_Category\([ \t]*"ReplayableGREAnomaly"[ \t]*,[ \t]*)([0-9]*\.?[0-9]+)(\);)`)
)

// QuestLegendPoints sets the legend points awarded for quests and for the
// replayable anomaly category.
func QuestLegendPoints(value float64) Func {
	return func(text string) (string, error) {
		if !questRe.MatchString(text) {
			return "", errors.NotFound(`LegendPoints_Quest(...)`)
		}
		if !questCategoryRe.MatchString(text) {
			return "", errors.NotFound(`LegendPoint_Quest_Category("ReplayableGREAnomaly", ...)`)
		}
		set := func(sub []string) string { return setCall(sub, value) }
		text = replaceAll(text, questRe, set)
		return replaceAll(text, questCategoryRe, set), nil
	}
}

// setCall rebuilds a (head)(value)(tail) call with multiplier precision.
func setCall(sub []string, v float64) string {
	s := numfmt.Format3(v)
	if cur, err := numfmt.Parse(sub[2]); err == nil && numfmt.Equal(cur, mustParse(s)) {
		return sub[0]
	}
	return sub[1] + s + sub[3]
}

func replaceAll(text string, re *regexp.Regexp, repl func(sub []string) string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return repl(re.FindStringSubmatch(m))
	})
}

// DeathPenaltyLevels scales all DeathPenaltyXpLossPercentageLevelN params.
// percent is relative to vanilla: 100 leaves them alone.
func DeathPenaltyLevels(percent int) Func {
	if percent == 100 {
		return Identity
	}
	factor := float64(percent) / 100
	funcs := make([]Func, 0, deathPenaltyLevelCount)
	for lvl := 1; lvl <= deathPenaltyLevelCount; lvl++ {
		funcs = append(funcs, ScaleParamStrict(fmt.Sprintf("DeathPenaltyXpLossPercentageLevel%d", lvl), factor))
	}
	return Chain(funcs...)
}

// LegendXPLoss scales the legend-level death XP loss. percent is relative to
// vanilla.
func LegendXPLoss(percent int) Func {
	if percent == 100 {
		return Identity
	}
	return ScaleParamStrict("LLDeathPenaltyXpLossPercentage", float64(percent)/100)
}
