package patch

import (
	"regexp"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/numfmt"
)

// HungerExtras are the hunger tuning params of player_variables.scr.
type HungerExtras struct {
	DecreaseSpeed     float64
	StarvingThreshold float64
	RestingCost       float64
	RevivedCost       float64
	MulDash           float64
	MulFury           float64
}

// SetHungerExtras writes every hunger tuning param. All must exist.
func SetHungerExtras(h HungerExtras) Func {
	return SetParams(
		ParamValue{"HungerPointsDecreaseSpeed", numfmt.Format6(h.DecreaseSpeed)},
		ParamValue{"HungerStateStarvingThreshold", numfmt.Format6(h.StarvingThreshold)},
		ParamValue{"HungerRestingCost", numfmt.Format6(h.RestingCost)},
		ParamValue{"HungerRevivedCost", numfmt.Format6(h.RevivedCost)},
		ParamValue{"HungerPointsDecreaseSpeedMulDash", numfmt.Format6(h.MulDash)},
		ParamValue{"HungerPointsDecreaseSpeedMulFury", numfmt.Format6(h.MulFury)},
	)
}

// SetHungerRates writes the hunger tuning params except the starving
// threshold, which keeps its template value.
func SetHungerRates(h HungerExtras) Func {
	return SetParams(
		ParamValue{"HungerPointsDecreaseSpeed", numfmt.Format6(h.DecreaseSpeed)},
		ParamValue{"HungerRestingCost", numfmt.Format6(h.RestingCost)},
		ParamValue{"HungerRevivedCost", numfmt.Format6(h.RevivedCost)},
		ParamValue{"HungerPointsDecreaseSpeedMulDash", numfmt.Format6(h.MulDash)},
		ParamValue{"HungerPointsDecreaseSpeedMulFury", numfmt.Format6(h.MulFury)},
	)
}

// RestoreHungerToFull makes respawning restore the hunger bar completely.
func RestoreHungerToFull() Func {
	return SetParam("HungerRespawnPercent", numfmt.Format6(1))
}

var (
	waterSpeedParams = []string{"WaterMovementSpeedMulLevel1", "WaterMovementSpeedMulLevel2", "WaterMovementSpeedMulLevel3"}
	landSpeedParams  = []string{"MoveForwardMaxSpeed", "MoveBackwardMaxSpeed", "MoveStrafeMaxSpeed", "MoveSprintSpeed"}
	boostSpeedParams = []string{"AfterBoostDefaultSpeed", "AfterBoostMaxSpeed"}
)

// MovementSpeed scales swimming, on-foot and after-boost speeds. Percentages
// are bonuses: 0 keeps vanilla, 25 is 1.25x. Missing params are skipped.
func MovementSpeed(waterPct, landPct, boostPct int) Func {
	if waterPct == 0 && landPct == 0 && boostPct == 0 {
		return Identity
	}
	var funcs []Func
	add := func(names []string, pct int) {
		factor := bonusFactor(pct)
		for _, n := range names {
			funcs = append(funcs, ScaleParam(n, factor, numfmt.Multiplier))
		}
	}
	add(waterSpeedParams, waterPct)
	add(landSpeedParams, landPct)
	add(boostSpeedParams, boostPct)
	return Chain(funcs...)
}

// ClimbOptions turns off slow ladder climbing and/or turns on fast climbing.
// Both false is vanilla.
func ClimbOptions(ladderClimbSlow, fastClimb bool) Func {
	if !ladderClimbSlow && !fastClimb {
		return Identity
	}
	return SetParams(
		ParamValue{"LadderClimbSlow", boolLiteral(!ladderClimbSlow)},
		ParamValue{"FastClimbEnabled", boolLiteral(fastClimb)},
	)
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// UnlimitedNightmareFlashlight swaps the Nightmare battery flashlight for the
// regular one. Templates without the param are left alone.
func UnlimitedNightmareFlashlight(enable bool) Func {
	item := "Player_Flashlight_Nightmare"
	if enable {
		item = "Player_Flashlight"
	}
	return SetParamOptional("BatteryPoweredFlashlightItemName", item)
}

// HungerCosts maps the vanilla ActionCost buckets to new costs.
type HungerCosts struct {
	Cost05 float64
	Cost10 float64
	Cost20 float64
	Cost30 float64
	Cost40 float64
}

// VanillaHungerCosts leaves every bucket at its vanilla cost.
var VanillaHungerCosts = HungerCosts{0.5, 1, 2, 3, 4}

func (c HungerCosts) buckets() [][2]float64 {
	return [][2]float64{
		{0.5, c.Cost05},
		{1, c.Cost10},
		{2, c.Cost20},
		{3, c.Cost30},
		{4, c.Cost40},
	}
}

var actionCostRe = regexp.MustCompile(`^([ \t]*ActionCost\([ \t]*"([^"]+)"[ \t]*,[ \t]*)([+-]?\d*\.?\d+)(\);.*)$`)

// HungerBuckets rewrites ActionCost lines by the vanilla bucket their cost
// falls in. Zero costs and costs outside the buckets are kept. At least one
// line must fall in a bucket.
func HungerBuckets(costs HungerCosts) Func {
	if costs == VanillaHungerCosts {
		return Identity
	}
	buckets := costs.buckets()
	return func(text string) (string, error) {
		hits := 0
		out, _ := rewriteLines(text, actionCostRe, func(body string, sub []string) string {
			cur, err := numfmt.Parse(sub[3])
			if err != nil || numfmt.Equal(cur, 0) {
				return body
			}
			for _, b := range buckets {
				if !numfmt.Equal(cur, b[0]) {
					continue
				}
				hits++
				if numfmt.Equal(b[1], cur) {
					return body
				}
				return sub[1] + numfmt.Format3(b[1]) + sub[4]
			}
			return body
		})
		if hits == 0 {
			return "", errors.NotFound("ActionCost(...) in a hunger bucket")
		}
		return out, nil
	}
}

// bonusFactor converts a bonus percentage (0 = vanilla) to a multiplier.
func bonusFactor(pct int) float64 { return 1 + float64(pct)/100 }

// vanillaFactor converts a percent-of-vanilla (100 = vanilla) to a multiplier.
func vanillaFactor(pct int) float64 { return float64(pct) / 100 }
