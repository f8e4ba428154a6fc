package patch

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/numfmt"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

var (
	healthBlockRe = regexp.MustCompile(`(?m)^[ \t]+Health\("([^"]+)"\)[^;{]*\{`)
	healthValueRe = regexp.MustCompile(`Health\("([^"]*)"\)`)
)

// scaleHealthBlocks rewrites the inner Health("value") entries of every
// indented Health("name") { ... } block for which pick returns a non-nil
// value function.
func scaleHealthBlocks(text string, pick func(name string) func(v string) (string, bool)) (string, error) {
	var b strings.Builder
	pos := 0
	for _, loc := range healthBlockRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] < pos {
			continue
		}
		name := text[loc[2]:loc[3]]
		value := pick(name)
		if value == nil {
			continue
		}
		open := loc[1] - 1
		closeAt, err := script.FindMatchingClose(text, open)
		if err != nil {
			return "", err
		}
		body := text[open+1 : closeAt]
		nb := healthValueRe.ReplaceAllStringFunc(body, func(m string) string {
			v := healthValueRe.FindStringSubmatch(m)[1]
			if s, ok := value(v); ok {
				return `Health("` + s + `")`
			}
			return m
		})
		b.WriteString(text[pos : open+1])
		b.WriteString(nb)
		pos = closeAt
	}
	if pos == 0 {
		return text, nil
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}

// scaleHealth scales an integer or "lo-hi" range, clamping results to 1.
func scaleHealth(v string, factor float64) (string, bool) {
	v = strings.TrimSpace(v)
	scale := func(n int) int {
		s := numfmt.RoundInt(float64(n) * factor)
		if s < 1 {
			s = 1
		}
		return s
	}
	if i := strings.Index(v, "-"); i > 0 {
		lo, err1 := strconv.Atoi(strings.TrimSpace(v[:i]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(v[i+1:]))
		if err1 != nil || err2 != nil {
			return "", false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		nlo, nhi := scale(lo), scale(hi)
		if nhi < nlo {
			nhi = nlo
		}
		return strconv.Itoa(nlo) + "-" + strconv.Itoa(nhi), true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(scale(int(f))), true
}

// VolatileHealth scales volatile health definitions by category. Hive
// volatiles follow hivePct, apex, alpha and tyrant volatiles follow apexPct,
// every other Volatile follows volatilePct. Percentages are of vanilla.
func VolatileHealth(volatilePct, hivePct, apexPct int) Func {
	if volatilePct == 100 && hivePct == 100 && apexPct == 100 {
		return Identity
	}
	factorFor := func(name string) (int, bool) {
		switch {
		case strings.HasPrefix(name, "Volatile_Hive_"):
			return hivePct, true
		case strings.HasPrefix(name, "Volatile_Apex_"),
			strings.HasPrefix(name, "Volatile_Alpha_"),
			strings.HasPrefix(name, "Volatile_Tyrant_"):
			return apexPct, true
		case name == "Volatile", strings.HasPrefix(name, "Volatile_"):
			return volatilePct, true
		}
		return 0, false
	}
	return func(text string) (string, error) {
		return scaleHealthBlocks(text, func(name string) func(string) (string, bool) {
			pct, ok := factorFor(name)
			if !ok || pct == 100 {
				return nil
			}
			f := vanillaFactor(pct)
			return func(v string) (string, bool) { return scaleHealth(v, f) }
		})
	}
}

// Vanilla health of the pickup trucks.
const (
	VehiclePickupHealth    = 1150
	VehiclePickupCTBHealth = 2000
)

// VehicleHealth sets the pickup trucks' health to a percentage of vanilla.
func VehicleHealth(pickupPct, ctbPct int) Func {
	if pickupPct == 100 && ctbPct == 100 {
		return Identity
	}
	targets := map[string]int{
		"Vehicle_Pickup":     vehicleHealth(VehiclePickupHealth, pickupPct),
		"Vehicle_Pickup_CTB": vehicleHealth(VehiclePickupCTBHealth, ctbPct),
	}
	if pickupPct == 100 {
		delete(targets, "Vehicle_Pickup")
	}
	if ctbPct == 100 {
		delete(targets, "Vehicle_Pickup_CTB")
	}
	return func(text string) (string, error) {
		return scaleHealthBlocks(text, func(name string) func(string) (string, bool) {
			hp, ok := targets[name]
			if !ok {
				return nil
			}
			return func(v string) (string, bool) {
				if _, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
					return "", false
				}
				return strconv.Itoa(hp), true
			}
		})
	}
}

func vehicleHealth(vanilla, pct int) int {
	hp := numfmt.RoundInt(float64(vanilla) * vanillaFactor(pct))
	if hp < 1 {
		return 1
	}
	return hp
}
