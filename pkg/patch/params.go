package patch

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/numfmt"
)

// ParamValue is one Param("Name", "value") assignment.
type ParamValue struct {
	Name  string
	Value string
}

// paramRe matches a Param("name", "value"); line. Groups: head, value, tail.
func paramRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*Param\([ \t]*"` + quote(name) + `"[ \t]*,[ \t]*")([^"]*)("[ \t]*\)[ \t]*;)`)
}

func paramConstruct(name string) string {
	return fmt.Sprintf(`Param(%q, ...)`, name)
}

// SetParam sets the first Param("name", ...) to value. The param must exist.
func SetParam(name, value string) Func {
	re := paramRe(name)
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, re, func(sub []string) string {
			if sub[2] == value {
				return sub[0]
			}
			return sub[1] + value + sub[3]
		})
		if !ok {
			return "", errors.NotFound(paramConstruct(name))
		}
		return out, nil
	}
}

// SetParamOptional is SetParam that tolerates a missing param.
func SetParamOptional(name, value string) Func {
	re := paramRe(name)
	return func(text string) (string, error) {
		out, _ := replaceFirst(text, re, func(sub []string) string {
			if sub[2] == value {
				return sub[0]
			}
			return sub[1] + value + sub[3]
		})
		return out, nil
	}
}

// SetParams sets every listed param; each must exist.
func SetParams(values ...ParamValue) Func {
	funcs := make([]Func, 0, len(values))
	for _, v := range values {
		funcs = append(funcs, SetParam(v.Name, v.Value))
	}
	return Chain(funcs...)
}

// SetParamFloats sets numeric params, written with physics precision.
func SetParamFloats(values map[string]float64, order ...string) Func {
	pv := make([]ParamValue, 0, len(order))
	for _, name := range order {
		v, ok := values[name]
		if !ok {
			continue
		}
		pv = append(pv, ParamValue{Name: name, Value: numfmt.Format6(v)})
	}
	return SetParams(pv...)
}

// ScaleParam multiplies a numeric Param by factor, rounding to decimals.
// It is tolerant: a missing or non-numeric param leaves the text unchanged,
// and a result equal to the current value is not rewritten.
func ScaleParam(name string, factor float64, decimals int) Func {
	if numfmt.Equal(factor, 1) {
		return Identity
	}
	re := paramRe(name)
	return func(text string) (string, error) {
		out, _ := replaceFirst(text, re, func(sub []string) string {
			cur, err := numfmt.Parse(sub[2])
			if err != nil {
				return sub[0]
			}
			next := numfmt.Round(cur*factor, decimals)
			if numfmt.Equal(next, cur) {
				return sub[0]
			}
			return sub[1] + numfmt.Format(next, decimals) + sub[3]
		})
		return out, nil
	}
}

// ScaleParamStrict multiplies a numeric Param by factor and writes it with
// physics precision. The param must exist and hold a number.
func ScaleParamStrict(name string, factor float64) Func {
	if numfmt.Equal(factor, 1) {
		return Identity
	}
	re := paramRe(name)
	return func(text string) (string, error) {
		var perr error
		out, ok := replaceFirst(text, re, func(sub []string) string {
			cur, err := numfmt.Parse(sub[2])
			if err != nil {
				perr = errors.Wrapf(err, errors.ErrPatternNotFound, "%s has a non-numeric value %q", paramConstruct(name), sub[2]).
					WithDetail("construct", paramConstruct(name))
				return sub[0]
			}
			next := cur * factor
			if numfmt.Equal(next, cur) {
				return sub[0]
			}
			return sub[1] + numfmt.Format6(next) + sub[3]
		})
		if !ok {
			return "", errors.NotFound(paramConstruct(name))
		}
		if perr != nil {
			return "", perr
		}
		return out, nil
	}
}

// ParamFloatMul multiplies the first ParamFloat("name", v) by mul.
func ParamFloatMul(name string, mul float64) Func {
	if numfmt.Equal(mul, 1) {
		return Identity
	}
	re := regexp.MustCompile(`(?m)^([ \t]*ParamFloat\("` + quote(name) + `",[ \t]*)([0-9]*\.?[0-9]+)(\).*)$`)
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, re, func(sub []string) string {
			cur, err := numfmt.Parse(sub[2])
			if err != nil {
				return sub[0]
			}
			return sub[1] + numfmt.Format6(cur*mul) + sub[3]
		})
		if !ok {
			return "", errors.NotFound(fmt.Sprintf(`ParamFloat(%q, ...)`, name))
		}
		return out, nil
	}
}

// NumericCall sets the argument of the first Func(value); statement. It is
// strict, and leaves the line untouched when the value is already equal.
func NumericCall(fn string, value float64) Func {
	re := numericCallRe(fn)
	return func(text string) (string, error) {
		out, ok := setNumericCall(text, re, value)
		if !ok {
			return "", errors.NotFound(fn + "(...)")
		}
		return out, nil
	}
}

func numericCallRe(fn string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*` + quote(fn) + `\([ \t]*)([+-]?[0-9]*\.?[0-9]+)([ \t]*\)[ \t]*;)`)
}

func setNumericCall(text string, re *regexp.Regexp, value float64) (string, bool) {
	return replaceFirst(text, re, func(sub []string) string {
		if cur, err := numfmt.Parse(sub[2]); err == nil && numfmt.Equal(cur, value) {
			return sub[0]
		}
		return sub[1] + numfmt.Format6(value) + sub[3]
	})
}

// VarVec3 sets VarVec3("name", [r, g, b]) with multiplier precision.
func VarVec3(name string, r, g, b float64) Func {
	re := regexp.MustCompile(`(?m)^([ \t]*VarVec3\("` + quote(name) + `",[ \t]*\[)([^\]]+)(\]\).*)$`)
	want := []float64{r, g, b}
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, re, func(sub []string) string {
			if vec3Equal(sub[2], want) {
				return sub[0]
			}
			return fmt.Sprintf("%s%s, %s, %s%s", sub[1],
				numfmt.Format3(r), numfmt.Format3(g), numfmt.Format3(b), sub[3])
		})
		if !ok {
			return "", errors.NotFound(fmt.Sprintf(`VarVec3(%q, ...)`, name))
		}
		return out, nil
	}
}

var commaSep = regexp.MustCompile(`[ \t]*,[ \t]*`)

func vec3Equal(list string, want []float64) bool {
	parts := commaSep.Split(list, -1)
	if len(parts) != len(want) {
		return false
	}
	for i, p := range parts {
		v, err := numfmt.Parse(p)
		if err != nil || !numfmt.Equal(v, numfmt.Round(want[i], numfmt.Multiplier)) {
			return false
		}
	}
	return true
}

// VarFloat sets VarFloat("name", value) with multiplier precision.
func VarFloat(name string, value float64) Func {
	re := regexp.MustCompile(`(?m)^([ \t]*VarFloat\("` + quote(name) + `",[ \t]*)([^)]+)(\).*)$`)
	return func(text string) (string, error) {
		out, ok := replaceFirst(text, re, func(sub []string) string {
			if cur, err := numfmt.Parse(sub[2]); err == nil && numfmt.Equal(cur, numfmt.Round(value, numfmt.Multiplier)) {
				return sub[0]
			}
			return sub[1] + numfmt.Format3(value) + sub[3]
		})
		if !ok {
			return "", errors.NotFound(fmt.Sprintf(`VarFloat(%q, ...)`, name))
		}
		return out, nil
	}
}
