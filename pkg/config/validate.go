package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Field errors report koanf key names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("enemytag", func(fl validator.FieldLevel) bool {
		_, ok := patch.LookupEnemyTag(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks p against its field constraints. Failures are reported
// as one CONFIG_INVALID error with a detail per offending key.
func Validate(p Params) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.ErrConfigValid, "failed to validate settings")
	}

	details := make(map[string]interface{}, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := settingKey(fe.Namespace())
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[key] = rule
		msgs = append(msgs, fmt.Sprintf("%s (%v) fails %s", key, fe.Value(), rule))
	}
	return errors.Newf(errors.ErrConfigValid, "invalid settings: %s", strings.Join(msgs, "; ")).
		WithDetails(details)
}

// settingKey turns "Params.xp.mode" into "xp.mode".
func settingKey(ns string) string {
	_, key, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return key
}
