package chartdelivery

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var industryKey = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// ValidIndustry validates whether the industry key is well formed.
// Unknown keys are accepted and seed the base template only.
var ValidIndustry validator.Func = func(fl validator.FieldLevel) bool {
	if key, ok := fl.Field().Interface().(string); ok {
		return industryKey.MatchString(key)
	}

	return false
}
