package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// OptionLookup reports whether value is an allowed option for the named field
type OptionLookup func(field, value string) bool

// New returns a validator that reports JSON field names and knows the
// question_option tag.
func New(lookup OptionLookup) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	RegisterValidators(v, lookup)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, lookup OptionLookup) {
	_ = v.RegisterValidation("question_option", QuestionOption(lookup))
}

// QuestionOption validates that a string is one of the options of the question
// named by the tag param, e.g. `validate:"question_option=focus"`.
// Empty values pass; pair with required.
func QuestionOption(lookup OptionLookup) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		if lookup == nil {
			return false
		}
		return lookup(fl.Param(), val)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
