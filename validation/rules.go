package validation

import (
	"strings"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// PasswordSymbols are the characters accepted by the hassymbol rule.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("hasupper", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsUpper) >= 0
	})
	_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	})
	_ = v.RegisterValidation("hassymbol", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), PasswordSymbols)
	})
}

var messages = map[string]string{
	"required":  "{0} is required",
	"min":       "{0} must be at least {1} characters",
	"max":       "{0} cannot exceed {1} characters",
	"email":     "Please provide a valid email address",
	"hasupper":  "{0} must contain at least one uppercase letter",
	"hasdigit":  "{0} must contain at least one number",
	"hassymbol": "{0} must contain at least one special character",
}

// minOneKey renders min=1 as an emptiness message rather than a length.
const (
	minOneKey     = "min-one"
	minOneMessage = "{0} cannot be empty"
)

func registerMessages(v *validator.Validate, trans ut.Translator) {
	for tag, text := range messages {
		tag, text := tag, text
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error {
				if tag == "min" {
					if err := t.Add(minOneKey, minOneMessage, true); err != nil {
						return err
					}
				}
				return t.Add(tag, text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				key := tag
				if tag == "min" && fe.Param() == "1" {
					key = minOneKey
				}
				msg, err := t.T(key, label(fe.Field()), fe.Param())
				if err != nil {
					return fe.Field() + " is invalid"
				}
				return msg
			},
		)
	}
}
