package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// MessageNoFields is reported when an update payload carries no field at all.
const MessageNoFields = "At least one field must be provided for update"

// Errors maps a JSON field name to its messages.
type Errors map[string][]string

// Add appends msg to field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Partial is implemented by update payloads whose fields are all optional
// but of which at least one must be present.
type Partial interface {
	NoFields() bool
}

// Validator checks request payloads against their `validate` tags and
// renders failures as English messages keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with the password rules and message catalogue
// registered.
func New() *Validator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	registerRules(validate)
	registerMessages(validate, trans)

	return &Validator{validate: validate, trans: trans}
}

// Struct validates s. It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) Errors {
	if p, ok := s.(Partial); ok && p.NoFields() {
		return Errors{firstField(s): {MessageNoFields}}
	}

	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"body": {err.Error()}}
	}

	out := Errors{}
	for _, fe := range fieldErrors {
		out.Add(fe.Field(), fe.Translate(v.trans))
	}
	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func firstField(s interface{}) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return "body"
	}
	return jsonFieldName(t.Field(0))
}

var labels = map[string]string{
	"articleId": "Article ID",
	"isAdmin":   "Admin flag",
}

// label turns a JSON field name into the subject of a message.
func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
