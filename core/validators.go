package core

import (
	"database/sql/driver"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/volatiletech/null/v8"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be blank"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// validate the value carried by null.* types, not the wrapper struct
	Validate.RegisterCustomTypeFunc(nullValuer, null.String{}, null.Int64{}, null.Float64{}, null.Time{})

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(notBlankTag, notBlankText)
	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
// `{0}` in text is replaced by the field name.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateValidationErrors maps each failing field to its translated message.
func TranslateValidationErrors(errs validator.ValidationErrors) map[string]string {
	fldErrs := make(map[string]string, len(errs))
	for _, vErr := range errs {
		fldErrs[vErr.Field()] = vErr.Translate(Translator)
	}
	return fldErrs
}

// Custom Global Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// nullValuer unwraps null.* values: nil when null, the wrapped value otherwise.
func nullValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		if val, err := valuer.Value(); err == nil {
			return val
		}
	}
	return nil
}
