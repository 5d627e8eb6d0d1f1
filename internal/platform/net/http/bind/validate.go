// Package bind decodes request bodies and query values and runs struct
// validation, mapping failures to perr codes
package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	perr "veritas/internal/platform/errors"
	"veritas/internal/platform/logger"
	str "veritas/internal/platform/strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator bundles the validator with its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	shared     Validator
	sharedOnce sync.Once
)

// messages overrides the stock english text for tags the api uses
var messages = map[string]string{
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"notblank": "{0} must not be blank",
}

// Get returns the shared validator, building it on first use
func Get() Validator {
	sharedOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation("notblank", notBlank)
		for tag, text := range messages {
			registerMessage(v, trans, tag, text)
		}
		shared = Validator{V: v, Trans: trans}
	})
	return shared
}

// jsonName reports fields by their json name, falling back to the Go name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// notBlank fails strings made only of whitespace, other kinds pass
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() != reflect.String || !str.IsBlank(f.String())
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Validate checks v and turns the first failing field into an
// ErrorCodeValidation error naming that field
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		logger.Get().Error().Err(err).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	fe := fes[0]
	return perr.Validationf(fe.Field(), "%s", fe.Translate(Get().Trans))
}
