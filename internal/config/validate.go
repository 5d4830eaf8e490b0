package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate = validator.New()
	trans, _ = ut.New(en.New(), en.New()).GetTranslator("en")
)

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	_ = entranslations.RegisterDefaultTranslations(validate, trans)

	mustRegister("duration", "{0} must be a duration such as 30s or 5m", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	mustRegister("cookie", "{0} must look like name=value", func(fl validator.FieldLevel) bool {
		name, _, ok := strings.Cut(fl.Field().String(), "=")
		return ok && strings.TrimSpace(name) != ""
	})
}

func mustRegister(tag, msg string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
	_ = validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, msg, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

// ValidationError lists every invalid field of a Config.
type ValidationError struct {
	Fields []string
	msgs   []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.msgs, "; ")
}

// Validate checks c before it is used to build a client.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config: %w", err)
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fe.Namespace())
		out.msgs = append(out.msgs, fe.Translate(trans))
	}
	return out
}
