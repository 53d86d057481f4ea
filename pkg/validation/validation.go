// Package validation checks form payloads with go-playground/validator and
// reports every rejected field with a message in the requested language.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	ru_translations "github.com/go-playground/validator/v10/translations/ru"

	"orgdesk/pkg/locale"
	"orgdesk/pkg/logger"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details maps each field path to its message. The first message wins when a
// field failed more than once.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		if _, ok := details[err.Field]; !ok {
			details[err.Field] = err.Message
		}
	}
	return details
}

type Engine struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
	logger   *logger.Logger
}

// New builds the shared engine. It is safe for concurrent use once New
// returns.
func New(log *logger.Logger) *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validation rule", "tag", tag, "error", err)
		}
	}

	ruLocale := ru.New()
	e := &Engine{
		validate: v,
		uni:      ut.New(ruLocale, ruLocale, en.New()),
		logger:   log,
	}

	for _, lang := range locale.Supported {
		if err := e.registerTranslations(lang); err != nil {
			log.Fatal("Failed to register validation messages", "locale", lang, "error", err)
		}
	}

	log.Debug("Validation engine initialized", "rules", len(rules), "locales", locale.Supported)

	return e
}

func (e *Engine) registerTranslations(lang string) error {
	trans, found := e.uni.GetTranslator(lang)
	if !found {
		return fmt.Errorf("no translator for locale %q", lang)
	}

	var err error
	switch lang {
	case locale.EN:
		err = en_translations.RegisterDefaultTranslations(e.validate, trans)
	default:
		err = ru_translations.RegisterDefaultTranslations(e.validate, trans)
	}
	if err != nil {
		return fmt.Errorf("register default translations: %w", err)
	}

	for key, text := range catalogs[lang] {
		if err := trans.Add(key, text, true); err != nil {
			return fmt.Errorf("add message %q: %w", key, err)
		}
	}

	for _, tag := range translatedTags {
		if err := e.validate.RegisterTranslation(tag, trans, noopRegister, translate); err != nil {
			return fmt.Errorf("register translation for %q: %w", tag, err)
		}
	}
	return nil
}

// Struct validates s and returns ValidationErrors with messages in lang.
// Unsupported languages fall back to Russian.
func (e *Engine) Struct(s any, lang string) error {
	if err := e.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return e.translateValidationErrors(validationErrs, lang)
		}
		return err
	}
	return nil
}

func (e *Engine) translateValidationErrors(errs validator.ValidationErrors, lang string) ValidationErrors {
	trans, _ := e.uni.GetTranslator(locale.Match(lang))

	var validationErrors ValidationErrors
	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fieldPath(err.Namespace()),
			Message: err.Translate(trans),
		})
	}

	e.logger.Debug("Validation failed", "fields", len(validationErrors), "locale", trans.Locale())

	return validationErrors
}

func noopRegister(ut.Translator) error {
	return nil
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	field, tag := fe.Field(), fe.Tag()

	if label, err := trans.T("label." + field); err == nil {
		if msg, err := trans.T("requisite."+tag, label, fe.Param()); err == nil {
			return msg
		}
	}

	form, _, _ := strings.Cut(fe.Namespace(), ".")
	for _, key := range []string{form + "." + field + "." + tag, field + "." + tag} {
		if msg, err := trans.T(key); err == nil {
			return msg
		}
	}

	if msg, err := trans.T(tag, fe.Param()); err == nil {
		return msg
	}
	return fe.Error()
}

// fieldPath drops the struct name: "OrganizationCard.work_hours.days[0].day"
// becomes "work_hours.days[0].day".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
