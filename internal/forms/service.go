// Package forms decodes dashboard form payloads, validates and normalizes
// them, and hands back either the value to submit or an AppError listing every
// rejected field.
package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	documentvalidator "orgdesk/internal/documents/validator"
	newsvalidator "orgdesk/internal/news/validator"
	cardvalidator "orgdesk/internal/organizationcard/validator"
	personvalidator "orgdesk/internal/persons/validator"
	positionvalidator "orgdesk/internal/positions/validator"
	uservalidator "orgdesk/internal/users/validator"
	apperrors "orgdesk/pkg/errors"
	"orgdesk/pkg/locale"
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type FormService interface {
	Process(kind string, payload []byte) (any, error)
	Kinds() []string
}

// handler validates a decoded form in place and returns what gets submitted.
type handler struct {
	newForm func() any
	check   func(form any, lang string) error
	output  func(form any) any
}

type formService struct {
	kinds map[string]handler
	lang  string
	log   *logger.Logger
}

func NewFormService(engine *validation.Engine, lang string, log *logger.Logger) FormService {
	s := &formService{
		kinds: make(map[string]handler),
		lang:  lang,
		log:   log,
	}
	s.registerPersons(personvalidator.NewPersonValidator(engine, log))
	s.registerPositions(positionvalidator.NewPositionValidator(engine, log))
	s.registerUsers(uservalidator.NewUserValidator(engine, log))
	s.registerNews(newsvalidator.NewNewsValidator(engine, log))
	s.registerDocuments(documentvalidator.NewDocumentValidator(engine, log))
	s.registerOrganizationCard(cardvalidator.NewOrganizationCardValidator(engine, log))
	return s
}

func (s *formService) Kinds() []string {
	kinds := make([]string, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (s *formService) Process(kind string, payload []byte) (any, error) {
	h, ok := s.kinds[kind]
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown form kind %q", kind), nil).
			WithDetails(map[string]any{"kinds": s.Kinds()})
	}

	form := h.newForm()
	if err := decode(payload, form); err != nil {
		s.log.Warn("Form payload rejected", "kind", kind, "error", err)
		return nil, apperrors.InvalidInput("form payload is not a valid JSON object", err)
	}

	if err := h.check(form, s.lang); err != nil {
		var validationErrs validation.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation(message(s.lang), validationErrs.Details())
		}
		s.log.Error("Form validation could not run", "kind", kind, "error", err)
		return nil, apperrors.Internal("form validation could not run", err)
	}

	s.log.Debug("Form accepted", "kind", kind)

	if h.output != nil {
		return h.output(form), nil
	}
	return form, nil
}

// decode reads exactly one JSON object. Unknown fields are ignored the way the
// API ignores them.
func decode(payload []byte, form any) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '{' {
		return errors.New("expected a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(form); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after the JSON object")
	}
	return nil
}

func message(lang string) string {
	if locale.Match(lang) == locale.EN {
		return "Check the highlighted fields"
	}
	return "Проверьте правильность заполнения полей"
}

func (s *formService) register(kind string, h handler) {
	s.kinds[kind] = h
}

func (s *formService) registerPersons(v *personvalidator.PersonValidator) {
	s.register(KindPersonCreate, handler{
		newForm: func() any { return &model.PersonCreate{} },
		check:   func(f any, lang string) error { return v.ValidateCreate(f.(*model.PersonCreate), lang) },
	})
	s.register(KindPersonUpdate, handler{
		newForm: func() any { return &model.PersonUpdate{} },
		check:   func(f any, lang string) error { return v.ValidateUpdate(f.(*model.PersonUpdate), lang) },
	})
}

func (s *formService) registerPositions(v *positionvalidator.PositionValidator) {
	s.register(KindPositionCreate, handler{
		newForm: func() any { return &model.PositionCreate{} },
		check:   func(f any, lang string) error { return v.ValidateCreate(f.(*model.PositionCreate), lang) },
	})
	s.register(KindPositionUpdate, handler{
		newForm: func() any { return &model.PositionUpdate{} },
		check:   func(f any, lang string) error { return v.ValidateUpdate(f.(*model.PositionUpdate), lang) },
	})
}

func (s *formService) registerUsers(v *uservalidator.UserValidator) {
	s.register(KindUserCreate, handler{
		newForm: func() any { return &model.UserCreate{} },
		check:   func(f any, lang string) error { return v.ValidateCreate(f.(*model.UserCreate), lang) },
	})
	s.register(KindUserUpdate, handler{
		newForm: func() any { return &model.UserUpdate{} },
		check:   func(f any, lang string) error { return v.ValidateUpdate(f.(*model.UserUpdate), lang) },
	})
	s.register(KindUserUpdateMe, handler{
		newForm: func() any { return &model.UserUpdateMe{} },
		check:   func(f any, lang string) error { return v.ValidateUpdateMe(f.(*model.UserUpdateMe), lang) },
	})
	s.register(KindLogin, handler{
		newForm: func() any { return &model.Login{} },
		check:   func(f any, lang string) error { return v.ValidateLogin(f.(*model.Login), lang) },
	})
	s.register(KindRegister, handler{
		newForm: func() any { return &model.Register{} },
		check:   func(f any, lang string) error { return v.ValidateRegister(f.(*model.Register), lang) },
	})
	s.register(KindPasswordResetRequest, handler{
		newForm: func() any { return &model.PasswordResetRequest{} },
		check: func(f any, lang string) error {
			return v.ValidatePasswordResetRequest(f.(*model.PasswordResetRequest), lang)
		},
	})
	s.register(KindPasswordReset, handler{
		newForm: func() any { return &model.PasswordReset{} },
		check:   func(f any, lang string) error { return v.ValidatePasswordReset(f.(*model.PasswordReset), lang) },
	})
	s.register(KindChangePassword, handler{
		newForm: func() any { return &model.ChangePassword{} },
		check:   func(f any, lang string) error { return v.ValidateChangePassword(f.(*model.ChangePassword), lang) },
	})
	s.register(KindEmailVerificationRequest, handler{
		newForm: func() any { return &model.EmailVerificationRequest{} },
		check: func(f any, lang string) error {
			return v.ValidateEmailVerificationRequest(f.(*model.EmailVerificationRequest), lang)
		},
	})
	s.register(KindEmailVerification, handler{
		newForm: func() any { return &model.EmailVerification{} },
		check: func(f any, lang string) error {
			return v.ValidateEmailVerification(f.(*model.EmailVerification), lang)
		},
	})
}

func (s *formService) registerNews(v *newsvalidator.NewsValidator) {
	s.register(KindNewsCreate, handler{
		newForm: func() any { return &model.NewsCreate{} },
		check:   func(f any, lang string) error { return v.ValidateCreate(f.(*model.NewsCreate), lang) },
	})
	s.register(KindNewsUpdate, handler{
		newForm: func() any { return &model.NewsUpdate{} },
		check:   func(f any, lang string) error { return v.ValidateUpdate(f.(*model.NewsUpdate), lang) },
	})
}

func (s *formService) registerDocuments(v *documentvalidator.DocumentValidator) {
	s.register(KindDocumentCreate, handler{
		newForm: func() any { return &model.DocumentCreate{} },
		check:   func(f any, lang string) error { return v.ValidateCreate(f.(*model.DocumentCreate), lang) },
	})
	s.register(KindDocumentUpdate, handler{
		newForm: func() any { return &model.DocumentUpdate{} },
		check:   func(f any, lang string) error { return v.ValidateUpdate(f.(*model.DocumentUpdate), lang) },
	})
	s.register(KindDocumentCategory, handler{
		newForm: func() any { return &model.DocumentCategory{} },
		check:   func(f any, lang string) error { return v.ValidateCategory(f.(*model.DocumentCategory), lang) },
	})
}

// The card is submitted with its schedules serialized.
func (s *formService) registerOrganizationCard(v *cardvalidator.OrganizationCardValidator) {
	s.register(KindOrganizationCard, handler{
		newForm: func() any { return &model.OrganizationCard{} },
		check:   func(f any, lang string) error { return v.Validate(f.(*model.OrganizationCard), lang) },
		output:  func(f any) any { return f.(*model.OrganizationCard).Submit() },
	})
}
