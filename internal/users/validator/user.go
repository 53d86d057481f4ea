package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type form interface {
	Normalize()
}

// UserValidator covers the account forms: user management, self-service
// profile and the authentication screens.
type UserValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewUserValidator(engine *validation.Engine, log *logger.Logger) *UserValidator {
	return &UserValidator{
		engine: engine,
		logger: log,
	}
}

func (v *UserValidator) check(name string, f form, lang string) error {
	if err := v.engine.Struct(f, lang); err != nil {
		v.logger.Warn("User form validation failed", "form", name, "error", err)
		return err
	}
	f.Normalize()
	return nil
}

func (v *UserValidator) ValidateCreate(u *model.UserCreate, lang string) error {
	return v.check("user_create", u, lang)
}

func (v *UserValidator) ValidateUpdate(u *model.UserUpdate, lang string) error {
	return v.check("user_update", u, lang)
}

func (v *UserValidator) ValidateUpdateMe(u *model.UserUpdateMe, lang string) error {
	return v.check("user_update_me", u, lang)
}

func (v *UserValidator) ValidateLogin(l *model.Login, lang string) error {
	return v.check("login", l, lang)
}

func (v *UserValidator) ValidateRegister(r *model.Register, lang string) error {
	return v.check("register", r, lang)
}

func (v *UserValidator) ValidatePasswordResetRequest(p *model.PasswordResetRequest, lang string) error {
	return v.check("password_reset_request", p, lang)
}

func (v *UserValidator) ValidatePasswordReset(p *model.PasswordReset, lang string) error {
	return v.check("password_reset", p, lang)
}

func (v *UserValidator) ValidateChangePassword(c *model.ChangePassword, lang string) error {
	return v.check("change_password", c, lang)
}

func (v *UserValidator) ValidateEmailVerificationRequest(e *model.EmailVerificationRequest, lang string) error {
	return v.check("email_verification_request", e, lang)
}

func (v *UserValidator) ValidateEmailVerification(e *model.EmailVerification, lang string) error {
	return v.check("email_verification", e, lang)
}
