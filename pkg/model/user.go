package model

import "orgdesk/pkg/sanitizer"

type UserCreate struct {
	Email           string `json:"email" validate:"required,email"`
	Nickname        string `json:"nickname" validate:"required,max=255"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	IsActive        bool   `json:"is_active"`
	IsSuperuser     bool   `json:"is_superuser"`
}

func (u *UserCreate) Normalize() {
	u.Email = sanitizer.Trim(u.Email)
	u.Nickname = sanitizer.Trim(u.Nickname)
}

// UserUpdate leaves the password unchanged when it is empty.
type UserUpdate struct {
	Email       string `json:"email" validate:"required,email"`
	Nickname    string `json:"nickname" validate:"required,max=255"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
}

func (u *UserUpdate) Normalize() {
	u.Email = sanitizer.Trim(u.Email)
	u.Nickname = sanitizer.Trim(u.Nickname)
}

type UserUpdateMe struct {
	Nickname string `json:"nickname" validate:"required,max=255"`
}

func (u *UserUpdateMe) Normalize() {
	u.Nickname = sanitizer.Trim(u.Nickname)
}

// Login uses the email as the username, matching the token endpoint.
type Login struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (l *Login) Normalize() {
	l.Username = sanitizer.Trim(l.Username)
}

type Register struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Nickname        string `json:"nickname" validate:"required,max=255"`
}

func (r *Register) Normalize() {
	r.Email = sanitizer.Trim(r.Email)
	r.Nickname = sanitizer.Trim(r.Nickname)
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (p *PasswordResetRequest) Normalize() {
	p.Email = sanitizer.Trim(p.Email)
}

type PasswordReset struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (p *PasswordReset) Normalize() {
	p.Token = sanitizer.Trim(p.Token)
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// Normalize is a no-op: passwords are taken verbatim.
func (c *ChangePassword) Normalize() {}

type EmailVerificationRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
}

func (e *EmailVerificationRequest) Normalize() {
	e.NewEmail = sanitizer.Trim(e.NewEmail)
}

type EmailVerification struct {
	NewEmail string `json:"new_email" validate:"required,email"`
	Code     string `json:"code" validate:"required,len=4"`
}

func (e *EmailVerification) Normalize() {
	e.NewEmail = sanitizer.Trim(e.NewEmail)
	e.Code = sanitizer.Trim(e.Code)
}
