package model

import "orgdesk/pkg/sanitizer"

type PersonCreate struct {
	LastName    string `json:"last_name" validate:"required,surname"`
	FirstName   string `json:"first_name" validate:"required,person_name"`
	MiddleName  string `json:"middle_name" validate:"required,person_name"`
	Phone       string `json:"phone" validate:"required,ru_phone"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description"`
	PositionID  string `json:"position_id" validate:"required,uuid_rfc4122"`
}

func (p *PersonCreate) Normalize() {
	p.LastName = sanitizer.NormalizePersonName(p.LastName, true)
	p.FirstName = sanitizer.NormalizePersonName(p.FirstName, false)
	p.MiddleName = sanitizer.NormalizePersonName(p.MiddleName, false)
	p.Phone = sanitizer.Trim(p.Phone)
	p.Email = sanitizer.Trim(p.Email)
	p.Description = sanitizer.Trim(p.Description)
	p.PositionID = canonicalUUID(p.PositionID)
}

// PersonUpdate carries only the fields the form changed.
type PersonUpdate struct {
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,surname"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,person_name"`
	MiddleName  *string `json:"middle_name,omitempty" validate:"omitempty,person_name"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,ru_phone"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Description *string `json:"description,omitempty"`
	PositionID  *string `json:"position_id,omitempty" validate:"omitempty,uuid_rfc4122"`
}

func (p *PersonUpdate) Normalize() {
	if p.LastName != nil {
		v := sanitizer.NormalizePersonName(*p.LastName, true)
		p.LastName = &v
	}
	if p.FirstName != nil {
		v := sanitizer.NormalizePersonName(*p.FirstName, false)
		p.FirstName = &v
	}
	if p.MiddleName != nil {
		v := sanitizer.NormalizePersonName(*p.MiddleName, false)
		p.MiddleName = &v
	}
	p.Phone = trimPtr(p.Phone)
	p.Email = trimPtr(p.Email)
	p.Description = sanitizer.NormalizeOptionalPtr(p.Description)
	p.PositionID = canonicalUUIDPtr(p.PositionID)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitizer.Trim(*s)
	return &v
}
