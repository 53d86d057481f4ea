package model

import (
	"orgdesk/pkg/sanitizer"
	"orgdesk/pkg/workhours"
)

// OrganizationCard is the edit form of the public organization card. Every
// requisite is optional; a filled one must be digits of the registered length.
type OrganizationCard struct {
	Name   string                   `json:"name" validate:"required"`
	Phones []sanitizer.ContactPhone `json:"phones"`
	Email  string                   `json:"email" validate:"omitempty,email"`

	Address       string               `json:"address"`
	WorkHours     *workhours.WorkHours `json:"work_hours,omitempty"`
	DirectorHours *workhours.WorkHours `json:"director_hours,omitempty"`

	VKURL       *string `json:"vk_url,omitempty"`
	TelegramURL *string `json:"telegram_url,omitempty"`
	WhatsAppURL *string `json:"whatsapp_url,omitempty"`
	MaxURL      *string `json:"max_url,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`

	LegalAddress   string   `json:"legal_address"`
	LegalLatitude  *float64 `json:"legal_latitude,omitempty" validate:"omitempty,latitude"`
	LegalLongitude *float64 `json:"legal_longitude,omitempty" validate:"omitempty,longitude"`

	INN   string `json:"inn" validate:"omitempty,digits,len=10"`
	KPP   string `json:"kpp" validate:"omitempty,digits,len=9"`
	OKPO  string `json:"okpo" validate:"omitempty,digits,len=8"`
	OGRN  string `json:"ogrn" validate:"omitempty,digits,len=13"`
	OKFS  string `json:"okfs" validate:"omitempty,digits,len=2"`
	OKOGU string `json:"okogu" validate:"omitempty,digits,len=7"`
	OKOPF string `json:"okopf" validate:"omitempty,digits,len=5"`
	OKTMO string `json:"oktmo" validate:"omitempty,digits,max=11"`
	OKATO string `json:"okato" validate:"omitempty,digits,len=11"`

	BankRecipient string `json:"bank_recipient"`
	BankAccount   string `json:"bank_account" validate:"omitempty,digits,len=20"`
	BankBIK       string `json:"bank_bik" validate:"omitempty,digits,len=9"`
}

func (c *OrganizationCard) Normalize() {
	c.Name = sanitizer.Trim(c.Name)
	c.Phones = sanitizer.NormalizeContactPhones(c.Phones)
	c.Email = sanitizer.Trim(c.Email)
	c.Address = sanitizer.Trim(c.Address)

	c.VKURL = sanitizer.NormalizeOptionalPtr(c.VKURL)
	c.TelegramURL = sanitizer.NormalizeOptionalPtr(c.TelegramURL)
	c.WhatsAppURL = sanitizer.NormalizeOptionalPtr(c.WhatsAppURL)
	c.MaxURL = sanitizer.NormalizeOptionalPtr(c.MaxURL)

	c.LegalAddress = sanitizer.Trim(c.LegalAddress)
	c.BankRecipient = sanitizer.Trim(c.BankRecipient)
	c.TrimRequisites()
}

// TrimRequisites trims the registration codes and bank numbers. The digit
// rules apply to the trimmed values.
func (c *OrganizationCard) TrimRequisites() {
	for _, field := range []*string{
		&c.INN, &c.KPP, &c.OKPO, &c.OGRN, &c.OKFS, &c.OKOGU, &c.OKOPF, &c.OKTMO, &c.OKATO,
		&c.BankAccount, &c.BankBIK,
	} {
		*field = sanitizer.Trim(*field)
	}
}

// OrganizationCardSubmit is the body the API accepts: schedules travel as
// their single-line form.
type OrganizationCardSubmit struct {
	Name   string                   `json:"name"`
	Phones []sanitizer.ContactPhone `json:"phones"`
	Email  string                   `json:"email"`

	Address       string `json:"address"`
	WorkHours     string `json:"work_hours"`
	DirectorHours string `json:"director_hours"`

	VKURL       *string `json:"vk_url,omitempty"`
	TelegramURL *string `json:"telegram_url,omitempty"`
	WhatsAppURL *string `json:"whatsapp_url,omitempty"`
	MaxURL      *string `json:"max_url,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	LegalAddress   string   `json:"legal_address"`
	LegalLatitude  *float64 `json:"legal_latitude,omitempty"`
	LegalLongitude *float64 `json:"legal_longitude,omitempty"`

	INN   string `json:"inn"`
	KPP   string `json:"kpp"`
	OKPO  string `json:"okpo"`
	OGRN  string `json:"ogrn"`
	OKFS  string `json:"okfs"`
	OKOGU string `json:"okogu"`
	OKOPF string `json:"okopf"`
	OKTMO string `json:"oktmo"`
	OKATO string `json:"okato"`

	BankRecipient string `json:"bank_recipient"`
	BankAccount   string `json:"bank_account"`
	BankBIK       string `json:"bank_bik"`
}

func (c *OrganizationCard) Submit() OrganizationCardSubmit {
	return OrganizationCardSubmit{
		Name:          c.Name,
		Phones:        c.Phones,
		Email:         c.Email,
		Address:       c.Address,
		WorkHours:     hoursString(c.WorkHours),
		DirectorHours: hoursString(c.DirectorHours),

		VKURL:       c.VKURL,
		TelegramURL: c.TelegramURL,
		WhatsAppURL: c.WhatsAppURL,
		MaxURL:      c.MaxURL,

		Latitude:  c.Latitude,
		Longitude: c.Longitude,

		LegalAddress:   c.LegalAddress,
		LegalLatitude:  c.LegalLatitude,
		LegalLongitude: c.LegalLongitude,

		INN:   c.INN,
		KPP:   c.KPP,
		OKPO:  c.OKPO,
		OGRN:  c.OGRN,
		OKFS:  c.OKFS,
		OKOGU: c.OKOGU,
		OKOPF: c.OKOPF,
		OKTMO: c.OKTMO,
		OKATO: c.OKATO,

		BankRecipient: c.BankRecipient,
		BankAccount:   c.BankAccount,
		BankBIK:       c.BankBIK,
	}
}

// Form rebuilds the edit form from stored API data, reading the schedules back
// with workhours.Parse.
func (s OrganizationCardSubmit) Form() OrganizationCard {
	work := workhours.Parse(s.WorkHours)
	director := workhours.Parse(s.DirectorHours)
	return OrganizationCard{
		Name:          s.Name,
		Phones:        s.Phones,
		Email:         s.Email,
		Address:       s.Address,
		WorkHours:     &work,
		DirectorHours: &director,

		VKURL:       s.VKURL,
		TelegramURL: s.TelegramURL,
		WhatsAppURL: s.WhatsAppURL,
		MaxURL:      s.MaxURL,

		Latitude:  s.Latitude,
		Longitude: s.Longitude,

		LegalAddress:   s.LegalAddress,
		LegalLatitude:  s.LegalLatitude,
		LegalLongitude: s.LegalLongitude,

		INN:   s.INN,
		KPP:   s.KPP,
		OKPO:  s.OKPO,
		OGRN:  s.OGRN,
		OKFS:  s.OKFS,
		OKOGU: s.OKOGU,
		OKOPF: s.OKOPF,
		OKTMO: s.OKTMO,
		OKATO: s.OKATO,

		BankRecipient: s.BankRecipient,
		BankAccount:   s.BankAccount,
		BankBIK:       s.BankBIK,
	}
}

func hoursString(w *workhours.WorkHours) string {
	if w == nil {
		return ""
	}
	return w.String()
}
