package model

import (
	"reflect"
	"testing"

	"orgdesk/pkg/sanitizer"
	"orgdesk/pkg/workhours"
)

func strPtr(s string) *string { return &s }

func TestCanonicalUUID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "6F9619FF-8B86-D011-B42D-00C04FC964FF", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{input: " {6f9619ff-8b86-d011-b42d-00c04fc964ff} ", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{input: "urn:uuid:6f9619ff-8b86-d011-b42d-00c04fc964ff", want: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
		{input: " not-a-uuid ", want: "not-a-uuid"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := canonicalUUID(tt.input); got != tt.want {
				t.Errorf("canonicalUUID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := canonicalUUIDPtr(strPtr("  ")); got != nil {
		t.Errorf("canonicalUUIDPtr(blank) = %q, want nil", *got)
	}
	if got := canonicalUUIDPtr(nil); got != nil {
		t.Error("canonicalUUIDPtr(nil) should stay nil")
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 6f9619ff-8b86-d011-b42d-00c04fc964ff ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "6f9619ff-8b86-d011-b42d-00c04fc964ff" {
		t.Errorf("ParseID() = %s", id)
	}
	if _, err := ParseID("42"); err == nil {
		t.Error("ParseID(42) should fail")
	}
}

func TestPersonCreate_NormalizeIsIdempotent(t *testing.T) {
	p := PersonCreate{
		LastName:   " иванова-петрова ",
		FirstName:  "МАРИЯ",
		MiddleName: "ивановна",
		Phone:      " +7 (999) 000-11-22",
		Email:      " maria@example.ru",
		PositionID: "6F9619FF-8B86-D011-B42D-00C04FC964FF",
	}

	p.Normalize()
	once := p
	p.Normalize()

	if p != once {
		t.Errorf("second Normalize changed the form: %+v -> %+v", once, p)
	}
	if p.LastName != "Иванова-Петрова" || p.FirstName != "Мария" || p.MiddleName != "Ивановна" {
		t.Errorf("names not normalized: %+v", p)
	}
}

func TestPersonUpdate_NormalizeKeepsAbsentFields(t *testing.T) {
	p := PersonUpdate{MiddleName: strPtr("  петрович ")}
	p.Normalize()

	if p.LastName != nil || p.FirstName != nil || p.Phone != nil || p.PositionID != nil {
		t.Errorf("absent fields were set: %+v", p)
	}
	if p.MiddleName == nil || *p.MiddleName != "Петрович" {
		t.Errorf("MiddleName = %v, want Петрович", p.MiddleName)
	}
}

func TestOrganizationCard_SubmitRoundTrip(t *testing.T) {
	card := OrganizationCard{
		Name:   "ООО Ромашка",
		Phones: []sanitizer.ContactPhone{{Value: "+7 (495) 000-00-00", Description: strPtr("приёмная")}},
		WorkHours: &workhours.WorkHours{Days: []workhours.DayHours{
			{Day: workhours.Monday, TimeRange: "09:00-18:00"},
			{Day: workhours.Tuesday, TimeRange: "09:00-18:00"},
			{Day: workhours.Saturday, TimeRange: "10:00-14:00"},
		}},
		DirectorHours: &workhours.WorkHours{Days: []workhours.DayHours{
			{Day: workhours.Thursday, TimeRange: "15:00-17:00"},
		}},
		INN:   "7707083893",
		OKTMO: "45382000",
	}

	submit := card.Submit()
	if submit.WorkHours != "Пн-Вт: 09:00-18:00; Сб: 10:00-14:00; Ср-Пт: выходной; Вс: выходной" {
		t.Errorf("WorkHours = %q", submit.WorkHours)
	}
	if submit.DirectorHours != "Чт: 15:00-17:00; Пн-Ср: выходной; Пт-Вс: выходной" {
		t.Errorf("DirectorHours = %q", submit.DirectorHours)
	}

	back := submit.Form()
	if !reflect.DeepEqual(back.WorkHours.Days, card.WorkHours.Days) {
		t.Errorf("WorkHours round trip = %+v", back.WorkHours.Days)
	}
	if !reflect.DeepEqual(back.DirectorHours.Days, card.DirectorHours.Days) {
		t.Errorf("DirectorHours round trip = %+v", back.DirectorHours.Days)
	}
	if back.INN != card.INN || back.OKTMO != card.OKTMO || back.Name != card.Name {
		t.Errorf("plain fields lost: %+v", back)
	}
}

func TestOrganizationCard_NormalizeTrimsRequisites(t *testing.T) {
	card := OrganizationCard{
		Name:        " ООО Ромашка ",
		INN:         " 7707083893\t",
		BankAccount: " 40702810938000000001 ",
		MaxURL:      strPtr(" "),
		Phones:      []sanitizer.ContactPhone{{Value: " "}, {Value: " 8 800 000-00-00 "}},
	}
	card.Normalize()

	if card.Name != "ООО Ромашка" || card.INN != "7707083893" || card.BankAccount != "40702810938000000001" {
		t.Errorf("fields not trimmed: %+v", card)
	}
	if card.MaxURL != nil {
		t.Errorf("MaxURL = %q, want nil", *card.MaxURL)
	}
	if len(card.Phones) != 1 || card.Phones[0].Value != "8 800 000-00-00" {
		t.Errorf("Phones = %+v", card.Phones)
	}
}
