package forms

import (
	"encoding/json"
	"net/http"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "orgdesk/pkg/errors"
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/sanitizer"
	"orgdesk/pkg/validation"
)

func newService(lang string) FormService {
	log := logger.Discard()
	return NewFormService(validation.New(log), lang, log)
}

func TestKinds(t *testing.T) {
	kinds := newService("ru").Kinds()

	assert.Len(t, kinds, 20)
	assert.IsNonDecreasing(t, kinds)
	assert.Contains(t, kinds, KindOrganizationCard)
	assert.Contains(t, kinds, KindPersonCreate)
}

func TestProcess_PersonCreate(t *testing.T) {
	payload := []byte(`{
		"last_name": " салтыков-щедрин ",
		"first_name": "михаил",
		"middle_name": "евграфович",
		"phone": "+7 (999) 123-45-67",
		"email": "m.e@example.ru",
		"position_id": "3f1c2a8e-5b7d-4c1e-9a2f-6d8e0b1c2d3e",
		"unknown": true
	}`)

	got, err := newService("ru").Process(KindPersonCreate, payload)
	require.NoError(t, err)

	person, ok := got.(*model.PersonCreate)
	require.True(t, ok)
	assert.Equal(t, "Салтыков-Щедрин", person.LastName)
	assert.Equal(t, "Михаил", person.FirstName)
	assert.Equal(t, "Евграфович", person.MiddleName)
}

func TestProcess_ValidationError(t *testing.T) {
	_, err := newService("ru").Process(KindPositionCreate, []byte(`{"name": "Тренер-2"}`))

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode())
	assert.Equal(t, map[string]any{"name": "Допускаются только буквы и пробелы, без тире"}, appErr.Details)
}

func TestProcess_EnglishService(t *testing.T) {
	_, err := newService("en").Process(KindLogin, []byte(`{"username": "a@b.ru", "password": "123"}`))

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, "Check the highlighted fields", appErr.Message)
	assert.Equal(t, "Password must be at least 8 characters", appErr.Details["password"])
}

func TestProcess_InvalidInput(t *testing.T) {
	s := newService("ru")

	tests := []struct {
		name    string
		kind    string
		payload string
	}{
		{name: "unknown kind", kind: "invoice", payload: `{}`},
		{name: "not json", kind: KindLogin, payload: `username=a`},
		{name: "array", kind: KindLogin, payload: `[]`},
		{name: "empty", kind: KindLogin, payload: ``},
		{name: "trailing data", kind: KindLogin, payload: `{} {}`},
		{name: "wrong type", kind: KindLogin, payload: `{"username": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Process(tt.kind, []byte(tt.payload))
			appErr := apperrors.AsAppError(err)
			assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
		})
	}
}

func TestProcess_OrganizationCardSubmit(t *testing.T) {
	payload := []byte(`{
		"name": "ООО Ромашка",
		"phones": [{"value": " +7 (495) 000-00-00 ", "description": " "}],
		"work_hours": {"days": [
			{"day": "saturday", "timeRange": "10:00-16:00"},
			{"day": "monday", "timeRange": "09:00-18:00"},
			{"day": "tuesday", "timeRange": "09:00-18:00"}
		]},
		"inn": "7707083893"
	}`)

	got, err := newService("ru").Process(KindOrganizationCard, payload)
	require.NoError(t, err)

	submit, ok := got.(model.OrganizationCardSubmit)
	require.True(t, ok)
	assert.Equal(t, "Пн-Вт: 09:00-18:00; Сб: 10:00-16:00; Ср-Пт: выходной; Вс: выходной", submit.WorkHours)
	assert.Equal(t, "", submit.DirectorHours)
	require.Len(t, submit.Phones, 1)
	assert.Nil(t, submit.Phones[0].Description)
}

func personPayload(t testing.TB, firstName, phone string) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]string{
		"last_name":   "Иванов",
		"first_name":  firstName,
		"middle_name": "Иванович",
		"phone":       phone,
		"email":       "ivanov@example.ru",
		"position_id": "3f1c2a8e-5b7d-4c1e-9a2f-6d8e0b1c2d3e",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
}

func TestProcess_PersonCheckedAsTyped(t *testing.T) {
	s := newService("ru")

	t.Run("padded phone rejected", func(t *testing.T) {
		_, err := s.Process(KindPersonCreate, personPayload(t, "Иван", "  +79991234567"))

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
		assert.Equal(t, map[string]any{"phone": "Неверный формат телефона"}, appErr.Details)
	})

	t.Run("name that casing would break accepted", func(t *testing.T) {
		got, err := s.Process(KindPersonCreate, personPayload(t, "İlker", "+79991234567"))
		require.NoError(t, err)

		person := got.(*model.PersonCreate)
		assert.Equal(t, sanitizer.NormalizePersonName("İlker", false), person.FirstName)
	})
}

func FuzzProcess_PersonCreate(f *testing.F) {
	f.Add("Иван", "+79991234567")
	f.Add("İlker", "+7 (999) 123-45-67")
	f.Add("  мария ", "  +79991234567")
	f.Add("анна-мария", "89991234567")
	f.Add("Straße", "+7999")

	s := newService("ru")

	f.Fuzz(func(t *testing.T, firstName, phone string) {
		if !utf8.ValidString(firstName) || !utf8.ValidString(phone) {
			t.Skip()
		}

		got, err := s.Process(KindPersonCreate, personPayload(t, firstName, phone))

		want := sanitizer.IsValidPersonName(firstName, false) && sanitizer.IsValidPhone(phone)
		if accepted := err == nil; accepted != want {
			t.Fatalf("Process(first_name=%q, phone=%q) accepted=%v, raw values valid=%v (err: %v)", firstName, phone, accepted, want, err)
		}
		if err == nil {
			person := got.(*model.PersonCreate)
			if person.FirstName != sanitizer.NormalizePersonName(firstName, false) {
				t.Errorf("first_name = %q, want the normalized %q", person.FirstName, sanitizer.NormalizePersonName(firstName, false))
			}
		}
	})
}

func TestProcess_OrganizationCardLegacyPhones(t *testing.T) {
	payload := []byte(`{
		"name": "ООО Ромашка",
		"phones": ["+7 (495) 000-00-00", "8 800 000-00-00 - горячая линия", " "]
	}`)

	got, err := newService("ru").Process(KindOrganizationCard, payload)
	require.NoError(t, err)

	submit := got.(model.OrganizationCardSubmit)
	assert.Equal(t, []sanitizer.ContactPhone{
		{Value: "+7 (495) 000-00-00"},
		{Value: "8 800 000-00-00 - горячая линия"},
	}, submit.Phones)
}
