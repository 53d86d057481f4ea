package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

func newValidator() *NewsValidator {
	log := logger.Discard()
	return NewNewsValidator(validation.New(log), log)
}

func ptr(s string) *string { return &s }

func TestValidateCreate(t *testing.T) {
	v := newValidator()

	n := &model.NewsCreate{Title: "  Открытие сезона ", Content: "\nТекст новости\n", IsPublished: true}
	require.NoError(t, v.ValidateCreate(n, "ru"))
	assert.Equal(t, "Открытие сезона", n.Title)
	assert.Equal(t, "Текст новости", n.Content)

	err := v.ValidateCreate(&model.NewsCreate{Title: strings.Repeat("я", 256), Content: ""}, "ru")
	var verrs validation.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]any{
		"title":   "Максимум 255 символов",
		"content": "Текст обязателен",
	}, verrs.Details())
}

func TestValidateUpdate(t *testing.T) {
	v := newValidator()

	t.Run("blank title", func(t *testing.T) {
		err := v.ValidateUpdate(&model.NewsUpdate{Title: ptr("")}, "ru")
		var verrs validation.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Название обязательно", verrs.Details()["title"])
	})

	t.Run("blank title is trimmed after the check", func(t *testing.T) {
		n := &model.NewsUpdate{Title: ptr("  ")}
		require.NoError(t, v.ValidateUpdate(n, "ru"))
		assert.Equal(t, "", *n.Title)
	})

	t.Run("owner id canonicalized", func(t *testing.T) {
		n := &model.NewsUpdate{OwnerID: ptr("6F9619FF-8B86-D011-B42D-00C04FC964FF")}
		require.NoError(t, v.ValidateUpdate(n, "ru"))
		assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", *n.OwnerID)
	})

	t.Run("owner id with spaces", func(t *testing.T) {
		err := v.ValidateUpdate(&model.NewsUpdate{OwnerID: ptr(" 6f9619ff-8b86-d011-b42d-00c04fc964ff ")}, "ru")
		var verrs validation.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Неверный формат UUID", verrs.Details()["owner_id"])
	})

	t.Run("bad owner id", func(t *testing.T) {
		err := v.ValidateUpdate(&model.NewsUpdate{OwnerID: ptr("owner")}, "en")
		var verrs validation.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Invalid UUID format", verrs.Details()["owner_id"])
	})
}
