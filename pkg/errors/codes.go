package errors

import (
	"net/http"
	"strings"
)

// API error codes returned by the backend. The dashboard shows the Russian
// message registered for each code instead of the raw server text.
const (
	CodePositionExists           = "POSITION_EXISTS"
	CodePositionNotFound         = "POSITION_NOT_FOUND"
	CodePositionDefaultProtected = "POSITION_DEFAULT_PROTECTED"

	CodePersonExists      = "PERSON_EXISTS"
	CodePersonNotFound    = "PERSON_NOT_FOUND"
	CodePersonPhoneExists = "PERSON_PHONE_EXISTS"
	CodePersonEmailExists = "PERSON_EMAIL_EXISTS"

	CodePersonImageNotFound = "PERSON_IMAGE_NOT_FOUND"

	CodeNewsNotFound             = "NEWS_NOT_FOUND"
	CodeNewsForbidden            = "NEWS_FORBIDDEN"
	CodeNewsOwnerNotFound        = "NEWS_OWNER_NOT_FOUND"
	CodeNewsOwnerChangeForbidden = "NEWS_OWNER_CHANGE_FORBIDDEN"

	CodeNewsImageNotFound     = "NEWS_IMAGE_NOT_FOUND"
	CodeNewsImageInvalidOrder = "NEWS_IMAGE_INVALID_ORDER"

	CodeDocumentNotFound     = "DOCUMENT_NOT_FOUND"
	CodeDocumentFileNotFound = "DOCUMENT_FILE_NOT_FOUND"
	CodeDocumentForbidden    = "DOCUMENT_FORBIDDEN"

	CodeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	CodeCategoryExists    = "CATEGORY_EXISTS"
	CodeCategoryForbidden = "CATEGORY_FORBIDDEN"
	CodeCategoryInvalidID = "CATEGORY_INVALID_ID"

	CodeOrgCardNotFound = "ORG_CARD_NOT_FOUND"
	CodeOrgCardExists   = "ORG_CARD_EXISTS"

	CodeAuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeAuthInactiveUser       = "AUTH_INACTIVE_USER"
	CodeAuthInvalidToken       = "AUTH_INVALID_TOKEN"
	CodeAuthUserNotFound       = "AUTH_USER_NOT_FOUND"

	CodeUserNotFound               = "USER_NOT_FOUND"
	CodeUserEmailExists            = "USER_EMAIL_EXISTS"
	CodeUserNameExists             = "USER_NAME_EXISTS"
	CodeUserSuperuserRequired      = "USER_SUPERUSER_REQUIRED"
	CodeUserEmailChangeForbidden   = "USER_EMAIL_CHANGE_FORBIDDEN"
	CodeUserEmailSame              = "USER_EMAIL_SAME"
	CodeUserEmailNotSet            = "USER_EMAIL_NOT_SET"
	CodeUserVerificationInvalid    = "USER_VERIFICATION_INVALID"
	CodeUserPasswordIncorrect      = "USER_PASSWORD_INCORRECT"
	CodeUserPasswordSame           = "USER_PASSWORD_SAME"
	CodeUserDeleteFirstSuperuser   = "USER_DELETE_FIRST_SUPERUSER"
	CodeUserDeleteGuardian         = "USER_DELETE_GUARDIAN"
	CodeUserGuardianNotFound       = "USER_GUARDIAN_NOT_FOUND"
	CodeUserInsufficientPrivileges = "USER_INSUFFICIENT_PRIVILEGES"
	CodeUserSuperuserSelfDemote    = "USER_SUPERUSER_SELF_DEMOTE"
	CodeUserDeleteSelfForbidden    = "USER_DELETE_SELF_FORBIDDEN"
)

const DefaultMessage = "Произошла непредвиденная ошибка"

var messages = map[string]string{
	CodePositionExists:           "Должность с таким названием уже существует",
	CodePositionNotFound:         "Должность не найдена",
	CodePositionDefaultProtected: "Системная должность защищена от изменений",

	CodePersonExists:      "Сотрудник с таким именем уже существует",
	CodePersonNotFound:    "Сотрудник не найден",
	CodePersonPhoneExists: "Этот номер телефона уже используется",
	CodePersonEmailExists: "Этот email уже используется",

	CodePersonImageNotFound: "Фотография сотрудника не найдена",

	CodeNewsNotFound:             "Новость не найдена",
	CodeNewsForbidden:            "Недостаточно прав для этого действия",
	CodeNewsOwnerNotFound:        "Автор не найден",
	CodeNewsOwnerChangeForbidden: "Только администраторы могут менять автора новости",

	CodeNewsImageNotFound:     "Изображение не найдено",
	CodeNewsImageInvalidOrder: "Неверный порядок изображения",

	CodeDocumentNotFound:     "Документ не найден",
	CodeDocumentFileNotFound: "Файл документа не найден",
	CodeDocumentForbidden:    "Недостаточно прав для этого действия",

	CodeCategoryNotFound:  "Категория не найдена",
	CodeCategoryExists:    "Категория с таким названием уже существует",
	CodeCategoryForbidden: "Недостаточно прав для этого действия",
	CodeCategoryInvalidID: "Неверный формат ID категории",

	CodeOrgCardNotFound: "Карточка организации не найдена",
	CodeOrgCardExists:   "Карточка организации уже существует",

	CodeAuthInvalidCredentials: "Неверный email или пароль",
	CodeAuthInactiveUser:       "Ваш аккаунт неактивен",
	CodeAuthInvalidToken:       "Недействительный токен",
	CodeAuthUserNotFound:       "Пользователь не найден",

	CodeUserNotFound:               "Пользователь не найден",
	CodeUserEmailExists:            "Пользователь с таким email уже существует",
	CodeUserNameExists:             "Пользователь с таким именем уже существует",
	CodeUserSuperuserRequired:      "Только администраторы могут выполнить это действие",
	CodeUserEmailChangeForbidden:   "Email нельзя изменить через этот интерфейс",
	CodeUserEmailSame:              "Это уже ваш текущий email",
	CodeUserEmailNotSet:            "Email не установлен",
	CodeUserVerificationInvalid:    "Неверный или просроченный код подтверждения",
	CodeUserPasswordIncorrect:      "Неверный текущий пароль",
	CodeUserPasswordSame:           "Новый пароль должен отличаться от текущего",
	CodeUserDeleteFirstSuperuser:   "Системный аккаунт администратора нельзя удалить",
	CodeUserDeleteGuardian:         "Системный аккаунт Guardian нельзя удалить",
	CodeUserGuardianNotFound:       "Системный пользователь Guardian не найден",
	CodeUserInsufficientPrivileges: "Недостаточно прав",
	CodeUserSuperuserSelfDemote:    "Нельзя снять с себя права администратора",
	CodeUserDeleteSelfForbidden:    "Нельзя удалить свой собственный аккаунт",
}

// Message returns the user-facing text for an API error code.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return DefaultMessage
}

// FromCode builds an AppError for an API error code. The status is inferred
// from the code suffix when the caller does not know it.
func FromCode(code string) *AppError {
	return New(code, Message(code), statusForCode(code))
}

func statusForCode(code string) int {
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"):
		return http.StatusConflict
	case strings.HasSuffix(code, "_FORBIDDEN"),
		strings.HasSuffix(code, "_PROTECTED"),
		strings.HasSuffix(code, "_REQUIRED"),
		strings.HasSuffix(code, "_PRIVILEGES"),
		strings.HasSuffix(code, "_SELF_DEMOTE"),
		code == CodeUserDeleteFirstSuperuser,
		code == CodeUserDeleteGuardian:
		return http.StatusForbidden
	case strings.HasPrefix(code, "AUTH_"):
		return http.StatusUnauthorized
	case code == CodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
