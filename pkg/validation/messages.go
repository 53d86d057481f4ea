package validation

import (
	apperrors "orgdesk/pkg/errors"
	"orgdesk/pkg/locale"
)

// Catalog keys, most specific first when a message is looked up:
//
//	<Form>.<field>.<tag>   one form only
//	<field>.<tag>          any form with that field
//	requisite.<tag>        fields that have a label.<field> entry
//	<tag>                  everything else; {0} is the tag parameter
var catalogs = map[string]map[string]string{
	locale.RU: {
		"required":  "Обязательное поле",
		"min":       "Минимум {0} символов",
		"max":       "Максимум {0} символов",
		"len":       "Должно быть {0} символов",
		"email":     "Неверный email",
		"eqfield":   "Пароли не совпадают",
		"nefield":   apperrors.Message(apperrors.CodeUserPasswordSame),
		"oneof":     "Недопустимое значение",
		"unique":    "Значения не должны повторяться",
		"latitude":  "Неверная широта",
		"longitude": "Неверная долгота",

		TagUUID:         "Неверный формат UUID",
		TagPhone:        "Неверный формат телефона",
		TagSurname:      "Фамилия: одно слово, без пробелов, допускается одно тире",
		TagPersonName:   "Имя: одно слово, без пробелов",
		TagPositionName: "Допускаются только буквы и пробелы, без тире",
		TagDigits:       "Допускаются только цифры",
		TagTimeRange:    "Неверный формат времени. Используйте формат ЧЧ:ММ-ЧЧ:ММ (например, 09:00-18:00)",
		TagTimeOrder:    "Время окончания должно быть больше времени начала",

		"requisite.digits": "{0} должен содержать только цифры",
		"requisite.len":    "{0} должен содержать {1} цифр",
		"requisite.max":    "{0} должен содержать не более {1} цифр",

		"label.inn":          "ИНН",
		"label.kpp":          "КПП",
		"label.okpo":         "ОКПО",
		"label.ogrn":         "ОГРН",
		"label.okfs":         "ОКФС",
		"label.okogu":        "ОКОГУ",
		"label.okopf":        "ОКОПФ",
		"label.oktmo":        "ОКТМО",
		"label.okato":        "ОКАТО",
		"label.bank_account": "Расчётный счёт",
		"label.bank_bik":     "БИК",

		"last_name.required":             "Фамилия обязательна",
		"first_name.required":            "Имя обязательно",
		"middle_name.required":           "Имя обязательно",
		"phone.required":                 "Телефон обязателен",
		"position_id.required":           "Должность обязательна",
		"name.required":                  "Название обязательно",
		"OrganizationCard.name.required": "Укажите название организации",
		"OrganizationCard.email.email":   "Неверный формат email",
		"nickname.required":              "Псевдоним обязателен",
		"title.required":                 "Название обязательно",
		"title.min":                      "Название обязательно",
		"content.required":               "Текст обязателен",
		"content.min":                    "Текст обязателен",
		"password.required":              "Пароль обязателен",
		"Login.password.min":             "Пароль должен быть минимум 8 символов",
		"UserUpdate.password.min":        "Пароль должен быть минимум 8 символов",
		"confirm_password.required":      "Подтвердите пароль",
		"token.required":                 "Токен обязателен",
		"current_password.required":      "Текущий пароль обязателен",
		"code.required":                  "Код должен быть 4 символа",
		"code.len":                       "Код должен быть 4 символа",
		"email.required":                 "Неверный email",
		"username.required":              "Неверный email",
		"new_email.required":             "Неверный email",
		"new_password.required":          "Пароль обязателен",
		"day.required":                   "Неверный день недели",
		"day.oneof":                      "Неверный день недели",
		"timeRange.required":             "Неверный формат времени. Используйте формат ЧЧ:ММ-ЧЧ:ММ (например, 09:00-18:00)",
		"days.unique":                    "Каждый день недели можно указать только один раз",
	},
	locale.EN: {
		"required":  "This field is required",
		"min":       "At least {0} characters",
		"max":       "At most {0} characters",
		"len":       "Must be {0} characters",
		"email":     "Invalid email",
		"eqfield":   "Passwords do not match",
		"nefield":   "The new password must differ from the current one",
		"oneof":     "Value is not allowed",
		"unique":    "Values must not repeat",
		"latitude":  "Invalid latitude",
		"longitude": "Invalid longitude",

		TagUUID:         "Invalid UUID format",
		TagPhone:        "Invalid phone format",
		TagSurname:      "Last name: one word, no spaces, one hyphen allowed",
		TagPersonName:   "Name: one word, no spaces",
		TagPositionName: "Only letters and spaces are allowed, no hyphens",
		TagDigits:       "Only digits are allowed",
		TagTimeRange:    "Invalid time format. Use HH:MM-HH:MM (for example, 09:00-18:00)",
		TagTimeOrder:    "End time must be after start time",

		"requisite.digits": "{0} must contain digits only",
		"requisite.len":    "{0} must contain {1} digits",
		"requisite.max":    "{0} must contain at most {1} digits",

		"label.inn":          "INN",
		"label.kpp":          "KPP",
		"label.okpo":         "OKPO",
		"label.ogrn":         "OGRN",
		"label.okfs":         "OKFS",
		"label.okogu":        "OKOGU",
		"label.okopf":        "OKOPF",
		"label.oktmo":        "OKTMO",
		"label.okato":        "OKATO",
		"label.bank_account": "Bank account",
		"label.bank_bik":     "BIK",

		"last_name.required":             "Last name is required",
		"first_name.required":            "First name is required",
		"middle_name.required":           "Middle name is required",
		"phone.required":                 "Phone is required",
		"position_id.required":           "Position is required",
		"name.required":                  "Name is required",
		"OrganizationCard.name.required": "Enter the organization name",
		"OrganizationCard.email.email":   "Invalid email format",
		"nickname.required":              "Nickname is required",
		"title.required":                 "Title is required",
		"title.min":                      "Title is required",
		"content.required":               "Text is required",
		"content.min":                    "Text is required",
		"password.required":              "Password is required",
		"Login.password.min":             "Password must be at least 8 characters",
		"UserUpdate.password.min":        "Password must be at least 8 characters",
		"confirm_password.required":      "Confirm the password",
		"token.required":                 "Token is required",
		"current_password.required":      "Current password is required",
		"code.required":                  "The code must be 4 characters",
		"code.len":                       "The code must be 4 characters",
		"email.required":                 "Invalid email",
		"username.required":              "Invalid email",
		"new_email.required":             "Invalid email",
		"new_password.required":          "Password is required",
		"day.required":                   "Invalid day of the week",
		"day.oneof":                      "Invalid day of the week",
		"timeRange.required":             "Invalid time format. Use HH:MM-HH:MM (for example, 09:00-18:00)",
		"days.unique":                    "Each day of the week may appear only once",
	},
}

// translatedTags get the catalog lookup instead of the stock validator text.
var translatedTags = []string{
	"required", "min", "max", "len", "email", "eqfield", "nefield",
	"oneof", "unique", "latitude", "longitude", TagUUID,
	TagPhone, TagSurname, TagPersonName, TagPositionName, TagDigits, TagTimeRange, TagTimeOrder,
}
