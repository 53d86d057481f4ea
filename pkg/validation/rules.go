package validation

import (
	"github.com/go-playground/validator/v10"

	"orgdesk/pkg/sanitizer"
	"orgdesk/pkg/workhours"
)

const (
	TagPhone        = "ru_phone"
	TagSurname      = "surname"
	TagPersonName   = "person_name"
	TagPositionName = "position_name"
	TagDigits       = "digits"
	TagTimeRange    = "time_range"
	TagTimeOrder    = "time_order"
)

// TagUUID is the stock validator tag that accepts UUIDs in either letter case.
const TagUUID = "uuid_rfc4122"

var rules = map[string]validator.Func{
	TagPhone:        validatePhone,
	TagSurname:      validateSurname,
	TagPersonName:   validatePersonName,
	TagPositionName: validatePositionName,
	TagDigits:       validateDigits,
	TagTimeRange:    validateTimeRange,
	TagTimeOrder:    validateTimeOrder,
}

func validatePhone(fl validator.FieldLevel) bool {
	return sanitizer.IsValidPhone(fl.Field().String())
}

// Surnames may be double-barrelled ("Петров-Водкин").
func validateSurname(fl validator.FieldLevel) bool {
	return sanitizer.IsValidPersonName(fl.Field().String(), true)
}

func validatePersonName(fl validator.FieldLevel) bool {
	return sanitizer.IsValidPersonName(fl.Field().String(), false)
}

func validatePositionName(fl validator.FieldLevel) bool {
	return sanitizer.IsValidPositionName(fl.Field().String())
}

func validateDigits(fl validator.FieldLevel) bool {
	return sanitizer.IsDigits(fl.Field().String())
}

func validateTimeRange(fl validator.FieldLevel) bool {
	_, err := workhours.ParseTimeRange(fl.Field().String())
	return err == nil
}

// validateTimeOrder runs after time_range, so a malformed value never gets here
// in a tag chain; on its own it rejects it as well.
func validateTimeOrder(fl validator.FieldLevel) bool {
	r, err := workhours.ParseTimeRange(fl.Field().String())
	return err == nil && r.Ordered()
}
