package sanitizer

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	PhonePrefix = "+7"

	phoneRegion         = "RU"
	nationalPhoneDigits = 10
)

var ErrInvalidPhone = errors.New("invalid phone number")

// PhoneDigits returns the ASCII digits of value in their original order.
func PhoneDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// nationalDigits drops a leading country (7) or trunk (8) prefix.
func nationalDigits(value string) string {
	digits := PhoneDigits(value)
	if strings.HasPrefix(digits, "7") || strings.HasPrefix(digits, "8") {
		return digits[1:]
	}
	return digits
}

// FormatPhone masks raw keystrokes as "+7 (AAA) BBB-CC-DD", emitting only the
// groups that already have digits. Extra digits beyond the national number
// are dropped.
func FormatPhone(value string) string {
	digits := nationalDigits(value)
	if len(digits) > nationalPhoneDigits {
		digits = digits[:nationalPhoneDigits]
	}

	n := len(digits)
	switch {
	case n == 0:
		return PhonePrefix
	case n <= 3:
		return PhonePrefix + " (" + digits
	case n <= 6:
		return PhonePrefix + " (" + digits[:3] + ") " + digits[3:]
	case n <= 8:
		return PhonePrefix + " (" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	default:
		return PhonePrefix + " (" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:8] + "-" + digits[8:]
	}
}

// IsValidPhone reports whether value holds a complete national number and
// was entered with the "+7" prefix. A bare 10-digit string is rejected.
func IsValidPhone(value string) bool {
	return len(nationalDigits(value)) == nationalPhoneDigits && strings.HasPrefix(value, PhonePrefix)
}

// FormatPhoneDisplay renders a stored number for tables and cards. Numbers
// that are neither 10 digits nor 11 digits with a 7/8 prefix are returned as is.
func FormatPhoneDisplay(value string) string {
	digits := PhoneDigits(value)

	switch {
	case len(digits) == 11 && digits[0] == '8':
		return "8 " + groupNational(digits[1:])
	case len(digits) == 11 && digits[0] == '7':
		return PhonePrefix + " " + groupNational(digits[1:])
	case len(digits) == 10:
		return groupNational(digits)
	}
	return value
}

func groupNational(d string) string {
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:8] + "-" + d[8:]
}

// PhoneToE164 converts a value accepted by IsValidPhone into E.164 form.
func PhoneToE164(value string) (string, error) {
	if !IsValidPhone(value) {
		return "", ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(PhonePrefix+nationalDigits(value), phoneRegion)
	if err != nil {
		return "", errors.Join(ErrInvalidPhone, err)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
