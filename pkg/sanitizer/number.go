package sanitizer

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsRequisite checks an optional organization requisite: empty is accepted,
// otherwise the value must be digits only with length within [minLen, maxLen].
func IsRequisite(s string, minLen, maxLen int) bool {
	s = trim(s)
	if s == "" {
		return true
	}
	return IsDigits(s) && len(s) >= minLen && len(s) <= maxLen
}
