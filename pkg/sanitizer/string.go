package sanitizer

func TrimAndNormalize(s string) string {
	return collapseWhitespace(trim(s))
}

func Trim(s string) string {
	return trim(s)
}

// NormalizeOptional returns nil for values that are empty after trimming.
func NormalizeOptional(s string) *string {
	trimmed := trim(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeOptionalPtr is NormalizeOptional for fields that may be absent.
func NormalizeOptionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return NormalizeOptional(*s)
}
