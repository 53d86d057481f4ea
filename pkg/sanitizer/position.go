package sanitizer

import "unicode"

var positionNamePipeline = Pipeline{
	TrimAndNormalize,
	upperFirst,
}

// IsValidPositionName reports whether value is a job title made of letters
// separated by whitespace. Digits, hyphens and punctuation are rejected, and
// so is a title that is empty after trimming.
func IsValidPositionName(value string) bool {
	collapsed := TrimAndNormalize(value)
	if collapsed == "" {
		return false
	}
	for _, r := range collapsed {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NormalizePositionName trims the title, collapses inner whitespace and
// upper-cases the first letter. Unlike person names the rest of the title keeps
// its case, so "IT директор" stays "IT директор".
func NormalizePositionName(value string) string {
	return positionNamePipeline.Apply(value)
}
