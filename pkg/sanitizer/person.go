package sanitizer

import "strings"

const nameHyphen = "-"

// splitNameSegments splits a surname on its single allowed hyphen. ok is false
// when there are more than two segments or any segment is empty.
func splitNameSegments(s string) (segments []string, ok bool) {
	segments = strings.Split(s, nameHyphen)
	if len(segments) > 2 {
		return nil, false
	}
	for _, seg := range segments {
		if seg == "" {
			return nil, false
		}
	}
	return segments, true
}

// IsValidPersonName reports whether value is a single name part made of
// letters. With allowHyphen, one inner hyphen joining two letter segments is
// accepted as well ("Anne-Marie", but not "-Marie" or "A-B-C").
func IsValidPersonName(value string, allowHyphen bool) bool {
	trimmed := trim(value)
	if trimmed == "" || hasInnerWhitespace(trimmed) {
		return false
	}

	if !allowHyphen {
		return isLetters(trimmed)
	}

	segments, ok := splitNameSegments(trimmed)
	if !ok {
		return false
	}
	for _, seg := range segments {
		if !isLetters(seg) {
			return false
		}
	}
	return true
}

// NormalizePersonName capitalizes each name segment: "MARY" becomes "Mary",
// "anne-marie" becomes "Anne-Marie". Inner capitals are not preserved
// ("McDonald" becomes "Mcdonald"). Multi-token input and malformed hyphenation
// are returned trimmed but otherwise unchanged.
func NormalizePersonName(value string, allowHyphen bool) string {
	trimmed := trim(value)
	if trimmed == "" || hasInnerWhitespace(trimmed) {
		return trimmed
	}

	if !allowHyphen {
		return capitalize(trimmed)
	}

	segments, ok := splitNameSegments(trimmed)
	if !ok {
		return trimmed
	}
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}
	return strings.Join(segments, nameHyphen)
}
