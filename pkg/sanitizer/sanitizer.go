package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// isSpace is the whitespace set browsers strip from form input: Unicode
// spaces and the byte order mark. NEL (U+0085) is not whitespace there.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func hasInnerWhitespace(s string) bool {
	return strings.IndexFunc(s, isSpace) >= 0
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false

	for _, r := range s {
		if isSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}

	return b.String()
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// lower uses a fresh caser per call: cases.Caser keeps state and must not be
// shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

// upperFirst maps only the first rune so the result never grows ("ß" stays one
// rune), which keeps capitalization idempotent.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func capitalize(s string) string {
	return upperFirst(lower(s))
}
