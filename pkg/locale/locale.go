// Package locale picks the language of user-facing messages.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	RU = "ru"
	EN = "en"

	Default = RU
)

// Supported lists the message languages in preference order; the first one
// wins when nothing matches.
var Supported = []string{RU, EN}

var matcher = language.NewMatcher([]language.Tag{language.Russian, language.English})

// Match resolves a locale hint to one of Supported. The hint may be a BCP 47
// tag ("en-GB"), an Accept-Language list ("en-US,en;q=0.9") or a POSIX locale
// ("ru_RU.UTF-8").
func Match(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return Default
	}

	if i := strings.IndexAny(hint, ".@"); i >= 0 {
		hint = hint[:i]
	}
	hint = strings.ReplaceAll(hint, "_", "-")

	tags, _, err := language.ParseAcceptLanguage(hint)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported[index]
}

// IsSupported reports whether code is one of Supported.
func IsSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}
