package model

import (
	"strings"

	"github.com/google/uuid"
)

// canonicalUUID rewrites a parseable UUID in its lower-case hyphenated form.
// Anything else is returned trimmed so the uuid tag can reject it.
func canonicalUUID(s string) string {
	s = strings.TrimSpace(s)
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return id.String()
}

// canonicalUUIDPtr also clears a blank optional reference.
func canonicalUUIDPtr(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := canonicalUUID(*s)
	return &v
}

// ParseID parses a canonical form field into a UUID.
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}
