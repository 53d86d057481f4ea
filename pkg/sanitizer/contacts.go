package sanitizer

import (
	"bytes"
	"encoding/json"
)

type ContactPhone struct {
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// UnmarshalJSON also reads the legacy form, where older organization cards
// stored each phone as a plain string. The string becomes the value as is,
// without a description.
func (p *ContactPhone) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*p = ContactPhone{Value: value}
		return nil
	}

	type contactPhone ContactPhone
	var v contactPhone
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = ContactPhone(v)
	return nil
}

// NormalizeContactPhones trims every entry and drops the ones without a number.
func NormalizeContactPhones(phones []ContactPhone) []ContactPhone {
	out := make([]ContactPhone, 0, len(phones))
	for _, p := range phones {
		value := trim(p.Value)
		if value == "" {
			continue
		}
		out = append(out, ContactPhone{
			Value:       value,
			Description: NormalizeOptionalPtr(p.Description),
		})
	}
	return out
}
