package sanitizer

import (
	"errors"
	"strings"
	"testing"
)

func TestPhoneDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "masked number", input: "+7 (999) 123-45-67", want: "79991234567"},
		{name: "letters dropped", input: "abc-123-def", want: "123"},
		{name: "non-ascii digits dropped", input: "٣12", want: "12"},
		{name: "empty", input: "", want: ""},
		{name: "only special characters", input: "()---   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhoneDigits(tt.input)
			if got != tt.want {
				t.Errorf("PhoneDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "+7"},
		{name: "no digits", input: "abc", want: "+7"},
		{name: "only country code", input: "7", want: "+7"},
		{name: "only trunk prefix", input: "8", want: "+7"},
		{name: "one digit", input: "9", want: "+7 (9"},
		{name: "area code", input: "999", want: "+7 (999"},
		{name: "first subscriber digit", input: "9991", want: "+7 (999) 1"},
		{name: "six digits", input: "999123", want: "+7 (999) 123"},
		{name: "seven digits", input: "9991234", want: "+7 (999) 123-4"},
		{name: "eight digits", input: "99912345", want: "+7 (999) 123-45"},
		{name: "nine digits", input: "999123456", want: "+7 (999) 123-45-6"},
		{name: "complete national number", input: "9991234567", want: "+7 (999) 123-45-67"},
		{name: "leading seven stripped", input: "79991234567", want: "+7 (999) 123-45-67"},
		{name: "leading eight stripped", input: "89991234567", want: "+7 (999) 123-45-67"},
		{name: "other leading digit kept and truncated", input: "99991234567", want: "+7 (999) 912-34-56"},
		{name: "already formatted", input: "+7 (999) 123-45-67", want: "+7 (999) 123-45-67"},
		{name: "extra digits dropped", input: "+7 (999) 123-45-67 ext 89", want: "+7 (999) 123-45-67"},
		{name: "national number starting with seven", input: "+7 (7", want: "+7 (7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPhone(tt.input)
			if got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhone_TypingIsPrefixStable(t *testing.T) {
	inputs := []string{
		"9991234567",
		"79991234567",
		"89991234567",
		"77777777777777",
		"+7 (912) 000-11-22 and more digits 345",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			prev := FormatPhone("")
			for i := 1; i <= len(input); i++ {
				next := FormatPhone(input[:i])
				if !strings.HasPrefix(next, prev) {
					t.Fatalf("typing %q: mask %q does not extend previous mask %q", input[:i], next, prev)
				}
				prev = next
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "compact with prefix", input: "+79991234567", want: true},
		{name: "masked", input: "+7 (999) 123-45-67", want: true},
		{name: "missing prefix", input: "9991234567", want: false},
		{name: "nine digits", input: "+7999123456", want: false},
		{name: "trunk prefix instead of +7", input: "89991234567", want: false},
		{name: "too many digits", input: "+7 (999) 123-45-678", want: false},
		{name: "leading space", input: " +79991234567", want: false},
		{name: "prefix only", input: "+7", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidPhone(tt.input)
			if got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhoneDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trunk prefix", input: "89991234567", want: "8 (999) 123-45-67"},
		{name: "country code", input: "+7 999 123 45 67", want: "+7 (999) 123-45-67"},
		{name: "national only", input: "9991234567", want: "(999) 123-45-67"},
		{name: "short number kept", input: "12-34-5", want: "12-34-5"},
		{name: "foreign number kept", input: "+1 999 123 45 67", want: "+1 999 123 45 67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPhoneDisplay(tt.input)
			if got != tt.want {
				t.Errorf("FormatPhoneDisplay(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneToE164(t *testing.T) {
	got, err := PhoneToE164("+7 (999) 123-45-67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+79991234567" {
		t.Errorf("PhoneToE164() = %q, want %q", got, "+79991234567")
	}

	for _, input := range []string{"9991234567", "+7 (999) 123", ""} {
		if _, err := PhoneToE164(input); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("PhoneToE164(%q) error = %v, want ErrInvalidPhone", input, err)
		}
	}
}
