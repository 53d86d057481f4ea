package locale

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "empty", hint: "", want: RU},
		{name: "plain russian", hint: "ru", want: RU},
		{name: "english region", hint: "en-GB", want: EN},
		{name: "posix locale", hint: "en_US.UTF-8", want: EN},
		{name: "posix russian", hint: "ru_RU.UTF-8", want: RU},
		{name: "accept language", hint: "de-DE,en;q=0.8", want: EN},
		{name: "unsupported", hint: "ja", want: RU},
		{name: "garbage", hint: "!!!", want: RU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.hint); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported(RU) || !IsSupported(EN) {
		t.Error("ru and en must be supported")
	}
	if IsSupported("de") {
		t.Error("de must not be supported")
	}
}
