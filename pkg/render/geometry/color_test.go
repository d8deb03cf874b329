package geometry

import "testing"

func TestDarken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#2ecc71", "#208e4f"},
		{"#c0392b", "#86271e"},
		{"#ffffff", "#b2b2b2"},
		{"#fff", "#b2b2b2"},
		{"#000000", "#000000"},
		{"", DarkenFallback},
		{"green", DarkenFallback},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Darken(tt.in, DarkenFactor); got != tt.want {
				t.Errorf("Darken(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDarkenIdentity(t *testing.T) {
	if got := Darken("#3498db", 1); got != "#3498db" {
		t.Errorf("Darken with factor 1 = %s", got)
	}
}
