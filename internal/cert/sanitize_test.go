package cert

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ada Lovelace", "Ada_Lovelace"},
		{"keeps separators", "intro-to_ml.v2", "intro-to_ml.v2"},
		{"collapses whitespace", "  a \t  b\nc ", "a_b_c"},
		{"strips punctuation", "ML: from zero to hero!", "ML_from_zero_to_hero"},
		{"trailing period kept", "Bob X.", "Bob_X."},
		{"decomposes accents", "café au lait", "cafe_au_lait"},
		{"empty", "", "unknown"},
		{"only junk", "!!!???", "unknown"},
		{"date", "2024-01-10", "2024-01-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeSafety(t *testing.T) {
	const safe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_.-"
	inputs := []string{
		"normal name",
		"sláinte 🎓 cert/|\\<>:\"?*",
		strings.Repeat("x", 500),
		strings.Repeat("long word ", 100),
		"\x00\x1f control chars",
	}
	for _, in := range inputs {
		got := Sanitize(in)
		if got == "" {
			t.Errorf("Sanitize(%q) returned empty string", in)
		}
		if n := len([]rune(got)); n > 200 {
			t.Errorf("Sanitize(%q) length = %d, want <= 200", in, n)
		}
		for _, r := range got {
			if !strings.ContainsRune(safe, r) {
				t.Errorf("Sanitize(%q) contains unsafe rune %q", in, r)
			}
		}
	}
}
