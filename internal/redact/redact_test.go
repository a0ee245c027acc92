package redact

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no pii", "nothing sensitive here", "nothing sensitive here"},
		{"email", "write to jane@example.org today", "write to [REDACTED_EMAIL] today"},
		{"phone", "call 555-123-4567 now", "call [REDACTED_PHONE] now"},
		{"ssn", "ssn is 123-45-6789", "ssn is [REDACTED_SSN]"},
		{"card before phone", "card 4111 1111 1111 1111", "card [REDACTED_CARD]"},
		{"mixed", "jane@example.org / 555-123-4567", "[REDACTED_EMAIL] / [REDACTED_PHONE]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf("contact=%s", "bob@example.com")
	if strings.Contains(got, "bob@example.com") {
		t.Fatalf("Sprintf leaked the address: %q", got)
	}
	if !strings.Contains(got, "[REDACTED_EMAIL]") {
		t.Fatalf("Sprintf did not mask: %q", got)
	}
}
