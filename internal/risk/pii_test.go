package risk

import (
	"reflect"
	"testing"
)

func TestDetectPII(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		text   string
		want   bool
		labels []string
	}{
		{"email", "Contact me at john.doe@example.com", true, []string{"email"}},
		{"phone dashes", "Call me at 555-123-4567", true, []string{"phone"}},
		{"phone dots", "Reach us on 555.123.4567", true, []string{"phone"}},
		{"phone bare", "My number is 5551234567", true, []string{"phone"}},
		{"ssn", "SSN 123-45-6789 on file", true, []string{"ssn"}},
		{"credit card grouped", "Card 4111 1111 1111 1111 expires soon", true, []string{"credit_card"}},
		{"credit card contiguous", "4111111111111111", true, []string{"credit_card"}},
		{"street address", "Ship to 123 Main St before Friday", true, []string{"address"}},
		{"benign", "Hello, how can I help you today?", false, nil},
		{"plain numbers", "The year 2024 had 365 days", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, labels := e.detectPII(tt.text)
			if got != tt.want {
				t.Fatalf("detectPII(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if !reflect.DeepEqual(labels, tt.labels) {
				t.Fatalf("detectPII(%q) labels = %v, want %v", tt.text, labels, tt.labels)
			}
		})
	}
}

func TestAnalyzePIIVerdict(t *testing.T) {
	e := newTestEngine(t)

	a, err := e.Analyze("Contact me at john.doe@example.com")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !a.PIILeak {
		t.Fatal("pii_leak = false, want true")
	}
	if a.Summary == "" {
		t.Fatal("summary is empty")
	}
}
