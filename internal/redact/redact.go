// Package redact masks PII in free-form strings before they reach logs
// or audit sinks. The scoring engine itself never redacts; only the
// observability path does.
package redact

import (
	"fmt"
	"regexp"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	cardRe  = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	ssnRe   = regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b`)
)

// String masks known PII patterns in s. The card pattern runs before
// the phone pattern so a 16-digit run is not half-eaten as a phone
// number first.
func String(s string) string {
	if s == "" {
		return s
	}

	out := s
	out = emailRe.ReplaceAllString(out, "[REDACTED_EMAIL]")
	out = cardRe.ReplaceAllString(out, "[REDACTED_CARD]")
	out = phoneRe.ReplaceAllString(out, "[REDACTED_PHONE]")
	out = ssnRe.ReplaceAllString(out, "[REDACTED_SSN]")
	return out
}

// Sprintf formats like fmt.Sprintf and redacts the result.
func Sprintf(format string, args ...interface{}) string {
	return String(fmt.Sprintf(format, args...))
}
