package risk

import "regexp"

// piiPattern pairs a pattern family label with its compiled regex.
type piiPattern struct {
	label string
	re    *regexp.Regexp
}

// piiPatterns is the fixed battery applied by detectPII. Recall is
// prioritized over precision: a 16-digit non-card number still counts.
var piiPatterns = []piiPattern{
	{"email", regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
	{"phone", regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
	{"ssn", regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b`)},
	{"credit_card", regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
	{"address", regexp.MustCompile(`(?i)\b\d{1,5}\s+(?:[A-Za-z]+\s+){1,3}(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|way|place|pl)\b`)},
}

// detectPII reports whether any PII pattern matches, plus the labels of
// the matching families. Every pattern is evaluated so the audit trail
// can name all families present, but the wire verdict is a simple OR.
// No redaction happens here; presence only.
func (e *Engine) detectPII(text string) (bool, []string) {
	var labels []string
	for _, p := range e.pii {
		if p.re.MatchString(text) {
			labels = append(labels, p.label)
		}
	}
	return len(labels) > 0, labels
}
