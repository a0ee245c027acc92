package risk

import (
	"regexp"
	"strings"
)

// lexicon is an immutable set of keyword/phrase matchers compiled once
// at engine construction.
type lexicon struct {
	entries []lexiconEntry
}

type lexiconEntry struct {
	term string
	re   *regexp.Regexp
}

// newLexicon compiles one case-insensitive, boundary-anchored regex per
// term. Terms are matched as whole words or phrases, never inside a
// longer word ("all" must not hit "really").
func newLexicon(terms []string) *lexicon {
	entries := make([]lexiconEntry, 0, len(terms))
	for _, t := range terms {
		entries = append(entries, lexiconEntry{
			term: t,
			re:   regexp.MustCompile(boundaryPattern(t)),
		})
	}
	return &lexicon{entries: entries}
}

// countDistinct returns how many distinct lexicon entries occur in text.
// Repeated occurrences of the same entry count once.
func (l *lexicon) countDistinct(text string) int {
	n := 0
	for _, e := range l.entries {
		if e.re.MatchString(text) {
			n++
		}
	}
	return n
}

// matches returns the distinct entries present in text, in lexicon order.
func (l *lexicon) matches(text string) []string {
	var out []string
	for _, e := range l.entries {
		if e.re.MatchString(text) {
			out = append(out, e.term)
		}
	}
	return out
}

// boundaryPattern quotes the term and anchors it on word boundaries.
// A \b is only valid next to a word character, so it is dropped on
// sides that start or end with punctuation (e.g. "100%").
func boundaryPattern(term string) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if startsWithWordChar(term) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(term))
	if endsWithWordChar(term) {
		b.WriteString(`\b`)
	}
	return b.String()
}

func startsWithWordChar(s string) bool {
	return s != "" && isWordChar(s[0])
}

func endsWithWordChar(s string) bool {
	return s != "" && isWordChar(s[len(s)-1])
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Detector lexicons. These are process-wide constants: loaded once,
// never mutated, shared freely across concurrent callers.
var (
	// Absolutist / overcertainty phrasing, the cheapest observable proxy
	// for unverified claims in generated text.
	hallucinationTerms = []string{
		"definitely",
		"certainly",
		"absolutely",
		"without doubt",
		"without any doubt",
		"for sure",
		"guaranteed",
		"proven fact",
		"scientific fact",
		"everyone knows",
		"experts agree",
		"studies show",
		"100%",
		"always works",
		"never fails",
		"undeniably",
		"unquestionably",
	}

	// Sweeping quantifiers and generalizations.
	biasTerms = []string{
		"always",
		"never",
		"all",
		"none",
		"everyone",
		"nobody",
		"no one",
		"every single",
		"obviously",
		"clearly",
		"common sense",
	}

	// Explicit toxic/offensive vocabulary. Conservative by design: every
	// flagged term is inspectable.
	toxicityTerms = []string{
		"hate",
		"stupid",
		"idiot",
		"moron",
		"dumb",
		"pathetic",
		"worthless",
		"disgusting",
		"garbage",
		"trash",
		"awful",
		"horrible",
		"terrible",
		"worst",
	}

	// Urgency/pressure tactics and guarantee-of-gain phrasing.
	fraudTerms = []string{
		"guaranteed",
		"free money",
		"limited time",
		"act now",
		"call now",
		"click here now",
		"risk-free",
		"no risk",
		"zero risk",
		"get rich quick",
		"100% returns",
		"double your money",
		"claim your prize",
		"instant approval",
		"urgent action",
	}
)
