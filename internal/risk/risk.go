// Package risk implements the heuristic text-risk-scoring engine: five
// independent keyword/regex detectors, confidence estimation, and summary
// generation. An Engine is immutable after construction and safe for
// concurrent use.
package risk

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyText is returned by Analyze when the input is empty or
// whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Level is the three-value risk classification produced by each detector.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Valid reports whether l is one of the three defined levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// UnmarshalJSON rejects anything outside the closed LOW/MEDIUM/HIGH set.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lv := Level(s)
	if !lv.Valid() {
		return fmt.Errorf("invalid risk level %q", s)
	}
	*l = lv
	return nil
}

// Assessment is the complete verdict for one scoring call. It is created
// fresh per call and owned solely by the caller.
type Assessment struct {
	HallucinationRisk Level   `json:"hallucination_risk"`
	BiasRisk          Level   `json:"bias_risk"`
	ToxicityRisk      Level   `json:"toxicity_risk"`
	PIILeak           bool    `json:"pii_leak"`
	FraudRisk         Level   `json:"fraud_risk"`
	ConfidenceScore   float64 `json:"confidence_score"`
	Summary           string  `json:"summary"`
	ProcessingTimeMS  float64 `json:"processing_time_ms"`

	// PIILabels lists which PII pattern families matched (audit only,
	// not part of the wire contract).
	PIILabels []string `json:"-"`
}

// Thresholds define the match counts at which a detector escalates.
// A distinct-entry count below Medium is LOW, below High is MEDIUM,
// and at or above High is HIGH.
type Thresholds struct {
	Medium int
	High   int
}

// DefaultThresholds is the 0 / 1-2 / 3+ tiering.
var DefaultThresholds = Thresholds{Medium: 1, High: 3}

// Engine scores text against the compiled lexicons and PII patterns.
// All state is read-only after New.
type Engine struct {
	thresholds Thresholds

	hallucination *lexicon
	bias          *lexicon
	toxicity      *lexicon
	fraud         *lexicon
	pii           []piiPattern
}

// New builds an engine. Zero-value thresholds fall back to the defaults.
func New(t Thresholds) *Engine {
	if t.Medium <= 0 {
		t.Medium = DefaultThresholds.Medium
	}
	if t.High <= 0 {
		t.High = DefaultThresholds.High
	}
	return &Engine{
		thresholds:    t,
		hallucination: newLexicon(hallucinationTerms),
		bias:          newLexicon(biasTerms),
		toxicity:      newLexicon(toxicityTerms),
		fraud:         newLexicon(fraudTerms),
		pii:           piiPatterns,
	}
}

// Analyze scores one span of text and returns a complete assessment.
// It is a pure function of the input: identical text always yields
// identical levels, PII verdict, confidence, and summary.
func (e *Engine) Analyze(text string) (*Assessment, error) {
	start := time.Now()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}

	a := &Assessment{
		HallucinationRisk: e.detectHallucination(trimmed),
		BiasRisk:          e.detectBias(trimmed),
		ToxicityRisk:      e.detectToxicity(trimmed),
		FraudRisk:         e.detectFraud(trimmed),
	}
	a.PIILeak, a.PIILabels = e.detectPII(trimmed)

	a.ConfidenceScore = e.confidence(trimmed, a)
	a.Summary = buildSummary(a)
	a.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000.0

	return a, nil
}

// levelFor maps a distinct-entry match count onto the three tiers.
func (e *Engine) levelFor(count int) Level {
	switch {
	case count >= e.thresholds.High:
		return LevelHigh
	case count >= e.thresholds.Medium:
		return LevelMedium
	default:
		return LevelLow
	}
}
