package risk

import (
	"strings"
	"testing"
)

func TestConfidenceBounds(t *testing.T) {
	e := newTestEngine(t)

	texts := []string{
		"x",
		"Hello, how can I help you today?",
		"Definitely works, absolutely guaranteed, a proven fact. Act now, limited time, risk-free! I hate this stupid, awful thing. Everyone agrees it always rains and never snows.",
		strings.Repeat("an unremarkable sentence about nothing in particular ", 30),
		"Contact me at john.doe@example.com or 555-123-4567.",
	}

	for _, text := range texts {
		a, err := e.Analyze(text)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", text, err)
		}
		if a.ConfidenceScore < 0.0 || a.ConfidenceScore > 1.0 {
			t.Fatalf("confidence_score = %f for %q, want [0,1]", a.ConfidenceScore, text)
		}
		if a.ConfidenceScore < confidenceBase || a.ConfidenceScore > confidenceCeiling {
			t.Fatalf("confidence_score = %f for %q, want [%f, %f]",
				a.ConfidenceScore, text, confidenceBase, confidenceCeiling)
		}
	}
}

func TestConfidenceDeterministic(t *testing.T) {
	e := newTestEngine(t)

	text := "a moderately interesting sentence"
	first, err := e.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := e.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if first.ConfidenceScore != second.ConfidenceScore {
		t.Fatalf("confidence varies across calls: %f vs %f", first.ConfidenceScore, second.ConfidenceScore)
	}
}

// A long neutral text must score strictly higher than a short one: the
// length bonus (0.05 per tier) always exceeds the hash variation span.
func TestConfidenceLengthBonus(t *testing.T) {
	e := newTestEngine(t)

	short, err := e.Analyze("a short neutral remark")
	if err != nil {
		t.Fatalf("Analyze short: %v", err)
	}
	long, err := e.Analyze(strings.Repeat("a perfectly neutral remark about the weather today ", 20))
	if err != nil {
		t.Fatalf("Analyze long: %v", err)
	}

	if long.ConfidenceScore <= short.ConfidenceScore {
		t.Fatalf("long text confidence %f should exceed short text confidence %f",
			long.ConfidenceScore, short.ConfidenceScore)
	}
}

func TestConfidenceAgreementBonus(t *testing.T) {
	e := newTestEngine(t)

	// All four detectors LOW: agreement bonus applies.
	agreed := e.confidence("neutral", &Assessment{
		HallucinationRisk: LevelLow,
		BiasRisk:          LevelLow,
		ToxicityRisk:      LevelLow,
		FraudRisk:         LevelLow,
	})

	// Maximally mixed signals: no agreement bonus.
	mixed := e.confidence("neutral", &Assessment{
		HallucinationRisk: LevelHigh,
		BiasRisk:          LevelMedium,
		ToxicityRisk:      LevelLow,
		FraudRisk:         LevelMedium,
	})

	if agreed <= mixed {
		t.Fatalf("agreement should raise confidence: agreed=%f mixed=%f", agreed, mixed)
	}
}

func TestTextVariationRange(t *testing.T) {
	for _, text := range []string{"a", "b", "some longer input", strings.Repeat("z", 1000)} {
		v := textVariation(text)
		if v < 0 || v >= 0.05 {
			t.Fatalf("textVariation(%q) = %f, want [0, 0.05)", text, v)
		}
	}
}
