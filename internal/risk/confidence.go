package risk

import (
	"hash/fnv"
	"strings"
)

const (
	confidenceBase    = 0.75
	confidenceCap     = 0.98
	confidenceCeiling = 0.99
)

// confidence blends input length and detector agreement into a scalar in
// [0.75, 0.99]. Longer text and internally consistent verdicts score
// higher. The final term is a deterministic hash of the text, so the
// score never reports total certainty yet stays reproducible for
// identical input.
func (e *Engine) confidence(text string, a *Assessment) float64 {
	score := confidenceBase

	words := len(strings.Fields(text))
	switch {
	case words > 100:
		score += 0.10
	case words > 50:
		score += 0.05
	}

	levels := [4]Level{a.HallucinationRisk, a.BiasRisk, a.ToxicityRisk, a.FraudRisk}
	var high, low int
	for _, l := range levels {
		switch l {
		case LevelHigh:
			high++
		case LevelLow:
			low++
		}
	}
	switch {
	case high >= 3 || low >= 3:
		score += 0.10
	case high >= 2 || low >= 2:
		score += 0.05
	}

	// Regex PII hits are the most reliable signal in the battery.
	if a.PIILeak {
		score += 0.05
	}

	if score > confidenceCap {
		score = confidenceCap
	}

	score += textVariation(text)
	if score > confidenceCeiling {
		score = confidenceCeiling
	}
	return score
}

// textVariation maps the text onto [0, 0.05) so near-identical base
// scores still spread slightly. FNV keeps it deterministic per input.
func textVariation(text string) float64 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return float64(h.Sum32()%100) / 1000.0 * 0.5
}
