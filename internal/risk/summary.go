package risk

import (
	"fmt"
	"strings"
)

// buildSummary renders one explanatory sentence from the computed
// levels. It is a pure function of the levels and the PII verdict, in
// fixed dimension order: hallucination, bias, toxicity, fraud, PII.
func buildSummary(a *Assessment) string {
	var concerns []string

	switch a.HallucinationRisk {
	case LevelHigh:
		concerns = append(concerns, "high hallucination risk (unverified claims or excessive certainty)")
	case LevelMedium:
		concerns = append(concerns, "moderate hallucination risk (some unsupported statements)")
	}

	switch a.BiasRisk {
	case LevelHigh:
		concerns = append(concerns, "significant bias (absolute statements or loaded language)")
	case LevelMedium:
		concerns = append(concerns, "some bias detected")
	}

	switch a.ToxicityRisk {
	case LevelHigh:
		concerns = append(concerns, "toxic or offensive content")
	case LevelMedium:
		concerns = append(concerns, "potentially offensive language")
	}

	switch a.FraudRisk {
	case LevelHigh:
		concerns = append(concerns, "multiple fraud indicators (urgent language, guarantees, or pressure tactics)")
	case LevelMedium:
		concerns = append(concerns, "some fraud-related patterns")
	}

	if a.PIILeak {
		concerns = append(concerns, "personally identifiable information (emails, phone numbers, or similar)")
	}

	switch len(concerns) {
	case 0:
		return "Analysis complete. Content appears safe and appropriate with no significant risks detected."
	case 1:
		return fmt.Sprintf("Analysis identified %s. Content review recommended.", concerns[0])
	case 2:
		return fmt.Sprintf("Analysis identified %s and %s. Careful review recommended.", concerns[0], concerns[1])
	default:
		list := strings.Join(concerns[:len(concerns)-1], ", ") + ", and " + concerns[len(concerns)-1]
		return fmt.Sprintf("Multiple concerns detected: %s. Thorough content review strongly recommended.", list)
	}
}
