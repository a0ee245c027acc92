package audit

import (
	"strings"
	"testing"

	"github.com/riskgate-ai/riskgate/internal/risk"
)

func TestBuildEventRedactsPreview(t *testing.T) {
	ev := BuildEvent(BuildParams{
		Decision:    DecisionScored,
		Text:        "Contact me at jane@example.org",
		PreviewMode: PreviewRedacted,
	})

	if strings.Contains(ev.TextPreview, "jane@example.org") {
		t.Fatalf("preview leaked PII: %q", ev.TextPreview)
	}
	if !strings.Contains(ev.TextPreview, "[REDACTED_EMAIL]") {
		t.Fatalf("preview not redacted: %q", ev.TextPreview)
	}
}

func TestBuildEventPreviewModes(t *testing.T) {
	text := "an ordinary sentence"

	off := BuildEvent(BuildParams{Decision: DecisionScored, Text: text, PreviewMode: PreviewOff})
	if off.TextPreview != "" {
		t.Fatalf("off mode produced a preview: %q", off.TextPreview)
	}

	full := BuildEvent(BuildParams{Decision: DecisionScored, Text: text, PreviewMode: PreviewFull})
	if full.TextPreview != text {
		t.Fatalf("full mode preview = %q, want %q", full.TextPreview, text)
	}
}

func TestBuildEventTruncatesPreview(t *testing.T) {
	long := strings.Repeat("a", 2*previewMaxLen)

	ev := BuildEvent(BuildParams{Decision: DecisionScored, Text: long, PreviewMode: PreviewFull})
	if len(ev.TextPreview) > previewMaxLen+len("…") {
		t.Fatalf("preview not truncated: %d bytes", len(ev.TextPreview))
	}
}

func TestBuildEventGeneratesRequestID(t *testing.T) {
	ev := BuildEvent(BuildParams{Decision: DecisionRejectedInput})
	if ev.RequestID == "" {
		t.Fatal("request ID not generated")
	}

	withID := BuildEvent(BuildParams{RequestID: "req-1", Decision: DecisionScored})
	if withID.RequestID != "req-1" {
		t.Fatalf("request ID = %q, want req-1", withID.RequestID)
	}
}

func TestBuildEventCarriesVerdict(t *testing.T) {
	a := &risk.Assessment{
		HallucinationRisk: risk.LevelMedium,
		BiasRisk:          risk.LevelLow,
		ToxicityRisk:      risk.LevelHigh,
		PIILeak:           true,
		PIILabels:         []string{"email"},
		FraudRisk:         risk.LevelLow,
		ConfidenceScore:   0.87,
	}

	ev := BuildEvent(BuildParams{Decision: DecisionScored, Assessment: a})
	if ev.Verdict == nil {
		t.Fatal("verdict missing")
	}
	if ev.Verdict.ToxicityRisk != risk.LevelHigh || !ev.Verdict.PIILeak {
		t.Fatalf("verdict not carried: %+v", ev.Verdict)
	}
	if len(ev.Verdict.PIILabels) != 1 || ev.Verdict.PIILabels[0] != "email" {
		t.Fatalf("pii labels not carried: %v", ev.Verdict.PIILabels)
	}
}
