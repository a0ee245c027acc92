// Package audit emits one event per scoring request to pluggable sinks
// (stdout JSONL, file JSONL) without blocking the request path.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/riskgate-ai/riskgate/internal/redact"
	"github.com/riskgate-ai/riskgate/internal/risk"
)

// Decision is the outcome of a scoring request from the service's
// perspective.
type Decision string

const (
	DecisionScored        Decision = "scored"
	DecisionRejectedInput Decision = "rejected_input"
	DecisionError         Decision = "error"
)

// Preview modes, mirroring logging.preview_mode.
const (
	PreviewOff      = "off"
	PreviewRedacted = "redacted"
	PreviewFull     = "full"
)

const previewMaxLen = 500

// Verdict is the engine outcome carried on an audit event.
type Verdict struct {
	HallucinationRisk risk.Level `json:"hallucination_risk"`
	BiasRisk          risk.Level `json:"bias_risk"`
	ToxicityRisk      risk.Level `json:"toxicity_risk"`
	PIILeak           bool       `json:"pii_leak"`
	PIILabels         []string   `json:"pii_labels,omitempty"`
	FraudRisk         risk.Level `json:"fraud_risk"`
	ConfidenceScore   float64    `json:"confidence_score"`
}

// Event is the canonical audit payload, one per request.
type Event struct {
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id"`
	Decision    Decision  `json:"decision"`
	Verdict     *Verdict  `json:"verdict,omitempty"`
	TextPreview string    `json:"text_preview,omitempty"`
	LatencyMS   float64   `json:"latency_ms"`
	Error       string    `json:"error,omitempty"`
}

// BuildParams collects the inputs needed to assemble an event.
type BuildParams struct {
	RequestID   string
	Decision    Decision
	Assessment  *risk.Assessment
	Text        string
	PreviewMode string
	LatencyMS   float64
	Err         error
}

// BuildEvent assembles the canonical event. The preview honors the
// configured mode; redacted mode masks PII before anything leaves the
// process.
func BuildEvent(params BuildParams) *Event {
	ev := &Event{
		Version:   "1",
		Timestamp: time.Now().UTC(),
		RequestID: ensureRequestID(params.RequestID),
		Decision:  params.Decision,
		LatencyMS: params.LatencyMS,
	}

	if params.Err != nil {
		ev.Error = params.Err.Error()
	}

	if a := params.Assessment; a != nil {
		ev.Verdict = &Verdict{
			HallucinationRisk: a.HallucinationRisk,
			BiasRisk:          a.BiasRisk,
			ToxicityRisk:      a.ToxicityRisk,
			PIILeak:           a.PIILeak,
			PIILabels:         append([]string(nil), a.PIILabels...),
			FraudRisk:         a.FraudRisk,
			ConfidenceScore:   a.ConfidenceScore,
		}
	}

	switch params.PreviewMode {
	case PreviewFull:
		ev.TextPreview = truncate(params.Text, previewMaxLen)
	case PreviewRedacted:
		ev.TextPreview = truncate(redact.String(params.Text), previewMaxLen)
	default:
		// off: no preview
	}

	return ev
}

func ensureRequestID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
