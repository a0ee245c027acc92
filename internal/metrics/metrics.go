// Package metrics registers the Prometheus instruments for the scoring
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/riskgate-ai/riskgate/internal/risk"
)

var (
	// RequestsTotal counts /analyze requests by outcome
	// (scored | rejected_input | error).
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "riskgate",
		Name:      "analyze_requests_total",
		Help:      "Scoring requests by outcome.",
	}, []string{"outcome"})

	// AnalyzeDuration tracks end-to-end scoring latency.
	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "riskgate",
		Name:      "analyze_duration_seconds",
		Help:      "Wall-clock duration of one scoring call.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	// RiskLevels counts verdicts by dimension and level.
	RiskLevels = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "riskgate",
		Name:      "risk_level_total",
		Help:      "Detector verdicts by dimension and level.",
	}, []string{"dimension", "level"})

	// PIILeaks counts scans that found PII.
	PIILeaks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "riskgate",
		Name:      "pii_leak_total",
		Help:      "Scans in which at least one PII pattern matched.",
	})
)

// ObserveAssessment records the per-dimension verdict counters for one
// completed scoring call.
func ObserveAssessment(a *risk.Assessment) {
	if a == nil {
		return
	}
	RiskLevels.WithLabelValues("hallucination", string(a.HallucinationRisk)).Inc()
	RiskLevels.WithLabelValues("bias", string(a.BiasRisk)).Inc()
	RiskLevels.WithLabelValues("toxicity", string(a.ToxicityRisk)).Inc()
	RiskLevels.WithLabelValues("fraud", string(a.FraudRisk)).Inc()
	if a.PIILeak {
		PIILeaks.Inc()
	}
}
