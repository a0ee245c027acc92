package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/riskgate-ai/riskgate/internal/audit"
	"github.com/riskgate-ai/riskgate/internal/metrics"
	"github.com/riskgate-ai/riskgate/internal/risk"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "invalid_request_error")
		return
	}

	select {
	case s.inflight <- struct{}{}:
		defer func() { <-s.inflight }()
	default:
		writeError(w, http.StatusTooManyRequests, "too many concurrent requests", "rate_limit_error")
		return
	}

	start := time.Now()
	requestID := uuid.NewString()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxRequestBodyBytes)

	var reqBody analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "invalid_request_error")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body", "invalid_request_error")
		return
	}

	if strings.TrimSpace(reqBody.Text) == "" {
		s.finishRejected(requestID, start, risk.ErrEmptyText)
		writeError(w, http.StatusBadRequest, "text must not be empty", "invalid_request_error")
		return
	}

	assessment, err := s.engine.Analyze(reqBody.Text)
	if err != nil {
		if errors.Is(err, risk.ErrEmptyText) {
			s.finishRejected(requestID, start, err)
			writeError(w, http.StatusBadRequest, "text must not be empty", "invalid_request_error")
			return
		}
		s.finishError(requestID, start, err)
		writeError(w, http.StatusInternalServerError, "analysis failed", "internal_error")
		return
	}

	// The wire contract is all-or-nothing: a malformed assessment must
	// never reach the caller half-populated.
	if err := validateAssessment(assessment); err != nil {
		s.finishError(requestID, start, err)
		writeError(w, http.StatusInternalServerError, "analysis produced an invalid result", "internal_error")
		return
	}

	latency := time.Since(start)
	metrics.RequestsTotal.WithLabelValues(string(audit.DecisionScored)).Inc()
	metrics.AnalyzeDuration.Observe(latency.Seconds())
	metrics.ObserveAssessment(assessment)

	if s.emitter != nil {
		s.emitter.Emit(r.Context(), audit.BuildEvent(audit.BuildParams{
			RequestID:   requestID,
			Decision:    audit.DecisionScored,
			Assessment:  assessment,
			Text:        reqBody.Text,
			PreviewMode: s.cfg.Logging.PreviewMode,
			LatencyMS:   float64(latency.Microseconds()) / 1000.0,
		}))
	}

	s.log.Info("analysis complete",
		zap.String("request_id", requestID),
		zap.String("hallucination", string(assessment.HallucinationRisk)),
		zap.String("bias", string(assessment.BiasRisk)),
		zap.String("toxicity", string(assessment.ToxicityRisk)),
		zap.Bool("pii_leak", assessment.PIILeak),
		zap.String("fraud", string(assessment.FraudRisk)),
		zap.Float64("confidence", assessment.ConfidenceScore),
		zap.Float64("latency_ms", assessment.ProcessingTimeMS),
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	if err := json.NewEncoder(w).Encode(assessment); err != nil {
		s.log.Warn("failed to write response", zap.String("request_id", requestID), zap.Error(err))
	}
}

func (s *Server) finishRejected(requestID string, start time.Time, err error) {
	metrics.RequestsTotal.WithLabelValues(string(audit.DecisionRejectedInput)).Inc()
	if s.emitter != nil {
		s.emitter.Emit(context.Background(), audit.BuildEvent(audit.BuildParams{
			RequestID: requestID,
			Decision:  audit.DecisionRejectedInput,
			LatencyMS: float64(time.Since(start).Microseconds()) / 1000.0,
			Err:       err,
		}))
	}
}

func (s *Server) finishError(requestID string, start time.Time, err error) {
	metrics.RequestsTotal.WithLabelValues(string(audit.DecisionError)).Inc()
	s.log.Error("analysis error", zap.String("request_id", requestID), zap.Error(err))
	if s.emitter != nil {
		s.emitter.Emit(context.Background(), audit.BuildEvent(audit.BuildParams{
			RequestID: requestID,
			Decision:  audit.DecisionError,
			LatencyMS: float64(time.Since(start).Microseconds()) / 1000.0,
			Err:       err,
		}))
	}
}

// validateAssessment checks every output field before serialization.
func validateAssessment(a *risk.Assessment) error {
	if a == nil {
		return fmt.Errorf("assessment is nil")
	}
	for name, l := range map[string]risk.Level{
		"hallucination_risk": a.HallucinationRisk,
		"bias_risk":          a.BiasRisk,
		"toxicity_risk":      a.ToxicityRisk,
		"fraud_risk":         a.FraudRisk,
	} {
		if !l.Valid() {
			return fmt.Errorf("%s has invalid level %q", name, l)
		}
	}
	if a.ConfidenceScore < 0.0 || a.ConfidenceScore > 1.0 {
		return fmt.Errorf("confidence_score %f out of bounds", a.ConfidenceScore)
	}
	if strings.TrimSpace(a.Summary) == "" {
		return fmt.Errorf("summary is empty")
	}
	if a.ProcessingTimeMS < 0 {
		return fmt.Errorf("processing_time_ms %f is negative", a.ProcessingTimeMS)
	}
	return nil
}
