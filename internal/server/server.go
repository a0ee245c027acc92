package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/riskgate-ai/riskgate/internal/audit"
	"github.com/riskgate-ai/riskgate/internal/config"
	"github.com/riskgate-ai/riskgate/internal/risk"
)

const serviceName = "riskgate"

// Server wraps the HTTP components of the scoring service.
type Server struct {
	mux      *http.ServeMux
	cfg      *config.Config
	engine   *risk.Engine
	emitter  *audit.Emitter
	log      *zap.Logger
	inflight chan struct{}

	httpServer *http.Server
}

// New creates a server with all routes registered. The emitter may be
// nil (no audit trail).
func New(cfg *config.Config, engine *risk.Engine, emitter *audit.Emitter, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		mux:      http.NewServeMux(),
		cfg:      cfg,
		engine:   engine,
		emitter:  emitter,
		log:      log,
		inflight: make(chan struct{}, cfg.Server.MaxInFlightRequests),
	}

	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Handler exposes the mux for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

// Start runs the HTTP server on the given address until Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: time.Duration(s.cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	s.log.Info("riskgate listening", zap.String("addr", addr))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains the HTTP server and flushes the audit emitter.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.emitter != nil {
		s.emitter.Close(ctx)
	}
	return err
}

// --- Error body ---

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func writeError(w http.ResponseWriter, status int, message, typ string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{
			Message: message,
			Type:    typ,
		},
	})
}
