package server

import (
	"encoding/json"
	"net/http"
	"time"
)

const serviceVersion = "1.0.0"

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Engine    string `json:"engine"`
	Ready     bool   `json:"ready"`
	Timestamp string `json:"timestamp"`
}

// handleHealth is a trivial liveness probe: the engine has no external
// dependencies, so a running process is a ready process.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "invalid_request_error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		Service:   serviceName,
		Version:   serviceVersion,
		Engine:    "heuristic",
		Ready:     true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
