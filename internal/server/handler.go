package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/finhealth/internal/model"
)

// maxBodyBytes caps the analyze request body. Profiles are small; a
// megabyte is generous.
const maxBodyBytes = 1 << 20

// handleAnalyze decodes a financial profile, runs the analysis, and
// returns the full report. Field presence and type validation happen
// here; the analyzer assumes a complete record.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.clientError(w, http.StatusBadRequest, "unreadable request body")
		return
	}
	if len(body) == 0 {
		s.clientError(w, http.StatusBadRequest, "no input data provided")
		return
	}

	profile, err := model.DecodeProfile(body)
	if err != nil {
		zap.L().Warn("server: rejected profile", zap.Error(err))
		s.clientError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	start := time.Now()
	report := s.analyzer.Analyze(profile)
	s.metrics.analyzeDuration.Observe(time.Since(start).Seconds())
	s.metrics.analysesTotal.WithLabelValues(report.RiskAssessment.RiskProfile).Inc()

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) clientError(w http.ResponseWriter, status int, msg string) {
	s.metrics.requestErrors.WithLabelValues(fmt.Sprint(status)).Inc()
	writeError(w, status, msg)
}

// clientMessage strips the internal wrap prefix from boundary validation
// errors so clients see "missing field: age", not package plumbing.
func clientMessage(err error) string {
	root := eris.Cause(err)
	msg := root.Error()
	if msg == "" {
		return "invalid request body"
	}
	const prefix = "model: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return "invalid request body"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
