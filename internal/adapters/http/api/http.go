// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/glennib/case-poker/internal/domain/classify"
	"github.com/glennib/case-poker/internal/domain/hand"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Draw deals a random five-card hand and classifies it.
	Draw(ctx context.Context) (hand.Hand, classify.Category)

	// Analyze classifies a comma-separated list of card codes.
	Analyze(ctx context.Context, codes string) (classify.Category, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	drawHandler    *DrawHandler
	analyzeHandler *AnalyzeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		drawHandler:    NewDrawHandler(deps),
		analyzeHandler: NewAnalyzeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/draw", RequestIDMiddleware(MetricsMiddleware(s.drawHandler.HandleDraw, "draw")))
	mux.HandleFunc("/analyze/", RequestIDMiddleware(MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze")))
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{
		Code:      code,
		Message:   msg,
		RequestID: RequestIDFromContext(r.Context()),
	})
}
