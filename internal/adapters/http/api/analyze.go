// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/glennib/case-poker/internal/domain/classify"
	"github.com/glennib/case-poker/internal/domain/hand"
)

// AnalyzeDependencies defines the interface for analyze operations.
type AnalyzeDependencies interface {
	Analyze(ctx context.Context, codes string) (classify.Category, error)
}

// AnalyzeHandler handles hand analysis requests.
type AnalyzeHandler struct {
	deps AnalyzeDependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps AnalyzeDependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandleAnalyze handles GET /analyze/{cards} requests. The path parameter is
// a comma-separated list of two-character card codes, e.g.
// /analyze/tr,jr,qr,kr,1r. The response is the category name as a JSON
// string.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /analyze/
	codes := strings.TrimPrefix(r.URL.Path, "/analyze/")
	if codes == "" || strings.Contains(codes, "/") {
		writeError(w, r, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	category, err := h.deps.Analyze(r.Context(), codes)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, errorCode(err), Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// errorCode maps domain errors to stable API error codes.
func errorCode(err error) string {
	var wrongCount *hand.WrongCountError
	var duplicates *hand.DuplicateCardsError
	if errors.As(err, &wrongCount) || errors.As(err, &duplicates) {
		return "invalid_hand"
	}
	return "invalid_card"
}
