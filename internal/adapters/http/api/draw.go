// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/glennib/case-poker/internal/domain/card"
	"github.com/glennib/case-poker/internal/domain/classify"
	"github.com/glennib/case-poker/internal/domain/hand"
)

// DrawDependencies defines the interface for draw operations.
type DrawDependencies interface {
	Draw(ctx context.Context) (hand.Hand, classify.Category)
}

// DrawHandler handles random hand draws.
type DrawHandler struct {
	deps DrawDependencies
}

// NewDrawHandler creates a new draw handler.
func NewDrawHandler(deps DrawDependencies) *DrawHandler {
	return &DrawHandler{deps: deps}
}

// drawResponse is the wire shape for GET /draw.
type drawResponse struct {
	Hand     []card.Card       `json:"hand"`
	Category classify.Category `json:"category"`
}

// HandleDraw handles GET /draw requests: deals a random five-card hand and
// returns it together with its classification.
func (h *DrawHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	drawn, category := h.deps.Draw(r.Context())
	writeJSON(w, http.StatusOK, drawResponse{Hand: drawn.Cards(), Category: category})
}
