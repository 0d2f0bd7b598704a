package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

type Summarizer interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

type Handler struct {
	summarizer Summarizer
}

func NewHandler(summarizer Summarizer) *Handler {
	return &Handler{summarizer: summarizer}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summary, err := h.summarizer.Summary(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build dashboard summary")
		http.Error(w, "failed to build dashboard summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.Error().Err(err).Msg("failed to encode dashboard summary")
	}
}
