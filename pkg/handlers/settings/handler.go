package settings

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// Store persists company profile settings across restarts.
type Store interface {
	Load() (domain.CompanyInfo, error)
	Save(info domain.CompanyInfo) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	info, err := h.store.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load company info")
		http.Error(w, "failed to load company info", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		logger.Error().Err(err).Msg("failed to encode company info")
	}
}

func (h *Handler) UpdateCompanyInfo(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var info domain.CompanyInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.Save(info); err != nil {
		logger.Error().Err(err).Msg("failed to save company info")
		http.Error(w, "failed to save company info", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		logger.Error().Err(err).Msg("failed to encode company info")
	}
}
