// Package records exposes CRUD over the three in-memory collections. The
// handlers are thin: decode, delegate to the store, encode.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/tallyweb/backoffice/pkg/export"
	"github.com/tallyweb/backoffice/pkg/models/domain"
	"github.com/tallyweb/backoffice/pkg/store/memory"
)

type LedgerStore interface {
	Snapshot(ctx context.Context) ([]domain.LedgerEntry, error)
	Add(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	Update(ctx context.Context, id string, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceStore interface {
	Snapshot(ctx context.Context) ([]domain.Invoice, error)
	Add(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	Update(ctx context.Context, id int, inv domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, id int) error
}

type InventoryStore interface {
	Snapshot(ctx context.Context) ([]domain.InventoryItem, error)
	Add(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Update(ctx context.Context, id int, item domain.InventoryItem) (domain.InventoryItem, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	ledger    LedgerStore
	invoices  InvoiceStore
	inventory InventoryStore
}

func NewHandler(ledger LedgerStore, invoices InvoiceStore, inventory InventoryStore) *Handler {
	return &Handler{ledger: ledger, invoices: invoices, inventory: inventory}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, memory.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func (h *Handler) ListLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, entries)
}

func (h *Handler) AddLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.LedgerEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	added, err := h.ledger.Add(r.Context(), entry)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, added)
}

func (h *Handler) UpdateLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.LedgerEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.ledger.Update(r.Context(), chi.URLParam(r, "id"), entry)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, r, updated)
}

func (h *Handler) DeleteLedgerEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportLedger downloads the whole book as CSV.
func (h *Handler) ExportLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="general_ledger.csv"`)
	if _, err := w.Write([]byte(export.LedgerCSV(entries))); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write ledger csv")
	}
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, invoices)
}

func (h *Handler) AddInvoice(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	added, err := h.invoices.Add(r.Context(), inv)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, added)
}

func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}
	var inv domain.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.invoices.Update(r.Context(), id, inv)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, r, updated)
}

func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}
	if err := h.invoices.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, items)
}

func (h *Handler) AddInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	added, err := h.inventory.Add(r.Context(), item)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, added)
}

func (h *Handler) UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.inventory.Update(r.Context(), id, item)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, r, updated)
}

func (h *Handler) DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}
	if err := h.inventory.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
