package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/tallyweb/backoffice/pkg/export"
	"github.com/tallyweb/backoffice/pkg/models/api"
	"github.com/tallyweb/backoffice/pkg/models/domain"
	"github.com/tallyweb/backoffice/pkg/services/report"
)

// Default range matches the report screen's initial state.
const (
	defaultStartDate = "2023-01-01"
	defaultEndDate   = "2023-12-31"
)

type Generator interface {
	Generate(
		ctx context.Context,
		reportType domain.ReportType,
		rng report.DateRange,
		status report.StatusFilter,
	) (domain.ReportPayload, error)
}

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

func (h *Handler) ListReportTypes(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.ReportTypeInfo, 0, len(domain.ReportTypes()))
	for _, t := range domain.ReportTypes() {
		response = append(response, api.ReportTypeInfo{
			Type:         string(t),
			Title:        t.Title(),
			DateFiltered: t != domain.ReportStockSummary && t != domain.ReportStockMovement,
			StatusFilter: t == domain.ReportSalesInvoice || t == domain.ReportPurchaseInvoice,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report types")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reportType, rng, status, ok := h.params(w, r)
	if !ok {
		return
	}

	payload, err := h.generator.Generate(ctx, reportType, rng, status)
	if err != nil {
		logger.Error().Err(err).Str("report_type", string(reportType)).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Str("report_type", string(reportType)).Msg("failed to encode report")
	}
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reportType, rng, status, ok := h.params(w, r)
	if !ok {
		return
	}

	payload, err := h.generator.Generate(ctx, reportType, rng, status)
	if err != nil {
		logger.Error().Err(err).Str("report_type", string(reportType)).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	csv, err := export.CSV(reportType, payload, export.Options{
		StartDate: rng.Start,
		EndDate:   rng.End,
		Status:    string(status),
		Now:       time.Now(),
	})
	if err != nil {
		logger.Error().Err(err).Str("report_type", string(reportType)).Msg("failed to export report")
		http.Error(w, "failed to export report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(reportType, rng.Start, rng.End)))
	if _, err := w.Write([]byte(csv)); err != nil {
		logger.Error().Err(err).Str("report_type", string(reportType)).Msg("failed to write csv")
	}
}

// params reads the report type and query parameters, writing a 400 and
// returning ok=false on invalid input. Date format is only enforced for the
// ledger-based reports; invoice reports intentionally keep raw string
// comparison semantics.
func (h *Handler) params(
	w http.ResponseWriter,
	r *http.Request,
) (domain.ReportType, report.DateRange, report.StatusFilter, bool) {
	reportType, err := domain.ParseReportType(chi.URLParam(r, "reportType"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", report.DateRange{}, "", false
	}

	rng := report.DateRange{Start: defaultStartDate, End: defaultEndDate}
	if from := r.URL.Query().Get("from"); from != "" {
		rng.Start = from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		rng.End = to
	}

	if ledgerBased(reportType) {
		if _, err := time.Parse("2006-01-02", rng.Start); err != nil {
			http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return "", report.DateRange{}, "", false
		}
		if _, err := time.Parse("2006-01-02", rng.End); err != nil {
			http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return "", report.DateRange{}, "", false
		}
	}

	status := report.StatusAll
	if s := r.URL.Query().Get("status"); s != "" {
		status, err = report.ParseStatusFilter(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return "", report.DateRange{}, "", false
		}
	}

	return reportType, rng, status, true
}

func ledgerBased(t domain.ReportType) bool {
	switch t {
	case domain.ReportProfitLoss, domain.ReportBalanceSheet, domain.ReportCashFlow:
		return true
	}
	return false
}
