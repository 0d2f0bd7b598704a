package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardhandlers "github.com/tallyweb/backoffice/pkg/handlers/dashboard"
	recordhandlers "github.com/tallyweb/backoffice/pkg/handlers/records"
	reporthandlers "github.com/tallyweb/backoffice/pkg/handlers/reports"
	settingshandlers "github.com/tallyweb/backoffice/pkg/handlers/settings"

	backofficemiddleware "github.com/tallyweb/backoffice/pkg/server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports   reporthandlers.Generator
	Dashboard dashboardhandlers.Summarizer
	Ledger    recordhandlers.LedgerStore
	Invoices  recordhandlers.InvoiceStore
	Inventory recordhandlers.InventoryStore
	Settings  settingshandlers.Store
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	reportHandler := reporthandlers.NewHandler(config.Dependencies.Reports)
	dashboardHandler := dashboardhandlers.NewHandler(config.Dependencies.Dashboard)
	recordHandler := recordhandlers.NewHandler(
		config.Dependencies.Ledger,
		config.Dependencies.Invoices,
		config.Dependencies.Inventory,
	)
	settingsHandler := settingshandlers.NewHandler(config.Dependencies.Settings)

	router := chi.NewRouter()

	router.Use(backofficemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports", reportHandler.ListReportTypes)
		r.Get("/reports/{reportType}", reportHandler.GetReport)
		r.Get("/reports/{reportType}/export", reportHandler.ExportReport)

		r.Get("/dashboard/summary", dashboardHandler.GetSummary)

		r.Get("/ledger", recordHandler.ListLedger)
		r.Post("/ledger", recordHandler.AddLedgerEntry)
		r.Put("/ledger/{id}", recordHandler.UpdateLedgerEntry)
		r.Delete("/ledger/{id}", recordHandler.DeleteLedgerEntry)
		r.Get("/ledger/export", recordHandler.ExportLedger)

		r.Get("/invoices", recordHandler.ListInvoices)
		r.Post("/invoices", recordHandler.AddInvoice)
		r.Put("/invoices/{id}", recordHandler.UpdateInvoice)
		r.Delete("/invoices/{id}", recordHandler.DeleteInvoice)

		r.Get("/inventory", recordHandler.ListInventory)
		r.Post("/inventory", recordHandler.AddInventoryItem)
		r.Put("/inventory/{id}", recordHandler.UpdateInventoryItem)
		r.Delete("/inventory/{id}", recordHandler.DeleteInventoryItem)

		r.Get("/settings/company", settingsHandler.GetCompanyInfo)
		r.Put("/settings/company", settingsHandler.UpdateCompanyInfo)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
