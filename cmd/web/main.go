package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/tallyweb/backoffice/pkg/server"
	"github.com/tallyweb/backoffice/pkg/services/dashboard"
	"github.com/tallyweb/backoffice/pkg/services/report"
	"github.com/tallyweb/backoffice/pkg/store/memory"
	"github.com/tallyweb/backoffice/pkg/store/settings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var settingsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for TallyWeb BackOffice",
		RunE:  runServer,
	}

	home, _ := os.UserHomeDir()
	defaultPath := filepath.Join(home, ".backoffice", "company.json")

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", defaultPath,
		"Path to the company settings file (default is $HOME/.backoffice/company.json)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settingsStore, err := settings.NewStore(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to create settings store: %w", err)
	}

	ledgerStore := memory.NewLedgerStore(memory.SeedLedgerEntries())
	invoiceStore := memory.NewInvoiceStore(memory.SeedInvoices())
	inventoryStore := memory.NewInventoryStore(memory.SeedInventory())

	reportService := report.NewService(ledgerStore, invoiceStore, inventoryStore)
	dashboardService := dashboard.NewService(ledgerStore, invoiceStore, inventoryStore)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports:   reportService,
			Dashboard: dashboardService,
			Ledger:    ledgerStore,
			Invoices:  invoiceStore,
			Inventory: inventoryStore,
			Settings:  settingsStore,
		},
	})

	return api.Start()
}
