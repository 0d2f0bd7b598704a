package main

import (
	"fmt"
	"os"

	"github.com/tallyweb/backoffice/pkg/runtime/terminal"
	"github.com/tallyweb/backoffice/pkg/services/report"
	"github.com/tallyweb/backoffice/pkg/store/memory"
)

func main() {
	ledgerStore := memory.NewLedgerStore(memory.SeedLedgerEntries())
	invoiceStore := memory.NewInvoiceStore(memory.SeedInvoices())
	inventoryStore := memory.NewInventoryStore(memory.SeedInventory())

	cli := terminal.NewCLI(terminal.Options{
		Reports: report.NewService(ledgerStore, invoiceStore, inventoryStore),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
