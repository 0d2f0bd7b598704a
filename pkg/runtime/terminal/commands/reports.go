package commands

import (
	"context"
	"fmt"
	"time"

	csvexport "github.com/tallyweb/backoffice/pkg/export"
	"github.com/tallyweb/backoffice/pkg/models/domain"
	"github.com/tallyweb/backoffice/pkg/services/report"

	"github.com/spf13/cobra"
)

// Generator produces report payloads for a type, period and status filter.
type Generator interface {
	Generate(
		ctx context.Context,
		reportType domain.ReportType,
		rng report.DateRange,
		status report.StatusFilter,
	) (domain.ReportPayload, error)
}

// ConsoleReporter renders a payload as formatted text.
type ConsoleReporter interface {
	Handle(t domain.ReportType, start, end string, payload domain.ReportPayload) error
}

// FileReporter writes a payload as a CSV file and returns its name.
type FileReporter interface {
	HandleFile(t domain.ReportType, payload domain.ReportPayload, opts csvexport.Options) (string, error)
}

type GenerateCmd struct {
	reportType string
	from       string
	to         string
	status     string
	asCSV      bool

	generator Generator
	reporter  ConsoleReporter
	exporter  FileReporter
}

func NewGenerateCmd(generator Generator, reporter ConsoleReporter, exporter FileReporter) *cobra.Command {
	gc := &GenerateCmd{generator: generator, reporter: reporter, exporter: exporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a financial report",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.reportType, "type", "", "Report type (see the types command)")
	cmd.Flags().StringVar(&gc.from, "from", "2023-01-01", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.to, "to", "2023-12-31", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.status, "status", "All", "Invoice status filter (All, Paid, Pending, Overdue)")
	cmd.Flags().BoolVar(&gc.asCSV, "csv", false, "Write the report as a CSV file instead of printing it")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	reportType, err := domain.ParseReportType(gc.reportType)
	if err != nil {
		return fmt.Errorf("unknown report type %q. Supported types: %v", gc.reportType, domain.ReportTypes())
	}

	status, err := report.ParseStatusFilter(gc.status)
	if err != nil {
		return err
	}

	payload, err := gc.generator.Generate(ctx, reportType, report.DateRange{Start: gc.from, End: gc.to}, status)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if gc.asCSV {
		name, err := gc.exporter.HandleFile(reportType, payload, csvexport.Options{
			StartDate: gc.from,
			EndDate:   gc.to,
			Status:    gc.status,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
		return nil
	}

	return gc.reporter.Handle(reportType, gc.from, gc.to, payload)
}

func NewTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List available report types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range domain.ReportTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, t.Title())
			}
			return nil
		},
	}
	return cmd
}
