package export

import (
	"fmt"
	"io"
	"os"

	csvexport "github.com/tallyweb/backoffice/pkg/export"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// Reporter writes reports as CSV, either to its writer or to a file
// named after the report and period.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(t domain.ReportType, payload domain.ReportPayload, opts csvexport.Options) error {
	content, err := csvexport.CSV(t, payload, opts)
	if err != nil {
		return fmt.Errorf("failed to build CSV: %w", err)
	}

	_, err = io.WriteString(c.writer, content)
	return err
}

// HandleFile writes the CSV to a file in the current directory and
// returns the file name.
func (c *Reporter) HandleFile(t domain.ReportType, payload domain.ReportPayload, opts csvexport.Options) (string, error) {
	content, err := csvexport.CSV(t, payload, opts)
	if err != nil {
		return "", fmt.Errorf("failed to build CSV: %w", err)
	}

	name := csvexport.Filename(t, opts.StartDate, opts.EndDate)
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return name, nil
}
