package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(t domain.ReportType, start, end string, payload domain.ReportPayload) error {
	tmpl := `
{{.Title}}
Period: {{.Start}} to {{.End}}

{{.Body}}
`
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	tpl, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return tpl.Execute(c.writer, struct {
		Title string
		Start string
		End   string
		Body  string
	}{
		Title: t.Title(),
		Start: start,
		End:   end,
		Body:  string(body),
	})
}
