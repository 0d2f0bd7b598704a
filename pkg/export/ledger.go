package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallyweb/backoffice/pkg/models/domain"
)

// LedgerCSV renders the full ledger book with a totals row. Dates are written
// M/D/YYYY so spreadsheets pick them up as dates rather than text.
func LedgerCSV(entries []domain.LedgerEntry) string {
	var b strings.Builder
	b.WriteString("Date,Description,Debit (AED),Credit (AED),Balance (AED)\n")

	var totalIncome, totalExpenses float64
	for _, e := range entries {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			spreadsheetDate(e.Date), e.Description, num(e.Debit), num(e.Credit), num(e.Balance))
		totalIncome += e.Credit
		totalExpenses += e.Debit
	}

	b.WriteString("\n")
	var closing float64
	if len(entries) > 0 {
		closing = entries[len(entries)-1].Balance
	}
	fmt.Fprintf(&b, "Total,,%s,%s,%s\n", num(totalExpenses), num(totalIncome), num(closing))
	return b.String()
}

func spreadsheetDate(date string) string {
	t, ok := parseISODate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
