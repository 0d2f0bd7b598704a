package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tallyweb/backoffice/pkg/models/domain"
)

func TestLedgerCSV(t *testing.T) {
	got := LedgerCSV(testLedger())

	want := "Date,Description,Debit (AED),Credit (AED),Balance (AED)\n" +
		"10/1/2023,Initial Investment,0,100000,100000\n" +
		"10/5/2023,Office Rent,15000,0,85000\n" +
		"10/10/2023,Sales Revenue,0,35000,120000\n" +
		"\n" +
		"Total,,15000,135000,120000\n"
	assert.Equal(t, want, got)
}

func TestLedgerCSV_Empty(t *testing.T) {
	got := LedgerCSV(nil)

	want := "Date,Description,Debit (AED),Credit (AED),Balance (AED)\n" +
		"\n" +
		"Total,,0,0,0\n"
	assert.Equal(t, want, got)
}

func TestSpreadsheetDate(t *testing.T) {
	assert.Equal(t, "10/5/2023", spreadsheetDate("2023-10-05"))
	assert.Equal(t, "1/31/2024", spreadsheetDate("2024-01-31"))

	// Unparsable dates pass through untouched.
	assert.Equal(t, "soon", spreadsheetDate("soon"))
}

func TestLedgerCSV_UnparsableDatePassesThrough(t *testing.T) {
	entries := []domain.LedgerEntry{
		{ID: "1", Date: "pending", Description: "Adjustment", Debit: 100, Balance: -100},
	}

	got := LedgerCSV(entries)
	assert.Contains(t, got, "pending,Adjustment,100,0,-100\n")
}
