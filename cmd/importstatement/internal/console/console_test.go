package console_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledger/cmd/importstatement/internal/console"
	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

func TestPrinter_Importers(t *testing.T) {
	var buf bytes.Buffer

	console.New(&buf).Importers("santander", importer.DefaultRegistry().Module("santander"), "santander.txt")

	out := buf.String()
	assert.Contains(t, out, "Available importers in the")
	assert.Contains(t, out, "santander.txt")
}

func TestPrinter_Summary(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tx := &transaction.Transaction{
		Header:  transaction.Header{Amount: decimal.RequireFromString("10.00"), ClearedDate: date, Date: date, Week: 9},
		Details: transaction.CashPaid{Branch: "BRANCH42"},
	}

	type testCase struct {
		name   string
		res    *importer.Result
		dryRun bool
		want   string
	}

	tests := []testCase{
		{name: "Committed", res: &importer.Result{Transactions: []*transaction.Transaction{tx}, Committed: true}, want: "Import committed to database"},
		{name: "DryRun", res: &importer.Result{Transactions: []*transaction.Transaction{tx}}, dryRun: true, want: "Not committing to database"},
		{name: "Declined", res: &importer.Result{}, want: "Import rolled back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			p := console.New(&buf)
			p.Transactions(tt.res.Transactions)
			p.Summary(tt.res, tt.dryRun)

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrinter_Aliases(t *testing.T) {
	tesco := &counterparty.Counterparty{Name: "Tesco"}

	var buf bytes.Buffer

	console.New(&buf).Aliases([]counterparty.AliasUsage{
		{Alias: &counterparty.Alias{Name: "TESCO STORES 2602", Counterparty: tesco}, CounterpartyAliases: 3},
	})

	assert.Contains(t, buf.String(), "TESCO STORES 2602")
	assert.Contains(t, buf.String(), "shared with 2 other aliases")

	buf.Reset()
	console.New(&buf).Aliases(nil)
	assert.Contains(t, buf.String(), "No existing aliases match")
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer

	console.New(&buf).Error(errors.New("unmatched transaction"))
	assert.Contains(t, buf.String(), "unmatched transaction")
}
