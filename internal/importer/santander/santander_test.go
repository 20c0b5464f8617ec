package santander_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/importer/lineproc"
	"github.com/MrJamesThe3rd/ledger/internal/importer/santander"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

type selfResolver struct{}

func (selfResolver) Resolve(_ context.Context, name string) (counterparty.Resolution, error) {
	cp := &counterparty.Counterparty{Name: name}
	return counterparty.Resolution{Counterparty: cp, Alias: &counterparty.Alias{Name: name, Counterparty: cp}}, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProcessors(t *testing.T) {
	type args struct {
		line   string
		amount string
	}

	type testCase struct {
		name      string
		args      args
		processor string
		want      transaction.Details
		wantParty string
		wantDate  time.Time
	}

	tests := []testCase{
		{
			name:      "CashWithdrawal",
			args:      args{"CASH WITHDRAWAL AT TESCO ATM, LONDON,20.00 GBP , ON 29-02-2024", "-20.00"},
			processor: "cash withdrawal",
			want:      transaction.CashWithdrawal{ATM: "TESCO ATM", Area: "LONDON", RequestedAmount: dec("20.00"), Currency: "GBP"},
			wantDate:  day(2024, 2, 29),
		},
		{
			name:      "CashWithdrawalNoDate",
			args:      args{"CASH WITHDRAWAL AT HSBC, LEEDS,10.00 GBP ,", "-10.00"},
			processor: "cash withdrawal",
			want:      transaction.CashWithdrawal{ATM: "HSBC", Area: "LEEDS", RequestedAmount: dec("10.00"), Currency: "GBP"},
		},
		{
			name:      "BillPaymentReceived",
			args:      args{"BILL PAYMENT VIA FASTER PAYMENT FROM JOHN SMITH, REFERENCE DINNER", "25.00"},
			processor: "bill payment received",
			want:      transaction.Credit{Type: transaction.CreditTypeBillPayment, Ref: "DINNER"},
			wantParty: "JOHN SMITH",
		},
		{
			name:      "BillPayment",
			args:      args{"BILL PAYMENT VIA FASTER PAYMENT TO JANE DOE REFERENCE RENT , MANDATE NO 12", "-500.00"},
			processor: "bill payment",
			want:      transaction.BillPayment{Ref: "RENT", Mandate: 12},
			wantParty: "JANE DOE",
		},
		{
			name:      "BillPaymentNoReference",
			args:      args{"BILL PAYMENT TO JANE DOE", "-5.00"},
			processor: "bill payment",
			want:      transaction.BillPayment{},
			wantParty: "JANE DOE",
		},
		{
			name:      "CardPaymentSterling",
			args:      args{"CARD PAYMENT TO TESCO STORES 2602 ON 2024-02-28", "-12.40"},
			processor: "card payment",
			want:      transaction.CardPayment{RequestedAmount: dec("-12.40"), Currency: "GBP", Rate: dec("1.00")},
			wantParty: "TESCO STORES 2602",
			wantDate:  day(2024, 2, 28),
		},
		{
			name:      "CardPaymentForeign",
			args:      args{"CARD PAYMENT TO CAFE DE FLORE,11.70 EUR, RATE 1.17/GBP ON 27-02-2024", "-10.00"},
			processor: "card payment",
			want:      transaction.CardPayment{RequestedAmount: dec("11.70"), Currency: "EUR", Rate: dec("1.17")},
			wantParty: "CAFE DE FLORE",
			wantDate:  day(2024, 2, 27),
		},
		{
			name:      "BankGiroCredit",
			args:      args{"BANK GIRO CREDIT REF SMITH, INV9", "45.00"},
			processor: "bank giro credit",
			want:      transaction.Credit{Type: transaction.CreditTypeGiro, Ref: "INV9"},
			wantParty: "SMITH",
		},
		{
			name:      "FasterPaymentsReceipt",
			args:      args{"FASTER PAYMENTS RECEIPT REF.MARCH RENT FROM LODGER", "400.00"},
			processor: "faster payments receipt",
			want:      transaction.Credit{Type: transaction.CreditTypeFasterPayment, Ref: "MARCH RENT"},
			wantParty: "LODGER",
		},
		{
			name:      "Credit",
			args:      args{"CREDIT FROM AMAZON ON 2024-02-20", "9.99"},
			processor: "credit",
			want:      transaction.Credit{Type: transaction.CreditTypeCredit},
			wantParty: "AMAZON",
			wantDate:  day(2024, 2, 20),
		},
		{
			name:      "DirectDebit",
			args:      args{"DIRECT DEBIT PAYMENT TO ACME REF INV001", "-50.00"},
			processor: "direct debit",
			want:      transaction.DirectDebit{Ref: "INV001", Mandate: 0},
			wantParty: "ACME",
		},
		{
			name:      "PaidDirectDebitWithMandate",
			args:      args{"PAID TRANSACTION DIRECT DEBIT PAYMENT TO BRITISH GAS REF 8812, MANDATE NO 0031", "-60.00"},
			processor: "direct debit",
			want:      transaction.DirectDebit{Ref: "8812", Mandate: 31},
			wantParty: "BRITISH GAS",
		},
		{
			name:      "TransferTo",
			args:      args{"TRANSFER TO SAVINGS", "-100.00"},
			processor: "transfer",
			want:      transaction.Transfer{Direction: transaction.DirectionTo},
			wantParty: "SAVINGS",
		},
		{
			name:      "TransferFrom",
			args:      args{"TRANSFER FROM SAVINGS", "100.00"},
			processor: "transfer",
			want:      transaction.Transfer{Direction: transaction.DirectionFrom},
			wantParty: "SAVINGS",
		},
		{
			name:      "RegularTransfer",
			args:      args{"REGULAR TRANSFER PAYMENT TO ACCOUNT 090128 12345678, MANDATE NO 3", "-50.00"},
			processor: "regular transfer",
			want:      transaction.RegularTransfer{SortCode: "090128", AccountNumber: "12345678", Mandate: 3},
		},
		{
			name:      "CashPaidIn",
			args:      args{"CASH PAID IN AT BRANCH42", "10.00"},
			processor: "cash paid in",
			want:      transaction.CashPaid{Branch: "BRANCH42"},
		},
		{
			name:      "Interest",
			args:      args{"INTEREST PAID AFTER TAX 0.12 DEDUCTED", "0.48"},
			processor: "interest",
			want:      transaction.Interest{Tax: dec("0.12")},
		},
		{
			name:      "StandingOrder",
			args:      args{"STANDING ORDER VIA FASTER PAYMENT TO GYM LTD REFERENCE MEMBER 7 , MANDATE NO 5", "-30.00"},
			processor: "standing order",
			want:      transaction.StandingOrder{Ref: "MEMBER 7", Mandate: 5},
			wantParty: "GYM LTD",
		},
	}

	set := santander.Processors()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extra := lineproc.Fields{
				lineproc.KeyAmount:      dec(tt.args.amount),
				lineproc.KeyClearedDate: day(2024, 3, 1),
			}

			out, p, ok, err := set.Match(context.Background(), tt.args.line, extra, selfResolver{})
			require.NoError(t, err)
			require.True(t, ok, "no processor matched")

			assert.Equal(t, tt.processor, p.Name)
			assert.Equal(t, tt.want.Kind(), out.Details.Kind())
			assertDetails(t, tt.want, out.Details)
			assert.True(t, tt.wantDate.Equal(out.Date), "date %s", out.Date)

			if tt.wantParty == "" {
				assert.Nil(t, out.Party)
			} else {
				require.NotNil(t, out.Party)
				assert.Equal(t, tt.wantParty, out.Party.Alias.Name)
			}
		})
	}
}

// assertDetails compares variants, treating decimals by value.
func assertDetails(t *testing.T, want, got transaction.Details) {
	t.Helper()

	switch w := want.(type) {
	case transaction.CashWithdrawal:
		g := got.(transaction.CashWithdrawal)
		assert.True(t, w.RequestedAmount.Equal(g.RequestedAmount), "requested amount %s", g.RequestedAmount)
		w.RequestedAmount, g.RequestedAmount = decimal.Zero, decimal.Zero
		assert.Equal(t, w, g)
	case transaction.CardPayment:
		g := got.(transaction.CardPayment)
		assert.True(t, w.RequestedAmount.Equal(g.RequestedAmount), "requested amount %s", g.RequestedAmount)
		assert.True(t, w.Rate.Equal(g.Rate), "rate %s", g.Rate)
		assert.Equal(t, w.Currency, g.Currency)
	case transaction.Interest:
		assert.True(t, w.Tax.Equal(got.(transaction.Interest).Tax))
	default:
		assert.Equal(t, want, got)
	}
}

func TestProcessors_Unmatched(t *testing.T) {
	lines := []string{
		"",
		"SOMETHING COMPLETELY DIFFERENT",
		"XCASH PAID IN AT BRANCH42",
		"INTEREST PAID AFTER TAX 0.12 DEDUCTED THIS MONTH",
	}

	set := santander.Processors()

	for _, line := range lines {
		extra := lineproc.Fields{lineproc.KeyAmount: dec("1.00"), lineproc.KeyClearedDate: day(2024, 3, 1)}

		_, _, ok, err := set.Match(context.Background(), line, extra, selfResolver{})
		require.NoError(t, err, line)
		assert.False(t, ok, line)
	}
}

func statementWith(date, amount, desc string) string {
	return "Account: 12345\n\nDate: " + date + "\nDescription: " + desc + "\nAmount: " + amount + "\n"
}

func TestImporter_SignInvariants(t *testing.T) {
	type testCase struct {
		name    string
		desc    string
		amount  string
		wantErr bool
	}

	tests := []testCase{
		{name: "DirectDebitNegative", desc: "DIRECT DEBIT PAYMENT TO ACME REF INV001", amount: "-50.00"},
		{name: "DirectDebitPositive", desc: "DIRECT DEBIT PAYMENT TO ACME REF INV001", amount: "50.00", wantErr: true},
		{name: "DirectDebitZero", desc: "DIRECT DEBIT PAYMENT TO ACME REF INV001", amount: "0.00", wantErr: true},
		{name: "StandingOrderPositive", desc: "STANDING ORDER TO GYM REFERENCE X , MANDATE NO 1", amount: "30.00", wantErr: true},
		{name: "CreditNegative", desc: "BANK GIRO CREDIT REF SMITH, INV9", amount: "-45.00", wantErr: true},
		{name: "CreditZero", desc: "BANK GIRO CREDIT REF SMITH, INV9", amount: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotErr error

			n := 0
			for _, err := range santander.New().Import(context.Background(), strings.NewReader(statementWith("01/03/2024", tt.amount, tt.desc)), selfResolver{}) {
				if err != nil {
					gotErr = err
					break
				}

				n++
			}

			if tt.wantErr {
				assert.ErrorIs(t, gotErr, transaction.ErrInvalid)
				assert.Zero(t, n)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, 1, n)
			}
		})
	}
}

func TestImporter_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := counterparty.NewMockRepository(ctrl)

	smith := &counterparty.Counterparty{Name: "SMITH"}
	repo.EXPECT().FindAlias(gomock.Any(), "SMITH").Return(nil, counterparty.ErrNotFound)
	repo.EXPECT().ListPatterns(gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateCounterparty(gomock.Any(), "SMITH").Return(smith, nil)
	repo.EXPECT().
		CreateAlias(gomock.Any(), "SMITH", smith).
		Return(&counterparty.Alias{Name: "SMITH", Counterparty: smith}, nil)

	input := "Account: 12345\n" +
		"Date: 01/03/2024\n" +
		"Amount: 45.00 \n" +
		"Description: BANK GIRO CREDIT REF SMITH, INV9\n"

	imp := santander.New()
	assert.Equal(t, santander.Name, imp.Name())

	var txs []*transaction.Transaction
	for tx, err := range imp.Import(context.Background(), strings.NewReader(input), counterparty.NewResolver(repo)) {
		require.NoError(t, err)
		txs = append(txs, tx)
	}

	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, transaction.KindCredit, tx.Kind())
	assert.Equal(t, day(2024, 3, 1), tx.Date)
	assert.Equal(t, 9, tx.Week)
	assert.True(t, dec("45.00").Equal(tx.Amount))
	assert.Equal(t, transaction.Credit{Type: transaction.CreditTypeGiro, Ref: "INV9"}, tx.Details)
	require.NotNil(t, tx.Alias)
	assert.Equal(t, "SMITH", tx.Alias.Name)
}
