// Package santander recognises the description lines of Santander UK
// plain-text statement exports.
package santander

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/importer/lineproc"
	"github.com/MrJamesThe3rd/ledger/internal/importer/statement"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

const (
	Module = "santander"
	Name   = "txt"
)

const defaultCurrency = "GBP"

var defaultRate = decimal.RequireFromString("1.00")

// New returns the Santander text statement importer.
func New(opts ...statement.Option) *statement.Importer {
	return statement.New(Name, Processors(), opts...)
}

// Processors returns a fresh processor set. More specific processors come
// first: BILL PAYMENT ... FROM is a credit and must win over BILL PAYMENT.
func Processors() *lineproc.Set {
	var set lineproc.Set

	set.Register(
		lineproc.MustNew("cash withdrawal", transaction.KindCashWithdrawal,
			`CASH WITHDRAWAL AT (?P<atm>.+), (?P<area>.+),(?P<requested_amount>\d+\.\d{2}) (?P<currency>\S{3}) ?,(?: ?ON (?P<date>\d{2}-\d{2}-\d{4}))?`,
			cashWithdrawal,
			lineproc.TextField("atm"), lineproc.TextField("area"), lineproc.AmountField("requested_amount"),
			lineproc.TextField("currency"), lineproc.DateField("date"),
		),
		lineproc.MustNew("bill payment received", transaction.KindCredit,
			`BILL PAYMENT (?:VIA (?P<via>.+?) )?FROM (?P<sender>.+), REFERENCE (?P<ref>.+)`,
			credit(transaction.CreditTypeBillPayment),
			lineproc.TextField("sender"), lineproc.TextField("ref"),
		),
		lineproc.MustNew("bill payment", transaction.KindBillPayment,
			`BILL PAYMENT (?:VIA (?P<via>.+?) )?TO (?P<recipient>.+?)(?: REFERENCE (?P<ref>.+?))? ?(?:, MANDATE NO (?P<mandate>\d+))?`,
			billPayment,
			lineproc.TextField("recipient"), lineproc.TextField("ref"), lineproc.IntField("mandate"),
		),
		lineproc.MustNew("card payment", transaction.KindCardPayment,
			`CARD PAYMENT TO (?P<recipient>.+?)(?:,(?P<requested_amount>\d+\.\d{2}) (?P<currency>\S{3}), RATE (?P<rate>\d+\.\d{2})/GBP ON (?P<date>\d{2}-\d{2}-\d{4})(?: NON-STERLING .+)?| ON (?P<date2>\d{4}-\d{2}-\d{2}))`,
			cardPayment,
			lineproc.TextField("recipient"), lineproc.AmountField("requested_amount"), lineproc.TextField("currency"),
			lineproc.DecimalField("rate"), lineproc.DateField("date"), lineproc.DateField("date2"),
		),
		lineproc.MustNew("bank giro credit", transaction.KindCredit,
			`BANK GIRO CREDIT REF (?P<sender>.+), (?P<ref>.+)`,
			credit(transaction.CreditTypeGiro),
			lineproc.TextField("sender"), lineproc.TextField("ref"),
		),
		lineproc.MustNew("faster payments receipt", transaction.KindCredit,
			`FASTER PAYMENTS RECEIPT REF.(?P<ref>.+) FROM (?P<sender>.+)`,
			credit(transaction.CreditTypeFasterPayment),
			lineproc.TextField("ref"), lineproc.TextField("sender"),
		),
		lineproc.MustNew("credit", transaction.KindCredit,
			`CREDIT FROM (?P<sender>.+) ON (?P<date>\d{4}-\d{2}-\d{2})`,
			credit(transaction.CreditTypeCredit),
			lineproc.TextField("sender"), lineproc.DateField("date"),
		),
		lineproc.MustNew("direct debit", transaction.KindDirectDebit,
			`(?:PAID TRANSACTION )?DIRECT DEBIT PAYMENT TO (?P<recipient>.+) REF (?P<ref>.+?)(?:, MANDATE NO (?P<mandate>\d+))?`,
			directDebit,
			lineproc.TextField("recipient"), lineproc.TextField("ref"), lineproc.IntField("mandate"),
		),
		lineproc.MustNew("transfer", transaction.KindTransfer,
			`TRANSFER (?P<direction>TO|FROM) (?P<party>.+)`,
			transfer,
			lineproc.TextField("direction"), lineproc.TextField("party"),
		),
		lineproc.MustNew("regular transfer", transaction.KindRegularTransfer,
			`REGULAR TRANSFER PAYMENT TO ACCOUNT (?P<sortcode>\d{6}) (?P<account>\d{8}), MANDATE NO (?P<mandate>\d+)`,
			regularTransfer,
			lineproc.TextField("sortcode"), lineproc.TextField("account"), lineproc.IntField("mandate"),
		),
		lineproc.MustNew("cash paid in", transaction.KindCashPaid,
			`CASH PAID IN AT (?P<branch>.+)`,
			cashPaid,
			lineproc.TextField("branch"),
		),
		lineproc.MustNew("interest", transaction.KindInterest,
			`INTEREST PAID AFTER TAX (?P<tax>\d+\.\d{2}) DEDUCTED`,
			interest,
			lineproc.DecimalField("tax"),
		),
		lineproc.MustNew("standing order", transaction.KindStandingOrder,
			`STANDING ORDER (?:VIA (?P<via>.+?) )?TO (?P<recipient>.+) REFERENCE (?P<ref>.+?) ?, MANDATE NO (?P<mandate>\d+)`,
			standingOrder,
			lineproc.TextField("recipient"), lineproc.TextField("ref"), lineproc.IntField("mandate"),
		),
	)

	return &set
}

func resolve(ctx context.Context, parties lineproc.Resolver, name string) (*lineproc.Extracted, error) {
	res, err := parties.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	return &lineproc.Extracted{Party: &res}, nil
}

func cashWithdrawal(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
	requested, _ := f.Decimal("requested_amount")
	date, _ := f.Date("date")

	return lineproc.Extracted{
		Details: transaction.CashWithdrawal{
			ATM:             f.String("atm"),
			Area:            f.String("area"),
			RequestedAmount: requested,
			Currency:        f.String("currency"),
		},
		Date: date,
	}, nil
}

func billPayment(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
	out, err := resolve(ctx, parties, f.String("recipient"))
	if err != nil {
		return lineproc.Extracted{}, err
	}

	out.Details = transaction.BillPayment{Ref: f.String("ref"), Mandate: f.IntOr("mandate", 0)}

	return *out, nil
}

func cardPayment(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
	out, err := resolve(ctx, parties, f.String("recipient"))
	if err != nil {
		return lineproc.Extracted{}, err
	}

	currency := f.String("currency")
	if currency == "" {
		currency = defaultCurrency
	}

	out.Details = transaction.CardPayment{
		RequestedAmount: f.DecimalOr("requested_amount", f.Amount()),
		Currency:        currency,
		Rate:            f.DecimalOr("rate", defaultRate),
	}

	if d, ok := f.Date("date"); ok {
		out.Date = d
	} else if d, ok := f.Date("date2"); ok {
		out.Date = d
	}

	return *out, nil
}

func credit(kind transaction.CreditType) lineproc.ExtractFunc {
	return func(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
		out, err := resolve(ctx, parties, f.String("sender"))
		if err != nil {
			return lineproc.Extracted{}, err
		}

		out.Details = transaction.Credit{Type: kind, Ref: f.String("ref")}
		out.Date, _ = f.Date("date")

		return *out, nil
	}
}

func directDebit(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
	out, err := resolve(ctx, parties, f.String("recipient"))
	if err != nil {
		return lineproc.Extracted{}, err
	}

	out.Details = transaction.DirectDebit{Ref: f.String("ref"), Mandate: f.IntOr("mandate", 0)}

	return *out, nil
}

func transfer(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
	out, err := resolve(ctx, parties, f.String("party"))
	if err != nil {
		return lineproc.Extracted{}, err
	}

	dir := transaction.DirectionTo
	if f.String("direction") == "FROM" {
		dir = transaction.DirectionFrom
	}

	out.Details = transaction.Transfer{Direction: dir}

	return *out, nil
}

func regularTransfer(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
	return lineproc.Extracted{
		Details: transaction.RegularTransfer{
			SortCode:      f.String("sortcode"),
			AccountNumber: f.String("account"),
			Mandate:       f.IntOr("mandate", 0),
		},
	}, nil
}

func cashPaid(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
	return lineproc.Extracted{Details: transaction.CashPaid{Branch: f.String("branch")}}, nil
}

func interest(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
	tax, _ := f.Decimal("tax")
	return lineproc.Extracted{Details: transaction.Interest{Tax: tax}}, nil
}

func standingOrder(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
	out, err := resolve(ctx, parties, f.String("recipient"))
	if err != nil {
		return lineproc.Extracted{}, err
	}

	out.Details = transaction.StandingOrder{Ref: f.String("ref"), Mandate: f.IntOr("mandate", 0)}

	return *out, nil
}
