package lineproc_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/importer/lineproc"
	"github.com/MrJamesThe3rd/ledger/internal/parse"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

type fakeResolver struct {
	names []string
}

func (r *fakeResolver) Resolve(_ context.Context, name string) (counterparty.Resolution, error) {
	r.names = append(r.names, name)
	cp := &counterparty.Counterparty{Name: name}

	return counterparty.Resolution{Counterparty: cp, Alias: &counterparty.Alias{Name: name, Counterparty: cp}}, nil
}

func extra(amount string) lineproc.Fields {
	return lineproc.Fields{
		lineproc.KeyAmount:      decimal.RequireFromString(amount),
		lineproc.KeyClearedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func cashPaid() *lineproc.Processor {
	return lineproc.MustNew("cash paid", transaction.KindCashPaid, `CASH PAID IN AT (?P<branch>.+)`,
		func(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
			return lineproc.Extracted{Details: transaction.CashPaid{Branch: f.String("branch")}}, nil
		},
		lineproc.TextField("branch"),
	)
}

func directDebit() *lineproc.Processor {
	return lineproc.MustNew("direct debit", transaction.KindDirectDebit,
		`DIRECT DEBIT PAYMENT TO (?P<party>.+?) REF (?P<ref>\S+)(?:, MANDATE NO (?P<mandate>\d+))?`,
		func(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
			res, err := parties.Resolve(ctx, f.String("party"))
			if err != nil {
				return lineproc.Extracted{}, err
			}

			return lineproc.Extracted{
				Details: transaction.DirectDebit{Ref: f.String("ref"), Mandate: f.IntOr("mandate", 0)},
				Party:   &res,
			}, nil
		},
		lineproc.TextField("party"), lineproc.TextField("ref"), lineproc.IntField("mandate"),
	)
}

func TestNew(t *testing.T) {
	noop := func(context.Context, lineproc.Fields, lineproc.Resolver) (lineproc.Extracted, error) {
		return lineproc.Extracted{}, nil
	}

	t.Run("anchors the pattern", func(t *testing.T) {
		p, err := lineproc.New("x", transaction.KindInterest, `INTEREST`, noop)
		require.NoError(t, err)
		assert.Equal(t, `^(?:INTEREST)$`, p.Pattern())
	})

	t.Run("rejects undeclared group", func(t *testing.T) {
		_, err := lineproc.New("x", transaction.KindInterest, `INTEREST (?P<tax>\S+)`, noop, lineproc.DecimalField("gross"))
		assert.ErrorContains(t, err, `no group "gross"`)
	})

	t.Run("rejects bad regex", func(t *testing.T) {
		_, err := lineproc.New("x", transaction.KindInterest, `(`, noop)
		assert.Error(t, err)
	})

	t.Run("MustNew panics", func(t *testing.T) {
		assert.Panics(t, func() {
			lineproc.MustNew("x", transaction.KindInterest, `(`, noop)
		})
	})
}

func TestProcessor_Match(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a full-line match", func(t *testing.T) {
		_, ok, err := cashPaid().Match(ctx, "ATM CASH PAID IN AT BRANCH42", extra("10.00"), &fakeResolver{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("extracts text group", func(t *testing.T) {
		out, ok, err := cashPaid().Match(ctx, "CASH PAID IN AT BRANCH42", extra("10.00"), &fakeResolver{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, transaction.CashPaid{Branch: "BRANCH42"}, out.Details)
	})

	t.Run("optional group absent uses default", func(t *testing.T) {
		r := &fakeResolver{}
		out, ok, err := directDebit().Match(ctx, "DIRECT DEBIT PAYMENT TO ACME REF INV001", extra("-50.00"), r)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, transaction.DirectDebit{Ref: "INV001", Mandate: 0}, out.Details)
		assert.Equal(t, []string{"ACME"}, r.names)
		require.NotNil(t, out.Party)
		assert.Equal(t, "ACME", out.Party.Alias.Name)
	})

	t.Run("coerces int group", func(t *testing.T) {
		out, _, err := directDebit().Match(ctx, "DIRECT DEBIT PAYMENT TO ACME REF INV001, MANDATE NO 0042", extra("-50.00"), &fakeResolver{})
		require.NoError(t, err)
		assert.Equal(t, 42, out.Details.(transaction.DirectDebit).Mandate)
	})

	t.Run("bad coercion is a format error", func(t *testing.T) {
		p := lineproc.MustNew("interest", transaction.KindInterest, `INTEREST TAX (?P<tax>\S+)`,
			func(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
				return lineproc.Extracted{Details: transaction.Interest{Tax: f.DecimalOr("tax", decimal.Zero)}}, nil
			},
			lineproc.DecimalField("tax"),
		)

		_, ok, err := p.Match(ctx, "INTEREST TAX abc", extra("1.00"), &fakeResolver{})
		assert.True(t, ok)
		assert.ErrorIs(t, err, parse.ErrFormat)
	})

	t.Run("resolver error propagates", func(t *testing.T) {
		p := lineproc.MustNew("transfer", transaction.KindTransfer, `TRANSFER TO (?P<party>.+)`,
			func(ctx context.Context, f lineproc.Fields, parties lineproc.Resolver) (lineproc.Extracted, error) {
				_, err := parties.Resolve(ctx, f.String("party"))
				return lineproc.Extracted{}, err
			},
			lineproc.TextField("party"),
		)

		_, ok, err := p.Match(ctx, "TRANSFER TO BOB", extra("1.00"), errResolver{})
		assert.True(t, ok)
		assert.ErrorIs(t, err, counterparty.ErrAmbiguousMatch)
	})

	t.Run("wrong variant kind", func(t *testing.T) {
		p := lineproc.MustNew("cash", transaction.KindCashPaid, `CASH`,
			func(context.Context, lineproc.Fields, lineproc.Resolver) (lineproc.Extracted, error) {
				return lineproc.Extracted{Details: transaction.Interest{}}, nil
			},
		)

		_, _, err := p.Match(ctx, "CASH", extra("1.00"), &fakeResolver{})
		assert.Error(t, err)
	})

	t.Run("missing side channel", func(t *testing.T) {
		_, ok, err := cashPaid().Match(ctx, "CASH PAID IN AT X", lineproc.Fields{}, &fakeResolver{})
		assert.True(t, ok)
		assert.ErrorContains(t, err, `missing field "amount"`)
	})
}

type errResolver struct{}

func (errResolver) Resolve(context.Context, string) (counterparty.Resolution, error) {
	return counterparty.Resolution{}, &counterparty.AmbiguousMatchError{Alias: "BOB", Counterparties: []string{"A", "B"}}
}

func TestFields_Date(t *testing.T) {
	p := lineproc.MustNew("card", transaction.KindCardPayment, `CARD PAYMENT ON (?P<date>\S+)`,
		func(_ context.Context, f lineproc.Fields, _ lineproc.Resolver) (lineproc.Extracted, error) {
			d, _ := f.Date("date")
			return lineproc.Extracted{Details: transaction.CardPayment{}, Date: d}, nil
		},
		lineproc.DateField("date"),
	)

	want := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	for _, line := range []string{"CARD PAYMENT ON 28-02-2024", "CARD PAYMENT ON 2024-02-28"} {
		out, ok, err := p.Match(context.Background(), line, extra("-1.00"), &fakeResolver{})
		require.NoError(t, err, line)
		require.True(t, ok, line)
		assert.True(t, want.Equal(out.Date), line)
	}
}

func TestSet_Match(t *testing.T) {
	ctx := context.Background()

	generic := lineproc.MustNew("generic", transaction.KindCashPaid, `CASH PAID IN AT .+`,
		func(context.Context, lineproc.Fields, lineproc.Resolver) (lineproc.Extracted, error) {
			return lineproc.Extracted{Details: transaction.CashPaid{Branch: "generic"}}, nil
		},
	)

	var s lineproc.Set
	s.Register(cashPaid(), generic)

	out, p, ok, err := s.Match(ctx, "CASH PAID IN AT BRANCH42", extra("5.00"), &fakeResolver{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "cash paid", p.Name)
	assert.Equal(t, transaction.CashPaid{Branch: "BRANCH42"}, out.Details)

	_, p, ok, err = s.Match(ctx, "SOMETHING ELSE", extra("5.00"), &fakeResolver{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, p)

	assert.Len(t, s.Processors(), 2)
}
