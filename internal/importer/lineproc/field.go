package lineproc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/parse"
)

// Coercion says how a captured group is converted before extraction.
type Coercion int

const (
	Text Coercion = iota
	// Date accepts DD-MM-YYYY, then YYYY-MM-DD.
	Date
	// Amount goes through the statement currency parser.
	Amount
	Decimal
	Int
)

// dateLayouts are tried in order for Date groups.
var dateLayouts = []string{"02-01-2006", "2006-01-02"}

// FieldSpec declares one named group of a processor's pattern.
type FieldSpec struct {
	Group  string
	Coerce Coercion
}

func TextField(group string) FieldSpec    { return FieldSpec{Group: group, Coerce: Text} }
func DateField(group string) FieldSpec    { return FieldSpec{Group: group, Coerce: Date} }
func AmountField(group string) FieldSpec  { return FieldSpec{Group: group, Coerce: Amount} }
func DecimalField(group string) FieldSpec { return FieldSpec{Group: group, Coerce: Decimal} }
func IntField(group string) FieldSpec     { return FieldSpec{Group: group, Coerce: Int} }

func (c Coercion) apply(raw string) (any, error) {
	switch c {
	case Date:
		return parse.Date(raw, dateLayouts...)
	case Amount:
		return parse.Currency(raw)
	case Decimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &parse.FormatError{Value: raw, Reason: "invalid decimal", Err: err}
		}

		return d, nil
	case Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &parse.FormatError{Value: raw, Reason: "invalid integer", Err: err}
		}

		return n, nil
	}

	return raw, nil
}

// Side-channel keys the statement importer passes alongside each line.
const (
	KeyAmount      = "amount"
	KeyClearedDate = "cleared_date"
)

// Fields holds coerced values by group name. Optional groups that did not
// participate in the match are absent.
type Fields map[string]any

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// String returns a text field, or "" when absent.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f Fields) Date(name string) (time.Time, bool) {
	t, ok := f[name].(time.Time)
	return t, ok
}

func (f Fields) Decimal(name string) (decimal.Decimal, bool) {
	d, ok := f[name].(decimal.Decimal)
	return d, ok
}

// DecimalOr returns the decimal field name, or def when absent.
func (f Fields) DecimalOr(name string, def decimal.Decimal) decimal.Decimal {
	if d, ok := f.Decimal(name); ok {
		return d
	}

	return def
}

// IntOr returns the integer field name, or def when absent.
func (f Fields) IntOr(name string, def int) int {
	if n, ok := f[name].(int); ok {
		return n
	}

	return def
}

// Amount returns the side-channel statement amount.
func (f Fields) Amount() decimal.Decimal {
	d, _ := f.Decimal(KeyAmount)
	return d
}

func (f Fields) mustHave(names ...string) error {
	for _, n := range names {
		if !f.Has(n) {
			return fmt.Errorf("missing field %q", n)
		}
	}

	return nil
}
