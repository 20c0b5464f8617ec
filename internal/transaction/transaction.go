package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
)

// Kind discriminates the transaction variants.
type Kind string

const (
	KindCashWithdrawal  Kind = "cash_withdrawal"
	KindCardPayment     Kind = "card_payment"
	KindBillPayment     Kind = "bill_payment"
	KindDirectDebit     Kind = "direct_debit"
	KindStandingOrder   Kind = "standing_order"
	KindCredit          Kind = "credit"
	KindTransfer        Kind = "transfer"
	KindRegularTransfer Kind = "regular_transfer"
	KindCashPaid        Kind = "cash_paid"
	KindInterest        Kind = "interest"
)

// CreditType distinguishes the ways money arrives.
type CreditType string

const (
	CreditTypeCredit        CreditType = "credit"
	CreditTypeGiro          CreditType = "giro"
	CreditTypeFasterPayment CreditType = "faster_payment"
	CreditTypeBillPayment   CreditType = "bill_payment"
)

// Direction of a transfer between the account holder's own accounts.
type Direction string

const (
	DirectionTo   Direction = "to"
	DirectionFrom Direction = "from"
)

// Header holds the fields every transaction carries.
type Header struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	ClearedDate time.Time
	Date        time.Time
	Week        int
	Category    string
	Alias       *counterparty.Alias
	CreatedAt   time.Time
}

// Transaction is one statement line item: the shared header plus exactly one
// variant.
type Transaction struct {
	Header
	Details Details
}

func (t *Transaction) Kind() Kind {
	return t.Details.Kind()
}

// Details is implemented only by the variant types in this package.
type Details interface {
	Kind() Kind
	validate(h *Header) error
}

type CashWithdrawal struct {
	ATM             string
	Area            string
	RequestedAmount decimal.Decimal
	Currency        string
}

type CardPayment struct {
	RequestedAmount decimal.Decimal
	Currency        string
	Rate            decimal.Decimal
}

type BillPayment struct {
	Ref     string
	Mandate int
}

type DirectDebit struct {
	Ref     string
	Mandate int
}

type StandingOrder struct {
	Ref     string
	Mandate int
}

type Credit struct {
	Type CreditType
	Ref  string
}

type Transfer struct {
	Direction Direction
}

type RegularTransfer struct {
	SortCode      string
	AccountNumber string
	Mandate       int
}

type CashPaid struct {
	Branch string
}

type Interest struct {
	Tax decimal.Decimal
}

func (CashWithdrawal) Kind() Kind  { return KindCashWithdrawal }
func (CardPayment) Kind() Kind     { return KindCardPayment }
func (BillPayment) Kind() Kind     { return KindBillPayment }
func (DirectDebit) Kind() Kind     { return KindDirectDebit }
func (StandingOrder) Kind() Kind   { return KindStandingOrder }
func (Credit) Kind() Kind          { return KindCredit }
func (Transfer) Kind() Kind        { return KindTransfer }
func (RegularTransfer) Kind() Kind { return KindRegularTransfer }
func (CashPaid) Kind() Kind        { return KindCashPaid }
func (Interest) Kind() Kind        { return KindInterest }
