package transaction

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every ValidationError via errors.Is.
var ErrInvalid = errors.New("invalid transaction")

// ValidationError reports a transaction that breaks its variant's
// structural rules. It signals that the statement format no longer matches
// what the importer assumes.
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s transaction: %s", e.Kind, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Validate checks the header and the variant's own invariants.
func (t *Transaction) Validate() error {
	if t.Details == nil {
		return &ValidationError{Reason: "missing details"}
	}

	if t.Date.IsZero() || t.ClearedDate.IsZero() {
		return &ValidationError{Kind: t.Kind(), Reason: "missing date"}
	}

	if _, week := t.Date.ISOWeek(); week != t.Week {
		return &ValidationError{Kind: t.Kind(), Reason: fmt.Sprintf("week %d does not match date %s", t.Week, t.Date.Format("2006-01-02"))}
	}

	return t.Details.validate(&t.Header)
}

func requireAlias(k Kind, h *Header) error {
	if h.Alias == nil {
		return &ValidationError{Kind: k, Reason: "expected counterparty alias"}
	}

	return nil
}

func requireNegative(k Kind, h *Header) error {
	if !h.Amount.IsNegative() {
		return &ValidationError{Kind: k, Reason: fmt.Sprintf("non-negative amount %s (should be negative)", h.Amount)}
	}

	return nil
}

func (CashWithdrawal) validate(*Header) error { return nil }

func (d CardPayment) validate(h *Header) error { return requireAlias(d.Kind(), h) }

func (d BillPayment) validate(h *Header) error { return requireAlias(d.Kind(), h) }

func (d DirectDebit) validate(h *Header) error {
	if err := requireAlias(d.Kind(), h); err != nil {
		return err
	}

	return requireNegative(d.Kind(), h)
}

func (d StandingOrder) validate(h *Header) error {
	if err := requireAlias(d.Kind(), h); err != nil {
		return err
	}

	return requireNegative(d.Kind(), h)
}

func (d Credit) validate(h *Header) error {
	if err := requireAlias(d.Kind(), h); err != nil {
		return err
	}

	if h.Amount.IsNegative() {
		return &ValidationError{Kind: d.Kind(), Reason: fmt.Sprintf("negative amount %s (should be positive)", h.Amount)}
	}

	return nil
}

func (d Transfer) validate(h *Header) error { return requireAlias(d.Kind(), h) }

func (RegularTransfer) validate(*Header) error { return nil }

func (CashPaid) validate(*Header) error { return nil }

func (Interest) validate(*Header) error { return nil }
