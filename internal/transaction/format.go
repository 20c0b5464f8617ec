package transaction

import (
	"fmt"
	"strings"
)

const displayDate = "02/01/2006"

// String renders a one-line summary, used for dry-run listings and logs.
func (t *Transaction) String() string {
	if t.Details == nil {
		return "<transaction>"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "<%s amount=%s, date=%s, cleared=%s",
		t.Kind(), t.Amount.StringFixed(2), t.Date.Format(displayDate), t.ClearedDate.Format(displayDate))

	switch d := t.Details.(type) {
	case CashWithdrawal:
		fmt.Fprintf(&sb, ", atm=%q, area=%q, requested=%s %s", d.ATM, d.Area, d.RequestedAmount.StringFixed(2), d.Currency)
	case CardPayment:
		fmt.Fprintf(&sb, ", recipient=%q, requested=%s %s", t.Alias, d.RequestedAmount.StringFixed(2), d.Currency)
	case BillPayment:
		fmt.Fprintf(&sb, ", recipient=%q, ref=%q, mandate=%d", t.Alias, d.Ref, d.Mandate)
	case DirectDebit:
		fmt.Fprintf(&sb, ", recipient=%q, ref=%q, mandate=%d", t.Alias, d.Ref, d.Mandate)
	case StandingOrder:
		fmt.Fprintf(&sb, ", recipient=%q, ref=%q, mandate=%d", t.Alias, d.Ref, d.Mandate)
	case Credit:
		fmt.Fprintf(&sb, ", type=%s, from=%q, ref=%q", d.Type, t.Alias, d.Ref)
	case Transfer:
		fmt.Fprintf(&sb, ", %s=%q", d.Direction, t.Alias)
	case RegularTransfer:
		fmt.Fprintf(&sb, ", sortcode=%s, account=%s, mandate=%d", d.SortCode, d.AccountNumber, d.Mandate)
	case CashPaid:
		fmt.Fprintf(&sb, ", branch=%q", d.Branch)
	case Interest:
		fmt.Fprintf(&sb, ", tax=%s", d.Tax.StringFixed(2))
	}

	sb.WriteString(">")

	return sb.String()
}
