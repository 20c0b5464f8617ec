package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySuffix is the only currency code statements may carry.
const currencySuffix = " GBP"

// poundArtifacts are the pound signs seen in exports, including the
// mojibake left behind when UTF-8 "£" is read as Windows-1252.
var poundArtifacts = []string{"Â£", "£"}

// Currency parses a statement amount such as "1,234.56", "£12.00" or
// "45.00 GBP" into an exact decimal.
func Currency(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ",", "")
	for _, a := range poundArtifacts {
		clean = strings.ReplaceAll(clean, a, "")
	}

	if strings.Contains(clean, " ") {
		if !strings.HasSuffix(clean, currencySuffix) {
			return decimal.Zero, &FormatError{Value: s, Reason: "unexpected currency"}
		}

		clean = strings.TrimSuffix(clean, currencySuffix)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, &FormatError{Value: s, Reason: "invalid amount", Err: err}
	}

	return d, nil
}
