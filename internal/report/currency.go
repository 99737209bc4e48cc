package report

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol returns the narrow symbol of the ISO 4217 currency code as
// printed for the language, e.g. "₹" for "INR".
//
// If the locale data has no symbol for the currency, the code is returned.
func CurrencySymbol(tag language.Tag, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", err
	}

	fields := strings.Fields(message.NewPrinter(tag).Sprint(currency.NarrowSymbol(unit.Amount(0))))
	if len(fields) == 0 {
		return unit.String(), nil
	}
	return fields[0], nil
}
