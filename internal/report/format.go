package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts for insight messages.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter grouping digits for the language and
// prefixing amounts with the currency symbol.
func NewFormatter(tag language.Tag, symbol string) Formatter {
	return Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Money formats an amount with digit grouping and at most two fraction digits.
func (f Formatter) Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	return sign + f.symbol + f.printer.Sprintf("%v", number.Decimal(amount.Round(2).InexactFloat64(), number.MaxFractionDigits(2)))
}
