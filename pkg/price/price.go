// Package price formats monetary values for the dashboard. Amounts stay
// decimal end to end; formatting is the only place a float appears.
package price

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders an amount with locale-aware digit grouping followed by the
// currency title, e.g. "1,234.50 USD" or "1.234,50 EUR" under "es".
func Format(amount decimal.Decimal, currencyTitle, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	f, _ := amount.Round(2).Float64()
	out := p.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if currencyTitle == "" {
		return out
	}
	return out + " " + currencyTitle
}
