// Package money formatea importes y cifras para las tarjetas de los dashboards.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var (
	usdSymbol = printer.Sprint(currency.Symbol(currency.USD))
	usdScale  = currencyScale(currency.USD)
)

func currencyScale(u currency.Unit) int32 {
	scale, _ := currency.Standard.Rounding(u)
	return int32(scale)
}

// USD formatea un importe con símbolo y separador de miles: 45280.9 → "$45,280.90".
// Opera sobre el decimal, sin pasar por float64.
func USD(d decimal.Decimal) string {
	d = d.Round(usdScale)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	frac := d.Sub(whole).StringFixed(usdScale) // "0.90"
	return sign + usdSymbol + printer.Sprintf("%d", whole.IntPart()) + strings.TrimPrefix(frac, "0")
}

// Count formatea un entero con separador de miles: 1375 → "1,375".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent formatea un porcentaje tal como llega: 4.8 → "4.8%".
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// Change formatea una variación contra el período anterior: 12.5 → "+12.5% from last month".
func Change(d decimal.Decimal, period string) string {
	sign := "+"
	if d.IsNegative() {
		sign = ""
	}
	return sign + d.String() + "% from " + period
}
