// Package format renders calculator values for display in a given locale.
package format

import (
	"fmt"
	"math"

	"github.com/iwvelando/solar-sizing/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var decimalVerb = fmt.Sprintf("%%.%df", constants.DisplayDecimals)

// Printer formats numbers and currency amounts for one locale.
type Printer struct {
	tag      language.Tag
	currency string
	p        *message.Printer
}

// NewPrinter returns a Printer for the BCP 47 locale and currency code. An
// empty or unparseable locale falls back to constants.DefaultLocale and an
// empty currency to constants.DefaultCurrency.
func NewPrinter(locale, currency string) *Printer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.MustParse(constants.DefaultLocale)
	}
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &Printer{tag: tag, currency: currency, p: message.NewPrinter(tag)}
}

// Locale returns the locale tag in use.
func (f *Printer) Locale() string {
	return f.tag.String()
}

// CurrencyCode returns the currency code appended to amounts.
func (f *Printer) CurrencyCode() string {
	return f.currency
}

// Currency returns the amount rounded to whole units with thousands grouping,
// prefixed with a dollar sign and followed by the currency code
// (e.g. "$463.000 COP" for es-CO).
func (f *Printer) Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + "$" + f.Integer(math.Abs(amount)) + " " + f.currency
}

// Integer returns the value rounded to a whole number with thousands grouping.
func (f *Printer) Integer(value float64) string {
	rounded := math.Round(value)
	if math.Abs(rounded) >= maxExactInt64 || math.IsNaN(rounded) {
		return f.p.Sprintf("%.0f", rounded)
	}
	return f.p.Sprintf("%d", int64(rounded))
}

// maxExactInt64 is 2^63, the first float64 that does not fit in an int64.
const maxExactInt64 = 1 << 63

// Decimal returns the value with constants.DisplayDecimals fraction digits.
func (f *Printer) Decimal(value float64) string {
	return f.p.Sprintf(decimalVerb, value)
}

// Percent returns the value followed by a percent sign, without decimals
// when it is a whole number.
func (f *Printer) Percent(value float64) string {
	if value == math.Trunc(value) {
		return f.Integer(value) + "%"
	}
	return f.Decimal(value) + "%"
}

// Number returns the value with as many decimals as needed and thousands
// grouping (e.g. "450,5" or "1.200" for es-CO).
func (f *Printer) Number(value float64) string {
	return f.p.Sprintf("%v", value)
}
