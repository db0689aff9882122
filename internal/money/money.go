// Package money holds the monetary helpers shared by the aggregation
// pipeline and the presentation layer: deriving signed amounts from a
// transaction's direction and formatting values as localized currency.
package money

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/espressobank/extrato/internal/statement"
)

// SignedAmount applies a transaction's direction to its stored magnitude.
// Credits are positive, debits negative.
func SignedAmount(tx statement.Transaction) float64 {
	abs := math.Abs(tx.Amount)
	if tx.Direction == statement.DirectionDebit {
		return -abs
	}

	return abs
}

var amountJunk = regexp.MustCompile(`[^\d,-]+`)

// ParseAmount coerces a loosely formatted amount string into a number.
// Everything except digits, comma and minus is stripped, the comma is
// treated as the decimal separator ("R$ 1.500,00" -> 1500). Unparseable
// input yields the fallback.
func ParseAmount(s string, fallback float64) float64 {
	clean := amountJunk.ReplaceAllString(s, "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return fallback
	}

	return d.InexactFloat64()
}

// Statement amounts are presented in Brazilian Portuguese regardless of
// currency, matching the upstream product.
var printer = message.NewPrinter(language.BrazilianPortuguese)

var (
	unitsMu sync.Mutex
	units   = make(map[string]currency.Unit)
)

// unitFor resolves and caches a currency unit by ISO 4217 code. The cache
// is never evicted; the set of real-world codes is small.
func unitFor(code string) currency.Unit {
	unitsMu.Lock()
	defer unitsMu.Unlock()

	if u, ok := units[code]; ok {
		return u
	}

	u, err := currency.ParseISO(code)
	if err != nil {
		u = currency.BRL
	}

	units[code] = u

	return u
}

// FormatCurrency renders a value as localized currency text with two
// fraction digits, e.g. FormatCurrency(1500, "BRL") -> "R$ 1.500,00".
func FormatCurrency(value float64, code string) string {
	if code == "" {
		code = "BRL"
	}

	u := unitFor(code)

	return printer.Sprintf("%v %v", currency.Symbol(u), number.Decimal(value, number.Scale(2)))
}
