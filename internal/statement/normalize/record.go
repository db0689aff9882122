// Package normalize converts loosely-structured statement API responses
// into the canonical statement model. Upstream records arrive with
// missing, renamed or differently-typed fields; every field is resolved
// from an ordered alias list and coerced to its canonical type, and
// records that cannot be placed on a timeline are dropped rather than
// defaulted.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/espressobank/extrato/internal/money"
	"github.com/espressobank/extrato/internal/statement"
)

// Record is one raw upstream record: an open string-keyed mapping.
type Record = map[string]any

// DefaultDescription is the placeholder for records without any
// description alias.
const DefaultDescription = "Transação"

// Alias lists, in resolution order. First present key wins.
var (
	amountKeys      = []string{"amount", "value", "transactionAmount", "total"}
	directionKeys   = []string{"direction", "type", "transaction_type"}
	dateKeys        = []string{"date", "created_at", "transaction_date", "occurred_at"}
	descriptionKeys = []string{"description", "title", "summary"}
	categoryKeys    = []string{"category", "category_name"}
	responsibleKeys = []string{"responsible", "responsible_name", "username"}
	productTypeKeys = []string{"product_type", "productType", "product_code"}
	productNameKeys = []string{"product_name", "productName"}
)

// Direction classification patterns. Credit is checked first: a type
// string matching both classifies as credit. That precedence is
// load-bearing for upstream strings like "pagamento recebido".
var (
	creditPattern = regexp.MustCompile(`credit|entrada|in|income|receb`)
	debitPattern  = regexp.MustCompile(`debit|saída|saida|out|expense|pag`)
)

// firstPresent returns the value of the first alias key present in m.
func firstPresent(m Record, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}

	return nil, false
}

// firstString returns the first alias whose value is a non-empty string.
func firstString(m Record, keys []string) (string, bool) {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}

// coerceNumber converts a raw value to a number. Finite numbers pass
// through; strings go through the loose monetary parser (digits, comma
// and minus survive, comma becomes the decimal point). Anything else
// yields the fallback.
func coerceNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}

		return n
	case int:
		return float64(n)
	case string:
		return money.ParseAmount(n, fallback)
	}

	return fallback
}

// optionalInt converts a raw value to an int when it is a finite number
// or a plainly numeric string. Unlike coerceNumber it does not scrub
// formatting; pagination metadata is expected to be clean.
func optionalInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}

		return int(n), true
	case int:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}

		return int(f), true
	}

	return 0, false
}

// inferDirection classifies a free-text direction/type field, falling
// back to the sign of the resolved amount when the text matches neither
// pattern.
func inferDirection(raw string, amount float64) statement.Direction {
	if raw != "" {
		lowered := strings.ToLower(raw)

		if creditPattern.MatchString(lowered) {
			return statement.DirectionCredit
		}

		if debitPattern.MatchString(lowered) {
			return statement.DirectionDebit
		}
	}

	if amount >= 0 {
		return statement.DirectionCredit
	}

	return statement.DirectionDebit
}

// mergeAttributes flattens a JSON:API style "attributes" sub-mapping over
// the outer record. Attribute values win on key collision.
func mergeAttributes(raw Record) Record {
	attrs, ok := raw["attributes"].(map[string]any)
	if !ok {
		return raw
	}

	merged := make(Record, len(raw)+len(attrs))

	for k, v := range raw {
		merged[k] = v
	}

	for k, v := range attrs {
		merged[k] = v
	}

	return merged
}

// MapRecord converts one raw record into a canonical transaction. It
// reports false for records lacking any resolvable date; such records
// cannot be sorted or charted and are dropped by the caller.
func MapRecord(raw Record) (statement.Transaction, bool) {
	base := mergeAttributes(raw)

	var amount float64
	if v, ok := firstPresent(base, amountKeys); ok {
		amount = coerceNumber(v, 0)
	}

	dirText, _ := firstString(base, directionKeys)
	direction := inferDirection(dirText, amount)

	date, ok := firstString(base, dateKeys)
	if !ok {
		return statement.Transaction{}, false
	}

	description, ok := firstString(base, descriptionKeys)
	if !ok {
		description = DefaultDescription
	}

	tx := statement.Transaction{
		ID:          resolveID(base, date, description),
		Date:        date,
		Description: description,
		Amount:      math.Abs(amount),
		Direction:   direction,
		Status:      resolveStatus(base),
	}

	tx.Category, _ = firstString(base, categoryKeys)
	tx.Responsible, _ = firstString(base, responsibleKeys)
	tx.ProductName, _ = firstString(base, productNameKeys)

	if pt, ok := firstString(base, productTypeKeys); ok && statement.KnownProductType(pt) {
		tx.ProductType = statement.ProductType(pt)
	}

	return tx, true
}

// resolveID uses the upstream identifier when present, otherwise
// synthesizes a deterministic id from date and description. The synthetic
// form is good enough for display deduplication, not globally unique.
func resolveID(base Record, date, description string) string {
	switch id := base["id"].(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	}

	return date + "-" + description
}

func resolveStatus(base Record) statement.Status {
	s, _ := firstString(base, []string{"status"})

	switch statement.Status(s) {
	case statement.StatusPending:
		return statement.StatusPending
	case statement.StatusScheduled:
		return statement.StatusScheduled
	}

	return statement.StatusCompleted
}
