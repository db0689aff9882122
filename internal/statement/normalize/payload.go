package normalize

import (
	"log/slog"
	"sort"

	"github.com/espressobank/extrato/internal/statement"
)

// List field aliases on the top-level response; first present wins.
var listKeys = []string{"transactions", "data", "results", "statement"}

// Payload converts a raw decoded API response into a well-formed
// statement payload. It never fails: a response that flunks even the
// loose shape check yields the fallback payload unchanged, and individual
// records without a resolvable date are dropped. The originating filters
// supply the period and pagination defaults.
func Payload(raw any, fallback statement.Payload, filters statement.Filters) statement.Payload {
	filters = filters.WithDefaults()

	source, ok := raw.(map[string]any)
	if !ok {
		slog.Warn("statement response is not an object, using fallback payload")
		return fallback
	}

	list, ok := resolveList(source)
	if !ok {
		slog.Warn("statement response list field is malformed, using fallback payload")
		return fallback
	}

	txs := make([]statement.Transaction, 0, len(list))

	for i, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			slog.Warn("statement response contains a non-object record, using fallback payload", "index", i)
			return fallback
		}

		tx, ok := MapRecord(record)
		if !ok {
			slog.Debug("dropping statement record without a resolvable date", "index", i)
			continue
		}

		txs = append(txs, tx)
	}

	// Most-recent-first; lexicographic comparison is sufficient for ISO
	// 8601 dates.
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })

	out := statement.Payload{
		Period:        resolvePeriod(source, filters),
		ProductType:   filters.ProductType,
		Transactions:  txs,
		Currency:      fallback.Currency,
		LastUpdatedAt: fallback.LastUpdatedAt,
	}

	if c, ok := source["currency"].(string); ok && c != "" {
		out.Currency = c
	}

	out.OpeningBalance = resolveBalance(source, []string{"openingBalance", "opening_balance"}, fallback.OpeningBalance)
	out.ClosingBalance = resolveBalance(source, []string{"closingBalance", "closing_balance"}, fallback.ClosingBalance)

	resolvePagination(&out, source, filters, len(txs))

	return out
}

// resolveList picks the first present list alias. A present alias that is
// not an array is a shape failure, reported as !ok.
func resolveList(source map[string]any) ([]any, bool) {
	for _, k := range listKeys {
		v, present := source[k]
		if !present || v == nil {
			continue
		}

		list, ok := v.([]any)
		if !ok {
			return nil, false
		}

		return list, true
	}

	return nil, true
}

// resolvePeriod reads an embedded period object in either camelCase or
// snake_case, falling back to the request's date range.
func resolvePeriod(source map[string]any, filters statement.Filters) statement.Period {
	period := statement.Period{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
	}

	embedded, ok := source["period"].(map[string]any)
	if !ok {
		return period
	}

	if s, ok := firstString(embedded, []string{"startDate", "start_date"}); ok {
		period.StartDate = s
	}

	if s, ok := firstString(embedded, []string{"endDate", "end_date"}); ok {
		period.EndDate = s
	}

	return period
}

func resolveBalance(source map[string]any, keys []string, fallback float64) float64 {
	v, ok := firstPresent(source, keys)
	if !ok {
		return fallback
	}

	return coerceNumber(v, fallback)
}

// resolvePagination reconciles pagination metadata from a flat meta
// object or a nested pagination sub-object, trying multiple aliases per
// field. Unresolvable fields fall back to the transaction count (total),
// the request's page/limit, or stay absent (total pages, next, prev).
func resolvePagination(out *statement.Payload, source map[string]any, filters statement.Filters, txCount int) {
	meta, ok := source["meta"].(map[string]any)
	if !ok {
		meta, _ = source["metadata"].(map[string]any)
	}

	pagination, _ := meta["pagination"].(map[string]any)

	out.TotalCount = intFrom(txCount, meta, pagination, [2][]string{
		{"total", "count"},
		{"total", "count"},
	})
	out.Page = intFrom(filters.Page, meta, pagination, [2][]string{
		{"page"},
		{"page", "current"},
	})
	out.Limit = intFrom(filters.Limit, meta, pagination, [2][]string{
		{"limit", "per_page"},
		{"limit"},
	})
	out.TotalPages = intFrom(0, meta, pagination, [2][]string{
		{"pages", "last"},
		{"pages", "last"},
	})
	out.NextPage = intFrom(0, meta, pagination, [2][]string{
		{"next"},
		{"next"},
	})
	out.PrevPage = intFrom(0, meta, pagination, [2][]string{
		{"prev"},
		{"prev"},
	})
}

// intFrom resolves an integer field from meta aliases first, then
// pagination aliases, then the fallback. keys[0] addresses meta, keys[1]
// the nested pagination object.
func intFrom(fallback int, meta, pagination map[string]any, keys [2][]string) int {
	for _, k := range keys[0] {
		if v, ok := meta[k]; ok {
			if n, ok := optionalInt(v); ok {
				return n
			}
		}
	}

	for _, k := range keys[1] {
		if v, ok := pagination[k]; ok {
			if n, ok := optionalInt(v); ok {
				return n
			}
		}
	}

	return fallback
}
