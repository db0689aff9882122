package statement

import (
	"math"
	"sort"

	"github.com/espressobank/extrato/internal/dateutil"
)

// CalculateTotals folds a transaction list into income, expense, net and
// count. Credits accumulate into income, debits into expense, both as
// magnitudes; net is their difference.
func CalculateTotals(txs []Transaction) Totals {
	var totals Totals

	for _, tx := range txs {
		abs := math.Abs(tx.Amount)

		if tx.Direction == DirectionDebit {
			totals.Expense += abs
		} else {
			totals.Income += abs
		}

		totals.Net = totals.Income - totals.Expense
		totals.Count++
	}

	return totals
}

// FilterByProduct returns the transactions matching the selected product
// view, preserving order. ViewAll returns the input unchanged.
func FilterByProduct(txs []Transaction, view ProductView) []Transaction {
	if view == ViewAll {
		return txs
	}

	var out []Transaction

	for _, tx := range txs {
		if tx.ProductType == ProductType(view) {
			out = append(out, tx)
		}
	}

	return out
}

// BuildDailySeries groups the transactions matching direction by calendar
// day and sums their magnitudes. One point is emitted per day with at
// least one matching transaction, sorted ascending; empty days are
// absent. Transactions whose date cannot be truncated to a day are
// skipped (the normalizer guarantees its own output parses).
func BuildDailySeries(txs []Transaction, direction Direction) []DailySeriesPoint {
	if len(txs) == 0 {
		return nil
	}

	byDay := make(map[string]float64)

	for _, tx := range txs {
		if tx.Direction != direction {
			continue
		}

		day, err := dateutil.DayKey(tx.Date)
		if err != nil {
			continue
		}

		byDay[day] += math.Abs(tx.Amount)
	}

	points := make([]DailySeriesPoint, 0, len(byDay))
	for day, value := range byDay {
		points = append(points, DailySeriesPoint{Date: day, Value: value})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points
}
