package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/espressobank/extrato/internal/money"
	"github.com/espressobank/extrato/internal/statement"
)

const barWidth = 24

var (
	incomeBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	chartLabelStyle = lipgloss.NewStyle().Faint(true)
)

// renderDailyChart draws the income and expense daily series as paired
// horizontal bars, one row per day that has movement, ascending by date.
func renderDailyChart(income, expense []statement.DailySeriesPoint, currency string) string {
	days := mergeDays(income, expense)
	if len(days) == 0 {
		return chartLabelStyle.Render("Sem movimentações no período.")
	}

	incomeByDay := seriesMap(income)
	expenseByDay := seriesMap(expense)

	maxValue := 0.0

	for _, day := range days {
		if v := incomeByDay[day]; v > maxValue {
			maxValue = v
		}

		if v := expenseByDay[day]; v > maxValue {
			maxValue = v
		}
	}

	var sb strings.Builder

	for _, day := range days {
		label := chartLabelStyle.Render(FormatDay(day))

		if v, ok := incomeByDay[day]; ok {
			sb.WriteString(fmt.Sprintf("%s  %s %s\n",
				label,
				incomeBarStyle.Render(bar(v, maxValue)),
				money.FormatCurrency(v, currency),
			))

			label = chartLabelStyle.Render(strings.Repeat(" ", 10))
		}

		if v, ok := expenseByDay[day]; ok {
			sb.WriteString(fmt.Sprintf("%s  %s %s\n",
				label,
				expenseBarStyle.Render(bar(v, maxValue)),
				money.FormatCurrency(v, currency),
			))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func bar(value, maxValue float64) string {
	if maxValue <= 0 {
		return ""
	}

	n := int(value / maxValue * barWidth)
	if n < 1 {
		n = 1
	}

	return strings.Repeat("▇", n)
}

func seriesMap(points []statement.DailySeriesPoint) map[string]float64 {
	m := make(map[string]float64, len(points))
	for _, p := range points {
		m[p.Date] = p.Value
	}

	return m
}

// mergeDays unions the days of both series, ascending and unique.
func mergeDays(income, expense []statement.DailySeriesPoint) []string {
	seen := make(map[string]struct{}, len(income)+len(expense))

	for _, p := range income {
		seen[p.Date] = struct{}{}
	}

	for _, p := range expense {
		seen[p.Date] = struct{}{}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}

	sort.Strings(days)

	return days
}
