package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/espressobank/extrato/internal/money"
	"github.com/espressobank/extrato/internal/statement"
)

var (
	metricLabelStyle = lipgloss.NewStyle().Faint(true)
	incomeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	expenseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	netStyle         = lipgloss.NewStyle().Bold(true)
)

// renderSummary renders the Entradas/Saídas/Saldo metrics row for the
// chart window's totals.
func renderSummary(totals statement.Totals, currency string) string {
	net := netStyle

	trend := "▲"
	if totals.Net < 0 {
		trend = "▼"
		net = net.Foreground(lipgloss.Color("204"))
	} else {
		net = net.Foreground(lipgloss.Color("42"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Entradas", incomeStyle.Render(money.FormatCurrency(totals.Income, currency))),
		metric("Saídas", expenseStyle.Render(money.FormatCurrency(totals.Expense, currency))),
		metric("Saldo do período", net.Render(fmt.Sprintf("%s %s", trend, money.FormatCurrency(totals.Net, currency)))),
		metric("Transações", fmt.Sprintf("%d", totals.Count)),
	)
}

func metric(label, value string) string {
	return lipgloss.NewStyle().MarginRight(4).Render(
		metricLabelStyle.Render(label) + "\n" + value,
	)
}
