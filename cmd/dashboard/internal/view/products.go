package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/espressobank/extrato/internal/statement"
)

// ProductOption is one product-view chip.
type ProductOption struct {
	View  statement.ProductView
	Label string
}

// ProductOptions lists the product views in display order. ViewAll is
// always first.
func ProductOptions() []ProductOption {
	return []ProductOption{
		{View: statement.ViewAll, Label: "Visão geral"},
		{View: statement.ProductView(statement.ProductBusinessAccount), Label: "Conta empresarial"},
		{View: statement.ProductView(statement.ProductExpenseManagement), Label: "Gestão de despesas"},
		{View: statement.ProductView(statement.ProductSuppliers), Label: "Fornecedores"},
	}
}

var (
	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245"))

	chipSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(true)
)

// renderChips renders the product filter chips with the selected one
// highlighted.
func renderChips(options []ProductOption, selected int) string {
	parts := make([]string, 0, len(options))

	for i, opt := range options {
		style := chipStyle
		if i == selected {
			style = chipSelectedStyle
		}

		parts = append(parts, style.Render(opt.Label))
	}

	return strings.Join(parts, " ")
}
