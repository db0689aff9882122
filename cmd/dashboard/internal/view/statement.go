package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/espressobank/extrato/internal/money"
	"github.com/espressobank/extrato/internal/statement"
	"github.com/espressobank/extrato/internal/statement/client"
)

// windowID identifies one of the two independently fetched query windows.
type windowID int

const (
	windowTable windowID = iota
	windowChart
)

type dashState int

const (
	stateBrowse dashState = iota
	stateMonthPicker
)

// window tracks the fetch lifecycle of one query window. cancel aborts
// the in-flight request when a newer one supersedes it.
type window struct {
	payload  statement.Payload
	loaded   bool
	fetching bool
	err      error
	cancel   context.CancelFunc
}

// refreshMsg asks the controller to (re)issue a window's fetch.
type refreshMsg struct {
	window windowID
}

// resultMsg carries one completed window fetch.
type resultMsg struct {
	window  windowID
	payload statement.Payload
	err     error
}

var pageSizes = []int{5, 10, 25, 50}

// StatementModel is the statement dashboard: one shared filter state
// driving a paged table window and a full-range chart window.
type StatementModel struct {
	fetcher    client.Fetcher
	chartLimit int

	months     []MonthOption
	monthIdx   int
	products   []ProductOption
	productIdx int

	// filters is the table window's query state; the chart window derives
	// its own filters from the same date range and product.
	filters statement.Filters

	tableWin window
	chartWin window

	txTable table.Model
	spinner spinner.Model

	state     dashState
	form      *huh.Form
	formMonth string

	width  int
	height int
}

// NewStatementModel builds the dashboard over the given fetcher.
func NewStatementModel(fetcher client.Fetcher, pageSize, chartLimit int) StatementModel {
	months := MonthOptions()
	initial := months[0]

	columns := []table.Column{
		{Title: "Data", Width: 10},
		{Title: "Descrição", Width: 36},
		{Title: "Categoria", Width: 14},
		{Title: "Produto", Width: 20},
		{Title: "Valor", Width: 16},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return StatementModel{
		fetcher:    fetcher,
		chartLimit: chartLimit,
		months:     months,
		products:   ProductOptions(),
		filters: statement.Filters{
			StartDate: initial.StartDate,
			EndDate:   initial.EndDate,
			Page:      statement.DefaultPage,
			Limit:     pageSize,
		},
		txTable: t,
		spinner: sp,
	}
}

func (m StatementModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshBoth())
}

// productView is the currently selected product chip.
func (m StatementModel) productView() statement.ProductView {
	return m.products[m.productIdx].View
}

// chartFilters mirrors the table window's range and product but always
// requests the first page with a high limit: the chart is never paged.
func (m StatementModel) chartFilters() statement.Filters {
	return statement.Filters{
		StartDate:   m.filters.StartDate,
		EndDate:     m.filters.EndDate,
		ProductType: m.filters.ProductType,
		Page:        statement.DefaultPage,
		Limit:       m.chartLimit,
	}
}

func refreshBoth() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return refreshMsg{window: windowTable} },
		func() tea.Msg { return refreshMsg{window: windowChart} },
	)
}

func fetchCmd(fetcher client.Fetcher, ctx context.Context, id windowID, filters statement.Filters) tea.Cmd {
	return func() tea.Msg {
		payload, err := fetcher.Fetch(ctx, filters)
		return resultMsg{window: id, payload: payload, err: err}
	}
}

func (m StatementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.startFetch(msg.window)

	case resultMsg:
		return m.applyResult(msg)

	case spinner.TickMsg:
		if !m.tableWin.fetching && !m.chartWin.fetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.txTable.SetHeight(max(msg.Height-24, 5))

		return m, nil
	}

	switch m.state {
	case stateBrowse:
		return m.updateBrowse(msg)
	case stateMonthPicker:
		return m.updateMonthPicker(msg)
	}

	return m, nil
}

// startFetch cancels any in-flight request for the window and issues a
// new one. Last request wins per window.
func (m StatementModel) startFetch(id windowID) (tea.Model, tea.Cmd) {
	win := &m.tableWin
	filters := m.filters

	if id == windowChart {
		win = &m.chartWin
		filters = m.chartFilters()
	}

	if win.cancel != nil {
		win.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	win.cancel = cancel
	win.fetching = true

	return m, tea.Batch(m.spinner.Tick, fetchCmd(m.fetcher, ctx, id, filters))
}

// applyResult lands a completed fetch. Cancelled fetches are discarded:
// the cancellation was issued because newer filters superseded them.
func (m StatementModel) applyResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, context.Canceled) {
		return m, nil
	}

	win := &m.tableWin
	if msg.window == windowChart {
		win = &m.chartWin
	}

	win.fetching = false
	win.cancel = nil
	win.err = msg.err

	if msg.err == nil {
		win.payload = msg.payload
		win.loaded = true
	}

	if msg.window == windowTable {
		m.refreshTableRows()
	}

	return m, nil
}

func (m StatementModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		return m.selectProduct((m.productIdx + len(m.products) - 1) % len(m.products))

	case "right", "l":
		return m.selectProduct((m.productIdx + 1) % len(m.products))

	case "1", "2", "3", "4":
		idx := int(keyMsg.String()[0] - '1')
		return m.selectProduct(idx)

	case "m":
		return m.openMonthPicker()

	case "n", "pgdown":
		if m.filters.Page < m.totalPages() {
			m.filters.Page++
			return m, func() tea.Msg { return refreshMsg{window: windowTable} }
		}

		return m, nil

	case "p", "pgup":
		if m.filters.Page > 1 {
			m.filters.Page--
			return m, func() tea.Msg { return refreshMsg{window: windowTable} }
		}

		return m, nil

	case "s":
		m.filters.Limit = nextPageSize(m.filters.Limit)
		m.filters.Page = statement.DefaultPage

		return m, func() tea.Msg { return refreshMsg{window: windowTable} }

	case "r":
		return m, refreshBoth()
	}

	var cmd tea.Cmd
	m.txTable, cmd = m.txTable.Update(msg)

	return m, cmd
}

// selectProduct switches the product view: the table resets to the first
// page and both windows refetch with the new product filter.
func (m StatementModel) selectProduct(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.products) || idx == m.productIdx {
		return m, nil
	}

	m.productIdx = idx

	view := m.productView()
	if view == statement.ViewAll {
		m.filters.ProductType = ""
	} else {
		m.filters.ProductType = statement.ProductType(view)
	}

	m.filters.Page = statement.DefaultPage

	return m, refreshBoth()
}

func (m StatementModel) openMonthPicker() (tea.Model, tea.Cmd) {
	options := make([]huh.Option[string], 0, len(m.months))
	for _, opt := range m.months {
		options = append(options, huh.NewOption(opt.Label, opt.Key))
	}

	m.formMonth = m.months[m.monthIdx].Key

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("month").
				Title("Mês do extrato").
				Options(options...).
				Value(&m.formMonth),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = stateMonthPicker

	return m, m.form.Init()
}

func (m StatementModel) updateMonthPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = stateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = stateBrowse
	m.form = nil

	return m.selectMonth(m.formMonth)
}

// selectMonth switches the statement month: the table resets to the
// first page and both windows refetch over the new date range.
func (m StatementModel) selectMonth(key string) (tea.Model, tea.Cmd) {
	for i, opt := range m.months {
		if opt.Key != key {
			continue
		}

		m.monthIdx = i
		m.filters.StartDate = opt.StartDate
		m.filters.EndDate = opt.EndDate
		m.filters.Page = statement.DefaultPage

		return m, refreshBoth()
	}

	return m, nil
}

// displayedPagination returns the page/limit to present for the table:
// the server-confirmed values once a result has landed, the locally
// requested values while a request is in flight.
func (m StatementModel) displayedPagination() (page, limit int) {
	if m.tableWin.fetching || !m.tableWin.loaded {
		return m.filters.Page, m.filters.Limit
	}

	page = m.tableWin.payload.Page
	if page <= 0 {
		page = m.filters.Page
	}

	limit = m.tableWin.payload.Limit
	if limit <= 0 {
		limit = m.filters.Limit
	}

	return page, limit
}

// totalPages prefers the server-reported page count and otherwise
// derives it from the total count and the displayed limit.
func (m StatementModel) totalPages() int {
	if !m.tableWin.loaded {
		return 1
	}

	if m.tableWin.payload.TotalPages > 0 {
		return m.tableWin.payload.TotalPages
	}

	_, limit := m.displayedPagination()
	if limit <= 0 {
		return 1
	}

	total := m.tableWin.payload.TotalCount

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return max(pages, 1)
}

func (m *StatementModel) refreshTableRows() {
	txs := statement.FilterByProduct(m.tableWin.payload.Transactions, m.productView())
	currency := m.currency()

	rows := make([]table.Row, 0, len(txs))
	for _, tx := range txs {
		product := tx.ProductName
		if product == "" {
			product = string(tx.ProductType)
		}

		rows = append(rows, table.Row{
			FormatDay(tx.Date),
			tx.Description,
			tx.Category,
			product,
			money.FormatCurrency(money.SignedAmount(tx), currency),
			string(tx.Status),
		})
	}

	m.txTable.SetRows(rows)
}

// currency prefers the chart window's payload, then the table's,
// defaulting to BRL.
func (m StatementModel) currency() string {
	if m.chartWin.loaded && m.chartWin.payload.Currency != "" {
		return m.chartWin.payload.Currency
	}

	if m.tableWin.loaded && m.tableWin.payload.Currency != "" {
		return m.tableWin.payload.Currency
	}

	return "BRL"
}

func nextPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}

	return pageSizes[0]
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m StatementModel) View() string {
	if m.state == stateMonthPicker && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	header := titleStyle.Render("Extrato") + "  " + faintStyle.Render(m.months[m.monthIdx].Label)
	if m.tableWin.fetching || m.chartWin.fetching {
		header += "  " + m.spinner.View()
	}

	sections := []string{
		header,
		renderChips(m.products, m.productIdx),
		m.summarySection(),
		m.chartSection(),
		m.tableSection(),
		faintStyle.Render("←/→: produto | m: mês | n/p: página | s: linhas por página | r: atualizar | q: sair"),
	}

	var out string
	for _, s := range sections {
		if s == "" {
			continue
		}

		out += sectionStyle.Render(s) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(out)
}

func (m StatementModel) summarySection() string {
	if m.chartWin.err != nil {
		return errorStyle.Render(fmt.Sprintf("Erro ao carregar o resumo: %v", m.chartWin.err))
	}

	if !m.chartWin.loaded {
		return faintStyle.Render("Carregando resumo...")
	}

	txs := statement.FilterByProduct(m.chartWin.payload.Transactions, m.productView())

	return renderSummary(statement.CalculateTotals(txs), m.currency())
}

func (m StatementModel) chartSection() string {
	if !m.chartWin.loaded {
		return ""
	}

	txs := statement.FilterByProduct(m.chartWin.payload.Transactions, m.productView())

	income := statement.BuildDailySeries(txs, statement.DirectionCredit)
	expense := statement.BuildDailySeries(txs, statement.DirectionDebit)

	return renderDailyChart(income, expense, m.currency())
}

func (m StatementModel) tableSection() string {
	if m.tableWin.err != nil {
		return errorStyle.Render(fmt.Sprintf("Erro ao carregar transações: %v", m.tableWin.err))
	}

	if !m.tableWin.loaded {
		return faintStyle.Render("Carregando transações...")
	}

	page, limit := m.displayedPagination()

	footer := faintStyle.Render(fmt.Sprintf(
		"Página %d de %d · %d transações · %d por página",
		page, m.totalPages(), m.tableWin.payload.TotalCount, limit,
	))

	return m.txTable.View() + "\n" + footer
}
