// Package statement serves the development statements endpoint: the
// bundled fixture dataset behind real date-range/product filtering and
// pagination, in the loose wire shape the dashboard client expects from
// the production API.
package statement

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/espressobank/extrato/internal/dateutil"
	"github.com/espressobank/extrato/internal/statement"
)

type Handler struct {
	payload statement.Payload
}

// NewHandler serves the given payload's transactions as the backing
// dataset.
func NewHandler(payload statement.Payload) *Handler {
	return &Handler{payload: payload}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type recordResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Amount      float64 `json:"amount"`
	Direction   string  `json:"direction"`
	Status      string  `json:"status"`
	Responsible string  `json:"responsible,omitempty"`
	ProductType string  `json:"product_type,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
}

type periodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type paginationResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
	Next  int `json:"next,omitempty"`
	Prev  int `json:"prev,omitempty"`
}

type metaResponse struct {
	Pagination paginationResponse `json:"pagination"`
}

type statementResponse struct {
	Transactions   []recordResponse `json:"transactions"`
	Period         periodResponse   `json:"period"`
	OpeningBalance float64          `json:"opening_balance"`
	ClosingBalance float64          `json:"closing_balance"`
	Currency       string           `json:"currency"`
	Meta           metaResponse     `json:"meta"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)

	matched := h.match(filters)

	total := len(matched)

	pages := total / filters.Limit
	if total%filters.Limit != 0 {
		pages++
	}

	page := pageSlice(matched, filters.Page, filters.Limit)

	resp := statementResponse{
		Transactions: make([]recordResponse, 0, len(page)),
		Period: periodResponse{
			StartDate: filters.StartDate,
			EndDate:   filters.EndDate,
		},
		OpeningBalance: h.payload.OpeningBalance,
		ClosingBalance: h.payload.ClosingBalance,
		Currency:       h.payload.Currency,
		Meta: metaResponse{
			Pagination: paginationResponse{
				Total: total,
				Page:  filters.Page,
				Limit: filters.Limit,
				Pages: pages,
			},
		},
	}

	if filters.Page < pages {
		resp.Meta.Pagination.Next = filters.Page + 1
	}

	if filters.Page > 1 {
		resp.Meta.Pagination.Prev = filters.Page - 1
	}

	for _, tx := range page {
		resp.Transactions = append(resp.Transactions, recordResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Direction:   string(tx.Direction),
			Status:      string(tx.Status),
			Responsible: tx.Responsible,
			ProductType: string(tx.ProductType),
			ProductName: tx.ProductName,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func filtersFromQuery(r *http.Request) statement.Filters {
	filters := statement.Filters{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if pt := r.URL.Query().Get("product_type"); statement.KnownProductType(pt) {
		filters.ProductType = statement.ProductType(pt)
	}

	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filters.Page = n
	}

	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filters.Limit = n
	}

	return filters.WithDefaults()
}

// match returns the fixture transactions inside the filter's date range
// and product selection, preserving the dataset's most-recent-first
// order. An unparseable or absent range bound leaves that side open.
func (h *Handler) match(filters statement.Filters) []statement.Transaction {
	var out []statement.Transaction

	for _, tx := range h.payload.Transactions {
		day, err := dateutil.DayKey(tx.Date)
		if err != nil {
			continue
		}

		if filters.StartDate != "" && day < filters.StartDate {
			continue
		}

		if filters.EndDate != "" && day > filters.EndDate {
			continue
		}

		if filters.ProductType != "" && tx.ProductType != filters.ProductType {
			continue
		}

		out = append(out, tx)
	}

	return out
}

func pageSlice(txs []statement.Transaction, page, limit int) []statement.Transaction {
	start := (page - 1) * limit
	if start >= len(txs) {
		return nil
	}

	end := min(start+limit, len(txs))

	return txs[start:end]
}
