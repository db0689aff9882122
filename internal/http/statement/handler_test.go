package statement_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	extratohttp "github.com/espressobank/extrato/internal/http"
	handler "github.com/espressobank/extrato/internal/http/statement"
	"github.com/espressobank/extrato/internal/statement"
)

type wireTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Direction   string  `json:"direction"`
	Status      string  `json:"status"`
	ProductType string  `json:"product_type"`
}

type wireResponse struct {
	Transactions []wireTransaction `json:"transactions"`
	Period       struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"period"`
	OpeningBalance float64 `json:"opening_balance"`
	ClosingBalance float64 `json:"closing_balance"`
	Currency       string  `json:"currency"`
	Meta           struct {
		Pagination struct {
			Total int `json:"total"`
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Pages int `json:"pages"`
			Next  int `json:"next"`
			Prev  int `json:"prev"`
		} `json:"pagination"`
	} `json:"meta"`
}

func getStatements(t *testing.T, router http.Handler, query, token string) (*httptest.ResponseRecorder, wireResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/statements"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp wireResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}

func newRouter(secret string) http.Handler {
	return extratohttp.New(handler.NewHandler(statement.Fallback()), secret)
}

func TestGet_Defaults(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.Len(t, resp.Transactions, 10)
	assert.Equal(t, "txn-2025-0918", resp.Transactions[0].ID)
	assert.Equal(t, "debit", resp.Transactions[0].Direction)

	assert.Equal(t, 12, resp.Meta.Pagination.Total)
	assert.Equal(t, 1, resp.Meta.Pagination.Page)
	assert.Equal(t, 10, resp.Meta.Pagination.Limit)
	assert.Equal(t, 2, resp.Meta.Pagination.Pages)
	assert.Equal(t, 2, resp.Meta.Pagination.Next)
	assert.Zero(t, resp.Meta.Pagination.Prev)

	assert.Equal(t, "BRL", resp.Currency)
	assert.Equal(t, 52300.40, resp.OpeningBalance)
	assert.Equal(t, 139674.40, resp.ClosingBalance)
}

func TestGet_SecondPage(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?page=2&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, "txn-2025-0714", resp.Transactions[0].ID)
	assert.Equal(t, "txn-2025-0703", resp.Transactions[1].ID)

	assert.Equal(t, 2, resp.Meta.Pagination.Page)
	assert.Equal(t, 1, resp.Meta.Pagination.Prev)
	assert.Zero(t, resp.Meta.Pagination.Next)
}

func TestGet_PageBeyondRange(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?page=9", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp.Transactions)
	assert.Equal(t, 12, resp.Meta.Pagination.Total)
}

func TestGet_DateRangeFilter(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?start_date=2025-08-01&end_date=2025-08-31", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Transactions, 4)
	assert.Equal(t, "txn-2025-0822", resp.Transactions[0].ID)
	assert.Equal(t, "txn-2025-0805", resp.Transactions[3].ID)

	assert.Equal(t, "2025-08-01", resp.Period.StartDate)
	assert.Equal(t, "2025-08-31", resp.Period.EndDate)
	assert.Equal(t, 4, resp.Meta.Pagination.Total)
	assert.Equal(t, 1, resp.Meta.Pagination.Pages)
}

func TestGet_ProductFilter(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?product_type=suppliers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Transactions, 3)
	for _, tx := range resp.Transactions {
		assert.Equal(t, "suppliers", tx.ProductType)
	}
}

func TestGet_UnknownProductTypeIgnored(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?product_type=crypto_vault", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, resp.Meta.Pagination.Total)
}

func TestGet_CombinedFilters(t *testing.T) {
	router := newRouter("")

	rec, resp := getStatements(t, router, "?start_date=2025-08-01&end_date=2025-08-31&product_type=suppliers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "txn-2025-0819", resp.Transactions[0].ID)
}

func TestGet_RequiresToken(t *testing.T) {
	const secret = "dev-secret"

	router := newRouter(secret)

	rec, _ := getStatements(t, router, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = getStatements(t, router, "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	forged, err := extratohttp.NewToken("other-secret", "dashboard", time.Hour)
	require.NoError(t, err)

	rec, _ = getStatements(t, router, "", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := extratohttp.NewToken(secret, "dashboard", time.Hour)
	require.NoError(t, err)

	rec, resp := getStatements(t, router, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, resp.Meta.Pagination.Total)
}

func TestGet_ExpiredTokenRejected(t *testing.T) {
	const secret = "dev-secret"

	router := newRouter(secret)

	token, err := extratohttp.NewToken(secret, "dashboard", -time.Minute)
	require.NoError(t, err)

	rec, _ := getStatements(t, router, "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
