package statement

// Direction indicates whether a transaction increases (credit) or
// decreases (debit) the holder's balance.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Status represents the lifecycle state of a transaction.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
)

// ProductType identifies the financial product a transaction belongs to.
type ProductType string

const (
	ProductBusinessAccount   ProductType = "business_account"
	ProductExpenseManagement ProductType = "expense_management"
	ProductSuppliers         ProductType = "suppliers"
)

// KnownProductType reports whether s names one of the supported products.
func KnownProductType(s string) bool {
	switch ProductType(s) {
	case ProductBusinessAccount, ProductExpenseManagement, ProductSuppliers:
		return true
	}

	return false
}

// ProductView is a product filter selection: one product, or everything.
type ProductView string

const ViewAll ProductView = "all"

// Transaction represents one financial movement on a statement.
//
// Amount is always a non-negative magnitude; the sign is carried by
// Direction and applied on demand, never stored.
type Transaction struct {
	ID          string
	Date        string // ISO 8601
	Description string
	Category    string
	Amount      float64
	Direction   Direction
	Status      Status
	Responsible string
	ProductType ProductType
	ProductName string
}

// Period is a calendar date range, inclusive on both ends.
type Period struct {
	StartDate string
	EndDate   string
}

// Filters are the request parameters for one statement query.
type Filters struct {
	StartDate   string
	EndDate     string
	ProductType ProductType // empty means all products
	Page        int         // 1-based
	Limit       int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// WithDefaults returns a copy of f with zero page/limit replaced by the
// defaults.
func (f Filters) WithDefaults() Filters {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}

	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}

	return f
}

// Payload is a normalized statement API result. Optional numeric fields
// use 0 as the absent value; Transactions are ordered most-recent-first.
type Payload struct {
	Period         Period
	ProductType    ProductType
	Transactions   []Transaction
	OpeningBalance float64
	ClosingBalance float64
	Currency       string
	TotalCount     int
	Page           int
	Limit          int
	TotalPages     int
	NextPage       int
	PrevPage       int
	LastUpdatedAt  string
}

// Totals are aggregates derived from a transaction list. Income and
// Expense are non-negative; Net is Income minus Expense.
type Totals struct {
	Income  float64
	Expense float64
	Net     float64
	Count   int
}

// DailySeriesPoint is one day's aggregate for a chart series. Days with
// no matching transaction are simply absent from a series.
type DailySeriesPoint struct {
	Date  string // YYYY-MM-DD
	Value float64
}
