package api

// Request payloads for write operations. Field names follow the server's
// snake_case wire convention.

// loginBody sends the identifier under both field names the server
// conventions accept, so either an email-keyed or username-keyed backend
// resolves it.
type loginBody struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAccountRequest creates a budget account.
type CreateAccountRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	OnBudget bool    `json:"on_budget"`
}

// CreateTransactionRequest creates a ledger entry. Negative amounts are
// outflows; the amount is posted as-is, with no sign inversion.
type CreateTransactionRequest struct {
	AccountID int64   `json:"account_id"`
	Date      string  `json:"date"`
	Payee     string  `json:"payee"`
	Memo      string  `json:"memo"`
	Amount    float64 `json:"amount"`
	Cleared   bool    `json:"cleared"`
}

// CreateGoalRequest creates a savings goal.
type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	SavedAmount  float64 `json:"saved_amount"`
}

// CreateSubscriptionRequest creates a recurring item.
type CreateSubscriptionRequest struct {
	AccountID int64   `json:"account_id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	NextDate  string  `json:"next_date"`
	Payee     string  `json:"payee"`
	Memo      string  `json:"memo"`
}

// CreateInvestmentRequest creates a portfolio holding.
type CreateInvestmentRequest struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	AssetClass   string  `json:"asset_class"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"average_price"`
	CurrentPrice float64 `json:"current_price"`
}

// CreateDebtRequest creates a liability.
type CreateDebtRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment float64 `json:"minimum_payment"`
	ExtraPayment   float64 `json:"extra_payment"`
}

type createCategoryGroupRequest struct {
	Name string `json:"name"`
}

type createCategoryRequest struct {
	GroupID int64  `json:"group_id"`
	Name    string `json:"name"`
}

type assignBudgetRequest struct {
	Assigned float64 `json:"assigned"`
}
