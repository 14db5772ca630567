package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"bucketbudget/internal/core"
)

// Resource models are immutable snapshots decoded from server responses.
// Each type decodes through a private wire struct and a normalize func so
// that every defaulting rule for that resource lives in exactly one place.

// AccountType enumerates the account kinds the server reports.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// Account is a budget account with its running balance.
type Account struct {
	ID      int64
	Name    string
	Type    AccountType
	Balance float64
	Closed  bool
}

type accountWire struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance core.FlexNumber `json:"balance"`
	Closed  *bool           `json:"closed"`
}

func (w accountWire) normalize() Account {
	return Account{
		ID:      w.ID,
		Name:    w.Name,
		Type:    AccountType(w.Type),
		Balance: w.Balance.Float64(),
		Closed:  boolOr(w.Closed, false),
	}
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var w accountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = w.normalize()
	return nil
}

// NetWorth sums the balances of open accounts.
func NetWorth(accounts []Account) float64 {
	var total float64
	for _, a := range accounts {
		if !a.Closed {
			total += a.Balance
		}
	}
	return total
}

// Transaction is a single ledger entry. Negative amounts are outflows.
type Transaction struct {
	ID           int64
	Date         string // yyyy-MM-dd
	Payee        string
	Memo         string
	Amount       float64
	Cleared      bool
	AccountName  string
	CategoryName string
}

type transactionWire struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	Payee        *string         `json:"payee"`
	Memo         *string         `json:"memo"`
	Amount       core.FlexNumber `json:"amount"`
	Cleared      *bool           `json:"cleared"`
	AccountName  *string         `json:"account_name"`
	CategoryName *string         `json:"category_name"`
}

func (w transactionWire) normalize() Transaction {
	return Transaction{
		ID:           w.ID,
		Date:         w.Date,
		Payee:        strOr(w.Payee, ""),
		Memo:         strOr(w.Memo, ""),
		Amount:       w.Amount.Float64(),
		Cleared:      boolOr(w.Cleared, false),
		AccountName:  strOr(w.AccountName, ""),
		CategoryName: strOr(w.CategoryName, ""),
	}
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = w.normalize()
	return nil
}

// Time parses the transaction's wire date.
func (t Transaction) Time() (time.Time, error) {
	return core.ParseDate(t.Date)
}

// Outflow reports whether the transaction spends money.
func (t Transaction) Outflow() bool {
	return t.Amount < 0
}

// BudgetSummary carries the month's headline budgeting figures.
type BudgetSummary struct {
	ToBeBudgeted  float64
	TotalIncome   float64
	TotalAssigned float64
	MonthIncome   float64
	MonthExpenses float64
	MonthAssigned float64
}

type budgetSummaryWire struct {
	ToBeBudgeted  core.FlexNumber `json:"to_be_budgeted"`
	TotalIncome   core.FlexNumber `json:"total_income"`
	TotalAssigned core.FlexNumber `json:"total_assigned"`
	MonthIncome   core.FlexNumber `json:"month_income"`
	MonthExpenses core.FlexNumber `json:"month_expenses"`
	MonthAssigned core.FlexNumber `json:"month_assigned"`
}

func (w budgetSummaryWire) normalize() BudgetSummary {
	return BudgetSummary{
		ToBeBudgeted:  w.ToBeBudgeted.Float64(),
		TotalIncome:   w.TotalIncome.Float64(),
		TotalAssigned: w.TotalAssigned.Float64(),
		MonthIncome:   w.MonthIncome.Float64(),
		MonthExpenses: w.MonthExpenses.Float64(),
		MonthAssigned: w.MonthAssigned.Float64(),
	}
}

func (s *BudgetSummary) UnmarshalJSON(data []byte) error {
	var w budgetSummaryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = w.normalize()
	return nil
}

// SpendingCategory is one row of the spending-by-category report. The
// server sends no identity for these rows, so the client assigns one for
// stable list rendering.
type SpendingCategory struct {
	ID       uuid.UUID
	Category string // empty when the server reports uncategorized spending
	Total    float64
}

type spendingCategoryWire struct {
	Category *string         `json:"category"`
	Total    core.FlexNumber `json:"total"`
}

func (w spendingCategoryWire) normalize() SpendingCategory {
	return SpendingCategory{
		ID:       uuid.New(),
		Category: strOr(w.Category, ""),
		Total:    w.Total.Float64(),
	}
}

func (c *SpendingCategory) UnmarshalJSON(data []byte) error {
	var w spendingCategoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = w.normalize()
	return nil
}

// Label returns the display name, substituting "Uncategorized" for rows
// the server left unnamed.
func (c SpendingCategory) Label() string {
	if c.Category == "" {
		return "Uncategorized"
	}
	return c.Category
}

// TotalSpending sums the report's category totals.
func TotalSpending(categories []SpendingCategory) float64 {
	var total float64
	for _, c := range categories {
		total += c.Total
	}
	return total
}

// AgeOfMoney is the server-computed age-of-money metric, in days.
type AgeOfMoney struct {
	Age int `json:"age"`
}

// Goal is a savings goal. SavedAmount may exceed TargetAmount.
type Goal struct {
	ID           int64
	Name         string
	Icon         string
	TargetAmount float64
	SavedAmount  float64
	Status       string
	ColorHex     string
	TargetDate   string
}

type goalWire struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Icon         *string         `json:"icon"`
	TargetAmount core.FlexNumber `json:"target_amount"`
	SavedAmount  core.FlexNumber `json:"saved_amount"`
	Status       *string         `json:"status"`
	Color        *string         `json:"color"`
	TargetDate   *string         `json:"target_date"`
}

func (w goalWire) normalize() Goal {
	return Goal{
		ID:           w.ID,
		Name:         w.Name,
		Icon:         strOr(w.Icon, ""),
		TargetAmount: w.TargetAmount.Float64(),
		SavedAmount:  w.SavedAmount.Float64(),
		Status:       strOr(w.Status, "active"),
		ColorHex:     strOr(w.Color, ""),
		TargetDate:   strOr(w.TargetDate, ""),
	}
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	var w goalWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*g = w.normalize()
	return nil
}

// Progress returns the goal's funded ratio clamped to [0, 1].
func (g Goal) Progress() float64 {
	return core.GoalProgress(g.SavedAmount, g.TargetAmount)
}

// Insight is an ephemeral server-generated observation; nothing about it
// is persisted client-side.
type Insight struct {
	ID          uuid.UUID
	Severity    string
	Title       string
	Description string
	Icon        string
}

type insightWire struct {
	Severity    *string `json:"severity"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (w insightWire) normalize() Insight {
	return Insight{
		ID:          uuid.New(),
		Severity:    strOr(w.Severity, "info"),
		Title:       strOr(w.Title, "Insight"),
		Description: strOr(w.Description, ""),
		Icon:        strOr(w.Icon, ""),
	}
}

func (i *Insight) UnmarshalJSON(data []byte) error {
	var w insightWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = w.normalize()
	return nil
}

// IncomeExpensePoint is one month of the income-vs-expense trend. The
// month key is its identity.
type IncomeExpensePoint struct {
	Month    string // yyyy-MM
	Income   float64
	Expenses float64
}

type incomeExpensePointWire struct {
	Month    string          `json:"month"`
	Income   core.FlexNumber `json:"income"`
	Expenses core.FlexNumber `json:"expenses"`
}

func (w incomeExpensePointWire) normalize() IncomeExpensePoint {
	return IncomeExpensePoint{
		Month:    w.Month,
		Income:   w.Income.Float64(),
		Expenses: w.Expenses.Float64(),
	}
}

func (p *IncomeExpensePoint) UnmarshalJSON(data []byte) error {
	var w incomeExpensePointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = w.normalize()
	return nil
}

// Subscription is a recurring expense or income item.
type Subscription struct {
	ID           int64
	AccountName  string
	CategoryName string
	Type         string // expense or income
	Amount       float64
	Payee        string
	Memo         string
	Frequency    string
	NextDate     string
	Status       string
}

type subscriptionWire struct {
	ID           int64           `json:"id"`
	AccountName  *string         `json:"account_name"`
	CategoryName *string         `json:"category_name"`
	Type         *string         `json:"type"`
	Amount       core.FlexNumber `json:"amount"`
	Payee        *string         `json:"payee"`
	Memo         *string         `json:"memo"`
	Frequency    *string         `json:"frequency"`
	NextDate     *string         `json:"next_date"`
	Status       *string         `json:"status"`
}

func (w subscriptionWire) normalize() Subscription {
	return Subscription{
		ID:           w.ID,
		AccountName:  strOr(w.AccountName, ""),
		CategoryName: strOr(w.CategoryName, ""),
		Type:         strOr(w.Type, "expense"),
		Amount:       w.Amount.Float64(),
		Payee:        strOr(w.Payee, ""),
		Memo:         strOr(w.Memo, ""),
		Frequency:    strOr(w.Frequency, "monthly"),
		NextDate:     strOr(w.NextDate, ""),
		Status:       strOr(w.Status, "active"),
	}
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	var w subscriptionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = w.normalize()
	return nil
}

// Investment is a portfolio holding. XIRR is computed server-side and
// passed through opaquely; a malformed value is treated as absent rather
// than failing the whole row.
type Investment struct {
	ID           int64
	Ticker       string
	Name         string
	AssetClass   string
	Quantity     float64
	AveragePrice float64
	CurrentPrice float64
	XIRR         *float64
}

type investmentWire struct {
	ID           int64           `json:"id"`
	Ticker       *string         `json:"ticker"`
	Name         *string         `json:"name"`
	AssetClass   *string         `json:"asset_class"`
	Quantity     core.FlexNumber `json:"quantity"`
	AveragePrice core.FlexNumber `json:"average_price"`
	CurrentPrice core.FlexNumber `json:"current_price"`
	XIRR         json.RawMessage `json:"xirr"`
}

func (w investmentWire) normalize() Investment {
	return Investment{
		ID:           w.ID,
		Ticker:       strOr(w.Ticker, ""),
		Name:         strOr(w.Name, ""),
		AssetClass:   strOr(w.AssetClass, "Stock"),
		Quantity:     w.Quantity.Float64(),
		AveragePrice: w.AveragePrice.Float64(),
		CurrentPrice: w.CurrentPrice.Float64(),
		XIRR:         optionalFlex(w.XIRR),
	}
}

func (i *Investment) UnmarshalJSON(data []byte) error {
	var w investmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = w.normalize()
	return nil
}

// MarketValue returns quantity times current price.
func (i Investment) MarketValue() float64 {
	return core.MarketValue(i.Quantity, i.CurrentPrice)
}

// Debt is a liability with its payoff projection fields.
type Debt struct {
	ID             int64
	Name           string
	Type           string
	Balance        float64
	InterestRate   float64
	MinimumPayment float64
	ExtraPayment   float64
	MonthsToPayoff *int
	TotalInterest  *float64
	PayoffDate     string
}

type debtWire struct {
	ID             int64           `json:"id"`
	Name           *string         `json:"name"`
	Type           *string         `json:"type"`
	Balance        core.FlexNumber `json:"balance"`
	InterestRate   core.FlexNumber `json:"interest_rate"`
	MinimumPayment core.FlexNumber `json:"minimum_payment"`
	ExtraPayment   core.FlexNumber `json:"extra_payment"`
	MonthsToPayoff *int            `json:"months_to_payoff"`
	TotalInterest  json.RawMessage `json:"total_interest"`
	PayoffDate     *string         `json:"payoff_date"`
}

func (w debtWire) normalize() Debt {
	return Debt{
		ID:             w.ID,
		Name:           strOr(w.Name, ""),
		Type:           strOr(w.Type, "debt"),
		Balance:        w.Balance.Float64(),
		InterestRate:   w.InterestRate.Float64(),
		MinimumPayment: w.MinimumPayment.Float64(),
		ExtraPayment:   w.ExtraPayment.Float64(),
		MonthsToPayoff: w.MonthsToPayoff,
		TotalInterest:  optionalFlex(w.TotalInterest),
		PayoffDate:     strOr(w.PayoffDate, ""),
	}
}

func (d *Debt) UnmarshalJSON(data []byte) error {
	var w debtWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = w.normalize()
	return nil
}

// Category is one budget category; it always belongs to exactly one group.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryGroup owns an ordered list of categories.
type CategoryGroup struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Settings is the server's flat currency/locale settings map with
// client-side defaults applied.
type Settings struct {
	Currency string
	Locale   string
}

// DefaultSettings returns the fallback used when the settings endpoint is
// unavailable or omits keys.
func DefaultSettings() Settings {
	return Settings{Currency: "USD", Locale: "en-US"}
}

func newSettings(raw map[string]string) Settings {
	s := DefaultSettings()
	if v := raw["currency"]; v != "" {
		s.Currency = v
	}
	if v := raw["locale"]; v != "" {
		s.Locale = v
	}
	return s
}

// LoginResponse carries the bearer token issued by /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Dashboard is the composite result of the five dashboard reads.
type Dashboard struct {
	Accounts           []Account
	Transactions       []Transaction
	BudgetSummary      BudgetSummary
	SpendingByCategory []SpendingCategory
	AgeOfMoney         AgeOfMoney
}

type transactionListResponse struct {
	Data []Transaction `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type assignBudgetResponse struct {
	CategoryID int64 `json:"category_id"`
}

func strOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// optionalFlex decodes a flexible numeric that is allowed to be missing
// or malformed; anything undecodable collapses to nil.
func optionalFlex(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var n core.FlexNumber
	if err := n.UnmarshalJSON(raw); err != nil {
		return nil
	}
	v := n.Float64()
	return &v
}
