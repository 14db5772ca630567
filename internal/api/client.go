// Package api implements the HTTP client for Bucket Budget-compatible
// budgeting servers: endpoint composition, bearer-token auth, loose
// numeric decoding and a four-kind error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bucketbudget/internal/core"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultTransactionLimit = 200
	defaultRecentLimit      = 12
	defaultTrendMonths      = 6
)

// Client talks to one budgeting server on behalf of one connection.
// It holds no mutable state; build a fresh value per refresh if desired.
type Client struct {
	conn Connection
	http *http.Client
}

// New creates a client for the given connection. A nil httpClient gets a
// default with a 30s timeout.
func New(conn Connection, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{conn: conn, http: httpClient}
}

// Login exchanges an identifier and password for a bearer token. It is
// the only call that does not attach an Authorization header.
func (c *Client) Login(ctx context.Context, identifier, password string) (LoginResponse, error) {
	body := loginBody{Email: identifier, Username: identifier, Password: password}
	var out LoginResponse
	err := c.send(ctx, http.MethodPost, "/auth/login", body, &out, false)
	return out, err
}

// Accounts lists all budget accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var out []Account
	err := c.send(ctx, http.MethodGet, "/accounts", nil, &out, true)
	return out, err
}

// CreateAccount creates an account and returns the server's copy.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (Account, error) {
	var out Account
	err := c.send(ctx, http.MethodPost, "/accounts", req, &out, true)
	return out, err
}

// Transactions lists the most recent transactions, newest first. The
// server wraps this listing in a {"data": [...]} envelope; all other
// listings are bare arrays. A non-positive limit falls back to 200.
func (c *Client) Transactions(ctx context.Context, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	var out transactionListResponse
	err := c.send(ctx, http.MethodGet, fmt.Sprintf("/transactions?limit=%d", limit), nil, &out, true)
	return out.Data, err
}

// CreateTransaction creates a ledger entry and returns the server's copy.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (Transaction, error) {
	var out Transaction
	err := c.send(ctx, http.MethodPost, "/transactions", req, &out, true)
	return out, err
}

// BudgetSummary fetches the headline figures for a month.
func (c *Client) BudgetSummary(ctx context.Context, month core.Month) (BudgetSummary, error) {
	var out BudgetSummary
	err := c.send(ctx, http.MethodGet, "/budget/summary/"+string(month), nil, &out, true)
	return out, err
}

// AgeOfMoney fetches the server's age-of-money figure.
func (c *Client) AgeOfMoney(ctx context.Context) (AgeOfMoney, error) {
	var out AgeOfMoney
	err := c.send(ctx, http.MethodGet, "/settings/age-of-money", nil, &out, true)
	return out, err
}

// SpendingByCategory fetches category totals over a date span.
func (c *Client) SpendingByCategory(ctx context.Context, from, to string) ([]SpendingCategory, error) {
	var out []SpendingCategory
	path := fmt.Sprintf("/reports/spending-by-category?from=%s&to=%s", url.QueryEscape(from), url.QueryEscape(to))
	err := c.send(ctx, http.MethodGet, path, nil, &out, true)
	return out, err
}

// IncomeVsExpense fetches the income-vs-expense trend series. A
// non-positive months falls back to 6.
func (c *Client) IncomeVsExpense(ctx context.Context, months int) ([]IncomeExpensePoint, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	var out []IncomeExpensePoint
	err := c.send(ctx, http.MethodGet, fmt.Sprintf("/reports/income-vs-expense?months=%d", months), nil, &out, true)
	return out, err
}

// Goals lists savings goals.
func (c *Client) Goals(ctx context.Context) ([]Goal, error) {
	var out []Goal
	err := c.send(ctx, http.MethodGet, "/goals", nil, &out, true)
	return out, err
}

// CreateGoal creates a savings goal and returns the server's copy.
func (c *Client) CreateGoal(ctx context.Context, req CreateGoalRequest) (Goal, error) {
	var out Goal
	err := c.send(ctx, http.MethodPost, "/goals", req, &out, true)
	return out, err
}

// Insights lists server-generated insights.
func (c *Client) Insights(ctx context.Context) ([]Insight, error) {
	var out []Insight
	err := c.send(ctx, http.MethodGet, "/insights", nil, &out, true)
	return out, err
}

// Subscriptions lists recurring items.
func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	err := c.send(ctx, http.MethodGet, "/subscriptions", nil, &out, true)
	return out, err
}

// CreateSubscription creates a recurring item and returns the server's copy.
func (c *Client) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (Subscription, error) {
	var out Subscription
	err := c.send(ctx, http.MethodPost, "/subscriptions", req, &out, true)
	return out, err
}

// Investments lists portfolio holdings.
func (c *Client) Investments(ctx context.Context) ([]Investment, error) {
	var out []Investment
	err := c.send(ctx, http.MethodGet, "/investments", nil, &out, true)
	return out, err
}

// CreateInvestment creates a holding and returns the server's copy.
func (c *Client) CreateInvestment(ctx context.Context, req CreateInvestmentRequest) (Investment, error) {
	var out Investment
	err := c.send(ctx, http.MethodPost, "/investments", req, &out, true)
	return out, err
}

// Debts lists liabilities.
func (c *Client) Debts(ctx context.Context) ([]Debt, error) {
	var out []Debt
	err := c.send(ctx, http.MethodGet, "/debts", nil, &out, true)
	return out, err
}

// CreateDebt creates a liability and returns the server's copy.
func (c *Client) CreateDebt(ctx context.Context, req CreateDebtRequest) (Debt, error) {
	var out Debt
	err := c.send(ctx, http.MethodPost, "/debts", req, &out, true)
	return out, err
}

// CategoryGroups lists budget category groups with their categories.
func (c *Client) CategoryGroups(ctx context.Context) ([]CategoryGroup, error) {
	var out []CategoryGroup
	err := c.send(ctx, http.MethodGet, "/category-groups", nil, &out, true)
	return out, err
}

// CreateCategoryGroup creates an empty category group.
func (c *Client) CreateCategoryGroup(ctx context.Context, name string) (CategoryGroup, error) {
	var out CategoryGroup
	err := c.send(ctx, http.MethodPost, "/category-groups", createCategoryGroupRequest{Name: name}, &out, true)
	return out, err
}

// CreateCategory creates a category under a group.
func (c *Client) CreateCategory(ctx context.Context, groupID int64, name string) (Category, error) {
	var out Category
	err := c.send(ctx, http.MethodPost, "/categories", createCategoryRequest{GroupID: groupID, Name: name}, &out, true)
	return out, err
}

// AssignBudget assigns an amount to a category for a month. The response
// body is decoded only as an existence check and then discarded.
func (c *Client) AssignBudget(ctx context.Context, month core.Month, categoryID int64, assigned float64) error {
	var out assignBudgetResponse
	path := fmt.Sprintf("/budget/%s/%d", month, categoryID)
	return c.send(ctx, http.MethodPut, path, assignBudgetRequest{Assigned: assigned}, &out, true)
}

// Settings fetches the currency/locale settings map. Missing keys default
// to USD / en-US.
func (c *Client) Settings(ctx context.Context) (Settings, error) {
	raw := map[string]string{}
	if err := c.send(ctx, http.MethodGet, "/settings", nil, &raw, true); err != nil {
		return Settings{}, err
	}
	return newSettings(raw), nil
}

// Dashboard issues the five dashboard reads sequentially and assembles
// them. Any failure aborts the whole fetch. A non-positive recent falls
// back to 12.
func (c *Client) Dashboard(ctx context.Context, month core.Month, recent int) (Dashboard, error) {
	if recent <= 0 {
		recent = defaultRecentLimit
	}

	var d Dashboard
	var err error

	if d.Accounts, err = c.Accounts(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.Transactions, err = c.Transactions(ctx, recent); err != nil {
		return Dashboard{}, err
	}
	if d.BudgetSummary, err = c.BudgetSummary(ctx, month); err != nil {
		return Dashboard{}, err
	}
	if d.AgeOfMoney, err = c.AgeOfMoney(ctx); err != nil {
		return Dashboard{}, err
	}

	from, to, err := month.Range()
	if err != nil {
		return Dashboard{}, serverError(err.Error())
	}
	if d.SpendingByCategory, err = c.SpendingByCategory(ctx, from, to); err != nil {
		return Dashboard{}, err
	}

	return d, nil
}

// send performs one request/response cycle. Every failure maps onto the
// four-kind taxonomy; decode details are logged, not surfaced.
func (c *Client) send(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	if authenticated && c.conn.Token == "" {
		return notConnected(c.conn.Provider)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return invalidResponse(fmt.Errorf("encode request body: %w", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return ErrInvalidBaseURL
	}
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+c.conn.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return invalidResponse(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return invalidResponse(err)
	}

	slog.DebugContext(ctx, "request completed",
		"component", "client",
		"method", method,
		"endpoint", path,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			return serverError(envelope.Error)
		}
		return serverError(fmt.Sprintf("request failed with status code %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.DebugContext(ctx, "response decode failed",
			"component", "client",
			"endpoint", path,
			"error", err)
		return serverError("could not decode server response")
	}
	return nil
}

func (c *Client) endpoint(path string) (string, error) {
	base, err := resolveBaseURL(c.conn.ServerURL)
	if err != nil {
		return "", err
	}
	return base + path, nil
}

// resolveBaseURL normalizes a user-supplied server URL: whitespace is
// trimmed, the scheme defaults to http, a trailing slash is stripped, and
// exactly one /api segment is ensured. Resolution is idempotent; a base
// already ending in /api is left alone.
func resolveBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidBaseURL
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(u.Path, "/api") {
		u.Path += "/api"
	}
	u.RawQuery = ""
	u.Fragment = ""

	return u.String(), nil
}
