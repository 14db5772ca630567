package api

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDecode(t *testing.T) {
	var a Account
	err := json.Unmarshal([]byte(`{"id":1,"name":"Checking","type":"checking","balance":"1200.50"}`), &a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, AccountChecking, a.Type)
	assert.Equal(t, 1200.5, a.Balance)
	assert.False(t, a.Closed, "closed defaults false")

	err = json.Unmarshal([]byte(`{"id":2,"name":"Old","type":"savings","balance":0,"closed":true}`), &a)
	require.NoError(t, err)
	assert.True(t, a.Closed)
}

func TestAccountDecodeBadBalance(t *testing.T) {
	var a Account
	err := json.Unmarshal([]byte(`{"id":1,"name":"X","type":"cash","balance":true}`), &a)
	require.Error(t, err)
}

func TestNetWorthSkipsClosedAccounts(t *testing.T) {
	accounts := []Account{
		{Balance: 100},
		{Balance: 50, Closed: true},
		{Balance: -25},
	}
	assert.Equal(t, 75.0, NetWorth(accounts))
}

func TestTransactionDecodeDefaults(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"id":9,"date":"2025-06-15","amount":-42.5}`), &tx)
	require.NoError(t, err)
	assert.Equal(t, -42.5, tx.Amount)
	assert.True(t, tx.Outflow())
	assert.False(t, tx.Cleared, "cleared defaults false")
	assert.Empty(t, tx.Payee)

	when, err := tx.Time()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", when.Format("2006-01-02"))
}

func TestBudgetSummaryDecodeMixedEncodings(t *testing.T) {
	payload := `{
		"to_be_budgeted": "310.25",
		"total_income": 5000,
		"total_assigned": 4689.75,
		"month_income": "2500",
		"month_expenses": 1800.5,
		"month_assigned": 2000
	}`
	var s BudgetSummary
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	assert.Equal(t, 310.25, s.ToBeBudgeted)
	assert.Equal(t, 5000.0, s.TotalIncome)
	assert.Equal(t, 2500.0, s.MonthIncome)
}

func TestSpendingCategoryLabel(t *testing.T) {
	var c SpendingCategory
	require.NoError(t, json.Unmarshal([]byte(`{"category":null,"total":12}`), &c))
	assert.Equal(t, "Uncategorized", c.Label())
	assert.NotEqual(t, uuid.Nil, c.ID, "client assigns identity")

	require.NoError(t, json.Unmarshal([]byte(`{"category":"Groceries","total":"99.9"}`), &c))
	assert.Equal(t, "Groceries", c.Label())
	assert.Equal(t, 99.9, c.Total)
}

func TestGoalDecodeDefaults(t *testing.T) {
	var g Goal
	err := json.Unmarshal([]byte(`{"id":3,"name":"Vacation","target_amount":1000,"saved_amount":1250}`), &g)
	require.NoError(t, err)
	assert.Equal(t, "active", g.Status)
	assert.Equal(t, 1250.0, g.SavedAmount, "overfunded goals keep their saved amount")
	assert.Equal(t, 1.0, g.Progress())
}

func TestInsightDecodeDefaults(t *testing.T) {
	var i Insight
	require.NoError(t, json.Unmarshal([]byte(`{}`), &i))
	assert.Equal(t, "info", i.Severity)
	assert.Equal(t, "Insight", i.Title)
	assert.Empty(t, i.Description)
	assert.NotEqual(t, uuid.Nil, i.ID)
}

func TestSubscriptionDecodeDefaults(t *testing.T) {
	var s Subscription
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"amount":"9.99"}`), &s))
	assert.Equal(t, "expense", s.Type)
	assert.Equal(t, "monthly", s.Frequency)
	assert.Equal(t, "active", s.Status)
	assert.Empty(t, s.NextDate)
	assert.Equal(t, 9.99, s.Amount)
}

func TestInvestmentDecode(t *testing.T) {
	var i Investment
	payload := `{"id":5,"ticker":"VTI","quantity":3,"average_price":"200","current_price":150.5,"xirr":"0.07"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &i))
	assert.Equal(t, "Stock", i.AssetClass)
	assert.Equal(t, 451.5, i.MarketValue())
	require.NotNil(t, i.XIRR)
	assert.Equal(t, 0.07, *i.XIRR)
}

func TestInvestmentDecodeMalformedXIRR(t *testing.T) {
	var i Investment
	payload := `{"id":5,"quantity":1,"average_price":1,"current_price":1,"xirr":"n/a"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &i))
	assert.Nil(t, i.XIRR, "undecodable xirr collapses to absent")
}

func TestDebtDecodeOptionals(t *testing.T) {
	var d Debt
	payload := `{"id":6,"balance":"5000","interest_rate":19.9,"minimum_payment":100,"extra_payment":0}`
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.Equal(t, "debt", d.Type)
	assert.Nil(t, d.MonthsToPayoff)
	assert.Nil(t, d.TotalInterest)
	assert.Empty(t, d.PayoffDate)

	payload = `{"id":6,"balance":0,"interest_rate":0,"minimum_payment":0,"extra_payment":0,"months_to_payoff":14,"total_interest":"321.5","payoff_date":"2026-08-01"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	require.NotNil(t, d.MonthsToPayoff)
	assert.Equal(t, 14, *d.MonthsToPayoff)
	require.NotNil(t, d.TotalInterest)
	assert.Equal(t, 321.5, *d.TotalInterest)
}

func TestCategoryGroupDecode(t *testing.T) {
	var g CategoryGroup
	payload := `{"id":1,"name":"Essentials","categories":[{"id":10,"name":"Rent"},{"id":11,"name":"Groceries"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &g))
	require.Len(t, g.Categories, 2)
	assert.Equal(t, "Rent", g.Categories[0].Name)
}

func TestNewSettingsDefaults(t *testing.T) {
	assert.Equal(t, Settings{Currency: "USD", Locale: "en-US"}, newSettings(nil))
	assert.Equal(t, Settings{Currency: "EUR", Locale: "en-US"}, newSettings(map[string]string{"currency": "EUR"}))
	assert.Equal(t, Settings{Currency: "EUR", Locale: "pt-PT"}, newSettings(map[string]string{"currency": "EUR", "locale": "pt-PT"}))
}

func TestTotalSpending(t *testing.T) {
	categories := []SpendingCategory{{Total: 10}, {Total: 5.5}}
	assert.Equal(t, 15.5, TotalSpending(categories))
}
