// Package dashboard assembles one full-screen refresh out of the client's
// individual reads, split into a required group that aborts on failure and
// a best-effort group that degrades to defaults.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"bucketbudget/internal/api"
	"bucketbudget/internal/core"
	"bucketbudget/internal/log"
)

// API is the slice of the client the service depends on.
type API interface {
	Dashboard(ctx context.Context, month core.Month, recent int) (api.Dashboard, error)
	Transactions(ctx context.Context, limit int) ([]api.Transaction, error)
	Goals(ctx context.Context) ([]api.Goal, error)
	Insights(ctx context.Context) ([]api.Insight, error)
	IncomeVsExpense(ctx context.Context, months int) ([]api.IncomeExpensePoint, error)
	Subscriptions(ctx context.Context) ([]api.Subscription, error)
	Investments(ctx context.Context) ([]api.Investment, error)
	Debts(ctx context.Context) ([]api.Debt, error)
	CategoryGroups(ctx context.Context) ([]api.CategoryGroup, error)
	Settings(ctx context.Context) (api.Settings, error)
}

// Options tunes the refresh. Zero values fall back to the defaults the
// upstream clients use.
type Options struct {
	TransactionLimit int // full transaction list, default 200
	RecentLimit      int // transactions inside the dashboard reads, default 12
	TrendMonths      int // income-vs-expense span, default 6
}

// Snapshot is the complete state of one refresh. The caller owns it and
// replaces its working copy wholesale on the next refresh.
type Snapshot struct {
	Month           core.Month
	Dashboard       api.Dashboard
	Transactions    []api.Transaction
	Goals           []api.Goal
	Insights        []api.Insight
	IncomeVsExpense []api.IncomeExpensePoint
	Subscriptions   []api.Subscription
	Investments     []api.Investment
	Debts           []api.Debt
	CategoryGroups  []api.CategoryGroup
	Settings        api.Settings
	RefreshedAt     time.Time
}

// Service performs composite refreshes.
type Service struct {
	api    API
	opts   Options
	logger *log.Logger
	group  singleflight.Group
}

// NewService creates a refresh service. A nil logger gets the default.
func NewService(client API, opts Options, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentDashboard)
	}
	return &Service{api: client, opts: opts, logger: logger}
}

// Refresh loads a full snapshot for the month. Concurrent refreshes for
// the same month coalesce into one upstream sequence and share the result.
func (s *Service) Refresh(ctx context.Context, month core.Month) (Snapshot, error) {
	v, err, shared := s.group.Do(string(month), func() (any, error) {
		return s.refresh(ctx, month)
	})
	if err != nil {
		return Snapshot{}, err
	}
	if shared {
		s.logger.DebugContext(ctx, "refresh coalesced", log.FieldMonth, string(month))
	}
	return v.(Snapshot), nil
}

// refresh runs the required reads first, then the best-effort reads.
// Required failures abort; best-effort failures are logged and replaced
// with empty lists or defaults.
func (s *Service) refresh(ctx context.Context, month core.Month) (Snapshot, error) {
	if err := month.Validate(); err != nil {
		return Snapshot{}, err
	}

	start := time.Now()

	dash, err := s.api.Dashboard(ctx, month, s.opts.RecentLimit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load dashboard: %w", err)
	}

	transactions, err := s.api.Transactions(ctx, s.opts.TransactionLimit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load transactions: %w", err)
	}

	snap := Snapshot{
		Month:        month,
		Dashboard:    dash,
		Transactions: transactions,
		RefreshedAt:  time.Now(),
	}

	snap.Settings = s.settingsOrDefault(ctx)
	snap.Goals = bestEffort(ctx, s.logger, "goals", s.api.Goals)
	snap.Insights = bestEffort(ctx, s.logger, "insights", s.api.Insights)
	snap.IncomeVsExpense = bestEffort(ctx, s.logger, "income-vs-expense", func(ctx context.Context) ([]api.IncomeExpensePoint, error) {
		return s.api.IncomeVsExpense(ctx, s.opts.TrendMonths)
	})
	snap.Subscriptions = bestEffort(ctx, s.logger, "subscriptions", s.api.Subscriptions)
	snap.Investments = bestEffort(ctx, s.logger, "investments", s.api.Investments)
	snap.Debts = bestEffort(ctx, s.logger, "debts", s.api.Debts)
	snap.CategoryGroups = bestEffort(ctx, s.logger, "category-groups", s.api.CategoryGroups)

	// Newest month first for trend rendering.
	sort.Slice(snap.IncomeVsExpense, func(i, j int) bool {
		return snap.IncomeVsExpense[i].Month > snap.IncomeVsExpense[j].Month
	})

	s.logger.InfoContext(ctx, "refresh completed",
		log.FieldMonth, string(month),
		log.FieldDuration, time.Since(start).Milliseconds(),
		"accounts", len(dash.Accounts),
		"transactions", len(transactions))

	return snap, nil
}

func (s *Service) settingsOrDefault(ctx context.Context) api.Settings {
	settings, err := s.api.Settings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "optional resource unavailable",
			log.FieldResource, "settings", log.FieldError, err.Error())
		return api.DefaultSettings()
	}
	return settings
}

// bestEffort fetches an optional list resource; failure degrades to an
// empty list so the refresh as a whole still succeeds.
func bestEffort[T any](ctx context.Context, logger *log.Logger, resource string, fetch func(context.Context) ([]T, error)) []T {
	items, err := fetch(ctx)
	if err != nil {
		logger.WarnContext(ctx, "optional resource unavailable",
			log.FieldResource, resource, log.FieldError, err.Error())
		return nil
	}
	return items
}
