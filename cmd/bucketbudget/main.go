package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"bucketbudget/internal/api"
	"bucketbudget/internal/config"
	"bucketbudget/internal/core"
	"bucketbudget/internal/dashboard"
	"bucketbudget/internal/log"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", log.FieldError, err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "login" {
		if err := runLogin(ctx, cfg, logger); err != nil {
			logger.Error("login failed", log.FieldError, err.Error())
			os.Exit(1)
		}
		return
	}

	if err := runRefresh(ctx, cfg, logger); err != nil {
		logger.Error("refresh failed", log.FieldError, err.Error())
		os.Exit(1)
	}
}

// runLogin exchanges BUCKET_IDENTIFIER/BUCKET_PASSWORD for a token and
// prints it. The token is never stored; export it as BUCKET_TOKEN.
func runLogin(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if cfg.Identifier == "" || cfg.Password == "" {
		return fmt.Errorf("set BUCKET_IDENTIFIER and BUCKET_PASSWORD to log in")
	}

	client := api.New(cfg.Connection(), &http.Client{Timeout: cfg.HTTPTimeout})
	resp, err := client.Login(ctx, cfg.Identifier, cfg.Password)
	if err != nil {
		return err
	}

	logger.Info("login succeeded", log.FieldProvider, cfg.Provider)
	fmt.Println(resp.Token)
	return nil
}

func runRefresh(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	month, err := core.ParseMonth(cfg.Month)
	if err != nil {
		return err
	}

	client := api.New(cfg.Connection(), &http.Client{Timeout: cfg.HTTPTimeout})
	svc := dashboard.NewService(client, dashboard.Options{
		TransactionLimit: cfg.TransactionLimit,
		RecentLimit:      cfg.RecentLimit,
		TrendMonths:      cfg.TrendMonths,
	}, logger.WithComponent(log.ComponentDashboard))

	snap, err := svc.Refresh(ctx, month)
	if err != nil {
		return err
	}

	render(snap)
	return nil
}

func render(snap dashboard.Snapshot) {
	currency := snap.Settings.Currency
	summary := snap.Dashboard.BudgetSummary

	fmt.Printf("Budget for %s\n", snap.Month)
	fmt.Printf("  To be budgeted: %s\n", core.FormatAmount(summary.ToBeBudgeted, currency))
	fmt.Printf("  Month income:   %s\n", core.FormatAmount(summary.MonthIncome, currency))
	fmt.Printf("  Month expenses: %s\n", core.FormatAmount(summary.MonthExpenses, currency))
	fmt.Printf("  Age of money:   %d days\n", snap.Dashboard.AgeOfMoney.Age)

	fmt.Printf("\nAccounts (net worth %s)\n", core.FormatAmount(api.NetWorth(snap.Dashboard.Accounts), currency))
	for _, a := range snap.Dashboard.Accounts {
		marker := ""
		if a.Closed {
			marker = " (closed)"
		}
		fmt.Printf("  %-24s %12s%s\n", a.Name, core.FormatAmount(a.Balance, currency), marker)
	}

	if len(snap.Dashboard.SpendingByCategory) > 0 {
		total := api.TotalSpending(snap.Dashboard.SpendingByCategory)
		fmt.Println("\nSpending by category")
		for _, c := range snap.Dashboard.SpendingByCategory {
			share := core.CategoryShare(c.Total, total)
			fmt.Printf("  %-24s %12s  %3.0f%%\n", c.Label(), core.FormatAmount(c.Total, currency), share*100)
		}
	}

	if len(snap.Goals) > 0 {
		fmt.Println("\nGoals")
		for _, g := range snap.Goals {
			fmt.Printf("  %-24s %12s of %s (%3.0f%%)\n",
				g.Name,
				core.FormatAmount(g.SavedAmount, currency),
				core.FormatAmount(g.TargetAmount, currency),
				g.Progress()*100)
		}
	}

	if len(snap.Insights) > 0 {
		fmt.Println("\nInsights")
		for _, i := range snap.Insights {
			fmt.Printf("  [%s] %s: %s\n", i.Severity, i.Title, i.Description)
		}
	}

	if len(snap.Transactions) > 0 {
		fmt.Println("\nRecent transactions")
		limit := len(snap.Transactions)
		if limit > 10 {
			limit = 10
		}
		for _, tx := range snap.Transactions[:limit] {
			fmt.Printf("  %s  %-20s %12s\n", tx.Date, tx.Payee, core.FormatAmount(tx.Amount, currency))
		}
	}
}
