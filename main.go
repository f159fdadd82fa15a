package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatali-fataliyev/expense_tracker/internal/aggregate"
	"github.com/fatali-fataliyev/expense_tracker/internal/finance"
	"github.com/fatali-fataliyev/expense_tracker/internal/kvstore"
	"github.com/fatali-fataliyev/expense_tracker/logging"
)

func main() {
	exportPath := flag.String("export", "", "write a JSON backup of the tracked data to this file")
	importPath := flag.String("import", "", "restore tracked data from a JSON backup file")
	flag.Parse()

	if err := logging.Init("info"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return
	}

	logging.Logger.Info("application starting...")

	dbPath := os.Getenv("TRACKER_DB_PATH")
	if dbPath == "" {
		logging.Logger.Info("TRACKER_DB_PATH environment variable not set, using default path ./data/tracker.db")
		dbPath = "./data/tracker.db"
	}

	kv, err := kvstore.NewSQLiteStore(dbPath)
	if err != nil {
		logging.Logger.Errorf("failed to open slice store: %v", err)
		return
	}
	defer kv.Close()

	store := finance.NewStore(kv)
	logging.Logger.Infof("using %s storage at %s", store.StorageType, dbPath)
	store.Hydrate()

	if *importPath != "" {
		data, err := os.ReadFile(*importPath)
		if err != nil {
			logging.Logger.Errorf("failed to read backup file: %v", err)
			return
		}
		if err := store.Import(data); err != nil {
			logging.Logger.Errorf("failed to import backup: %v", err)
			return
		}
		logging.Logger.Infof("restored backup from %s", *importPath)
	}

	state := store.GetState()
	if state.User == nil {
		logging.Logger.Info("no saved session found, starting demo session")
		store.DemoLogin()
		state = store.GetState()
	}

	printDashboard(state)

	if *exportPath != "" {
		data, err := store.Export()
		if err != nil {
			logging.Logger.Errorf("failed to export data: %v", err)
			return
		}
		if err := os.WriteFile(*exportPath, data, 0644); err != nil {
			logging.Logger.Errorf("failed to write backup file: %v", err)
			return
		}
		logging.Logger.Infof("wrote backup to %s", *exportPath)
	}
}

func printDashboard(state finance.State) {
	fmt.Printf("Signed in as %s <%s> (theme: %s)\n\n", state.User.Name, state.User.Email, state.Theme)

	summary := aggregate.Summary(state.Expenses, state.Income, state.SavingsGoals)
	fmt.Printf("Total income:      %s\n", summary.TotalIncome.StringFixed(2))
	fmt.Printf("Total expenses:    %s\n", summary.TotalExpenses.StringFixed(2))
	fmt.Printf("Net balance:       %s\n", summary.NetBalance.StringFixed(2))
	fmt.Printf("Total savings:     %s\n", summary.TotalSavings.StringFixed(2))
	fmt.Printf("Avg daily expense: %s\n", summary.AvgDailyExpense.StringFixed(2))

	fmt.Println("\nSpending by category:")
	breakdown := aggregate.CategoryBreakdown(state.Expenses)
	if len(breakdown) == 0 {
		fmt.Println("  no expenses recorded")
	}
	for _, category := range breakdown {
		fmt.Printf("  %-20s %10s  (%d transactions)\n", category.Label, category.Total.StringFixed(2), category.Count)
	}

	fmt.Println("\nLast 7 days (expenses / income / running net):")
	today := finance.Today()
	expenseSeries := aggregate.DailySeries(state.Expenses, 7, today)
	incomeSeries := aggregate.DailySeries(state.Income, 7, today)
	net := aggregate.CumulativeNet(expenseSeries, incomeSeries)
	for i := range net {
		fmt.Printf("  %s  %10s  %10s  %10s\n",
			net[i].Date,
			expenseSeries[i].Total.StringFixed(2),
			incomeSeries[i].Total.StringFixed(2),
			net[i].Total.StringFixed(2))
	}

	if len(state.SavingsGoals) > 0 {
		fmt.Println("\nSavings goals:")
		for _, goal := range state.SavingsGoals {
			progress := aggregate.GoalProgress(goal)
			fmt.Printf("  %-20s %s of %s (%s%%)\n",
				goal.Title,
				goal.CurrentAmount.StringFixed(2),
				goal.TargetAmount.StringFixed(2),
				progress.StringFixed(0))
		}
	}

	fmt.Println("\nRecent transactions:")
	for _, row := range aggregate.RecentTransactions(state.Expenses, state.Income, 5) {
		sign := "-"
		if row.IsIncome {
			sign = "+"
		}
		fmt.Printf("  %s  %s%s  %s\n", row.Date, sign, row.Amount.StringFixed(2), row.Description)
	}
}
