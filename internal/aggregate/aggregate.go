// Package aggregate computes the summary views the dashboards render:
// sums, groupings, trend series. Every function is a pure transform of
// its inputs; nothing here caches and nothing mutates the collections.
package aggregate

import (
	"sort"

	"github.com/fatali-fataliyev/expense_tracker/internal/finance"
	"github.com/shopspring/decimal"
)

// Record is the shared view of a dated amount; finance.Expense and
// finance.Income both satisfy it.
type Record interface {
	When() finance.Date
	Value() decimal.Decimal
}

// SumAmounts totals the amounts of the given records; an empty input
// sums to exactly zero.
func SumAmounts[T Record](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Value())
	}
	return total
}

// FilterByDateRange keeps records whose calendar date falls inside
// [start, end], both ends inclusive.
func FilterByDateRange[T Record](records []T, start, end finance.Date) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		when := record.When()
		if when.Before(start) || when.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out
}

type GroupTotal struct {
	Sum   decimal.Decimal
	Count int
}

// TotalByGroup groups records by an arbitrary key and totals each group.
// Records with no matching key never appear; an empty input yields an
// empty map.
func TotalByGroup[T any](records []T, key func(T) string, amount func(T) decimal.Decimal) map[string]GroupTotal {
	groups := make(map[string]GroupTotal)
	for _, record := range records {
		group := groups[key(record)]
		group.Sum = group.Sum.Add(amount(record))
		group.Count++
		groups[key(record)] = group
	}
	return groups
}

// IncomeBySource totals income grouped by its source.
func IncomeBySource(income []finance.Income) map[string]GroupTotal {
	return TotalByGroup(income,
		func(entry finance.Income) string { return entry.Source },
		func(entry finance.Income) decimal.Decimal { return entry.Amount })
}

const unknownCategory = "Other"

// TotalByCategory sums expense amounts per category. Every category in
// the given enumeration appears in the result, zero included; an
// expense whose category is not in the enumeration is counted under
// "Other" rather than dropped.
func TotalByCategory(expenses []finance.Expense, categories []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(categories))
	known := make(map[string]bool, len(categories))
	for _, category := range categories {
		totals[category] = decimal.Zero
		known[category] = true
	}
	for _, expense := range expenses {
		category := expense.Category
		if !known[category] {
			category = unknownCategory
		}
		totals[category] = totals[category].Add(expense.Amount)
	}
	return totals
}

type CategoryTotal struct {
	Category string
	Label    string
	Total    decimal.Decimal
	Count    int
}

// CategoryBreakdown is the dashboard's "spending by category" view:
// non-zero categories only, in enumeration order, with labels and
// transaction counts. Unrecognized categories fold into "Other".
func CategoryBreakdown(expenses []finance.Expense) []CategoryTotal {
	known := make(map[string]bool, len(finance.ExpenseCategories))
	for _, category := range finance.ExpenseCategories {
		known[category.Value] = true
	}

	totals := make(map[string]*CategoryTotal, len(finance.ExpenseCategories))
	for _, expense := range expenses {
		category := expense.Category
		if !known[category] {
			category = unknownCategory
		}
		entry, ok := totals[category]
		if !ok {
			entry = &CategoryTotal{Category: category}
			totals[category] = entry
		}
		entry.Total = entry.Total.Add(expense.Amount)
		entry.Count++
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, option := range finance.ExpenseCategories {
		entry, ok := totals[option.Value]
		if !ok || entry.Total.IsZero() {
			continue
		}
		entry.Label = option.Label
		breakdown = append(breakdown, *entry)
	}
	return breakdown
}

type SeriesPoint struct {
	Date  finance.Date
	Total decimal.Decimal
}

// DailySeries returns exactly days points, oldest first, ending at the
// reference date inclusive. Days without records carry a zero total.
func DailySeries[T Record](records []T, days int, reference finance.Date) []SeriesPoint {
	if days <= 0 {
		return []SeriesPoint{}
	}
	byDay := make(map[string]decimal.Decimal)
	for _, record := range records {
		key := record.When().String()
		byDay[key] = byDay[key].Add(record.Value())
	}

	series := make([]SeriesPoint, days)
	start := reference.AddDays(-(days - 1))
	for i := 0; i < days; i++ {
		day := start.AddDays(i)
		total, ok := byDay[day.String()]
		if !ok {
			total = decimal.Zero
		}
		series[i] = SeriesPoint{Date: day, Total: total}
	}
	return series
}

type MonthPoint struct {
	// Month in "2006-01" form.
	Month string
	Total decimal.Decimal
}

// MonthlySeries is the monthly analog of DailySeries: exactly months
// points grouped by calendar month, oldest first, ending at the month
// of the reference date.
func MonthlySeries[T Record](records []T, months int, reference finance.Date) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}
	byMonth := make(map[string]decimal.Decimal)
	for _, record := range records {
		key := record.When().YearMonth()
		byMonth[key] = byMonth[key].Add(record.Value())
	}

	series := make([]MonthPoint, months)
	for i := 0; i < months; i++ {
		month := reference.AddMonths(-(months - 1 - i)).YearMonth()
		total, ok := byMonth[month]
		if !ok {
			total = decimal.Zero
		}
		series[i] = MonthPoint{Month: month, Total: total}
	}
	return series
}

// CumulativeNet aligns the two series by index and returns the running
// balance of income minus expenses. The balance carries across the
// whole series; it is never reset per period.
func CumulativeNet(expenses, income []SeriesPoint) []SeriesPoint {
	n := len(expenses)
	if len(income) < n {
		n = len(income)
	}
	balance := decimal.Zero
	series := make([]SeriesPoint, n)
	for i := 0; i < n; i++ {
		balance = balance.Add(income[i].Total.Sub(expenses[i].Total))
		series[i] = SeriesPoint{Date: expenses[i].Date, Total: balance}
	}
	return series
}

// SummaryStats backs the dashboard stat cards.
type SummaryStats struct {
	TotalExpenses   decimal.Decimal
	TotalIncome     decimal.Decimal
	NetBalance      decimal.Decimal
	TotalSavings    decimal.Decimal
	AvgDailyExpense decimal.Decimal
	ExpenseCount    int
	IncomeCount     int
}

// Summary totals the three collections. The average daily expense is
// approximated over a 30-day window, matching the analytics view.
func Summary(expenses []finance.Expense, income []finance.Income, goals []finance.SavingsGoal) SummaryStats {
	stats := SummaryStats{
		TotalExpenses: SumAmounts(expenses),
		TotalIncome:   SumAmounts(income),
		ExpenseCount:  len(expenses),
		IncomeCount:   len(income),
	}
	stats.NetBalance = stats.TotalIncome.Sub(stats.TotalExpenses)

	stats.TotalSavings = decimal.Zero
	for _, goal := range goals {
		stats.TotalSavings = stats.TotalSavings.Add(goal.CurrentAmount)
	}

	stats.AvgDailyExpense = decimal.Zero
	if len(expenses) > 0 {
		stats.AvgDailyExpense = stats.TotalExpenses.Div(decimal.NewFromInt(30))
	}
	return stats
}

// GoalProgress is the percentage of the target already saved; it may
// exceed 100 because goals can overshoot.
func GoalProgress(goal finance.SavingsGoal) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100))
}

// TransactionView is one row of the dashboard's recent activity list.
type TransactionView struct {
	Description string
	Date        finance.Date
	Amount      decimal.Decimal
	IsIncome    bool
}

// RecentTransactions merges expenses and income, newest date first, and
// keeps the first n rows.
func RecentTransactions(expenses []finance.Expense, income []finance.Income, n int) []TransactionView {
	rows := make([]TransactionView, 0, len(expenses)+len(income))
	for _, expense := range expenses {
		rows = append(rows, TransactionView{
			Description: expense.Description,
			Date:        expense.Date,
			Amount:      expense.Amount,
		})
	}
	for _, entry := range income {
		description := entry.Description
		if description == "" {
			description = entry.Source
		}
		rows = append(rows, TransactionView{
			Description: description,
			Date:        entry.Date,
			Amount:      entry.Amount,
			IsIncome:    true,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
