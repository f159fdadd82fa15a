package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enumerations offered by the views. New records must pick from these
// lists; records restored from older data files may still carry a value
// outside them, and aggregation buckets those under "Other".

type CategoryOption struct {
	Value string
	Label string
}

var ExpenseCategories = []CategoryOption{
	{Value: "Food", Label: "Food & Dining"},
	{Value: "Transport", Label: "Transportation"},
	{Value: "Entertainment", Label: "Entertainment"},
	{Value: "Shopping", Label: "Shopping"},
	{Value: "Health", Label: "Health & Fitness"},
	{Value: "Bills", Label: "Bills & Utilities"},
	{Value: "Education", Label: "Education"},
	{Value: "Travel", Label: "Travel"},
	{Value: "Other", Label: "Other"},
}

func ExpenseCategoryValues() []string {
	values := make([]string, len(ExpenseCategories))
	for i, category := range ExpenseCategories {
		values[i] = category.Value
	}
	return values
}

var IncomeSources = []string{
	"Salary",
	"Freelance",
	"Business",
	"Investment",
	"Rental",
	"Other",
}

var PaymentMethods = []string{
	"Cash",
	"Credit Card",
	"Debit Card",
	"Bank Transfer",
	"Digital Wallet",
	"Other",
}

var GoalCategories = []string{
	"Emergency",
	"Travel",
	"Education",
	"House",
	"Car",
	"Investment",
	"Other",
}

func DemoUser() User {
	return User{
		ID:    "demo",
		Name:  "Demo User",
		Email: "demo@expensetracker.com",
	}
}

// Sample fixtures for the demo session. Returned as fresh slices so a
// seeded session can be mutated without touching the fixtures.

func SampleExpenses() []Expense {
	return []Expense{
		{
			ID:            "1",
			Amount:        decimal.NewFromFloat(25.50),
			Category:      "Food",
			Description:   "Lunch at cafe",
			Date:          NewDate(2024, time.January, 15),
			PaymentMethod: "Credit Card",
			CreatedAt:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Amount:        decimal.NewFromFloat(60.00),
			Category:      "Transport",
			Description:   "Gas for car",
			Date:          NewDate(2024, time.January, 14),
			PaymentMethod: "Debit Card",
			CreatedAt:     time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Amount:        decimal.NewFromFloat(15.99),
			Category:      "Entertainment",
			Description:   "Movie ticket",
			Date:          NewDate(2024, time.January, 13),
			PaymentMethod: "Cash",
			CreatedAt:     time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			Amount:        decimal.NewFromFloat(120.00),
			Category:      "Shopping",
			Description:   "Groceries",
			Date:          NewDate(2024, time.January, 12),
			PaymentMethod: "Credit Card",
			CreatedAt:     time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "5",
			Amount:        decimal.NewFromFloat(45.00),
			Category:      "Health",
			Description:   "Pharmacy",
			Date:          NewDate(2024, time.January, 11),
			PaymentMethod: "Debit Card",
			CreatedAt:     time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SampleIncome() []Income {
	return []Income{
		{
			ID:          "1",
			Amount:      decimal.NewFromFloat(3500.00),
			Source:      "Salary",
			Description: "Monthly salary",
			Date:        NewDate(2024, time.January, 1),
			CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Amount:      decimal.NewFromFloat(500.00),
			Source:      "Freelance",
			Description: "Web development project",
			Date:        NewDate(2024, time.January, 10),
			CreatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SampleSavingsGoals() []SavingsGoal {
	return []SavingsGoal{
		{
			ID:            "1",
			Title:         "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(2500),
			Deadline:      NewDate(2024, time.December, 31),
			Category:      "Emergency",
			CreatedAt:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Title:         "Vacation",
			TargetAmount:  decimal.NewFromInt(2000),
			CurrentAmount: decimal.NewFromInt(800),
			Deadline:      NewDate(2024, time.June, 30),
			Category:      "Travel",
			CreatedAt:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}
