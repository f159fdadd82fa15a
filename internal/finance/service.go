package finance

import (
	"fmt"

	appErrors "github.com/fatali-fataliyev/expense_tracker/apperrors"
	"github.com/shopspring/decimal"
)

// Validated entry points mirroring the UI forms. Each validates its
// request, builds the record with a fresh ID and creation timestamp and
// dispatches it; a validation failure leaves the state untouched.

func (s *Store) AddExpense(req ExpenseRequest) (Expense, error) {
	if err := req.Validate(); err != nil {
		return Expense{}, err
	}
	expense := Expense{
		ID:            s.newID(),
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     s.now().UTC(),
	}
	s.Dispatch(AddExpenseAction{Expense: expense})
	return expense, nil
}

// UpdateExpense replaces the stored record with the same ID; an unknown
// ID is a silent no-op.
func (s *Store) UpdateExpense(expense Expense) error {
	if err := validateAmount(expense.Amount); err != nil {
		return err
	}
	s.Dispatch(UpdateExpenseAction{Expense: expense})
	return nil
}

func (s *Store) DeleteExpense(id string) {
	s.Dispatch(DeleteExpenseAction{ID: id})
}

func (s *Store) AddIncome(req IncomeRequest) (Income, error) {
	if err := req.Validate(); err != nil {
		return Income{}, err
	}
	income := Income{
		ID:          s.newID(),
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		Date:        req.Date,
		CreatedAt:   s.now().UTC(),
	}
	s.Dispatch(AddIncomeAction{Income: income})
	return income, nil
}

func (s *Store) UpdateIncome(income Income) error {
	if err := validateAmount(income.Amount); err != nil {
		return err
	}
	s.Dispatch(UpdateIncomeAction{Income: income})
	return nil
}

func (s *Store) DeleteIncome(id string) {
	s.Dispatch(DeleteIncomeAction{ID: id})
}

func (s *Store) AddSavingsGoal(req SavingsGoalRequest) (SavingsGoal, error) {
	if err := req.Validate(); err != nil {
		return SavingsGoal{}, err
	}
	goal := SavingsGoal{
		ID:            s.newID(),
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Category:      req.Category,
		CreatedAt:     s.now().UTC(),
	}
	s.Dispatch(AddSavingsGoalAction{Goal: goal})
	return goal, nil
}

func (s *Store) UpdateSavingsGoal(goal SavingsGoal) error {
	if err := validateAmount(goal.TargetAmount); err != nil {
		return err
	}
	if goal.CurrentAmount.IsNegative() {
		return appErrors.Invalid("Current amount cannot be negative!")
	}
	s.Dispatch(UpdateSavingsGoalAction{Goal: goal})
	return nil
}

func (s *Store) DeleteSavingsGoal(id string) {
	s.Dispatch(DeleteSavingsGoalAction{ID: id})
}

// AddToGoal deposits money into a savings goal; overshooting the target
// is allowed.
func (s *Store) AddToGoal(goalID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return appErrors.Invalid("Amount must be greater than zero!")
	}
	s.Dispatch(AddToGoalAction{ID: goalID, Amount: amount})
	return nil
}

// DemoLogin seeds the demo session. Dispatching it twice never
// duplicates fixtures: only empty collections are seeded.
func (s *Store) DemoLogin() {
	s.Dispatch(SeedDemoAction{})
}

func (s *Store) Logout() {
	s.Dispatch(LogoutAction{})
}

func (s *Store) SetTheme(theme Theme) error {
	if !theme.Valid() {
		return appErrors.Invalid(fmt.Sprintf("Unknown theme: %q", theme))
	}
	s.Dispatch(SetThemeAction{Theme: theme})
	return nil
}

func (s *Store) ToggleTheme() Theme {
	return s.Dispatch(ToggleThemeAction{}).Theme
}
