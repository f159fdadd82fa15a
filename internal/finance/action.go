package finance

import "github.com/shopspring/decimal"

// Action is one requested state transition. The variant set is closed:
// the reducer matches on concrete types, so adding an action kind means
// adding a type here and a case there.
type Action interface {
	isAction()
}

type SetUserAction struct{ User User }

type LogoutAction struct{}

type SetExpensesAction struct{ Expenses []Expense }

type AddExpenseAction struct{ Expense Expense }

type UpdateExpenseAction struct{ Expense Expense }

type DeleteExpenseAction struct{ ID string }

type SetIncomeAction struct{ Income []Income }

type AddIncomeAction struct{ Income Income }

type UpdateIncomeAction struct{ Income Income }

type DeleteIncomeAction struct{ ID string }

type SetSavingsGoalsAction struct{ Goals []SavingsGoal }

type AddSavingsGoalAction struct{ Goal SavingsGoal }

type UpdateSavingsGoalAction struct{ Goal SavingsGoal }

type DeleteSavingsGoalAction struct{ ID string }

// AddToGoalAction adds money on top of a goal's current amount; the
// result may overshoot the target.
type AddToGoalAction struct {
	ID     string
	Amount decimal.Decimal
}

type SetThemeAction struct{ Theme Theme }

type ToggleThemeAction struct{}

// SeedDemoAction signs in the demo identity and bulk-sets each sample
// fixture, but only into a collection that is currently empty.
type SeedDemoAction struct{}

// ImportDataAction replaces the three collections wholesale with the
// contents of a validated backup document.
type ImportDataAction struct {
	Expenses     []Expense
	Income       []Income
	SavingsGoals []SavingsGoal
}

func (SetUserAction) isAction()           {}
func (LogoutAction) isAction()            {}
func (SetExpensesAction) isAction()       {}
func (AddExpenseAction) isAction()        {}
func (UpdateExpenseAction) isAction()     {}
func (DeleteExpenseAction) isAction()     {}
func (SetIncomeAction) isAction()         {}
func (AddIncomeAction) isAction()         {}
func (UpdateIncomeAction) isAction()      {}
func (DeleteIncomeAction) isAction()      {}
func (SetSavingsGoalsAction) isAction()   {}
func (AddSavingsGoalAction) isAction()    {}
func (UpdateSavingsGoalAction) isAction() {}
func (DeleteSavingsGoalAction) isAction() {}
func (AddToGoalAction) isAction()         {}
func (SetThemeAction) isAction()          {}
func (ToggleThemeAction) isAction()       {}
func (SeedDemoAction) isAction()          {}
func (ImportDataAction) isAction()        {}
