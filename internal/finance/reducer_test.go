package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func testExpense(id string, amount float64) Expense {
	return Expense{
		ID:            id,
		Amount:        decimal.NewFromFloat(amount),
		Category:      "Food",
		Description:   "test",
		Date:          NewDate(2024, 1, 15),
		PaymentMethod: "Cash",
	}
}

func TestReduceAddPreservesAppendOrder(t *testing.T) {
	state := initialState()

	state, changed := reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})
	require.Equal(t, changedExpenses, changed)
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("b", 2)})
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("c", 3)})

	require.Len(t, state.Expenses, 3)
	require.Equal(t, "a", state.Expenses[0].ID)
	require.Equal(t, "b", state.Expenses[1].ID)
	require.Equal(t, "c", state.Expenses[2].ID)
}

func TestReduceUpdateReplacesMatchingID(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("b", 2)})

	updated := testExpense("a", 99)
	updated.Description = "changed"
	state, changed := reduce(state, UpdateExpenseAction{Expense: updated})

	require.Equal(t, changedExpenses, changed)
	require.Equal(t, "changed", state.Expenses[0].Description)
	require.True(t, state.Expenses[0].Amount.Equal(decimal.NewFromInt(99)))
	require.Equal(t, "b", state.Expenses[1].ID)
}

func TestReduceUpdateUnknownIDIsNoOp(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})

	next, changed := reduce(state, UpdateExpenseAction{Expense: testExpense("missing", 5)})

	require.Equal(t, change(0), changed)
	require.Equal(t, state.Expenses, next.Expenses)
}

func TestReduceDeleteRemovesOnlyMatch(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("b", 2)})

	state, changed := reduce(state, DeleteExpenseAction{ID: "a"})
	require.Equal(t, changedExpenses, changed)
	require.Len(t, state.Expenses, 1)
	require.Equal(t, "b", state.Expenses[0].ID)

	next, changed := reduce(state, DeleteExpenseAction{ID: "a"})
	require.Equal(t, change(0), changed)
	require.Equal(t, state.Expenses, next.Expenses)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})
	before := state.Expenses[0].Amount

	updated := testExpense("a", 500)
	_, _ = reduce(state, UpdateExpenseAction{Expense: updated})

	require.True(t, state.Expenses[0].Amount.Equal(before))
}

func TestReduceToggleThemeTwiceRestores(t *testing.T) {
	state := initialState()
	require.Equal(t, ThemeLight, state.Theme)

	state, changed := reduce(state, ToggleThemeAction{})
	require.Equal(t, changedTheme, changed)
	require.Equal(t, ThemeDark, state.Theme)

	state, _ = reduce(state, ToggleThemeAction{})
	require.Equal(t, ThemeLight, state.Theme)
}

func TestReduceSeedDemoOnlyFillsEmptyCollections(t *testing.T) {
	state := initialState()
	state, changed := reduce(state, SeedDemoAction{})

	require.Equal(t, changedUser|changedExpenses|changedIncome|changedGoals, changed)
	require.NotNil(t, state.User)
	require.Equal(t, "demo", state.User.ID)
	require.True(t, state.IsAuthenticated)
	require.Len(t, state.Expenses, 5)
	require.Len(t, state.Income, 2)
	require.Len(t, state.SavingsGoals, 2)

	// Seeding again must not duplicate anything.
	state, changed = reduce(state, SeedDemoAction{})
	require.Equal(t, changedUser, changed)
	require.Len(t, state.Expenses, 5)
	require.Len(t, state.Income, 2)
	require.Len(t, state.SavingsGoals, 2)
}

func TestReduceLogoutKeepsFinancialCollections(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, SeedDemoAction{})

	state, changed := reduce(state, LogoutAction{})
	require.Equal(t, changedUser, changed)
	require.Nil(t, state.User)
	require.False(t, state.IsAuthenticated)
	require.Len(t, state.Expenses, 5)
	require.Len(t, state.Income, 2)
	require.Len(t, state.SavingsGoals, 2)
}

func TestReduceAddToGoal(t *testing.T) {
	state := initialState()
	goal := SavingsGoal{
		ID:            "g1",
		Title:         "Bike",
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: decimal.NewFromInt(40),
		Category:      "Other",
	}
	state, _ = reduce(state, AddSavingsGoalAction{Goal: goal})

	state, changed := reduce(state, AddToGoalAction{ID: "g1", Amount: decimal.NewFromInt(20)})
	require.Equal(t, changedGoals, changed)
	require.True(t, state.SavingsGoals[0].CurrentAmount.Equal(decimal.NewFromInt(60)))

	// Unknown goal is a no-op.
	_, changed = reduce(state, AddToGoalAction{ID: "nope", Amount: decimal.NewFromInt(20)})
	require.Equal(t, change(0), changed)
}

func TestReduceGoalMayOvershootTarget(t *testing.T) {
	state := initialState()
	goal := SavingsGoal{
		ID:            "g1",
		Title:         "Trip",
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: decimal.NewFromInt(90),
		Category:      "Travel",
	}
	state, _ = reduce(state, AddSavingsGoalAction{Goal: goal})

	state, _ = reduce(state, AddToGoalAction{ID: "g1", Amount: decimal.NewFromInt(50)})
	require.True(t, state.SavingsGoals[0].CurrentAmount.Equal(decimal.NewFromInt(140)))
}

func TestReduceUnknownActionIsNoOp(t *testing.T) {
	state := initialState()
	state, _ = reduce(state, AddExpenseAction{Expense: testExpense("a", 1)})

	next, changed := reduce(state, unknownAction{})
	require.Equal(t, change(0), changed)
	require.Equal(t, state.Expenses, next.Expenses)
	require.Equal(t, state.Theme, next.Theme)
}
