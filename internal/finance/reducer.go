package finance

// change records which state slices a reduction touched, so the store
// writes exactly the slices that changed and nothing else.
type change uint8

const (
	changedUser change = 1 << iota
	changedExpenses
	changedIncome
	changedGoals
	changedTheme
)

// reduce is a pure function of (state, action). It never mutates its
// input and an unrecognized action returns the state unchanged.
func reduce(state State, action Action) (State, change) {
	switch a := action.(type) {
	case SetUserAction:
		user := a.User
		state.User = &user
		state.IsAuthenticated = true
		return state, changedUser

	case LogoutAction:
		// Logout ends the session only; expenses, income and goals stay
		// on the device for the next sign-in.
		state.User = nil
		state.IsAuthenticated = false
		return state, changedUser

	case SetExpensesAction:
		state.Expenses = append([]Expense{}, a.Expenses...)
		return state, changedExpenses

	case AddExpenseAction:
		state.Expenses = append(append([]Expense{}, state.Expenses...), a.Expense)
		return state, changedExpenses

	case UpdateExpenseAction:
		expenses, replaced := replaceExpense(state.Expenses, a.Expense)
		if !replaced {
			return state, 0
		}
		state.Expenses = expenses
		return state, changedExpenses

	case DeleteExpenseAction:
		expenses, removed := deleteExpense(state.Expenses, a.ID)
		if !removed {
			return state, 0
		}
		state.Expenses = expenses
		return state, changedExpenses

	case SetIncomeAction:
		state.Income = append([]Income{}, a.Income...)
		return state, changedIncome

	case AddIncomeAction:
		state.Income = append(append([]Income{}, state.Income...), a.Income)
		return state, changedIncome

	case UpdateIncomeAction:
		income, replaced := replaceIncome(state.Income, a.Income)
		if !replaced {
			return state, 0
		}
		state.Income = income
		return state, changedIncome

	case DeleteIncomeAction:
		income, removed := deleteIncome(state.Income, a.ID)
		if !removed {
			return state, 0
		}
		state.Income = income
		return state, changedIncome

	case SetSavingsGoalsAction:
		state.SavingsGoals = append([]SavingsGoal{}, a.Goals...)
		return state, changedGoals

	case AddSavingsGoalAction:
		state.SavingsGoals = append(append([]SavingsGoal{}, state.SavingsGoals...), a.Goal)
		return state, changedGoals

	case UpdateSavingsGoalAction:
		goals, replaced := replaceGoal(state.SavingsGoals, a.Goal)
		if !replaced {
			return state, 0
		}
		state.SavingsGoals = goals
		return state, changedGoals

	case DeleteSavingsGoalAction:
		goals, removed := deleteGoal(state.SavingsGoals, a.ID)
		if !removed {
			return state, 0
		}
		state.SavingsGoals = goals
		return state, changedGoals

	case AddToGoalAction:
		goals := append([]SavingsGoal{}, state.SavingsGoals...)
		for i, goal := range goals {
			if goal.ID == a.ID {
				goals[i].CurrentAmount = goal.CurrentAmount.Add(a.Amount)
				state.SavingsGoals = goals
				return state, changedGoals
			}
		}
		return state, 0

	case SetThemeAction:
		state.Theme = a.Theme
		return state, changedTheme

	case ToggleThemeAction:
		state.Theme = state.Theme.Toggle()
		return state, changedTheme

	case SeedDemoAction:
		user := DemoUser()
		state.User = &user
		state.IsAuthenticated = true
		changed := changedUser
		if len(state.Expenses) == 0 {
			state.Expenses = SampleExpenses()
			changed |= changedExpenses
		}
		if len(state.Income) == 0 {
			state.Income = SampleIncome()
			changed |= changedIncome
		}
		if len(state.SavingsGoals) == 0 {
			state.SavingsGoals = SampleSavingsGoals()
			changed |= changedGoals
		}
		return state, changed

	case ImportDataAction:
		state.Expenses = append([]Expense{}, a.Expenses...)
		state.Income = append([]Income{}, a.Income...)
		state.SavingsGoals = append([]SavingsGoal{}, a.SavingsGoals...)
		return state, changedExpenses | changedIncome | changedGoals

	default:
		// Unknown action kinds are a defined no-op.
		return state, 0
	}
}

func replaceExpense(expenses []Expense, updated Expense) ([]Expense, bool) {
	for i, e := range expenses {
		if e.ID == updated.ID {
			out := append([]Expense{}, expenses...)
			out[i] = updated
			return out, true
		}
	}
	return expenses, false
}

func deleteExpense(expenses []Expense, id string) ([]Expense, bool) {
	out := make([]Expense, 0, len(expenses))
	removed := false
	for _, e := range expenses {
		if e.ID == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out, removed
}

func replaceIncome(income []Income, updated Income) ([]Income, bool) {
	for i, entry := range income {
		if entry.ID == updated.ID {
			out := append([]Income{}, income...)
			out[i] = updated
			return out, true
		}
	}
	return income, false
}

func deleteIncome(income []Income, id string) ([]Income, bool) {
	out := make([]Income, 0, len(income))
	removed := false
	for _, entry := range income {
		if entry.ID == id {
			removed = true
			continue
		}
		out = append(out, entry)
	}
	return out, removed
}

func replaceGoal(goals []SavingsGoal, updated SavingsGoal) ([]SavingsGoal, bool) {
	for i, goal := range goals {
		if goal.ID == updated.ID {
			out := append([]SavingsGoal{}, goals...)
			out[i] = updated
			return out, true
		}
	}
	return goals, false
}

func deleteGoal(goals []SavingsGoal, id string) ([]SavingsGoal, bool) {
	out := make([]SavingsGoal, 0, len(goals))
	removed := false
	for _, goal := range goals {
		if goal.ID == id {
			removed = true
			continue
		}
		out = append(out, goal)
	}
	return out, removed
}
