package finance

import (
	"fmt"
	"testing"
	"time"

	"github.com/fatali-fataliyev/expense_tracker/internal/kvstore"
	"github.com/fatali-fataliyev/expense_tracker/logging"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV rejects every write so persistence failures can be observed.
type failingKV struct {
	*kvstore.InMemoryStore
}

func (f *failingKV) Set(key string, value []byte) error {
	return fmt.Errorf("quota exceeded for %q", key)
}

func newTestStore() (*Store, *kvstore.InMemoryStore) {
	kv := kvstore.NewInMemoryStore()
	store := NewStore(kv)
	nextID := 0
	store.newID = func() string {
		nextID++
		return fmt.Sprintf("id-%d", nextID)
	}
	store.now = func() time.Time {
		return time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	}
	return store, kv
}

func TestNewStoreRecordsStorageType(t *testing.T) {
	store := NewStore(kvstore.NewInMemoryStore())
	assert.Equal(t, "inmemory", store.StorageType)
}

func TestDispatchPersistsChangedSlice(t *testing.T) {
	store, kv := newTestStore()

	store.Dispatch(AddExpenseAction{Expense: testExpense("a", 12.5)})

	data, ok, err := kv.Get("expenses")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(data), `"id":"a"`)

	// Slices the action did not touch stay unwritten.
	_, ok, err = kv.Get("income")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogoutRemovesUserSliceOnly(t *testing.T) {
	store, kv := newTestStore()
	store.DemoLogin()

	_, ok, _ := kv.Get("expenseUser")
	require.True(t, ok)

	store.Logout()

	_, ok, _ = kv.Get("expenseUser")
	assert.False(t, ok)

	// Financial slices survive the logout.
	_, ok, _ = kv.Get("expenses")
	assert.True(t, ok)

	state := store.GetState()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.Len(t, state.Expenses, 5)
}

func TestHydrateRestoresPersistedState(t *testing.T) {
	store, kv := newTestStore()
	store.DemoLogin()
	store.ToggleTheme()
	_, err := store.AddExpense(ExpenseRequest{
		Amount:        decimal.NewFromFloat(9.99),
		Category:      "Bills",
		Description:   "Streaming",
		Date:          NewDate(2024, time.January, 18),
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)
	before := store.GetState()

	// A fresh store over the same slices is the process restart.
	restarted := NewStore(kv)
	restarted.Hydrate()
	after := restarted.GetState()

	require.NotNil(t, after.User)
	assert.Equal(t, before.User.ID, after.User.ID)
	assert.True(t, after.IsAuthenticated)
	assert.Equal(t, ThemeDark, after.Theme)
	require.Len(t, after.Expenses, len(before.Expenses))
	for i := range before.Expenses {
		assert.Equal(t, before.Expenses[i].ID, after.Expenses[i].ID)
		assert.True(t, before.Expenses[i].Amount.Equal(after.Expenses[i].Amount))
		assert.True(t, before.Expenses[i].Date.Equal(after.Expenses[i].Date))
	}
	assert.Len(t, after.Income, len(before.Income))
	assert.Len(t, after.SavingsGoals, len(before.SavingsGoals))
}

func TestHydrateToleratesCorruptSlices(t *testing.T) {
	kv := kvstore.NewInMemoryStore()
	require.NoError(t, kv.Set("expenses", []byte(`{not json`)))
	require.NoError(t, kv.Set("theme", []byte(`"purple"`)))
	require.NoError(t, kv.Set("expenseUser", []byte(`42`)))

	store := NewStore(kv)
	store.Hydrate()

	state := store.GetState()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Expenses)
	assert.Equal(t, ThemeLight, state.Theme)
}

func TestDispatchSurvivesPersistenceFailure(t *testing.T) {
	hook := logtest.NewLocal(logging.Logger)
	defer logging.Logger.ReplaceHooks(make(logrus.LevelHooks))

	store := NewStore(&failingKV{kvstore.NewInMemoryStore()})

	state := store.Dispatch(AddExpenseAction{Expense: testExpense("a", 5)})

	// In-memory state is authoritative even though the write failed.
	require.Len(t, state.Expenses, 1)
	require.Len(t, store.GetState().Expenses, 1)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "expenses")
}

func TestSnapshotsAreIsolated(t *testing.T) {
	store, _ := newTestStore()
	store.DemoLogin()

	snapshot := store.GetState()
	snapshot.Expenses[0].Description = "tampered"
	snapshot.User.Name = "tampered"

	state := store.GetState()
	assert.Equal(t, "Lunch at cafe", state.Expenses[0].Description)
	assert.Equal(t, "Demo User", state.User.Name)
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	store, _ := newTestStore()

	var calls []string
	store.Subscribe(func(State) { calls = append(calls, "first") })
	unsubscribe := store.Subscribe(func(State) { calls = append(calls, "second") })
	store.Subscribe(func(State) { calls = append(calls, "third") })

	store.Dispatch(ToggleThemeAction{})
	require.Equal(t, []string{"first", "second", "third"}, calls)

	calls = nil
	unsubscribe()
	store.Dispatch(ToggleThemeAction{})
	require.Equal(t, []string{"first", "third"}, calls)
}

func TestDispatchFromListenerIsDeferredNotRecursive(t *testing.T) {
	store, _ := newTestStore()

	dispatched := false
	var seen []int
	store.Subscribe(func(state State) {
		seen = append(seen, len(state.Expenses))
		if !dispatched {
			dispatched = true
			store.Dispatch(AddExpenseAction{Expense: testExpense("b", 2)})
		}
	})

	store.Dispatch(AddExpenseAction{Expense: testExpense("a", 1)})

	// The nested dispatch ran after the first notification completed,
	// in its own round.
	require.Equal(t, []int{1, 2}, seen)
	require.Len(t, store.GetState().Expenses, 2)
}

func TestDispatchOrderingIsStrict(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 10; i++ {
		store.Dispatch(AddExpenseAction{Expense: testExpense(fmt.Sprintf("e%d", i), float64(i+1))})
	}

	state := store.GetState()
	require.Len(t, state.Expenses, 10)
	for i, expense := range state.Expenses {
		assert.Equal(t, fmt.Sprintf("e%d", i), expense.ID)
	}
}
