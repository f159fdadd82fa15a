package finance

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fatali-fataliyev/expense_tracker/internal/kvstore"
	"github.com/fatali-fataliyev/expense_tracker/logging"
	"github.com/google/uuid"
)

// Storage keys for the persisted slices. The names are fixed for the
// lifetime of a data file; changing one orphans previously saved data.
const (
	keyUser         = "expenseUser"
	keyExpenses     = "expenses"
	keyIncome       = "income"
	keySavingsGoals = "savingsGoals"
	keyTheme        = "theme"
)

type subscription struct {
	id int
	fn func(State)
}

// Store is the single source of truth for session state. All mutation
// goes through Dispatch; every dispatch that changes a slice writes
// that slice to the persistent store before the next read can observe
// the new state.
type Store struct {
	mu          sync.Mutex
	state       State
	kv          kvstore.Store
	StorageType string
	newID       func() string
	now         func() time.Time
	listeners   []subscription
	nextSubID   int
	notifying   bool
	pending     []Action
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		state:       initialState(),
		kv:          kv,
		StorageType: kv.GetStorageType(),
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// GetState returns a snapshot the caller may keep; mutating it never
// affects the store.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies the action, persists the slices it changed and
// notifies subscribers in subscription order. Dispatching from inside a
// subscriber callback does not recurse: the action is queued and applied
// once the current notification round has finished.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	if s.notifying {
		s.pending = append(s.pending, action)
		snapshot := s.state.clone()
		s.mu.Unlock()
		return snapshot
	}
	s.notifying = true
	s.mu.Unlock()

	snapshot := s.applyOne(action)
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.notifying = false
			s.mu.Unlock()
			return snapshot
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		snapshot = s.applyOne(next)
	}
}

func (s *Store) applyOne(action Action) State {
	s.mu.Lock()
	next, changed := reduce(s.state, action)
	s.state = next
	s.persist(changed)
	snapshot := s.state.clone()
	subscribers := make([]func(State), len(s.listeners))
	for i, sub := range s.listeners {
		subscribers[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return snapshot
}

// Subscribe registers a listener called after every dispatch with the
// new state. The returned function deregisters it.
func (s *Store) Subscribe(listener func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: listener})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Hydrate seeds the in-memory state from the persisted slices. Missing
// or corrupt entries fall back to their defaults; hydration never fails.
func (s *Store) Hydrate() {
	var user *User
	if s.readSlice(keyUser, &user) && user != nil {
		s.Dispatch(SetUserAction{User: *user})
	}

	expenses := []Expense{}
	s.readSlice(keyExpenses, &expenses)
	s.Dispatch(SetExpensesAction{Expenses: expenses})

	income := []Income{}
	s.readSlice(keyIncome, &income)
	s.Dispatch(SetIncomeAction{Income: income})

	goals := []SavingsGoal{}
	s.readSlice(keySavingsGoals, &goals)
	s.Dispatch(SetSavingsGoalsAction{Goals: goals})

	theme := ThemeLight
	var saved Theme
	if s.readSlice(keyTheme, &saved) && saved.Valid() {
		theme = saved
	}
	s.Dispatch(SetThemeAction{Theme: theme})
}

func (s *Store) readSlice(key string, out any) bool {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		logging.Logger.Warnf("failed to read slice %q, falling back to default: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.Logger.Warnf("corrupt slice %q, falling back to default: %v", key, err)
		return false
	}
	return true
}

// persist writes every changed slice. A write failure is logged and
// swallowed: in-memory state stays authoritative.
func (s *Store) persist(changed change) {
	if changed&changedUser != 0 {
		if s.state.User == nil {
			if err := s.kv.Delete(keyUser); err != nil {
				logging.Logger.Errorf("failed to remove slice %q: %v", keyUser, err)
			}
		} else {
			s.writeSlice(keyUser, s.state.User)
		}
	}
	if changed&changedExpenses != 0 {
		s.writeSlice(keyExpenses, s.state.Expenses)
	}
	if changed&changedIncome != 0 {
		s.writeSlice(keyIncome, s.state.Income)
	}
	if changed&changedGoals != 0 {
		s.writeSlice(keySavingsGoals, s.state.SavingsGoals)
	}
	if changed&changedTheme != 0 {
		s.writeSlice(keyTheme, s.state.Theme)
	}
}

func (s *Store) writeSlice(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Logger.Errorf("failed to serialize slice %q: %v", key, err)
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		logging.Logger.Errorf("failed to persist slice %q: %v", key, err)
	}
}
