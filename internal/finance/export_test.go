package finance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	store.DemoLogin()
	store.ToggleTheme()

	data, err := store.Export()
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Expenses, 5)
	assert.Len(t, doc.Income, 2)
	assert.Len(t, doc.SavingsGoals, 2)
	require.NotNil(t, doc.User)
	assert.Equal(t, "demo", doc.User.ID)
	assert.False(t, doc.ExportDate.IsZero())

	// Restoring into a fresh session replaces the collections but not
	// the session identity or the theme.
	fresh, _ := newTestStore()
	_, err = fresh.Register(RegisterRequest{
		Name:            "Jane",
		Email:           "jane@example.com",
		Password:        "pw",
		PasswordConfirm: "pw",
	})
	require.NoError(t, err)
	_, err = fresh.AddExpense(ExpenseRequest{
		Amount:        decimal.NewFromInt(7),
		Category:      "Bills",
		Date:          NewDate(2024, time.February, 1),
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)

	require.NoError(t, fresh.Import(data))

	state := fresh.GetState()
	assert.Len(t, state.Expenses, 5)
	assert.Len(t, state.Income, 2)
	assert.Len(t, state.SavingsGoals, 2)
	assert.Equal(t, "jane@example.com", state.User.Email)
	assert.Equal(t, ThemeLight, state.Theme)
}

func TestParseImportRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{broken`},
		{name: "expense without id", data: `{"expenses":[{"amount":"5","date":"2024-01-01"}]}`},
		{name: "non-positive amount", data: `{"expenses":[{"id":"a","amount":"0","date":"2024-01-01"}]}`},
		{name: "missing date", data: `{"expenses":[{"id":"a","amount":"5"}]}`},
		{name: "duplicate ids", data: `{"expenses":[{"id":"a","amount":"5","date":"2024-01-01"},{"id":"a","amount":"6","date":"2024-01-02"}]}`},
		{name: "goal without title", data: `{"savingsGoals":[{"id":"g","targetAmount":"100","currentAmount":"0"}]}`},
		{name: "negative goal amount", data: `{"savingsGoals":[{"id":"g","title":"x","targetAmount":"100","currentAmount":"-1"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestImportLeavesStateUntouchedOnValidationFailure(t *testing.T) {
	store, _ := newTestStore()
	store.DemoLogin()

	err := store.Import([]byte(`{"expenses":[{"id":"","amount":"5","date":"2024-01-01"}]}`))
	require.Error(t, err)

	assert.Len(t, store.GetState().Expenses, 5)
}
