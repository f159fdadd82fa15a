package finance

import (
	"encoding/json"
	"fmt"
	"time"

	appErrors "github.com/fatali-fataliyev/expense_tracker/apperrors"
)

// ExportDocument is the JSON backup written by the export action and
// accepted back by import.
type ExportDocument struct {
	Expenses     []Expense     `json:"expenses"`
	Income       []Income      `json:"income"`
	SavingsGoals []SavingsGoal `json:"savingsGoals"`
	ExportDate   time.Time     `json:"exportDate"`
	User         *User         `json:"user"`
}

func (doc ExportDocument) Validate() error {
	seen := map[string]bool{}
	for i, expense := range doc.Expenses {
		if expense.ID == "" {
			return appErrors.Invalid(fmt.Sprintf("Expense %d has no id.", i))
		}
		if seen[expense.ID] {
			return appErrors.Invalid(fmt.Sprintf("Duplicate expense id %q.", expense.ID))
		}
		seen[expense.ID] = true
		if !expense.Amount.IsPositive() {
			return appErrors.Invalid(fmt.Sprintf("Expense %q has a non-positive amount.", expense.ID))
		}
		if expense.Date.IsZero() {
			return appErrors.Invalid(fmt.Sprintf("Expense %q has no date.", expense.ID))
		}
	}
	seen = map[string]bool{}
	for i, income := range doc.Income {
		if income.ID == "" {
			return appErrors.Invalid(fmt.Sprintf("Income entry %d has no id.", i))
		}
		if seen[income.ID] {
			return appErrors.Invalid(fmt.Sprintf("Duplicate income id %q.", income.ID))
		}
		seen[income.ID] = true
		if !income.Amount.IsPositive() {
			return appErrors.Invalid(fmt.Sprintf("Income %q has a non-positive amount.", income.ID))
		}
		if income.Date.IsZero() {
			return appErrors.Invalid(fmt.Sprintf("Income %q has no date.", income.ID))
		}
	}
	seen = map[string]bool{}
	for i, goal := range doc.SavingsGoals {
		if goal.ID == "" {
			return appErrors.Invalid(fmt.Sprintf("Savings goal %d has no id.", i))
		}
		if seen[goal.ID] {
			return appErrors.Invalid(fmt.Sprintf("Duplicate savings goal id %q.", goal.ID))
		}
		seen[goal.ID] = true
		if goal.Title == "" {
			return appErrors.Invalid(fmt.Sprintf("Savings goal %q has no title.", goal.ID))
		}
		if !goal.TargetAmount.IsPositive() {
			return appErrors.Invalid(fmt.Sprintf("Savings goal %q has a non-positive target.", goal.ID))
		}
		if goal.CurrentAmount.IsNegative() {
			return appErrors.Invalid(fmt.Sprintf("Savings goal %q has a negative current amount.", goal.ID))
		}
	}
	return nil
}

// Export serializes the financial collections and the user profile as
// an indented JSON document suitable for a downloadable backup file.
func (s *Store) Export() ([]byte, error) {
	state := s.GetState()
	doc := ExportDocument{
		Expenses:     state.Expenses,
		Income:       state.Income,
		SavingsGoals: state.SavingsGoals,
		ExportDate:   s.now().UTC(),
		User:         state.User,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export document: %w", err)
	}
	return data, nil
}

// ParseImport decodes and shape-checks a backup document without
// applying it.
func ParseImport(data []byte) (ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ExportDocument{}, appErrors.Invalid(fmt.Sprintf("Invalid backup file: %v", err))
	}
	if err := doc.Validate(); err != nil {
		return ExportDocument{}, err
	}
	return doc, nil
}

// Import restores a backup: the three financial collections are
// replaced wholesale with the document's contents. The signed-in user
// and the theme are left untouched.
func (s *Store) Import(data []byte) error {
	doc, err := ParseImport(data)
	if err != nil {
		return err
	}
	s.Dispatch(ImportDataAction{
		Expenses:     doc.Expenses,
		Income:       doc.Income,
		SavingsGoals: doc.SavingsGoals,
	})
	return nil
}
