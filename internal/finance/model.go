package finance

import (
	"fmt"
	"regexp"
	"time"

	appErrors "github.com/fatali-fataliyev/expense_tracker/apperrors"
	"github.com/shopspring/decimal"
)

const (
	MAX_DESCRIPTION_LENGTH = 1000
	MAX_TITLE_LENGTH       = 255
	MAX_NAME_LENGTH        = 255
	MAX_EMAIL_LENGTH       = 255
	MAX_PASSWORD_LENGTH    = 72
	MAX_AMOUNT_LIMIT       = 999999999999999999
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9](\.?[a-zA-Z0-9_%+-])*@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar,omitempty"`
	Currency       string `json:"currency,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	PasswordHashed string `json:"passwordHash,omitempty"`
}

type Expense struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          Date            `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (e Expense) When() Date             { return e.Date }
func (e Expense) Value() decimal.Decimal { return e.Amount }

type Income struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (i Income) When() Date             { return i.Date }
func (i Income) Value() decimal.Decimal { return i.Amount }

// SavingsGoal progress is always computed from the two amounts, never
// stored, and CurrentAmount may exceed TargetAmount.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      Date            `json:"deadline,omitempty"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// State is one immutable snapshot of the session. Collections keep
// append order; the store never re-sorts them.
type State struct {
	User            *User         `json:"user"`
	Expenses        []Expense     `json:"expenses"`
	Income          []Income      `json:"income"`
	SavingsGoals    []SavingsGoal `json:"savingsGoals"`
	Theme           Theme         `json:"theme"`
	IsAuthenticated bool          `json:"isAuthenticated"`
}

func initialState() State {
	return State{
		Expenses:     []Expense{},
		Income:       []Income{},
		SavingsGoals: []SavingsGoal{},
		Theme:        ThemeLight,
	}
}

// clone copies the snapshot deeply enough that callers cannot reach the
// store's own slices through it.
func (s State) clone() State {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	out.Expenses = append([]Expense{}, s.Expenses...)
	out.Income = append([]Income{}, s.Income...)
	out.SavingsGoals = append([]SavingsGoal{}, s.SavingsGoals...)
	return out
}

// REQUESTS:

type ExpenseRequest struct {
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          Date
	PaymentMethod string
}

func (r ExpenseRequest) Validate() error {
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	if r.Category == "" {
		return appErrors.Invalid("Category is required!")
	}
	if !isOneOf(r.Category, ExpenseCategoryValues()) {
		return appErrors.Invalid(fmt.Sprintf("Unknown category: %s", r.Category))
	}
	if r.Date.IsZero() {
		return appErrors.Invalid("Date is required!")
	}
	if r.PaymentMethod == "" {
		return appErrors.Invalid("Payment method is required!")
	}
	if !isOneOf(r.PaymentMethod, PaymentMethods) {
		return appErrors.Invalid(fmt.Sprintf("Unknown payment method: %s", r.PaymentMethod))
	}
	if len(r.Description) > MAX_DESCRIPTION_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Description so long, maximum length is %d", MAX_DESCRIPTION_LENGTH))
	}
	return nil
}

type IncomeRequest struct {
	Amount      decimal.Decimal
	Source      string
	Description string
	Date        Date
}

func (r IncomeRequest) Validate() error {
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	if r.Source == "" {
		return appErrors.Invalid("Source is required!")
	}
	if !isOneOf(r.Source, IncomeSources) {
		return appErrors.Invalid(fmt.Sprintf("Unknown income source: %s", r.Source))
	}
	if r.Date.IsZero() {
		return appErrors.Invalid("Date is required!")
	}
	if len(r.Description) > MAX_DESCRIPTION_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Description so long, maximum length is %d", MAX_DESCRIPTION_LENGTH))
	}
	return nil
}

type SavingsGoalRequest struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      Date
	Category      string
}

func (r SavingsGoalRequest) Validate() error {
	if r.Title == "" {
		return appErrors.Invalid("Goal title is required!")
	}
	if len(r.Title) > MAX_TITLE_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Goal title so long, maximum length is %d", MAX_TITLE_LENGTH))
	}
	if err := validateAmount(r.TargetAmount); err != nil {
		return err
	}
	if r.CurrentAmount.IsNegative() {
		return appErrors.Invalid("Current amount cannot be negative!")
	}
	if r.Category == "" {
		return appErrors.Invalid("Category is required!")
	}
	if !isOneOf(r.Category, GoalCategories) {
		return appErrors.Invalid(fmt.Sprintf("Unknown goal category: %s", r.Category))
	}
	return nil
}

func isOneOf(value string, options []string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return appErrors.Invalid("Amount must be greater than zero!")
	}
	if amount.GreaterThan(decimal.NewFromInt(MAX_AMOUNT_LIMIT)) {
		return appErrors.Invalid(fmt.Sprintf("Amount is too large, the limit is: %d", int64(MAX_AMOUNT_LIMIT)))
	}
	return nil
}
