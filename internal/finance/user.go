package finance

import (
	"fmt"

	appErrors "github.com/fatali-fataliyev/expense_tracker/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// Session identity is local-only: there is no backend to authenticate
// against. Registration keeps a bcrypt hash of the chosen passcode with
// the stored profile so a later sign-in on the same device can verify it.

type RegisterRequest struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return appErrors.Invalid("Name cannot be empty!")
	}
	if len(r.Name) > MAX_NAME_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Name so long, maximum length is %d", MAX_NAME_LENGTH))
	}
	if r.Email == "" {
		return appErrors.Invalid("Email cannot be empty!")
	}
	if !emailRegex.MatchString(r.Email) {
		return appErrors.Invalid("Invalid email format, example valid email: john.doe@gmail.com")
	}
	if len(r.Email) > MAX_EMAIL_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Email so long, maximum length is %d", MAX_EMAIL_LENGTH))
	}
	if r.Password == "" {
		return appErrors.Invalid("Password cannot be empty!")
	}
	if len(r.Password) > MAX_PASSWORD_LENGTH {
		return appErrors.Invalid(fmt.Sprintf("Password so long, maximum length is %d", MAX_PASSWORD_LENGTH))
	}
	if r.Password != r.PasswordConfirm {
		return appErrors.Invalid("Passwords do not match!")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash plain password to hashed password: %w", err)
	}
	return string(hashedPassword), nil
}

func ComparePasswords(hashedPwd string, plainPwd string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPwd), []byte(plainPwd))
	return err == nil
}

// Register validates the form, hashes the passcode and signs the new
// profile in.
func (s *Store) Register(req RegisterRequest) (User, error) {
	if err := req.Validate(); err != nil {
		return User{}, err
	}
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return User{}, err
	}
	user := User{
		ID:             s.newID(),
		Name:           req.Name,
		Email:          req.Email,
		Currency:       "USD",
		Timezone:       "UTC",
		PasswordHashed: hashed,
	}
	s.Dispatch(SetUserAction{User: user})
	return user, nil
}

type ProfileRequest struct {
	Name     string
	Email    string
	Avatar   string
	Currency string
	Timezone string
}

func (r ProfileRequest) Validate() error {
	if r.Name == "" {
		return appErrors.Invalid("Name cannot be empty!")
	}
	if r.Email == "" {
		return appErrors.Invalid("Email cannot be empty!")
	}
	if !emailRegex.MatchString(r.Email) {
		return appErrors.Invalid("Invalid email format, example valid email: john.doe@gmail.com")
	}
	return nil
}

// UpdateProfile replaces the user record wholesale, keeping only the
// identity and credential of the signed-in user.
func (s *Store) UpdateProfile(req ProfileRequest) (User, error) {
	if err := req.Validate(); err != nil {
		return User{}, err
	}
	current := s.GetState().User
	if current == nil {
		return User{}, appErrors.ErrorResponse{
			Code:    appErrors.ErrNotFound.Error(),
			Message: "No user is signed in.",
		}
	}
	user := User{
		ID:             current.ID,
		Name:           req.Name,
		Email:          req.Email,
		Avatar:         req.Avatar,
		Currency:       req.Currency,
		Timezone:       req.Timezone,
		PasswordHashed: current.PasswordHashed,
	}
	s.Dispatch(SetUserAction{User: user})
	return user, nil
}
