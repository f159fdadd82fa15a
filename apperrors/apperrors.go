package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("NOT FOUND")
	ErrInvalidInput = errors.New("INVALID INPUT")
	ErrConflict     = errors.New("CONFLICT")
	ErrStorage      = errors.New("STORAGE")
	ErrInternal     = errors.New("INTERNAL")
)

// ErrorResponse is a user-facing error: the Code is one of the sentinel
// error messages above, the Message is safe to show in a notification.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("code: %s, message: %s", e.Code, e.Message)
}

func Invalid(message string) ErrorResponse {
	return ErrorResponse{
		Code:    ErrInvalidInput.Error(),
		Message: message,
	}
}
