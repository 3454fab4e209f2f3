package common

import "errors"

// Status identifies the terminal state of a run. Failure statuses are written
// verbatim into the output artifact; StatusCompleted never is.
type Status string

const (
	StatusCompleted      Status = "COMPLETED"
	StatusBadRequest     Status = "BAD REQUEST"
	StatusNotEnoughMoney Status = "NOT ENOUGH MONEY"
	StatusInternal       Status = "INTERNAL SERVER ERROR"
)

// AppError represents an error with the terminal status it maps to.
type AppError struct {
	Status  Status
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(status Status, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// BadRequest constructs a BAD REQUEST error.
func BadRequest(message string, err error) *AppError {
	return NewAppError(StatusBadRequest, message, err)
}

// Internal constructs an INTERNAL SERVER ERROR error.
func Internal(message string, err error) *AppError {
	return NewAppError(StatusInternal, message, err)
}

// NotEnoughMoney constructs a NOT ENOUGH MONEY error.
func NotEnoughMoney(message string) *AppError {
	return NewAppError(StatusNotEnoughMoney, message, nil)
}

// StatusOf extracts the terminal status carried by err. Errors without an
// AppError in their chain map to StatusInternal.
func StatusOf(err error) Status {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return StatusInternal
}
