package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)

// AppError is the typed failure every core operation returns in-band. Handlers
// map the wrapped sentinel to an HTTP status; Message is safe to show the user.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func DuplicateEmail(email string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("user with email %s already exists", email),
	}
}

func NameTaken(name string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("team name %s already exists", name),
	}
}

func AlreadyMember(email string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: fmt.Sprintf("%s is already a member of this team", email),
	}
}

func DuplicatePending(email string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("a pending invitation for %s already exists", email),
	}
}

func NotAMember() *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: "not a team member",
	}
}

func NotOwner() *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: "only the team owner may do this",
	}
}

func NotRecipient() *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: "you are not the recipient of this invitation",
	}
}

func AlreadyResolved() *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "invitation has already been responded to",
	}
}

func CannotRemoveOwner() *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "cannot remove the team owner",
	}
}

func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "invalid email or password",
	}
}
