package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
	}{
		{"not found", NotFound("team"), ErrNotFound},
		{"duplicate email", DuplicateEmail("a@x.com"), ErrConflict},
		{"name taken", NameTaken("Rockets"), ErrConflict},
		{"duplicate pending", DuplicatePending("a@x.com"), ErrConflict},
		{"already member", AlreadyMember("a@x.com"), ErrValidation},
		{"already resolved", AlreadyResolved(), ErrValidation},
		{"cannot remove owner", CannotRemoveOwner(), ErrValidation},
		{"invalid credentials", InvalidCredentials(), ErrValidation},
		{"not a member", NotAMember(), ErrForbidden},
		{"not owner", NotOwner(), ErrForbidden},
		{"not recipient", NotRecipient(), ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestUnwrapThroughWrapping(t *testing.T) {
	err := error(NotFound("invitation"))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "invitation not found", appErr.Message)
}
