package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrno_Is(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, ErrInvalidCredentials)
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrInvalidToken)

	// Variants with a cause still match their template.
	withCause := ErrStoreUnavailable.WithCause(errors.New("connection refused"))
	assert.ErrorIs(t, withCause, ErrStoreUnavailable)

	// A changed message is a different errno.
	withMessage := ErrBadRequest.WithMessage("Missing Details")
	assert.NotErrorIs(t, withMessage, ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, withMessage.HTTP)
}

func TestErrno_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrStoreUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrno_WithCauseDoesNotMutateTemplate(t *testing.T) {
	_ = ErrInternal.WithCause(errors.New("boom"))
	assert.Equal(t, "Internal server error", ErrInternal.Error())
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantMsg  string
	}{
		{"predefined errno", ErrNoCredits, http.StatusForbidden, "No credit balance"},
		{"wrapped errno", fmt.Errorf("handler: %w", ErrUserExists), http.StatusConflict, "User already exists with this email"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errno := FromError(tt.err)
			assert.Equal(t, tt.wantHTTP, errno.HTTP)
			assert.Equal(t, tt.wantMsg, errno.Message)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	// Unknown email and wrong password must surface the same status and
	// message.
	unknown := FromError(ErrInvalidCredentials)
	wrongPassword := FromError(ErrInvalidCredentials.WithCause(errors.New("bcrypt mismatch")))

	assert.Equal(t, unknown.HTTP, wrongPassword.HTTP)
	assert.Equal(t, unknown.Message, wrongPassword.Message)
}
