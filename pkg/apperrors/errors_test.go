package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.Contains(t, appErr.Error(), "connection refused")
	assert.ErrorIs(t, appErr, cause)
}

func TestAppError_MarshalJSON_HidesInternals(t *testing.T) {
	t.Parallel()

	appErr := InternalError(errors.New("pq: password authentication failed"))

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	// Внутренняя причина и HTTP-код не утекают в JSON
	assert.NotContains(t, string(data), "password authentication")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), string(CodeInternalError))
}

func TestAppError_As(t *testing.T) {
	t.Parallel()

	wrapped := ErrConflict(errors.New("duplicate key"), "applications", "Already applied")

	var appErr *AppError
	require.True(t, As(wrapped, &appErr))
	assert.Equal(t, CodeConflict, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestDomainErrors_HTTPCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrEmailNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidResetToken.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrJobUnavailable.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrDuplicateApplication.HTTPCode)
}

func TestErrInvalidResetToken_NoTokenOracle(t *testing.T) {
	t.Parallel()

	// Сообщение одно и то же для несуществующего и просроченного токена
	assert.Equal(t, "Invalid or expired token", ErrInvalidResetToken.Message)
}

func TestValidationError_Details(t *testing.T) {
	t.Parallel()

	details := map[string]string{"email": "Must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
}
