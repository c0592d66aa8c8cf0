package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("code and message", func(t *testing.T) {
		err := New("NOT_FOUND", "vehicle not found", "", http.StatusNotFound)
		require.Equal(t, "NOT_FOUND: vehicle not found", err.Error())
	})

	t.Run("details are appended", func(t *testing.T) {
		err := New("BAD_REQUEST", "invalid id", "abc", http.StatusBadRequest)
		require.Equal(t, "BAD_REQUEST: invalid id (abc)", err.Error())
	})

	t.Run("validation keeps every message", func(t *testing.T) {
		err := Validation([]string{"email is required", "password is required"})
		require.Equal(t, http.StatusBadRequest, err.HTTPStatus)
		require.Equal(t, CodeValidationFailed, err.Code)
		require.Equal(t, "VALIDATION_FAILED: request validation failed [email is required; password is required]", err.Error())

		var target *APIError
		require.True(t, errors.As(error(err), &target))
		require.Len(t, target.Messages, 2)
	})

	t.Run("nil receiver", func(t *testing.T) {
		var err *APIError
		require.Equal(t, "", err.Error())
	})
}
