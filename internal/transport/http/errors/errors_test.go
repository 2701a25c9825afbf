package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/library-management-api/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    any
	}{
		{"nil is программная ошибка", nil, http.StatusInternalServerError, "Internal server error"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest, "User already exists"},
		{"missing token", service.ErrMissingToken, http.StatusUnauthorized, "Refresh token is required"},
		{"token expired", service.ErrTokenExpired, http.StatusUnauthorized, "Refresh token has expired"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "Invalid refresh token"},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"entity not found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantMsg, resp.Message)
		})
	}
}

func TestToHTTP_WrappedError(t *testing.T) {
	// Сервис оборачивает ошибки через fmt.Errorf("%s: %w", op, err).
	wrapped := fmt.Errorf("service.auth.Login: %w", service.ErrInvalidCredentials)

	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Invalid credentials", resp.Message)
}

func TestToHTTP_ValidationMessages(t *testing.T) {
	verr := &service.ValidationError{Messages: []string{"Email must be a valid email address", "Password is required"}}

	status, resp := ToHTTP(fmt.Errorf("service.auth.Register: %w", verr))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, verr.Messages, resp.Message)
}
