package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrValidation, http.StatusBadRequest},
		{"duplicate action", ErrDuplicateAction, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"conflict", ErrConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestHTTPStatusUnwrapsContext(t *testing.T) {
	wrapped := fmt.Errorf("liking profile u2: %w", ErrDuplicateAction)
	require.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))

	deep := fmt.Errorf("login: %w", fmt.Errorf("verifying signature: %w", ErrUnauthorized))
	require.Equal(t, http.StatusUnauthorized, HTTPStatus(deep))
}
