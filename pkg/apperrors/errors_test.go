package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("product not found"), http.StatusNotFound},
		{"conflict maps to 400", Conflict("review already submitted"), http.StatusBadRequest},
		{"invalid input", InvalidInput("rating out of range"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("invalid credentials"), http.StatusUnauthorized},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", Conflict("dup")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "email already exists", Message(Conflict("email already exists")))

	// Internals never leak to clients
	assert.Equal(t, "internal server error", Message(errors.New("pq: connection refused")))
	assert.Equal(t, "internal server error", Message(Internal(errors.New("pq: connection refused"))))
}

func TestSentinelMatching(t *testing.T) {
	err := fmt.Errorf("service: %w", Conflict("dup"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
}
