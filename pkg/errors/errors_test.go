package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarrySentinels(t *testing.T) {
	assert.ErrorIs(t, NotFound("product", "p-1"), ErrNotFound)
	assert.ErrorIs(t, AlreadyExists("product", "id", "p-1"), ErrAlreadyExists)
	assert.ErrorIs(t, InvalidInput("bad"), ErrInvalidInput)
	assert.ErrorIs(t, Unauthorized("no token"), ErrUnauthorized)
	assert.ErrorIs(t, Forbidden("nope"), ErrForbidden)
	assert.ErrorIs(t, PaymentFailed("declined"), ErrPaymentFailed)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("product", "p-1"), http.StatusNotFound},
		{AlreadyExists("product", "id", "p-1"), http.StatusConflict},
		{InvalidInput("bad"), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{PaymentFailed("declined"), http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("some db failure"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}

func TestAppError_Message(t *testing.T) {
	err := NotFound("product", "p-1")
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Message, "p-1")
}
