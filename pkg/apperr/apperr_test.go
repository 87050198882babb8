package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalid, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeUpstream, http.StatusBadGateway},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(New(tt.code, "msg")), string(tt.code))
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeNotFound, "item not found"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "item not found", ClientMessage(New(CodeNotFound, "item not found")))

	// Internal detail never leaks.
	wrapped := Wrap(errors.New("pq: connection refused"), CodeInternal, "failed to create item")
	assert.Equal(t, "internal server error", ClientMessage(wrapped))
	assert.Equal(t, "internal server error", ClientMessage(errors.New("pq: connection refused")))
}
