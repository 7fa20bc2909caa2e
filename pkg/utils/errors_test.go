package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStatusCode(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuthFailure, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.StatusCode())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	appErr := ConflictError("already exists", cause)

	assert.Equal(t, "already exists", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestResponseErrorMapsKind(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, AuthFailureError("bad credentials"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"bad credentials"}`, rec.Body.String())
}

func TestResponseErrorWrappedAppError(t *testing.T) {
	// Kind survives fmt.Errorf wrapping on the way to the boundary
	wrapped := fmt.Errorf("handling request: %w", NotFoundError("no such thing"))

	rec := httptest.NewRecorder()
	ResponseError(rec, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseErrorPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
