package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// ResponseJSON writes data as a bare JSON body with the given status code.
// The frontend consumes rows and lists directly, without an envelope.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseError maps an error to its status code and writes {"error": message}.
// Errors that are not AppError fall through to 500 with the raw text.
func ResponseError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError

	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.Kind.StatusCode()
	}

	ResponseJSON(w, code, errorBody{Error: err.Error()})
}
