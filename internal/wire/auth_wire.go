package wire

import (
	"cinema-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// One endpoint for every auth operation; the handler dispatches on
	// method + action (register, login, update-profile, users)
	r.HandleFunc("/api/auth", authHandler.Handle)
}
