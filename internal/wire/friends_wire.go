package wire

import (
	"cinema-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFriends(r chi.Router, friendsHandler *adaptor.FriendsHandler) {
	// Dispatch on method + action (add-friend, friends, send-message, messages)
	r.HandleFunc("/api/friends", friendsHandler.Handle)
}
