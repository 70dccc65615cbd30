package httpserver

import (
	"net/http"

	"shoppinglist/internal/storage/seed"
)

// handleDummySeed wipes the store and loads the dummy fixture. Only
// answers in development and test environments.
func (s *Server) handleDummySeed(w http.ResponseWriter, r *http.Request) {
	if s.env != "development" && s.env != "test" {
		writeMessage(w, http.StatusForbidden, "forbidden")
		return
	}
	if s.store == nil {
		writeMessage(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := s.store.Reset(r.Context(), seed.Dummy()); err != nil {
		s.logger.Error("dummy seed failed",
			"event", "dummy_seed_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err,
		)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Dummy data successfully loaded")
}
