package wire

import (
	"product-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/register - Create a new account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Verify credentials, return the user id
	r.Post("/api/login", authHandler.Login)
}
