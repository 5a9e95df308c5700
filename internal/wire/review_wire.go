package wire

import (
	"product-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/review/{productId} - Submit a review (multipart, optional photo)
	r.Post("/api/review/{productId}", reviewHandler.Create)
}
