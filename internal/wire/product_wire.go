package wire

import (
	"product-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	// POST /api/add - Create a new product
	r.Post("/api/add", productHandler.Create)

	// GET /api/products-with-reviews - All products with nested reviews
	// and rating summaries
	r.Get("/api/products-with-reviews", productHandler.ListWithReviews)
}
