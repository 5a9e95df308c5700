package response

import "time"

type CreateProductResponse struct {
	ProductID int64 `json:"productId"`
}

// ProductAggregate is a product with its rating summary and reviews,
// as returned by GET /api/products-with-reviews. It is a request-scoped
// view built from the join rows, never stored.
type ProductAggregate struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Image   string        `json:"image"`
	Rating  RatingSummary `json:"rating"`
	Reviews []ReviewView  `json:"reviews"`
}

// RatingSummary holds the precomputed per-product average and count.
// Zero values, never null, for products without reviews.
type RatingSummary struct {
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

// ReviewView is a review's public shape with its author embedded
type ReviewView struct {
	ID        int64      `json:"id"`
	Rating    int        `json:"rating"`
	Comment   *string    `json:"comment"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	User      ReviewUser `json:"user"`
}

type ReviewUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
