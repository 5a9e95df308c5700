package entity

import "time"

// ProductReviewRow is one flat row of the products-with-reviews join query:
// product columns, left-joined review and author columns (nil when the
// product has no reviews), and the per-product rating summary repeated on
// every row of that product.
type ProductReviewRow struct {
	ProductID       int64      `db:"product_id"`
	ProductName     string     `db:"product_name"`
	ProductImage    string     `db:"product_image"`
	ReviewID        *int64     `db:"review_id"`
	Rating          *int       `db:"rating"`
	ReviewText      *string    `db:"review_text"`
	ReviewImage     *string    `db:"review_image"`
	ReviewCreatedAt *time.Time `db:"created_at"`
	UserID          *int64     `db:"user_id"`
	UserName        *string    `db:"user_name"`
	AvgRating       *float64   `db:"avg_rating"`
	RatingCount     *int64     `db:"rating_count"`
}
