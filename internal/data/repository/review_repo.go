package repository

import (
	"context"
	"fmt"

	"product-reviews/internal/data/entity"
	"product-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// Create inserts a new review record and fills in the generated ID.
// The (user_id, product_id) unique constraint is the authoritative guard
// against duplicate submissions; its violation surfaces through
// database.IsUniqueViolation on the returned error.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, product_id, rating, review_text, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.ProductID,
		review.Rating,
		review.ReviewText,
		review.ImageURL,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			r.log.Warn("Duplicate review on create",
				zap.Int64("user_id", review.UserID),
				zap.Int64("product_id", review.ProductID),
			)
		} else {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.Int64("user_id", review.UserID),
				zap.Int64("product_id", review.ProductID),
			)
		}
		return fmt.Errorf("create review for product %d by user %d: %w",
			review.ProductID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, product_id, rating, review_text, image_url, created_at
		FROM reviews
		WHERE user_id = $1 AND product_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, productID).Scan(
		&review.ID,
		&review.UserID,
		&review.ProductID,
		&review.Rating,
		&review.ReviewText,
		&review.ImageURL,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and product",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("find review by user %d and product %d: %w",
			userID, productID, err)
	}

	return &review, nil
}
