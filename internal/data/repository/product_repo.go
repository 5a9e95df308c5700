package repository

import (
	"context"
	"fmt"

	"product-reviews/internal/data/entity"
	"product-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAllWithReviews runs the aggregate join query: every product,
	// left-joined to its reviews and their authors plus the per-product
	// rating summary, ordered by product id then review recency.
	FindAllWithReviews(ctx context.Context) ([]entity.ProductReviewRow, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// Create inserts a new product record and fills in the generated ID
func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, image_url, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := pr.db.QueryRow(ctx, query,
		product.Name,
		product.ImageURL,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, image_url, created_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	// QueryRow returns at most one row
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (pr *productRepository) FindAllWithReviews(ctx context.Context) ([]entity.ProductReviewRow, error) {
	// The avg_table subquery precomputes the rating summary once per
	// product; the join repeats it on every row for that product. Ordering
	// is part of the contract consumed by the aggregator downstream.
	query := `
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			p.image_url AS product_image,
			r.id AS review_id,
			r.rating,
			r.review_text,
			r.image_url AS review_image,
			r.created_at,
			u.id AS user_id,
			u.name AS user_name,
			avg_table.avg_rating,
			avg_table.rating_count
		FROM products p
		LEFT JOIN reviews r ON p.id = r.product_id
		LEFT JOIN users u ON r.user_id = u.id
		LEFT JOIN (
			SELECT
				product_id,
				ROUND(AVG(rating), 1) AS avg_rating,
				COUNT(*) AS rating_count
			FROM reviews
			GROUP BY product_id
		) AS avg_table ON p.id = avg_table.product_id
		ORDER BY p.id, r.created_at DESC
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to query products with reviews", zap.Error(err))
		return nil, fmt.Errorf("find products with reviews: %w", err)
	}
	defer rows.Close()

	var result []entity.ProductReviewRow
	for rows.Next() {
		var row entity.ProductReviewRow
		err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.ProductImage,
			&row.ReviewID,
			&row.Rating,
			&row.ReviewText,
			&row.ReviewImage,
			&row.ReviewCreatedAt,
			&row.UserID,
			&row.UserName,
			&row.AvgRating,
			&row.RatingCount,
		)
		if err != nil {
			pr.log.Error("Failed to scan product review row", zap.Error(err))
			return nil, fmt.Errorf("scan product review row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product review rows: %w", err)
	}

	return result, nil
}
