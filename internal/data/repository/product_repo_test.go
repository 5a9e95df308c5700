package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"product-reviews/internal/data/entity"
)

func newProductTestFixture(t *testing.T) (ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewProductRepository(mock, zap.NewNop())
	return repo, mock
}

func joinColumns() []string {
	return []string{
		"product_id", "product_name", "product_image",
		"review_id", "rating", "review_text", "review_image", "created_at",
		"user_id", "user_name", "avg_rating", "rating_count",
	}
}

func TestProductRepository_Create_ReturnsGeneratedID(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	p := &entity.Product{
		Name:      "Trail Shoe",
		ImageURL:  "https://cdn.example.com/shoe.png",
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(p.Name, p.ImageURL, p.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAllWithReviews_ScansRows(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	created := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	reviewID := int64(10)
	rating := 5
	comment := "great"
	userID := int64(7)
	userName := "Bob"
	avg := 5.0
	count := int64(1)

	rows := pgxmock.NewRows(joinColumns()).
		// product 1 with one review
		AddRow(int64(1), "A", "/img/a.png",
			&reviewID, &rating, &comment, (*string)(nil), &created,
			&userID, &userName, &avg, &count).
		// product 2 with no reviews: every joined column NULL
		AddRow(int64(2), "B", "/img/b.png",
			(*int64)(nil), (*int)(nil), (*string)(nil), (*string)(nil), (*time.Time)(nil),
			(*int64)(nil), (*string)(nil), (*float64)(nil), (*int64)(nil))

	mock.ExpectQuery("FROM products p").WillReturnRows(rows)

	got, err := repo.FindAllWithReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, int64(1), first.ProductID)
	require.NotNil(t, first.ReviewID)
	assert.Equal(t, int64(10), *first.ReviewID)
	require.NotNil(t, first.AvgRating)
	assert.Equal(t, 5.0, *first.AvgRating)
	require.NotNil(t, first.ReviewCreatedAt)
	assert.Equal(t, created, *first.ReviewCreatedAt)

	second := got[1]
	assert.Equal(t, int64(2), second.ProductID)
	assert.Nil(t, second.ReviewID)
	assert.Nil(t, second.AvgRating)
	assert.Nil(t, second.RatingCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAllWithReviews_QueryError(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("FROM products p").
		WillReturnError(errors.New("relation does not exist"))

	got, err := repo.FindAllWithReviews(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
