package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-reviews/internal/data/entity"
	"product-reviews/internal/dto/response"
)

func ptr[T any](v T) *T {
	return &v
}

// reviewRow builds a join row carrying a review for the given product
func reviewRow(productID int64, productName string, reviewID int64, rating int, userID int64, userName string, createdAt time.Time, avg float64, count int64) entity.ProductReviewRow {
	return entity.ProductReviewRow{
		ProductID:       productID,
		ProductName:     productName,
		ProductImage:    "/img/" + productName + ".png",
		ReviewID:        ptr(reviewID),
		Rating:          ptr(rating),
		ReviewText:      ptr("text-" + userName),
		ReviewCreatedAt: ptr(createdAt),
		UserID:          ptr(userID),
		UserName:        ptr(userName),
		AvgRating:       ptr(avg),
		RatingCount:     ptr(count),
	}
}

// emptyRow builds the single row a left join yields for a product with no reviews
func emptyRow(productID int64, productName string) entity.ProductReviewRow {
	return entity.ProductReviewRow{
		ProductID:    productID,
		ProductName:  productName,
		ProductImage: "/img/" + productName + ".png",
	}
}

func TestAggregateProductRows_Empty(t *testing.T) {
	got := AggregateProductRows(nil)
	assert.Empty(t, got)

	got = AggregateProductRows([]entity.ProductReviewRow{})
	assert.Empty(t, got)
}

func TestAggregateProductRows_ProductWithoutReviews(t *testing.T) {
	got := AggregateProductRows([]entity.ProductReviewRow{emptyRow(2, "B")})

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, response.RatingSummary{Avg: 0, Count: 0}, got[0].Rating)
	require.NotNil(t, got[0].Reviews, "review list must be empty, not null")
	assert.Len(t, got[0].Reviews, 0)
}

func TestAggregateProductRows_Scenario(t *testing.T) {
	// One reviewed product followed by one without reviews
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []entity.ProductReviewRow{
		reviewRow(1, "A", 10, 5, 7, "Bob", created, 5.0, 1),
		emptyRow(2, "B"),
	}

	got := AggregateProductRows(rows)
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, response.RatingSummary{Avg: 5.0, Count: 1}, a.Rating)
	require.Len(t, a.Reviews, 1)
	assert.Equal(t, int64(10), a.Reviews[0].ID)
	assert.Equal(t, 5, a.Reviews[0].Rating)
	assert.Equal(t, created, a.Reviews[0].CreatedAt)
	assert.Equal(t, response.ReviewUser{ID: 7, Name: "Bob"}, a.Reviews[0].User)

	b := got[1]
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, response.RatingSummary{Avg: 0, Count: 0}, b.Rating)
	assert.Empty(t, b.Reviews)
}

func TestAggregateProductRows_GroupsRowsPerProduct(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	rows := []entity.ProductReviewRow{
		reviewRow(1, "A", 30, 4, 1, "Ann", base.Add(2*time.Hour), 3.7, 3),
		reviewRow(1, "A", 20, 2, 2, "Ben", base.Add(time.Hour), 3.7, 3),
		reviewRow(1, "A", 10, 5, 3, "Cat", base, 3.7, 3),
		reviewRow(2, "B", 40, 1, 1, "Ann", base, 1.0, 1),
	}

	got := AggregateProductRows(rows)
	require.Len(t, got, 2)

	// Review list length equals the number of review-bearing rows per product
	require.Len(t, got[0].Reviews, 3)
	require.Len(t, got[1].Reviews, 1)

	// Summary comes from the repeated precomputed columns, once per product
	assert.Equal(t, response.RatingSummary{Avg: 3.7, Count: 3}, got[0].Rating)
	assert.Equal(t, response.RatingSummary{Avg: 1.0, Count: 1}, got[1].Rating)
}

func TestAggregateProductRows_PreservesReviewOrder(t *testing.T) {
	// Input arrives newest-first per the query ordering; the aggregator
	// must keep that order, not resort.
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	rows := []entity.ProductReviewRow{
		reviewRow(1, "A", 30, 4, 1, "Ann", base.Add(2*time.Hour), 3.7, 3),
		reviewRow(1, "A", 20, 2, 2, "Ben", base.Add(time.Hour), 3.7, 3),
		reviewRow(1, "A", 10, 5, 3, "Cat", base, 3.7, 3),
	}

	got := AggregateProductRows(rows)
	require.Len(t, got, 1)
	require.Len(t, got[0].Reviews, 3)

	assert.Equal(t, int64(30), got[0].Reviews[0].ID)
	assert.Equal(t, int64(20), got[0].Reviews[1].ID)
	assert.Equal(t, int64(10), got[0].Reviews[2].ID)
}

func TestAggregateProductRows_FirstAppearanceOrder(t *testing.T) {
	// Product ids deliberately not ascending; output must follow input
	// appearance order, not id order or map iteration order.
	now := time.Now()
	rows := []entity.ProductReviewRow{
		reviewRow(9, "I", 1, 3, 1, "Ann", now, 3.0, 1),
		emptyRow(2, "B"),
		reviewRow(5, "E", 2, 4, 2, "Ben", now, 4.0, 1),
		emptyRow(7, "G"),
	}

	got := AggregateProductRows(rows)
	require.Len(t, got, 4)

	ids := []int64{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []int64{9, 2, 5, 7}, ids)
}

func TestAggregateProductRows_DistinctProductsPreserved(t *testing.T) {
	// Every distinct product id appears exactly once in the output
	now := time.Now()
	rows := []entity.ProductReviewRow{
		reviewRow(1, "A", 1, 5, 1, "Ann", now, 4.5, 2),
		reviewRow(1, "A", 2, 4, 2, "Ben", now.Add(-time.Hour), 4.5, 2),
		emptyRow(2, "B"),
		reviewRow(3, "C", 3, 3, 1, "Ann", now, 3.0, 1),
	}

	got := AggregateProductRows(rows)

	seen := make(map[int64]int)
	for _, p := range got {
		seen[p.ID]++
	}
	assert.Equal(t, map[int64]int{1: 1, 2: 1, 3: 1}, seen)
}

func TestAggregateProductRows_NilOptionalReviewFields(t *testing.T) {
	// Comment and photo are optional on a review
	now := time.Now()
	row := reviewRow(1, "A", 10, 5, 7, "Bob", now, 5.0, 1)
	row.ReviewText = nil
	row.ReviewImage = nil

	got := AggregateProductRows([]entity.ProductReviewRow{row})
	require.Len(t, got, 1)
	require.Len(t, got[0].Reviews, 1)

	assert.Nil(t, got[0].Reviews[0].Comment)
	assert.Nil(t, got[0].Reviews[0].ImageURL)
}
