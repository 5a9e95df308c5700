package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"product-reviews/internal/data/entity"
	"product-reviews/internal/dto/request"
	"product-reviews/pkg/apperrors"
)

func TestProductService_CreateProduct_Success(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zap.NewNop())

	resp, err := svc.CreateProduct(context.Background(), &request.CreateProductRequest{
		Name:     "Trail Shoe",
		ImageURL: "https://cdn.example.com/shoe.png",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ProductID)
}

func TestProductService_CreateProduct_MissingFields(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zap.NewNop())

	_, err := svc.CreateProduct(context.Background(), &request.CreateProductRequest{
		Name: "Trail Shoe",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestProductService_ListWithReviews_AggregatesRows(t *testing.T) {
	now := time.Now()
	repo := &stubProductRepo{rows: []entity.ProductReviewRow{
		reviewRow(1, "A", 10, 5, 7, "Bob", now, 5.0, 1),
		emptyRow(2, "B"),
	}}
	svc := NewProductService(repo, zap.NewNop())

	got, err := svc.ListWithReviews(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Len(t, got[0].Reviews, 1)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Empty(t, got[1].Reviews)
}

func TestProductService_ListWithReviews_StorageError(t *testing.T) {
	repo := &stubProductRepo{rowsErr: errors.New("connection reset")}
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.ListWithReviews(context.Background())

	require.Error(t, err)
	assert.Equal(t, 500, apperrors.HTTPStatus(err))
}
