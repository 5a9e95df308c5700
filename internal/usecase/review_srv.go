package usecase

import (
	"context"
	"time"

	"product-reviews/internal/data/entity"
	"product-reviews/internal/data/repository"
	"product-reviews/internal/dto/request"
	"product-reviews/pkg/apperrors"
	"product-reviews/pkg/database"
	"product-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, productID int64, req *request.CreateReviewRequest) error
}

type reviewService struct {
	repo *repository.Repository // product, review, and user repos
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, productID int64, req *request.CreateReviewRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return apperrors.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Check product exists
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to check product", zap.Error(err), zap.Int64("product_id", productID))
		return apperrors.Internal(err)
	}
	if product == nil {
		return apperrors.NotFound("product not found")
	}

	// 3. Friendly duplicate check. The unique constraint below is the
	// real guard; this just avoids burning a failed insert on the common
	// path.
	existing, err := s.repo.Review.FindByUserAndProduct(ctx, req.UserID, productID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return apperrors.Internal(err)
	}
	if existing != nil {
		return apperrors.Conflict("review already submitted")
	}

	// 4. Create review entity
	review := &entity.Review{
		UserID:     req.UserID,
		ProductID:  productID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ImageURL:   req.PhotoURL,
		CreatedAt:  time.Now(),
	}

	// 5. Save review. A concurrent duplicate that slipped past the
	// pre-check trips the (user_id, product_id) constraint and gets the
	// same conflict answer.
	if err := s.repo.Review.Create(ctx, review); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("review already submitted")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Int64("product_id", productID),
		)
		return apperrors.Internal(err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", req.UserID),
		zap.Int64("product_id", productID),
		zap.Int("rating", req.Rating),
	)

	return nil
}
