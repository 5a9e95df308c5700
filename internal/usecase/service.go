package usecase

import (
	"product-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Review  ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, log),
		Product: NewProductService(repo.Product, log),
		Review:  NewReviewService(repo, log),
	}
}
