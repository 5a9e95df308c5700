package usecase

import (
	"context"
	"time"

	"product-reviews/internal/data/entity"
	"product-reviews/internal/data/repository"
	"product-reviews/internal/dto/request"
	"product-reviews/internal/dto/response"
	"product-reviews/pkg/apperrors"
	"product-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.CreateProductResponse, error)
	ListWithReviews(ctx context.Context) ([]response.ProductAggregate, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.CreateProductResponse, error) {
	// Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, apperrors.InvalidInput(utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, apperrors.Internal(err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	return &response.CreateProductResponse{ProductID: product.ID}, nil
}

func (s *productService) ListWithReviews(ctx context.Context) ([]response.ProductAggregate, error) {
	rows, err := s.productRepo.FindAllWithReviews(ctx)
	if err != nil {
		s.log.Error("Failed to list products with reviews", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	products := AggregateProductRows(rows)

	s.log.Info("Products with reviews retrieved",
		zap.Int("products", len(products)),
		zap.Int("rows", len(rows)),
	)

	return products, nil
}
