package repository

import (
	"product-reviews/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Review  ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Review:  NewReviewRepository(db, log),
	}
}
