package adaptor

import (
	"net/http"

	"product-reviews/internal/usecase"
	"product-reviews/pkg/apperrors"
	"product-reviews/pkg/storage"
	"product-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Review  *ReviewHandler
}

func NewHandler(service *usecase.Service, store storage.Storage, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Review:  NewReviewHandler(service.Review, store, config.Upload.MaxSizeBytes, log),
	}
}

// writeServiceError maps a service error onto the response envelope using
// its AppError status; anything unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	utils.ResponseJSON(w, apperrors.HTTPStatus(err), false, apperrors.Message(err), nil, nil)
}
