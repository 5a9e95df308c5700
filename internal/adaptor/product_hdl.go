package adaptor

import (
	"encoding/json"
	"net/http"

	"product-reviews/internal/dto/request"
	"product-reviews/internal/usecase"
	"product-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// Create handles POST /api/add
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		h.log.Warn("Create product failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Product added successfully", resp)
}

// ListWithReviews handles GET /api/products-with-reviews
func (h *ProductHandler) ListWithReviews(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListWithReviews(r.Context())
	if err != nil {
		h.log.Error("List products with reviews failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", products)
}
