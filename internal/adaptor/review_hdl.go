package adaptor

import (
	"errors"
	"net/http"

	"product-reviews/internal/dto/request"
	"product-reviews/internal/usecase"
	"product-reviews/pkg/storage"
	"product-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service   usecase.ReviewService
	store     storage.Storage
	maxUpload int64
	log       *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, store storage.Storage, maxUpload int64, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:   service,
		store:     store,
		maxUpload: maxUpload,
		log:       log.With(zap.String("handler", "review")),
	}
}

// Create handles POST /api/review/{productId} (multipart/form-data with
// fields userId, rating, reviewText and an optional photo file)
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := utils.ParseInt64(chi.URLParam(r, "productId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	// Parse multipart form, capped at the configured upload size plus a
	// little headroom for the text fields
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+(1<<20))
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	userID, _ := utils.ParseInt64(r.FormValue("userId"))
	rating := utils.ParseInt(r.FormValue("rating"), 0)

	req := request.CreateReviewRequest{
		UserID: userID,
		Rating: rating,
	}
	if text := r.FormValue("reviewText"); text != "" {
		req.ReviewText = &text
	}

	// Validate before touching disk so a bad submission stores nothing
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input", validationErrors)
		return
	}

	// Store the photo if one was attached
	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()

		url, saveErr := h.store.Save(r.Context(), header.Filename, file)
		if saveErr != nil {
			h.log.Error("Failed to store review photo", zap.Error(saveErr))
			utils.ResponseInternalError(w, "Failed to store photo")
			return
		}
		req.PhotoURL = &url

	case errors.Is(err, http.ErrMissingFile):
		// photo is optional

	default:
		utils.ResponseBadRequest(w, "Invalid photo upload", nil)
		return
	}

	if err := h.service.CreateReview(r.Context(), productID, &req); err != nil {
		h.log.Warn("Create review failed",
			zap.Error(err),
			zap.Int64("product_id", productID),
			zap.Int64("user_id", req.UserID),
		)
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review submitted", nil)
}
