package wire

import (
	"net/http"

	"product-reviews/internal/adaptor"
	"product-reviews/internal/data/repository"
	"product-reviews/internal/usecase"
	"product-reviews/pkg/middleware"
	"product-reviews/pkg/storage"
	"product-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, store storage.Storage, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, store, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireProduct(r, handler.Product)
	wireReview(r, handler.Review)

	// Stored upload files are served back under /uploads
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
