package wire

import (
	"net/http"

	"cinema-social/internal/adaptor"
	"cinema-social/internal/data/repository"
	"cinema-social/internal/usecase"
	"cinema-social/pkg/middleware"
	"cinema-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware. CORS answers OPTIONS before routing, so
	// preflight succeeds on every endpoint.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireFriends(r, handler.Friends)
	wireOrders(r, handler.Orders)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
