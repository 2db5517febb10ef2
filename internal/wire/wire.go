package wire

import (
	"net/http"

	"telehealth-portal/internal/adaptor"
	"telehealth-portal/internal/data/repository"
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/middleware"
	"telehealth-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, service, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics("telehealth")

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))
	r.Use(metrics.Middleware)
	r.Use(middleware.Session(service.Session, config.Session, logger))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, logger)
	wireDashboard(r, handler.Dashboard)
	wireChat(r, handler.Chat, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
