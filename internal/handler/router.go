package handler

import (
	"log/slog"
	"net/http"

	"github.com/okr-tracker-api/internal/middleware"
	"github.com/okr-tracker-api/internal/repository"
)

// Router настраивает маршруты API
type Router struct {
	logger      *slog.Logger
	userRepo    repository.UserRepository
	orgHandler  *OrganizationHandler
	deptHandler *DepartmentHandler
	teamHandler *TeamHandler
	userHandler *UserHandler
	okrHandler  *OKRHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	orgHandler *OrganizationHandler,
	deptHandler *DepartmentHandler,
	teamHandler *TeamHandler,
	userHandler *UserHandler,
	okrHandler *OKRHandler,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *Router {
	return &Router{
		logger:      logger,
		userRepo:    userRepo,
		orgHandler:  orgHandler,
		deptHandler: deptHandler,
		teamHandler: teamHandler,
		userHandler: userHandler,
		okrHandler:  okrHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /organizations", r.orgHandler.Create)
	api.HandleFunc("GET /organizations", r.orgHandler.List)
	api.HandleFunc("GET /organizations/{id}", r.orgHandler.GetByID)
	api.HandleFunc("DELETE /organizations/{id}", r.orgHandler.Delete)

	api.HandleFunc("POST /departments", r.deptHandler.Create)
	api.HandleFunc("GET /departments", r.deptHandler.List)
	api.HandleFunc("GET /departments/{id}", r.deptHandler.GetByID)
	api.HandleFunc("PATCH /departments/{id}", r.deptHandler.Update)
	api.HandleFunc("DELETE /departments/{id}", r.deptHandler.Delete)

	api.HandleFunc("POST /teams", r.teamHandler.Create)
	api.HandleFunc("GET /teams", r.teamHandler.List)
	api.HandleFunc("GET /teams/{id}", r.teamHandler.GetByID)
	api.HandleFunc("PATCH /teams/{id}", r.teamHandler.Update)
	api.HandleFunc("DELETE /teams/{id}", r.teamHandler.Delete)

	api.HandleFunc("POST /users", r.userHandler.Create)
	api.HandleFunc("GET /users", r.userHandler.List)
	api.HandleFunc("GET /users/{id}", r.userHandler.GetByID)
	api.HandleFunc("PATCH /users/{id}", r.userHandler.Update)
	api.HandleFunc("DELETE /users/{id}", r.userHandler.Delete)

	api.HandleFunc("POST /okrs", r.okrHandler.Create)
	api.HandleFunc("GET /okrs", r.okrHandler.List)
	api.HandleFunc("GET /okrs/{id}", r.okrHandler.GetByID)
	api.HandleFunc("PUT /okrs/{id}", r.okrHandler.Update)
	api.HandleFunc("DELETE /okrs/{id}", r.okrHandler.Delete)
	api.HandleFunc("PATCH /okrs/{id}/progress", r.okrHandler.UpdateProgress)
	api.HandleFunc("POST /okrs/{id}/comments", r.okrHandler.AddComment)

	mux := http.NewServeMux()
	mux.Handle("/", middleware.Actor(r.userRepo)(api))

	// Health check без аутентификации
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(mux)
	handler = middleware.RequestID(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
