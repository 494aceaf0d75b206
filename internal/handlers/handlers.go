package handlers

import (
	"SwapMarket/internal/config"
	"SwapMarket/internal/middleware"
	"SwapMarket/internal/service"
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthCheck проверяет доступность зависимостей (БД) для /healthz.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	swapService *service.SwapService,
	logger *zap.SugaredLogger,
	config *config.Config,
	health HealthCheck,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	resp := responder{Logger: logger, Config: config}
	// NotFound и MethodNotAllowed задаём до маршрутов: подроутеры их наследуют
	r.NotFound(resp.notFound)
	r.MethodNotAllowed(resp.methodNotAllowed)

	requireAuth := middleware.RequireAuth(resp.unauthorized)

	// Handlers
	userHandler := NewUserHandler(userService, resp)
	itemHandler := NewItemHandler(itemService, resp)
	swapHandler := NewSwapHandler(swapService, resp)

	r.Get("/healthz", resp.health(health))

	r.Route("/api", func(r chi.Router) {
		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.With(requireAuth).Get("/profile", userHandler.Profile)
		})

		// Item routes: чтение открыто, изменения только с токеном
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.With(requireAuth).Post("/", itemHandler.Create)
			r.With(requireAuth).Get("/my", itemHandler.ListMine)
			r.Get("/{id}", itemHandler.Get)
			r.With(requireAuth).Put("/{id}", itemHandler.Update)
			r.With(requireAuth).Delete("/{id}", itemHandler.Delete)
		})

		// Swap routes
		r.Route("/swaps", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", swapHandler.Request)
			r.Get("/", swapHandler.List)
			r.Get("/{id}", swapHandler.Get)
			r.Put("/{id}/accept", swapHandler.Accept)
			r.Put("/{id}/reject", swapHandler.Reject)
			r.Delete("/{id}", swapHandler.Delete)
		})
	})

	return &Handler{Router: r}
}
