// Package documentmanager предоставляет маршруты для основного приложения.
package documentmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/document-manager/internal/cache"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/create"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/health"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/list"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/read"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/remove"
	"github.com/magabrotheeeer/document-manager/internal/http/handlers/document/update"
	"github.com/magabrotheeeer/document-manager/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/document-manager/internal/services/auth"
	docservice "github.com/magabrotheeeer/document-manager/internal/services/document"
	"github.com/magabrotheeeer/document-manager/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	documentService *docservice.DocumentService,
	db *repository.Storage, rabbit *amqp.Connection, cacheRedis *cache.Cache,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger, db, rabbit, cacheRedis).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/documents", create.New(logger, documentService).ServeHTTP)
			r.Get("/documents", list.New(logger, documentService).ServeHTTP)
			r.Get("/documents/{id}", read.New(logger, documentService).ServeHTTP)
			r.Patch("/documents/{id}", update.New(logger, documentService).ServeHTTP)
			r.Delete("/documents/{id}", remove.New(logger, documentService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
