// Package read реализует HTTP-обработчик для чтения документа по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/document-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/document-manager/internal/http/response"
	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/lib/sl"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения документа.
type Service interface {
	GetByID(ctx context.Context, id string, requester models.Requester) (*models.Document, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить документ по ID
// @Description Возвращает документ вместе с данными владельца. Доступен владельцу и администратору.
// @Tags Documents
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID документа"
// @Success 200 {object} map[string]any "Документ"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Документ не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /documents/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.document.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing document id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	requester, ok := middlewarectx.RequesterFromContext(r.Context())
	if !ok {
		log.Error("requester not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	doc, err := h.service.GetByID(r.Context(), id, requester)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDocumentNotFound):
			log.Error("document not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("document not found"))
		case errors.Is(err, apperrors.ErrAccessDenied):
			log.Error("access denied", slog.String("id", id))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		default:
			log.Error("failed to read document", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read document"))
		}
		return
	}

	log.Info("success to read document", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"document": doc,
	}))
}
