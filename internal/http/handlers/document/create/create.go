// Package create реализует HTTP-обработчик для создания новых документов.
//
// Handler принимает JSON-запрос с данными документа, валидирует их, извлекает
// данные пользователя из контекста, вызывает бизнес-логику создания документа
// и возвращает созданную запись в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/document-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/document-manager/internal/http/response"
	"github.com/magabrotheeeer/document-manager/internal/lib/sl"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// Handler управляет HTTP-запросами на создание новых документов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания документа.
type Service interface {
	Create(ctx context.Context, requester models.Requester, req models.DummyDocument) (*models.Document, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новый документ
// @Description Создает документ, владельцем становится текущий пользователь.
// @Tags Documents
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyDocument true "Данные нового документа"
// @Success 201 {object} map[string]any "Успешное создание документа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании документа"
// @Router /documents [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.document.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyDocument
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	requester, ok := middlewarectx.RequesterFromContext(r.Context())
	if !ok {
		log.Error("requester not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	doc, err := h.service.Create(r.Context(), requester, req)
	if err != nil {
		log.Error("failed to create document", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create document"))
		return
	}

	log.Info("success to create document", slog.String("id", doc.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"document": doc,
	}))
}
