// Package services содержит бизнес-логику для управления документами и кешированием.
//
// Все проверки доступа выполняются политикой authz.Decide: сервис
// сначала получает документ, затем спрашивает политику и только после
// этого выполняет операцию.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/document-manager/internal/authz"
	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// DocumentRepository определяет методы для работы с документами в хранилище.
type DocumentRepository interface {
	// CreateDocument добавляет новый документ и возвращает его ID.
	CreateDocument(ctx context.Context, doc models.Document) (string, error)
	// ReadDocument возвращает документ по ID вместе с данными владельца.
	ReadDocument(ctx context.Context, id string) (*models.Document, error)
	// ListDocumentsByOwner возвращает документы пользователя, новые первыми.
	ListDocumentsByOwner(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Document, error)
	// ListAllDocuments возвращает документы всех пользователей, новые первыми.
	ListAllDocuments(ctx context.Context, limit, offset int) ([]*models.Document, error)
	// UpdateDocument обновляет заголовок и содержимое по ID.
	UpdateDocument(ctx context.Context, id, title, content string) (int, error)
	// RemoveDocument удаляет документ по ID.
	RemoveDocument(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// DocumentService реализует бизнес-логику работы с документами, включая кеширование.
type DocumentService struct {
	repo  DocumentRepository
	cache Cache
	log   *slog.Logger
}

// NewDocumentService создает новый экземпляр DocumentService.
func NewDocumentService(repo DocumentRepository, cache Cache, log *slog.Logger) *DocumentService {
	return &DocumentService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый документ, владельцем становится requester.
// Проверка доступа не нужна: создавать может любой аутентифицированный пользователь.
func (s *DocumentService) Create(ctx context.Context, requester models.Requester, req models.DummyDocument) (*models.Document, error) {
	doc := models.Document{
		Title:    req.Title,
		Content:  req.Content,
		OwnerUID: requester.UID,
	}

	id, err := s.repo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new document", slog.String("id", id))

	created, err := s.repo.ReadDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("document:%s", id)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache document", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// List возвращает список документов в зависимости от роли пользователя:
// администратор видит документы всех пользователей, остальные — только свои.
// Сортировка — по дате создания, новые первыми.
func (s *DocumentService) List(ctx context.Context, requester models.Requester, limit, offset int) ([]*models.Document, error) {
	var err error
	var docs []*models.Document
	if requester.Role == models.RoleAdmin {
		docs, err = s.repo.ListAllDocuments(ctx, limit, offset)
	} else {
		docs, err = s.repo.ListDocumentsByOwner(ctx, requester.UID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID возвращает документ по ID, используя кеш или репозиторий.
//
// Политика доступа применяется после получения документа независимо
// от источника: не-владелец без роли admin получает ErrAccessDenied,
// отсутствующий документ — ErrDocumentNotFound.
func (s *DocumentService) GetByID(ctx context.Context, id string, requester models.Requester) (*models.Document, error) {
	doc, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.Decide(requester.Role, doc.OwnerUID == requester.UID, authz.OpRead) {
		return nil, apperrors.ErrAccessDenied
	}
	return doc, nil
}

// Update обновляет заголовок и/или содержимое документа.
//
// Сначала выполняется тот же путь получения и проверки, что и в GetByID,
// затем политика опрашивается повторно для операции update. Поля,
// отсутствующие в патче, не меняются; updated_at обновляется хранилищем.
func (s *DocumentService) Update(ctx context.Context, id string, patch models.DummyDocumentPatch, requester models.Requester) (*models.Document, error) {
	doc, err := s.GetByID(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	if !authz.Decide(requester.Role, doc.OwnerUID == requester.UID, authz.OpUpdate) {
		return nil, apperrors.ErrAccessDenied
	}

	title := doc.Title
	content := doc.Content
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Content != nil {
		content = *patch.Content
	}

	count, err := s.repo.UpdateDocument(ctx, id, title, content)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.ErrDocumentNotFound
	}
	s.log.Info("updated document in storage", slog.String("id", id))

	updated, err := s.repo.ReadDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("document:%s", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache document", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Remove безвозвратно удаляет документ.
//
// Путь получения тот же, что и в GetByID, поэтому посторонний пользователь
// получает ErrAccessDenied раньше проверки на удаление. Затем политика
// требует роль admin: владелец-не-администратор получает ErrOnlyAdminDelete.
func (s *DocumentService) Remove(ctx context.Context, id string, requester models.Requester) error {
	doc, err := s.GetByID(ctx, id, requester)
	if err != nil {
		return err
	}

	if !authz.Decide(requester.Role, doc.OwnerUID == requester.UID, authz.OpDelete) {
		return apperrors.ErrOnlyAdminDelete
	}

	cacheKey := fmt.Sprintf("document:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveDocument(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrDocumentNotFound
	}
	s.log.Info("removed document", slog.String("id", id))
	return nil
}

func (s *DocumentService) fetch(ctx context.Context, id string) (*models.Document, error) {
	var result *models.Document
	cacheKey := fmt.Sprintf("document:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.ReadDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
