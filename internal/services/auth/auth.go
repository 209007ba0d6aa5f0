// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/document-manager/internal/lib/password"
	"github.com/magabrotheeeer/document-manager/internal/lib/sl"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email
	// или apperrors.ErrUserNotFound, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// EventPublisher публикует событие о регистрации нового пользователя.
type EventPublisher interface {
	PublishRegistered(info models.RegisteredInfo) error
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	events   EventPublisher
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
// events может быть nil — тогда события регистрации не публикуются.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, events EventPublisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		events:   events,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и выдает JWT.
//
// Если role не указана, используется дефолтная роль "user". Повторная
// регистрация на занятый email завершается apperrors.ErrEmailTaken —
// как при явной проверке, так и при гонке через ограничение уникальности в базе.
func (s *AuthService) Register(ctx context.Context, fullName, email, rawPassword, role string) (string, *models.PublicUser, error) {
	const op = "services.auth.Register"

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if role == "" {
		role = models.RoleUser // дефолтная роль при регистрации
	}
	user := models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return "", nil, apperrors.ErrEmailTaken
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.events != nil {
		info := models.RegisteredInfo{Email: user.Email, FullName: user.FullName}
		if err := s.events.PublishRegistered(info); err != nil {
			// Письмо — не часть регистрации, ошибку только логируем.
			s.log.Warn("failed to publish registered event", sl.Err(err))
		}
	}

	public := user.Public()
	return token, &public, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Неизвестный email и неверный пароль неразличимы для вызывающего:
// оба случая завершаются apperrors.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.PublicUser, error) {
	const op = "services.auth.Login"

	user, err := s.validateCredentials(ctx, email, rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	public := user.Public()
	return token, &public, nil
}

// validateCredentials возвращает пользователя при совпадении email и пароля.
// При несовпадении возвращает (nil, nil) — без ошибки, чтобы вызывающий
// не мог различить отсутствие пользователя и неверный пароль.
func (s *AuthService) validateCredentials(ctx context.Context, email, rawPassword string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, nil
	}
	return user, nil
}

// ValidateToken проверяет JWT и возвращает данные аутентифицированного пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.Requester, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return &models.Requester{
		UID:   claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
