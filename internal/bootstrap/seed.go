// Package bootstrap выполняет первоначальное наполнение базы данных.
//
// При старте сервиса создаются служебные учетные записи, если их еще нет.
// Повторный запуск ничего не меняет.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/lib/password"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

// UserRepository описывает методы хранилища, нужные для наполнения.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type seedUser struct {
	FullName string
	Email    string
	Password string
	Role     string
}

var seedUsers = []seedUser{
	{FullName: "Admin", Email: "admin@example.com", Password: "admin123", Role: models.RoleAdmin},
	{FullName: "Regular User", Email: "user@example.com", Password: "user123", Role: models.RoleUser},
}

// Seed создает служебные учетные записи, отсутствующие в базе.
func Seed(ctx context.Context, users UserRepository, log *slog.Logger) error {
	const op = "bootstrap.Seed"

	for _, su := range seedUsers {
		_, err := users.GetUserByEmail(ctx, su.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}

		hashed, err := password.GetHash(su.Password)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		uid, err := users.RegisterUser(ctx, models.User{
			FullName:     su.FullName,
			Email:        su.Email,
			PasswordHash: hashed,
			Role:         su.Role,
		})
		if err != nil {
			// Гонка с параллельным экземпляром: запись уже появилась.
			if errors.Is(err, apperrors.ErrEmailTaken) {
				continue
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("seeded user", slog.String("email", su.Email), slog.String("uid", uid))
	}
	return nil
}
