package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя; коллизия username
	// возвращается как errs.AlreadyExists.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	// FindByUsername возвращает nil без ошибки, если пользователь не найден.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
