package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет нового пользователя. Коллизия username возвращается
// как AlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new user", zap.String("username", user.Username))

	var created entities.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, fullname)
         VALUES ($1, $2, $3)
         RETURNING id, username, password_hash, COALESCE(fullname, '')`,
		user.Username, user.PasswordHash, nullableText(user.Fullname),
	).Scan(&created.ID, &created.Username, &created.PasswordHash, &created.Fullname)

	if err != nil {
		if domainErr := translateConstraint(err, "user", user.Username); domainErr != nil {
			log.Debug(ctx, "username already exists", zap.String("username", user.Username))
			return nil, domainErr
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &created, nil
}

// FindByUsername находит пользователя по имени. Отсутствие записи
// возвращается как nil без ошибки.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, COALESCE(fullname, '')
         FROM users
         WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Fullname)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, nil
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, fmt.Errorf("error querying user by username: %w", err)
	}

	return &user, nil
}

// FindByID находит пользователя по ID. Отсутствующая запись и некорректный
// идентификатор одинаково возвращают nil без ошибки.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	if !validID(id) {
		log.Debug(ctx, "malformed user id", zap.String("id", id))
		return nil, nil
	}

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, COALESCE(fullname, '')
         FROM users
         WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Fullname)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, nil
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}
