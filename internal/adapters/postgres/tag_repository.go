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

// TagRepository реализует интерфейс repositories.TagRepository.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository создает новый репозиторий тегов.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{pool: pool}
}

// Fetch возвращает все теги, отсортированные по убыванию updated_at.
func (r *TagRepository) Fetch(ctx context.Context) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Fetch"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM tags ORDER BY updated_at DESC`)
	if err != nil {
		log.Error(ctx, "failed to fetch tags", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*entities.Tag, 0)
	for rows.Next() {
		var tag entities.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan tag", zap.Error(err))
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tags, nil
}

// Find получает тег по ID. Отсутствующая запись и некорректный
// идентификатор одинаково возвращают nil без ошибки.
func (r *TagRepository) Find(ctx context.Context, id string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Find"))

	if !validID(id) {
		log.Debug(ctx, "malformed tag id", zap.String("tagID", id))
		return nil, nil
	}

	var tag entities.Tag
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM tags WHERE id = $1`, id,
	).Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tag not found", zap.String("tagID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get tag", zap.Error(err))
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &tag, nil
}

// Create сохраняет новый тег. Коллизия имени возвращается как AlreadyExists.
func (r *TagRepository) Create(ctx context.Context, name string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Create"))
	log.Debug(ctx, "creating new tag", zap.String("name", name))

	var tag entities.Tag
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id, name, created_at, updated_at`,
		name,
	).Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)

	if err != nil {
		if domainErr := translateConstraint(err, "tag", name); domainErr != nil {
			log.Debug(ctx, "tag name already exists", zap.String("name", name))
			return nil, domainErr
		}
		log.Error(ctx, "failed to create tag", zap.Error(err))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	log.Debug(ctx, "tag created", zap.String("tagID", tag.ID))
	return &tag, nil
}

// Update переименовывает тег. Отсутствующая запись и некорректный
// идентификатор возвращают nil, коллизия имени - AlreadyExists.
func (r *TagRepository) Update(ctx context.Context, id, name string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Update"))

	if !validID(id) {
		log.Debug(ctx, "malformed tag id", zap.String("tagID", id))
		return nil, nil
	}

	var tag entities.Tag
	err := r.pool.QueryRow(ctx,
		`UPDATE tags SET name = $2, updated_at = now() WHERE id = $1
         RETURNING id, name, created_at, updated_at`,
		id, name,
	).Scan(&tag.ID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tag not found", zap.String("tagID", id))
			return nil, nil
		}
		if domainErr := translateConstraint(err, "tag", name); domainErr != nil {
			log.Debug(ctx, "tag name already exists", zap.String("name", name))
			return nil, domainErr
		}
		log.Error(ctx, "failed to update tag", zap.Error(err))
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &tag, nil
}

// Delete удаляет тег, предварительно убрав его из всех заметок.
// Сами заметки не удаляются. Две последовательные операции выполняются
// вне транзакции.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "TagRepository.Delete"))

	if !validID(id) {
		log.Debug(ctx, "malformed tag id", zap.String("tagID", id))
		return nil
	}

	if _, err := r.pool.Exec(ctx,
		`DELETE FROM note_tags WHERE tag_id = $1`, id); err != nil {
		log.Error(ctx, "failed to detach tag from notes", zap.Error(err))
		return fmt.Errorf("failed to detach tag from notes: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete tag", zap.Error(err))
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}
