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

// FolderRepository реализует интерфейс repositories.FolderRepository.
type FolderRepository struct {
	pool PgxPoolInterface
}

// NewFolderRepository создает новый репозиторий папок.
func NewFolderRepository(pool PgxPoolInterface) repositories.FolderRepository {
	return &FolderRepository{pool: pool}
}

// Fetch возвращает все папки, отсортированные по убыванию updated_at.
func (r *FolderRepository) Fetch(ctx context.Context) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Fetch"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM folders ORDER BY updated_at DESC`)
	if err != nil {
		log.Error(ctx, "failed to fetch folders", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch folders: %w", err)
	}
	defer rows.Close()

	folders := make([]*entities.Folder, 0)
	for rows.Next() {
		var folder entities.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan folder", zap.Error(err))
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return folders, nil
}

// Find получает папку по ID. Отсутствующая запись и некорректный
// идентификатор одинаково возвращают nil без ошибки.
func (r *FolderRepository) Find(ctx context.Context, id string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Find"))

	if !validID(id) {
		log.Debug(ctx, "malformed folder id", zap.String("folderID", id))
		return nil, nil
	}

	var folder entities.Folder
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM folders WHERE id = $1`, id,
	).Scan(&folder.ID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "folder not found", zap.String("folderID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get folder", zap.Error(err))
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}

	return &folder, nil
}

// Create сохраняет новую папку. Коллизия имени возвращается как AlreadyExists.
func (r *FolderRepository) Create(ctx context.Context, name string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Create"))
	log.Debug(ctx, "creating new folder", zap.String("name", name))

	var folder entities.Folder
	err := r.pool.QueryRow(ctx,
		`INSERT INTO folders (name) VALUES ($1) RETURNING id, name, created_at, updated_at`,
		name,
	).Scan(&folder.ID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if domainErr := translateConstraint(err, "folder", name); domainErr != nil {
			log.Debug(ctx, "folder name already exists", zap.String("name", name))
			return nil, domainErr
		}
		log.Error(ctx, "failed to create folder", zap.Error(err))
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	log.Debug(ctx, "folder created", zap.String("folderID", folder.ID))
	return &folder, nil
}

// Update переименовывает папку. Отсутствующая запись и некорректный
// идентификатор возвращают nil, коллизия имени - AlreadyExists.
func (r *FolderRepository) Update(ctx context.Context, id, name string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Update"))

	if !validID(id) {
		log.Debug(ctx, "malformed folder id", zap.String("folderID", id))
		return nil, nil
	}

	var folder entities.Folder
	err := r.pool.QueryRow(ctx,
		`UPDATE folders SET name = $2, updated_at = now() WHERE id = $1
         RETURNING id, name, created_at, updated_at`,
		id, name,
	).Scan(&folder.ID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "folder not found", zap.String("folderID", id))
			return nil, nil
		}
		if domainErr := translateConstraint(err, "folder", name); domainErr != nil {
			log.Debug(ctx, "folder name already exists", zap.String("name", name))
			return nil, domainErr
		}
		log.Error(ctx, "failed to update folder", zap.Error(err))
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}

	return &folder, nil
}

// Delete удаляет папку, предварительно сняв folder_id со всех ее заметок.
// Сами заметки не удаляются. Две последовательные операции выполняются вне
// транзакции, порядок гарантирует отсутствие висячих ссылок при успехе обеих.
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "FolderRepository.Delete"))

	if !validID(id) {
		log.Debug(ctx, "malformed folder id", zap.String("folderID", id))
		return nil
	}

	if _, err := r.pool.Exec(ctx,
		`UPDATE notes SET folder_id = NULL WHERE folder_id = $1`, id); err != nil {
		log.Error(ctx, "failed to detach notes from folder", zap.Error(err))
		return fmt.Errorf("failed to detach notes from folder: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete folder", zap.Error(err))
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	return nil
}
