package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// noteColumns - колонки заметки вместе с агрегированным списком тегов.
const noteColumns = `n.id, n.title, COALESCE(n.content, ''), COALESCE(n.folder_id::text, ''),
       COALESCE(array_agg(nt.tag_id::text) FILTER (WHERE nt.tag_id IS NOT NULL), ARRAY[]::text[]),
       n.created_at, n.updated_at`

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Filter возвращает заметки по критериям, отсортированные по убыванию updated_at.
// Поисковый запрос сопоставляется с title и content без учета регистра.
func (r *NoteRepository) Filter(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Filter"))
	log.Debug(ctx, "filtering notes",
		zap.String("searchTerm", filter.SearchTerm),
		zap.String("folderID", filter.FolderID),
		zap.String("tagID", filter.TagID))

	query := `SELECT ` + noteColumns + `
        FROM notes n
        LEFT JOIN note_tags nt ON nt.note_id = n.id`

	var conds []string
	var args []interface{}

	if filter.SearchTerm != "" {
		args = append(args, filter.SearchTerm)
		conds = append(conds, fmt.Sprintf(
			"(n.title ILIKE '%%' || $%d || '%%' OR n.content ILIKE '%%' || $%d || '%%')",
			len(args), len(args)))
	}
	if filter.FolderID != "" {
		args = append(args, filter.FolderID)
		conds = append(conds, fmt.Sprintf("n.folder_id = $%d", len(args)))
	}
	if filter.TagID != "" {
		args = append(args, filter.TagID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM note_tags t WHERE t.note_id = n.id AND t.tag_id = $%d)",
			len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY n.id ORDER BY n.updated_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to filter notes", zap.Error(err))
		return nil, fmt.Errorf("failed to filter notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.FolderID,
			&note.Tags, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Find получает заметку по ID. Отсутствующая запись и синтаксически
// некорректный идентификатор одинаково возвращают nil без ошибки.
func (r *NoteRepository) Find(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Find"))

	if !validID(id) {
		log.Debug(ctx, "malformed note id", zap.String("noteID", id))
		return nil, nil
	}

	query := `SELECT ` + noteColumns + `
        FROM notes n
        LEFT JOIN note_tags nt ON nt.note_id = n.id
        WHERE n.id = $1
        GROUP BY n.id`

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(&note.ID, &note.Title, &note.Content,
		&note.FolderID, &note.Tags, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// Create сохраняет новую заметку вместе со связями с тегами.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("title", note.Title))

	created := entities.Note{
		Title:    note.Title,
		Content:  note.Content,
		FolderID: note.FolderID,
		Tags:     note.Tags,
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, content, folder_id) VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		note.Title, nullableText(note.Content), nullableText(note.FolderID),
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if domainErr := translateConstraint(err, "note", note.Title); domainErr != nil {
			log.Debug(ctx, "note constraint violated", zap.Error(err))
			return nil, domainErr
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if err := r.attachTags(ctx, created.ID, note.Tags); err != nil {
		return nil, err
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// Update полностью замещает поля заметки: пустые content, folderId и tags
// очищаются в хранилище, а не остаются прежними.
func (r *NoteRepository) Update(ctx context.Context, id string, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))

	if !validID(id) {
		log.Debug(ctx, "malformed note id", zap.String("noteID", id))
		return nil, nil
	}

	var updated entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes SET title = $2, content = $3, folder_id = $4, updated_at = now()
         WHERE id = $1
         RETURNING id, title, COALESCE(content, ''), COALESCE(folder_id::text, ''), created_at, updated_at`,
		id, note.Title, nullableText(note.Content), nullableText(note.FolderID),
	).Scan(&updated.ID, &updated.Title, &updated.Content, &updated.FolderID,
		&updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, nil
		}
		if domainErr := translateConstraint(err, "note", note.Title); domainErr != nil {
			log.Debug(ctx, "note constraint violated", zap.Error(err))
			return nil, domainErr
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if _, err := r.pool.Exec(ctx,
		`DELETE FROM note_tags WHERE note_id = $1`, id); err != nil {
		log.Error(ctx, "failed to clear note tags", zap.Error(err))
		return nil, fmt.Errorf("failed to clear note tags: %w", err)
	}
	if err := r.attachTags(ctx, id, note.Tags); err != nil {
		return nil, err
	}

	updated.Tags = note.Tags
	return &updated, nil
}

// Delete удаляет заметку. Операция идемпотентна: отсутствующий или
// некорректный идентификатор - успешный no-op.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))

	if !validID(id) {
		log.Debug(ctx, "malformed note id", zap.String("noteID", id))
		return nil
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// attachTags связывает заметку с тегами одним запросом.
func (r *NoteRepository) attachTags(ctx context.Context, noteID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.attachTags"))

	_, err := r.pool.Exec(ctx,
		`INSERT INTO note_tags (note_id, tag_id)
         SELECT $1, unnest($2::uuid[])
         ON CONFLICT DO NOTHING`,
		noteID, tags)
	if err != nil {
		if domainErr := translateConstraint(err, "note", ""); domainErr != nil {
			log.Debug(ctx, "note tags constraint violated", zap.Error(err))
			return domainErr
		}
		log.Error(ctx, "failed to attach tags", zap.Error(err))
		return fmt.Errorf("failed to attach tags: %w", err)
	}

	return nil
}
