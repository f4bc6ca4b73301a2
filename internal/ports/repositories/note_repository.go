// Package repositories определяет интерфейсы доступа к данным.
package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// NoteRepository определяет операции хранения заметок.
//
// Find и Update возвращают nil без ошибки, если заметка отсутствует или
// идентификатор синтаксически некорректен. Delete идемпотентен: отсутствующий
// или некорректный идентификатор - успешный no-op.
type NoteRepository interface {
	// Filter возвращает заметки по критериям, отсортированные по убыванию updated_at.
	Filter(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error)
	Find(ctx context.Context, id string) (*entities.Note, error)
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	// Update полностью замещает необязательные поля: пустые content,
	// folderId и tags очищаются в хранилище, а не остаются прежними.
	Update(ctx context.Context, id string, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, id string) error
}
