package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// TagRepository определяет операции хранения тегов.
//
// Имя тега уникально. Delete сначала убирает тег из всех заметок,
// затем удаляет сам тег; заметки при этом не удаляются.
type TagRepository interface {
	Fetch(ctx context.Context) ([]*entities.Tag, error)
	Find(ctx context.Context, id string) (*entities.Tag, error)
	Create(ctx context.Context, name string) (*entities.Tag, error)
	Update(ctx context.Context, id, name string) (*entities.Tag, error)
	Delete(ctx context.Context, id string) error
}
