package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// FolderRepository определяет операции хранения папок.
//
// Имя папки уникально: коллизия возвращается как errs.AlreadyExists.
// Delete сначала снимает folder_id со всех заметок папки, затем удаляет
// саму папку; заметки при этом не удаляются.
type FolderRepository interface {
	Fetch(ctx context.Context) ([]*entities.Folder, error)
	Find(ctx context.Context, id string) (*entities.Folder, error)
	Create(ctx context.Context, name string) (*entities.Folder, error)
	Update(ctx context.Context, id, name string) (*entities.Folder, error)
	Delete(ctx context.Context, id string) error
}
