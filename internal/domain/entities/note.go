// Package entities определяет доменные сущности приложения.
package entities

import "time"

// Note представляет собой заметку.
// Content и FolderID необязательны; Tags - набор идентификаторов тегов.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FolderID  string    `json:"folderId,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteFilter описывает критерии выборки заметок.
// Пустые поля не ограничивают выборку.
type NoteFilter struct {
	SearchTerm string
	FolderID   string
	TagID      string
}
