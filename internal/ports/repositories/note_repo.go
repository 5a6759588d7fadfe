// Package repositories defines persistence interfaces for the note-taking service.
package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Every operation that touches an existing note is scoped by (noteID, userID).
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (string, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)

	// Update applies only non-nil fields and bumps modified_at. The lookup and
	// mutation run in a single transaction so concurrent edits cannot lose updates.
	Update(ctx context.Context, noteID, userID string, title, content *string) error

	Delete(ctx context.Context, noteID, userID string) error
}
