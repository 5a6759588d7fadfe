package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// NoteUseCase defines the note operations exposed to the HTTP layer.
// userID always comes from the verified token, never from the request body.
type NoteUseCase interface {
	CreateNote(ctx context.Context, userID, title, content string) (string, error)

	ListNotes(ctx context.Context, userID string) ([]*entities.Note, error)

	UpdateNote(ctx context.Context, userID, noteID string, title, content *string) error

	DeleteNote(ctx context.Context, userID, noteID string) error
}
