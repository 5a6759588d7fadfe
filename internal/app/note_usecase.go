// Package app implements the application business logic of the note-taking service.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/internal/ports/repositories"
)

// NoteUseCaseImpl представляет собой бизнес-логику работы с заметками.
// The owner ID is always the one extracted from the verified token by the
// HTTP layer; note IDs supplied by callers are validated before touching
// the store so a malformed ID reads as "not found" rather than an error.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, userID, title, content string) (string, error) {
	note := entities.NewNote(userID, title, content)
	noteID, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	return noteID, nil
}

// ListNotes возвращает все заметки пользователя.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote обновляет существующую заметку, применяя только переданные поля.
func (uc *NoteUseCaseImpl) UpdateNote(ctx context.Context, userID, noteID string, title, content *string) error {
	if _, err := uuid.Parse(noteID); err != nil {
		return entities.ErrNoteNotFound
	}

	if err := uc.noteRepo.Update(ctx, noteID, userID, title, content); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, userID, noteID string) error {
	if _, err := uuid.Parse(noteID); err != nil {
		return entities.ErrNoteNotFound
	}

	if err := uc.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
