// Package entities defines the domain entities of the note-taking service.
package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound is returned when a note doesn't exist or belongs to another user.
// A single error for both cases keeps foreign notes indistinguishable from absent ones.
var ErrNoteNotFound = errors.New("note not found or not owned by user")

// Note представляет собой заметку пользователя.
type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NewNote creates a new note with the given owner, title, and content.
func NewNote(userID, title, content string) *Note {
	now := time.Now()
	return &Note{
		UserID:     userID,
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
