package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	var noteID string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content) VALUES ($1, $2, $3) RETURNING id`,
		note.UserID, note.Title, note.Content,
	).Scan(&noteID)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", noteID))
	return noteID, nil
}

// ListByUserID получает все заметки пользователя.
// Порядок стабилен в рамках одного запроса: created_at, затем id.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByUserID"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, content, created_at, modified_at
         FROM notes
         WHERE user_id = $1
         ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.ModifiedAt)
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

// Update обновляет заметку, применяя только переданные поля.
// Lookup и мутация выполняются в одной транзакции с блокировкой строки,
// чтобы параллельные правки одной заметки не теряли изменения.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID string, title, content *string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID), zap.String("userID", userID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "failed to start transaction", zap.Error(err))
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var note entities.Note
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, title, content
         FROM notes
         WHERE id = $1 AND user_id = $2
         FOR UPDATE`,
		noteID, userID,
	).Scan(&note.ID, &note.UserID, &note.Title, &note.Content)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to lock note for update", zap.Error(err))
		return fmt.Errorf("failed to lock note for update: %w", err)
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}

	_, err = tx.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2, modified_at = now() WHERE id = $3 AND user_id = $4`,
		note.Title, note.Content, noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "failed to commit note update", zap.Error(err))
		return fmt.Errorf("failed to commit note update: %w", err)
	}

	return nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}
