package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователем.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// DeleteWithNotes удаляет пользователя и все его заметки в одной транзакции.
	DeleteWithNotes(ctx context.Context, id string) error
}
