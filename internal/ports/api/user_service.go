package api

import (
	"context"
)

// UserUseCase определяет операции над учетной записью пользователя.
type UserUseCase interface {
	// DeleteAccount удаляет пользователя вместе со всеми его заметками.
	DeleteAccount(ctx context.Context, userID string) error
}
