package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// DeleteAccount удаляет пользователя вместе со всеми его заметками.
// Выданные ранее токены не отзываются: токен удаленного пользователя
// просто перестает находить свои данные.
func (u *UserUseCaseImpl) DeleteAccount(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "DeleteAccount"), zap.String("userID", userID))
	log.Debug(ctx, "deleting user account")

	if err := u.userRepo.DeleteWithNotes(ctx, userID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, "user already absent")
			return err
		}
		log.Error(ctx, "failed to delete user account", zap.Error(err))
		return fmt.Errorf("deleting user account: %w", err)
	}

	log.Info(ctx, "user account deleted")
	return nil
}
