// Package users содержит HTTP обработчики управления учетной записью.
package users

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// Константы для логирования и сообщений ответа.
const (
	LogHandlerDeleteUser = "user handler: delete account"

	MsgUserDeleted   = "User deleted successfully"
	MsgUserNotFound  = "User not found"
	MsgInternalError = "Internal server error"
	MsgUnauthorized  = "unauthorized"
)

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики пользователя.
type Handler struct {
	userService api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователя.
func NewHandler(userService api.UserUseCase) *Handler {
	return &Handler{
		userService: userService,
	}
}

// DeleteUser удаляет аутентифицированного пользователя и все его заметки.
// Валидный токен уже удаленного пользователя получает 404: токены не отзываются.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteUser)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgUnauthorized)
	}

	if err := h.userService.DeleteAccount(requestCtx, userID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
		}
		log.Error(requestCtx, "failed to delete user", zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": MsgUserDeleted,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
