package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "notekeeper/internal/ports/services"
	"notekeeper/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	bearerPrefix = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО, которое проверяет bearer токен
// и кладет ID пользователя в Locals. Все остальные обработчики защищенных
// маршрутов берут владельца только отсюда.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx, ErrorInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		userID, err := tokenSvc.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return sendUnauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}

func sendUnauthorized(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending unauthorized response: %w", err)
	}
	return nil
}
