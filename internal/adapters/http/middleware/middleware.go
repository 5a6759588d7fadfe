// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"notekeeper/pkg/logger"
)

// Ключи для fiber.Ctx.Locals.
const (
	RequestContextKey = "requestContext"
	UserIDKey         = "userID"
)

// RequestContext возвращает обогащенный контекст запроса из Locals.
func RequestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals(RequestContextKey).(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// NewRequestIDMiddleware присваивает каждому запросу идентификатор
// и кладет контекст с ним в Locals для последующих обработчиков.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx := logger.NewRequestIDContext(ctx.Context(), "")
		ctx.Locals(RequestContextKey, reqCtx)
		return ctx.Next()
	}
}
