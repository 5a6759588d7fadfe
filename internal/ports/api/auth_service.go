// Package api определяет интерфейсы бизнес-логики, используемые HTTP слоем.
package api

import (
	"context"
)

// AuthUseCase определяет операции регистрации и входа.
type AuthUseCase interface {
	// Register создает пользователя и возвращает access токен.
	Register(ctx context.Context, email, username, password string) (string, error)

	// Login аутентифицирует пользователя и возвращает access токен.
	Login(ctx context.Context, email, password string) (string, error)
}
