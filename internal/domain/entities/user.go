package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
