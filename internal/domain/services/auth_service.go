package services

import (
	"errors"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)
