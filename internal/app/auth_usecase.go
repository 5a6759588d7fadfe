package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/domain/services"
	"notekeeper/internal/ports/api"
	"notekeeper/internal/ports/repositories"
	svc "notekeeper/internal/ports/services"
	"notekeeper/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration   = "starting user registration"
	msgUserRegistered      = "user registered successfully"
	msgTokenIssued         = "access token issued"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateToken     = "failed to generate access token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxGeneratingToken    = "generating token"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя и возвращает access токен.
// Уникальность email заранее не проверяется: дубликат всплывает из
// хранилища как services.ErrEmailAlreadyExists.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, username, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, "email already registered")
			return "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	token, _, err := a.tokenSvc.GenerateAccessToken(ctx, createdUser.ID, createdUser.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", createdUser.ID))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgTokenIssued, zap.String("userID", createdUser.ID))
	return token, nil
}

// Login аутентифицирует пользователя по email и паролю.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, _, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	return token, nil
}
