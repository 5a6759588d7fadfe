// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/domain/services"
	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// Константы для логирования и сообщений ответа.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorFailedToServeRequest = "failed to serve request"

	MsgMissingData        = "Missing data"
	MsgUserCreated        = "User created successfully"
	MsgLoginSuccessful    = "Login successful"
	MsgInvalidCredentials = "Invalid username or password"
	MsgEmailTaken         = "User with this email already exists"
	MsgInternalError      = "Internal server error"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики авторизации.
type Handler struct {
	authService api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authService api.AuthUseCase) *Handler {
	return &Handler{
		authService: authService,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req registerRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, "invalid request body", zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingData)
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingData)
	}

	token, err := h.authService.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return sendErrorResponse(ctx, http.StatusConflict, MsgEmailTaken)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(http.StatusCreated).JSON(fiber.Map{
		"message":      MsgUserCreated,
		"access_token": token,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req loginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, "invalid request body", zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingData)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingData)
	}

	token, err := h.authService.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, http.StatusUnauthorized, MsgInvalidCredentials)
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message":      MsgLoginSuccessful,
		"access_token": token,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
