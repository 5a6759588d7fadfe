// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// Константы ошибок и сообщений.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	MsgMissingData   = "Missing data"
	MsgNoteCreated   = "Note created successfully"
	MsgNoteUpdated   = "Note updated successfully"
	MsgNoteDeleted   = "Note deleted successfully"
	MsgNoteNotFound  = "Note not found or does not belong to the current user"
	MsgInternalError = "Internal server error"
	MsgUnauthorized  = "unauthorized"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updateNoteRequest: указатели отличают отсутствующее поле от пустого.
// JSON null намеренно неотличим от отсутствующего поля.
type updateNoteRequest struct {
	NoteID  string  `json:"note_id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type deleteNoteRequest struct {
	NoteID string `json:"note_id"`
}

type noteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService api.NoteUseCase) *Handler {
	return &Handler{
		notesService: notesService,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func ownerID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	return userID, ok && userID != ""
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, MsgUnauthorized)
	}

	var req createNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, "invalid request body", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	if req.Title == "" || req.Content == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	noteID, err := h.notesService.CreateNote(requestCtx, userID, req.Title, req.Content)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, MsgInternalError)
	}

	log.Debug(requestCtx, "note created", zap.String("noteID", noteID))

	if err := ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": MsgNoteCreated,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, MsgUnauthorized)
	}

	notes, err := h.notesService.ListNotes(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, MsgInternalError)
	}

	items := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		items = append(items, noteResponse{
			ID:         note.ID,
			Title:      note.Title,
			Content:    note.Content,
			CreatedAt:  note.CreatedAt,
			ModifiedAt: note.ModifiedAt,
		})
	}

	if err := ctx.JSON(fiber.Map{
		"notes": items,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
// Несуществующая и чужая заметка дают одинаковый 404.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, MsgUnauthorized)
	}

	var req updateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, "invalid request body", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	if req.NoteID == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	if err := h.notesService.UpdateNote(requestCtx, userID, req.NoteID, req.Title, req.Content); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, MsgNoteNotFound)
		}
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteUpdated,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	userID, ok := ownerID(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, MsgUnauthorized)
	}

	var req deleteNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, "invalid request body", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	if req.NoteID == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, MsgMissingData)
	}

	if err := h.notesService.DeleteNote(requestCtx, userID, req.NoteID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, MsgNoteNotFound)
		}
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
