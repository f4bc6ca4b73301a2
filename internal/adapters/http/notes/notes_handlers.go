// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/httperr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/app/dto"
	"noteful/internal/domain/entities"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgMissingTitle       = "Missing `title` in request body"
	ErrMsgInvalidFolderID    = "`folderId` must be a valid id"
	ErrMsgInvalidTagID       = "`tagId` must be a valid id"
	ErrMsgInvalidTags        = "`tags` must contain valid ids"
	ErrMsgBodyIDMismatch     = "`id` in body does not match requested resource"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// BasePath - префикс маршрутов заметок, используется в заголовке Location.
const BasePath = "/api/notes"

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notes repositories.NoteRepository
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes repositories.NoteRepository) *Handler {
	return &Handler{notes: notes}
}

// List обрабатывает запрос на получение списка заметок с фильтрацией
// по searchTerm, folderId и tagId.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(requestCtx, LogHandlerListNotes)

	filter := entities.NoteFilter{
		SearchTerm: ctx.Query("searchTerm"),
		FolderID:   ctx.Query("folderId"),
		TagID:      ctx.Query("tagId"),
	}

	if filter.FolderID != "" && !isValidID(filter.FolderID) {
		log.Debug(requestCtx, ErrMsgInvalidFolderID)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidFolderID)
	}
	if filter.TagID != "" && !isValidID(filter.TagID) {
		log.Debug(requestCtx, ErrMsgInvalidTagID)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidTagID)
	}

	notes, err := h.notes.Filter(requestCtx, filter)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос на получение заметки по ID.
// Некорректный идентификатор неотличим от отсутствующего: оба дают 404.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(requestCtx, LogHandlerGetNote)

	note, err := h.notes.Find(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, "failed to get note", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if note == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание новой заметки.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if message := validateNote(&req); message != "" {
		log.Debug(requestCtx, message)
		return httperr.JSON(ctx, fiber.StatusBadRequest, message)
	}

	note, err := h.notes.Create(requestCtx, &entities.Note{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		Tags:     req.Tags,
	})
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%s", BasePath, note.ID))
	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на обновление заметки. Необязательные поля,
// отсутствующие в теле запроса, очищаются, а не остаются прежними.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	id := ctx.Params("id")

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if req.ID != "" && req.ID != id {
		log.Debug(requestCtx, ErrMsgBodyIDMismatch)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgBodyIDMismatch)
	}
	if message := validateNote(&req); message != "" {
		log.Debug(requestCtx, message)
		return httperr.JSON(ctx, fiber.StatusBadRequest, message)
	}

	note, err := h.notes.Update(requestCtx, id, &entities.Note{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		Tags:     req.Tags,
	})
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if note == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление заметки. Всегда отвечает 204,
// в том числе для отсутствующего или некорректного идентификатора.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	if err := h.notes.Delete(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// validateNote проверяет форму тела запроса заметки.
// Возвращает сообщение об ошибке или пустую строку.
func validateNote(req *dto.NoteRequest) string {
	if req.Title == "" {
		return ErrMsgMissingTitle
	}
	if req.FolderID != "" && !isValidID(req.FolderID) {
		return ErrMsgInvalidFolderID
	}
	for _, tagID := range req.Tags {
		if !isValidID(tagID) {
			return ErrMsgInvalidTags
		}
	}
	return ""
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
