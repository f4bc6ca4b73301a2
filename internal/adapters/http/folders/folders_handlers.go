// Package folders содержит HTTP-обработчики для управления папками.
package folders

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/httperr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/app/dto"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListFolders  = "handling list folders request"
	LogHandlerGetFolder    = "handling get folder request"
	LogHandlerCreateFolder = "handling create folder request"
	LogHandlerUpdateFolder = "handling update folder request"
	LogHandlerDeleteFolder = "handling delete folder request"

	ErrMsgMissingName        = "Missing `name` in request body"
	ErrMsgBodyIDMismatch     = "`id` in body does not match requested resource"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// BasePath - префикс маршрутов папок, используется в заголовке Location.
const BasePath = "/api/folders"

// Handler обработчик HTTP-запросов для работы с папками.
type Handler struct {
	folders repositories.FolderRepository
}

// NewHandler создает новый экземпляр обработчика папок.
func NewHandler(folders repositories.FolderRepository) *Handler {
	return &Handler{folders: folders}
}

// List обрабатывает запрос на получение всех папок.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(requestCtx, LogHandlerListFolders)

	folders, err := h.folders.Fetch(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list folders", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.JSON(folders); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос на получение папки по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(requestCtx, LogHandlerGetFolder)

	folder, err := h.folders.Find(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, "failed to get folder", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if folder == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание новой папки.
// Дублирующееся имя возвращает 400.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(requestCtx, LogHandlerCreateFolder)

	var req dto.NamedRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if req.Name == "" {
		log.Debug(requestCtx, ErrMsgMissingName)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgMissingName)
	}

	folder, err := h.folders.Create(requestCtx, req.Name)
	if err != nil {
		log.Error(requestCtx, "failed to create folder", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%s", BasePath, folder.ID))
	if err := ctx.Status(fiber.StatusCreated).JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на переименование папки.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(requestCtx, LogHandlerUpdateFolder)

	id := ctx.Params("id")

	var req dto.NamedRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if req.ID != "" && req.ID != id {
		log.Debug(requestCtx, ErrMsgBodyIDMismatch)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgBodyIDMismatch)
	}
	if req.Name == "" {
		log.Debug(requestCtx, ErrMsgMissingName)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgMissingName)
	}

	folder, err := h.folders.Update(requestCtx, id, req.Name)
	if err != nil {
		log.Error(requestCtx, "failed to update folder", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if folder == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление папки. Заметки папки не удаляются,
// с них лишь снимается ссылка. Всегда отвечает 204.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(requestCtx, LogHandlerDeleteFolder)

	if err := h.folders.Delete(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, "failed to delete folder", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
