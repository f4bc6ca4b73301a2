// Package tags содержит HTTP-обработчики для управления тегами.
package tags

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
	LogHandlerListTags  = "handling list tags request"
	LogHandlerGetTag    = "handling get tag request"
	LogHandlerCreateTag = "handling create tag request"
	LogHandlerUpdateTag = "handling update tag request"
	LogHandlerDeleteTag = "handling delete tag request"

	ErrMsgMissingName        = "Missing `name` in request body"
	ErrMsgBodyIDMismatch     = "`id` in body does not match requested resource"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// BasePath - префикс маршрутов тегов, используется в заголовке Location.
const BasePath = "/api/tags"

// Handler обработчик HTTP-запросов для работы с тегами.
type Handler struct {
	tags repositories.TagRepository
}

// NewHandler создает новый экземпляр обработчика тегов.
func NewHandler(tags repositories.TagRepository) *Handler {
	return &Handler{tags: tags}
}

// List обрабатывает запрос на получение всех тегов.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.List"))
	log.Debug(requestCtx, LogHandlerListTags)

	tags, err := h.tags.Fetch(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list tags", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.JSON(tags); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Get обрабатывает запрос на получение тега по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Get"))
	log.Debug(requestCtx, LogHandlerGetTag)

	tag, err := h.tags.Find(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, "failed to get tag", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if tag == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(tag); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание нового тега.
// Дублирующееся имя возвращает 400.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Create"))
	log.Debug(requestCtx, LogHandlerCreateTag)

	var req dto.NamedRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if req.Name == "" {
		log.Debug(requestCtx, ErrMsgMissingName)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgMissingName)
	}

	tag, err := h.tags.Create(requestCtx, req.Name)
	if err != nil {
		log.Error(requestCtx, "failed to create tag", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%s", BasePath, tag.ID))
	if err := ctx.Status(fiber.StatusCreated).JSON(tag); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на переименование тега.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Update"))
	log.Debug(requestCtx, LogHandlerUpdateTag)

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

	tag, err := h.tags.Update(requestCtx, id, req.Name)
	if err != nil {
		log.Error(requestCtx, "failed to update tag", zap.Error(err))
		return httperr.Domain(ctx, err)
	}
	if tag == nil {
		return httperr.NotFound(ctx)
	}

	if err := ctx.JSON(tag); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление тега. Тег убирается из всех заметок,
// сами заметки не удаляются. Всегда отвечает 204.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Delete"))
	log.Debug(requestCtx, LogHandlerDeleteTag)

	if err := h.tags.Delete(requestCtx, ctx.Params("id")); err != nil {
		log.Error(requestCtx, "failed to delete tag", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
