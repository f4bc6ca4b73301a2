// Package users содержит HTTP-обработчики для регистрации пользователей.
package users

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/httperr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/app"
	"noteful/internal/app/dto"
	"noteful/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerRegister = "handling register user request"

	ErrMsgMissingUsername    = "Missing `username` in request body"
	ErrMsgMissingPassword    = "Missing `password` in request body"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// BasePath - префикс маршрутов пользователей, используется в заголовке Location.
const BasePath = "/api/users"

// Handler обработчик HTTP-запросов для работы с пользователями.
type Handler struct {
	auth app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(auth app.AuthUseCase) *Handler {
	return &Handler{auth: auth}
}

// Register обрабатывает запрос на создание учетной записи.
// Пароль хэшируется перед сохранением и никогда не возвращается в ответе.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	if req.Username == "" {
		log.Debug(requestCtx, ErrMsgMissingUsername)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgMissingUsername)
	}
	if req.Password == "" {
		log.Debug(requestCtx, ErrMsgMissingPassword)
		return httperr.JSON(ctx, fiber.StatusBadRequest, ErrMsgMissingPassword)
	}

	user, err := h.auth.Register(requestCtx, req.Username, req.Password, req.Fullname)
	if err != nil {
		log.Error(requestCtx, "failed to register user", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%s", BasePath, user.ID))
	if err := ctx.Status(fiber.StatusCreated).JSON(user); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
