// Package auth содержит HTTP-обработчики аутентификации.
package auth

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
	LogHandlerLogin = "handling login request"

	ErrMsgMissingUsername    = "Missing `username` in request body"
	ErrMsgMissingPassword    = "Missing `password` in request body"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	auth app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(auth app.AuthUseCase) *Handler {
	return &Handler{auth: auth}
}

// Login обрабатывает запрос на вход. Неверные учетные данные дают 401
// без уточнения, какое из полей оказалось неверным.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.UserContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
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

	result, err := h.auth.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, "login rejected", zap.Error(err))
		return httperr.Domain(ctx, err)
	}

	response := dto.LoginResponse{
		ID:        result.User.ID,
		Username:  result.User.Username,
		Fullname:  result.User.Fullname,
		AuthToken: result.AuthToken,
	}

	if err := ctx.JSON(response); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
