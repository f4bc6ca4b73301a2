// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"noteful/pkg/logger"
)

// ContextKey - ключ Locals с контекстом запроса.
const ContextKey = "requestContext"

// NewRequestIDMiddleware создает промежуточное ПО, снабжающее каждый запрос
// контекстом с уникальным request_id для логирования.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), "")
		ctx.Locals(ContextKey, requestCtx)
		return ctx.Next()
	}
}

// UserContext возвращает контекст запроса с request_id.
func UserContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(ContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context() // Запасной вариант
}
