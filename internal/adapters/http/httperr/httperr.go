// Package httperr отображает доменные ошибки в HTTP ответы.
package httperr

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"noteful/internal/errs"
)

// MsgNotFound - обобщенное сообщение для отсутствующих ресурсов и маршрутов.
const MsgNotFound = "Not Found"

// JSON отправляет ответ вида {"error": message} с указанным статусом.
func JSON(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Domain отображает доменную ошибку в HTTP статус по ее категории.
// Нетипизированные ошибки превращаются в 500 с обобщенным сообщением,
// детали хранилища до клиента не доходят.
func Domain(ctx fiber.Ctx, err error) error {
	return JSON(ctx, errs.HTTPStatus(errs.KindOf(err)), errs.MessageOf(err))
}

// NotFound отправляет обобщенный ответ 404.
func NotFound(ctx fiber.Ctx) error {
	return JSON(ctx, fiber.StatusNotFound, MsgNotFound)
}
