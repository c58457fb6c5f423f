package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cadastromunicipal.com/internal/domain"
)

// handleError renders a service error. Structured AppErrors carry their own
// status code and generic signal message; anything else is a plain-message
// domain error (the credential-service Portuguese strings) rendered verbatim
// with status 400. Services wrap unexpected failures in AppError, so a bare
// error reaching this point is always a caller-facing message.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
