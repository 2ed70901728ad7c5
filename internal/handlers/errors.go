package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler writes API errors as JSON and page errors as plain text.
// Unexpected errors are logged and reported as 500 without details.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		zap.L().Named("http").Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"success": false, "error": msg})
	}
	return c.Status(code).SendString(msg)
}

// Health serves GET /healthz.
func Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}
