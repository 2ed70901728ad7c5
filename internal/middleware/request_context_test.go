package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContext_CancelledAfterHandler(t *testing.T) {
	var captured context.Context

	app := fiber.New()
	app.Use(RequestContext(time.Minute))
	app.Get("/", func(c *fiber.Ctx) error {
		captured = c.UserContext()
		_, hasDeadline := captured.Deadline()
		assert.True(t, hasDeadline)
		assert.NoError(t, captured.Err())
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.NotNil(t, captured)
	assert.ErrorIs(t, captured.Err(), context.Canceled)
}
