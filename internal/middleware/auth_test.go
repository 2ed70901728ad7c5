package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	adminID := uuid.New()
	parse := func(token string) (uuid.UUID, error) {
		if token == "good" {
			return adminID, nil
		}
		return uuid.Nil, errors.New("bad token")
	}

	app := fiber.New()
	app.Get("/admin", AdminAuth(parse), func(c *fiber.Ctx) error {
		id, ok := CurrentAdminID(c)
		require.True(t, ok)
		return c.SendString(id.String())
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"wrong_scheme", "Basic good", fiber.StatusUnauthorized},
		{"bad_token", "Bearer nope", fiber.StatusUnauthorized},
		{"ok", "Bearer good", fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
