package middleware_test

import (
	"net/http/httptest"
	"testing"

	"yastm-generator/core/middleware/auth"
	"yastm-generator/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: "secret"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"Valid", "secret", 200},
		{"Wrong", "guess", 401},
		{"Missing", "", 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.key != "" {
				req.Header.Set(auth.HeaderAPIKey, tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	app := fiber.New()
	app.Use(auth.New(auth.Config{}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	id := resp.Header.Get(rayid.Header)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "caller-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-id", resp.Header.Get(rayid.Header))
}
