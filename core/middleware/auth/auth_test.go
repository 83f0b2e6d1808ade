package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		query  string
		want   int
	}{
		{"disabled", "", "", "", fiber.StatusOK},
		{"missing key", "secret", "", "", fiber.StatusUnauthorized},
		{"wrong key", "secret", "nope", "", fiber.StatusUnauthorized},
		{"header", "secret", "secret", "", fiber.StatusOK},
		{"query", "secret", "", "secret", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(New(Config{ApiKey: tt.key}))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			target := "/"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
