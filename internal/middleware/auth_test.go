package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-simulator/internal/models"
	"alfredoptarigan/interview-simulator/internal/services"
)

type fakeAuth struct{}

func (fakeAuth) Register(context.Context, string, string) (*models.Account, error) { return nil, nil }
func (fakeAuth) Login(context.Context, string, string) (string, error) { return "", nil }
func (fakeAuth) TokenTTL() time.Duration { return time.Hour }

func (fakeAuth) ParseToken(token string) (*services.Claims, error) {
	if token == "Bearer good" {
		return &services.Claims{UserID: 42}, nil
	}
	return nil, errors.New("bad token")
}

func TestOptionalAuth(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Use(OptionalAuth(fakeAuth{}, zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error {
		id, ok := AccountID(c)
		return c.JSON(fiber.Map{"id": id, "ok": ok})
	})

	tests := []struct {
		name   string
		cookie string
		wantOK bool
	}{
		{name: "no cookie", wantOK: false},
		{name: "invalid token", cookie: "Bearer bad", wantOK: false},
		{name: "valid token", cookie: "Bearer good", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", accessTokenCookie+"="+tt.cookie)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("anonymous requests must pass through, got %d", resp.StatusCode)
			}

			var body struct {
				ID uint `json:"id"`
				OK bool `json:"ok"`
			}
			defer resp.Body.Close()
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.OK != tt.wantOK || (tt.wantOK && body.ID != 42) {
				t.Fatalf("unexpected identity: %+v", body)
			}
		})
	}
}
