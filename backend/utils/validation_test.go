package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"ana@example.com", false},
		{"", true},
		{"   ", true},
		{"ana", true},
		{"Ana <ana@example.com>", true},
		{"ana@", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type payload struct {
	Steps *int `json:"steps"`
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSteps *int
		wantErr   bool
	}{
		{name: "empty body", body: ""},
		{name: "valid", body: `{"steps":42}`, wantSteps: intPtr(42)},
		{name: "malformed", body: `{"steps":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    payload
				result error
			)
			app := fiber.New()
			app.Post("/", func(c *fiber.Ctx) error {
				result = ParseBody(c, &got)
				return c.SendStatus(fiber.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			_, err := app.Test(req, -1)
			require.NoError(t, err)

			if tt.wantErr {
				var bodyErr *BodyError
				assert.True(t, errors.As(result, &bodyErr))
				return
			}
			require.NoError(t, result)
			assert.Equal(t, tt.wantSteps, got.Steps)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		path    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid", path: "/quests/" + id.String(), want: id},
		{name: "malformed", path: "/quests/42", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    uuid.UUID
				result error
			)
			app := fiber.New()
			app.Get("/quests/:id", func(c *fiber.Ctx) error {
				got, result = ParseIDParam(c, "id")
				return c.SendStatus(fiber.StatusNoContent)
			})

			_, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)

			if tt.wantErr {
				var paramErr *ParamError
				require.True(t, errors.As(result, &paramErr))
				assert.Equal(t, "id", paramErr.Name)
				assert.Equal(t, "42", paramErr.Value)
				return
			}
			require.NoError(t, result)
			assert.Equal(t, tt.want, got)
		})
	}
}

func intPtr(v int) *int { return &v }
