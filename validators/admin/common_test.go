package adminValidator

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchApp(allowed ...string) *fiber.App {
	app := fiber.New()
	app.Patch("/", StatusPatch(allowed...), func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func TestStatusPatchAcceptsAllowedStatus(t *testing.T) {
	app := patchApp("APPROVED", "REJECTED")

	req := httptest.NewRequest("PATCH", "/", bytes.NewBufferString(`{"id":1,"status":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStatusPatchRejectsUnknownStatus(t *testing.T) {
	app := patchApp("APPROVED", "REJECTED")

	req := httptest.NewRequest("PATCH", "/", bytes.NewBufferString(`{"id":1,"status":"PUBLISHED"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStatusPatchRequiresId(t *testing.T) {
	app := patchApp("APPROVED")

	req := httptest.NewRequest("PATCH", "/", bytes.NewBufferString(`{"status":"APPROVED"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestIDParamAcceptsPathAndQueryForms(t *testing.T) {
	app := fiber.New()
	app.Delete("/:id?", IDParam(), func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", c.Locals("recordID"))
	})

	for _, target := range []string{"/7", "/?id=7"} {
		resp, err := app.Test(httptest.NewRequest("DELETE", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)
	}

	resp, err := app.Test(httptest.NewRequest("DELETE", "/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
