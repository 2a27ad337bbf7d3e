package adminValidator

import (
	"strconv"

	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

// IDParam validates the :id path parameter, falling back to the ?id=
// query form the delete endpoints also accept.
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		if raw == "" {
			raw = c.Query("id")
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid id is required!", nil)
		}

		c.Locals("recordID", id)
		return c.Next()
	}
}

// StatusPatch validates the partial-update body {id, status} and
// restricts status to the allowed set for the resource.
func StatusPatch(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID < 1 {
			errors["id"] = "A valid id is required!"
		}

		valid := false
		for _, s := range allowed {
			if reqData.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			errors["status"] = "Status is not valid for this resource!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatusPatch", reqData)
		return c.Next()
	}
}
