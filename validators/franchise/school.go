package franchiseValidator

import (
	"strings"

	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// SchoolBody validates create/update of a franchise CRM lead.
func SchoolBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string  `json:"name"`
			ContactPerson  string  `json:"contact_person"`
			Email          string  `json:"email"`
			Mobile         string  `json:"mobile"`
			City           string  `json:"city"`
			Address        string  `json:"address"`
			EstimatedValue float64 `json:"estimated_value"`
			Notes          string  `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "School name is required!"
		}
		if strings.TrimSpace(reqData.ContactPerson) == "" {
			errors["contact_person"] = "Contact person is required!"
		}
		if reqData.EstimatedValue < 0 {
			errors["estimated_value"] = "Estimated value cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchool", reqData)
		return c.Next()
	}
}

// SchoolStatusPatch validates a pipeline status move for a lead.
func SchoolStatusPatch() fiber.Handler {
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
		for _, s := range models.FranchiseStatuses {
			if reqData.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			errors["status"] = "Status is not a valid pipeline state!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchoolStatus", reqData)
		return c.Next()
	}
}
