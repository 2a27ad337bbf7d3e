package adminValidator

import (
	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

// StaffApproval validates the approval flip for a staff application.
// There is no "rejected" value: rejecting an application is a DELETE.
func StaffApproval() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID       uint `json:"id"`
			Approved bool `json:"approved"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "A valid id is required!"})
		}
		if !reqData.Approved {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"approved": "Approval can only be granted; reject an application by deleting it.",
			})
		}

		c.Locals("validatedStaffApproval", reqData)
		return c.Next()
	}
}
