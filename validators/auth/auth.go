package authValidator

import (
	"strings"

	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

// Login validates the shared login payload used by all three console
// surfaces.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// StaffApply validates an instructor application (account + profile in
// one submission).
func StaffApply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string `json:"name"`
			Email          string `json:"email"`
			Mobile         string `json:"mobile"`
			Password       string `json:"password"`
			Qualification  string `json:"qualification"`
			Specialization string `json:"specialization"`
			ExperienceYrs  int    `json:"experience_years"`
			Bio            string `json:"bio"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if strings.TrimSpace(reqData.Qualification) == "" {
			errors["qualification"] = "Qualification is required!"
		}
		if reqData.ExperienceYrs < 0 {
			errors["experience_years"] = "Experience cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStaffApply", reqData)
		return c.Next()
	}
}
