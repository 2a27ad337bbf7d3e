package publicValidator

import (
	"strings"

	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitTestimonial validates a public testimonial submission.
func SubmitTestimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Role    string `json:"role"`
			Company string `json:"company"`
			Content string `json:"content"`
			Rating  int    `json:"rating"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}

// Register validates a course-interest registration, branching on the
// two mutually exclusive shapes.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type           string         `json:"type"`
			Name           string         `json:"name"`
			Email          string         `json:"email"`
			Mobile         string         `json:"mobile"`
			Age            int            `json:"age"`
			CourseInterest string         `json:"course_interest"`
			Children       []models.Child `json:"children"`
			Message        string         `json:"message"`
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

		switch reqData.Type {
		case models.RegistrationIndividual:
			if strings.TrimSpace(reqData.CourseInterest) == "" {
				errors["course_interest"] = "Course interest is required!"
			}
		case models.RegistrationParent:
			if len(reqData.Children) == 0 {
				errors["children"] = "At least one child is required!"
			}
			for _, child := range reqData.Children {
				if strings.TrimSpace(child.Name) == "" {
					errors["children"] = "Every child needs a name!"
					break
				}
			}
		default:
			errors["type"] = "Type must be INDIVIDUAL or PARENT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}

// ContactEmail validates the contact form relay.
func ContactEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Message string `json:"message"`
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
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
