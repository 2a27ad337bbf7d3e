package adminValidator

import (
	"strings"

	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

// TestimonialBody validates create/update of a testimonial from the
// admin console.
func TestimonialBody() fiber.Handler {
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

		c.Locals("validatedTestimonialBody", reqData)
		return c.Next()
	}
}

// BlogBody validates create/update of a blog post.
func BlogBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Category string `json:"category"`
			Author   string `json:"author"`
			Excerpt  string `json:"excerpt"`
			Content  string `json:"content"`
			CoverURL string `json:"cover_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogBody", reqData)
		return c.Next()
	}
}

// GalleryBody validates create/update of a gallery image.
func GalleryBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			ImageURL string `json:"image_url"`
			Caption  string `json:"caption"`
			Category string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.ImageURL) == "" {
			errors["image_url"] = "Image URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGalleryBody", reqData)
		return c.Next()
	}
}

// PortfolioBody validates create/update of a portfolio item.
func PortfolioBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string   `json:"title"`
			Description  string   `json:"description"`
			ImageURL     string   `json:"image_url"`
			ProjectURL   string   `json:"project_url"`
			Technologies []string `json:"technologies"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPortfolioBody", reqData)
		return c.Next()
	}
}
