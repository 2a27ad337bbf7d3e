package adminValidator

import (
	"strings"

	"edusite/middleware"
	"edusite/models"

	"github.com/gofiber/fiber/v2"
)

// CourseBody is the shared course create/update payload stashed by the
// validators below.
type CourseBody struct {
	Title            string                    `json:"title"`
	Slug             string                    `json:"slug"`
	Description      string                    `json:"description"`
	DurationWeeks    int                       `json:"duration_weeks"`
	SessionsPerWeek  int                       `json:"sessions_per_week"`
	Price            float64                   `json:"price"`
	TargetAudience   string                    `json:"target_audience"`
	DifficultyLevel  string                    `json:"difficulty_level"`
	Prerequisites    []string                  `json:"prerequisites"`
	LearningOutcomes []string                  `json:"learning_outcomes"`
	Curriculum       []models.CurriculumModule `json:"curriculum"`
}

func validateCourseBody(c *fiber.Ctx) (*CourseBody, map[string]string, error) {
	reqData := new(CourseBody)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, err
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}
	if reqData.DurationWeeks < 1 {
		errors["duration_weeks"] = "Duration must be at least 1 week!"
	}
	if reqData.SessionsPerWeek < 1 {
		errors["sessions_per_week"] = "Sessions per week must be at least 1!"
	}
	if reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}
	for _, mod := range reqData.Curriculum {
		if strings.TrimSpace(mod.Title) == "" {
			errors["curriculum"] = "Every curriculum module needs a title!"
			break
		}
	}

	return reqData, errors, nil
}

// CreateCourse validates a new course. The slug is derived server-side
// from the title, so it is not accepted from the client here.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors, err := validateCourseBody(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates a full course update. Unlike create, the slug
// is an ordinary editable field here; it is never rederived from the
// title.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors, err := validateCourseBody(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
