package staffValidator

import (
	"strings"
	"time"

	"edusite/middleware"

	"github.com/gofiber/fiber/v2"
)

// SessionBody validates a class-session write-up.
func SessionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID     uint      `json:"course_id"`
			StudentName  string    `json:"student_name"`
			Topic        string    `json:"topic"`
			HeldAt       time.Time `json:"held_at"`
			DurationMins int       `json:"duration_mins"`
			Notes        string    `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.StudentName) == "" {
			errors["student_name"] = "Student name is required!"
		}
		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if reqData.HeldAt.IsZero() {
			errors["held_at"] = "Session date is required!"
		}
		if reqData.DurationMins < 1 {
			errors["duration_mins"] = "Duration must be positive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

// ScheduleBody validates an upcoming virtual class slot.
func ScheduleBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID     uint      `json:"course_id"`
			StudentName  string    `json:"student_name"`
			MeetingLink  string    `json:"meeting_link"`
			ScheduledAt  time.Time `json:"scheduled_at"`
			DurationMins int       `json:"duration_mins"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.StudentName) == "" {
			errors["student_name"] = "Student name is required!"
		}
		if strings.TrimSpace(reqData.MeetingLink) == "" {
			errors["meeting_link"] = "Meeting link is required!"
		}
		if reqData.ScheduledAt.IsZero() {
			errors["scheduled_at"] = "Schedule date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}

// ReportCardBody validates a student progress report.
func ReportCardBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID     uint   `json:"course_id"`
			StudentName  string `json:"student_name"`
			Period       string `json:"period"`
			Grade        string `json:"grade"`
			Strengths    string `json:"strengths"`
			Improvements string `json:"improvements"`
			Remarks      string `json:"remarks"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.StudentName) == "" {
			errors["student_name"] = "Student name is required!"
		}
		if strings.TrimSpace(reqData.Period) == "" {
			errors["period"] = "Reporting period is required!"
		}
		if strings.TrimSpace(reqData.Grade) == "" {
			errors["grade"] = "Grade is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReportCard", reqData)
		return c.Next()
	}
}
