package staffRoutes

import (
	staffController "edusite/controllers/staff"
	"edusite/middleware"
	"edusite/models"
	adminValidator "edusite/validators/admin"
	staffValidator "edusite/validators/staff"

	"github.com/gofiber/fiber/v2"
)

// SetupStaffRoutes wires the instructor console. Every route requires
// a staff session whose profile application has been approved.
func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/api/staff",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleStaff),
		middleware.RequireApprovedStaff,
	)

	sessions := staff.Group("/class-sessions")
	sessions.Get("/", staffController.ListSessions)
	sessions.Post("/", staffValidator.SessionBody(), staffController.CreateSession)
	sessions.Put("/:id", adminValidator.IDParam(), staffValidator.SessionBody(), staffController.UpdateSession)
	sessions.Delete("/:id?", adminValidator.IDParam(), staffController.DeleteSession)

	schedules := staff.Group("/schedules")
	schedules.Get("/", staffController.ListSchedules)
	schedules.Post("/", staffValidator.ScheduleBody(), staffController.CreateSchedule)
	schedules.Put("/:id", adminValidator.IDParam(), staffValidator.ScheduleBody(), staffController.UpdateSchedule)
	schedules.Delete("/:id?", adminValidator.IDParam(), staffController.DeleteSchedule)

	reports := staff.Group("/report-cards")
	reports.Get("/", staffController.ListReportCards)
	reports.Post("/", staffValidator.ReportCardBody(), staffController.CreateReportCard)
	reports.Put("/:id", adminValidator.IDParam(), staffValidator.ReportCardBody(), staffController.UpdateReportCard)
	reports.Delete("/:id?", adminValidator.IDParam(), staffController.DeleteReportCard)

	dashboard := staff.Group("/dashboard")
	dashboard.Get("/stats", staffController.DashboardStats)
}
